package store

// ItemSearchQuery carries the raw item search parameters. An empty Name counts
// as absent; nil price bounds are absent.
type ItemSearchQuery struct {
	Name     string
	MinPrice *float64
	MaxPrice *float64
}

// SearchMode identifies which search the query resolves to.
type SearchMode int

const (
	SearchRejected SearchMode = iota
	SearchByName
	SearchByPrice
)

// RejectReason explains why a query resolved to SearchRejected.
type RejectReason int

const (
	RejectNone RejectReason = iota
	// RejectMissingParams: no usable parameter was supplied
	RejectMissingParams
	// RejectNameAndPrice: name and a price bound were sent together
	RejectNameAndPrice
	// RejectNegativePrice: a price bound was below zero
	RejectNegativePrice
)

func (r RejectReason) String() string {
	switch r {
	case RejectMissingParams:
		return "missing parameters"
	case RejectNameAndPrice:
		return "name and price sent together"
	case RejectNegativePrice:
		return "negative price bound"
	default:
		return "none"
	}
}

// SearchDecision is the resolved search mode for a query. Reason is set only
// when Mode is SearchRejected.
type SearchDecision struct {
	Mode   SearchMode
	Reason RejectReason
}

// ResolveItemSearch picks exactly one search mode for the query. Precedence:
// negative bounds are invalid outright; name combined with any price bound is
// ambiguous; a lone name selects the name search; a positive bound selects the
// price search; anything else is rejected as missing parameters.
func ResolveItemSearch(q ItemSearchQuery) SearchDecision {
	hasName := q.Name != ""
	minSet := q.MinPrice != nil
	maxSet := q.MaxPrice != nil

	switch {
	case (minSet && *q.MinPrice < 0) || (maxSet && *q.MaxPrice < 0):
		return SearchDecision{Mode: SearchRejected, Reason: RejectNegativePrice}
	case hasName && (minSet || maxSet):
		return SearchDecision{Mode: SearchRejected, Reason: RejectNameAndPrice}
	case hasName:
		return SearchDecision{Mode: SearchByName}
	case (minSet && *q.MinPrice > 0) || (maxSet && *q.MaxPrice > 0):
		return SearchDecision{Mode: SearchByPrice}
	default:
		return SearchDecision{Mode: SearchRejected, Reason: RejectMissingParams}
	}
}
