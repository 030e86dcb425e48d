package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"marketplace-service/internal/store"
)

func TestResolveItemSearch(t *testing.T) {
	type testCase struct {
		name       string
		query      store.ItemSearchQuery
		wantMode   store.SearchMode
		wantReason store.RejectReason
	}

	tests := []testCase{
		{
			name:     "NameOnly",
			query:    store.ItemSearchQuery{Name: "fish"},
			wantMode: store.SearchByName,
		},
		{
			name:     "MinPriceOnly",
			query:    store.ItemSearchQuery{MinPrice: floatPtr(12.0)},
			wantMode: store.SearchByPrice,
		},
		{
			name:     "MaxPriceOnly",
			query:    store.ItemSearchQuery{MaxPrice: floatPtr(50.0)},
			wantMode: store.SearchByPrice,
		},
		{
			name:     "BothBounds",
			query:    store.ItemSearchQuery{MinPrice: floatPtr(12.0), MaxPrice: floatPtr(50.0)},
			wantMode: store.SearchByPrice,
		},
		{
			name:       "AllAbsent",
			query:      store.ItemSearchQuery{},
			wantMode:   store.SearchRejected,
			wantReason: store.RejectMissingParams,
		},
		{
			name:       "ZeroMinPriceAlone",
			query:      store.ItemSearchQuery{MinPrice: floatPtr(0)},
			wantMode:   store.SearchRejected,
			wantReason: store.RejectMissingParams,
		},
		{
			name:       "NameWithMinPrice",
			query:      store.ItemSearchQuery{Name: "fish", MinPrice: floatPtr(12.0)},
			wantMode:   store.SearchRejected,
			wantReason: store.RejectNameAndPrice,
		},
		{
			name:       "NameWithMaxPrice",
			query:      store.ItemSearchQuery{Name: "fish", MaxPrice: floatPtr(50.0)},
			wantMode:   store.SearchRejected,
			wantReason: store.RejectNameAndPrice,
		},
		{
			name:       "NegativeMinPrice",
			query:      store.ItemSearchQuery{MinPrice: floatPtr(-5.0)},
			wantMode:   store.SearchRejected,
			wantReason: store.RejectNegativePrice,
		},
		{
			name:       "NegativeMaxPrice",
			query:      store.ItemSearchQuery{MaxPrice: floatPtr(-5.0)},
			wantMode:   store.SearchRejected,
			wantReason: store.RejectNegativePrice,
		},
		{
			name:       "NegativePriceWinsOverNameConflict",
			query:      store.ItemSearchQuery{Name: "fish", MinPrice: floatPtr(-5.0)},
			wantMode:   store.SearchRejected,
			wantReason: store.RejectNegativePrice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := store.ResolveItemSearch(tt.query)

			assert.Equal(t, tt.wantMode, decision.Mode)
			if tt.wantMode == store.SearchRejected {
				assert.Equal(t, tt.wantReason, decision.Reason)
			}
		})
	}
}
