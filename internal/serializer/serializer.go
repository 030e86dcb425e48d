// Package serializer renders domain records into the JSON:API response
// envelope: {"data":{"id":"1","type":"item","attributes":{...}}}. IDs are
// rendered as strings.
package serializer

import (
	"strconv"

	"marketplace-service/internal/model"
)

// Document is the top-level response envelope
type Document struct {
	Data interface{} `json:"data"`
}

// Object is a single serialized record
type Object struct {
	ID         string      `json:"id"`
	Type       string      `json:"type"`
	Attributes interface{} `json:"attributes"`
}

// MerchantAttributes is the serialized attribute set for a merchant
type MerchantAttributes struct {
	Name string `json:"name"`
}

// ItemAttributes is the serialized attribute set for an item
type ItemAttributes struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unit_price"`
	MerchantID  uint    `json:"merchant_id"`
}

func merchantObject(m *model.Merchant) Object {
	return Object{
		ID:   strconv.FormatUint(uint64(m.ID), 10),
		Type: "merchant",
		Attributes: MerchantAttributes{
			Name: m.Name,
		},
	}
}

func itemObject(i *model.Item) Object {
	return Object{
		ID:   strconv.FormatUint(uint64(i.ID), 10),
		Type: "item",
		Attributes: ItemAttributes{
			Name:        i.Name,
			Description: i.Description,
			UnitPrice:   i.UnitPrice,
			MerchantID:  i.MerchantID,
		},
	}
}

// NewMerchant wraps a single merchant
func NewMerchant(m *model.Merchant) Document {
	return Document{Data: merchantObject(m)}
}

// NewMerchantList wraps a list of merchants; an empty list serializes as []
func NewMerchantList(merchants []model.Merchant) Document {
	objects := make([]Object, 0, len(merchants))
	for i := range merchants {
		objects = append(objects, merchantObject(&merchants[i]))
	}
	return Document{Data: objects}
}

// NewItem wraps a single item
func NewItem(i *model.Item) Document {
	return Document{Data: itemObject(i)}
}

// NewItemList wraps a list of items; an empty list serializes as []
func NewItemList(items []model.Item) Document {
	objects := make([]Object, 0, len(items))
	for i := range items {
		objects = append(objects, itemObject(&items[i]))
	}
	return Document{Data: objects}
}

// EmptyList is the {"data":[]} body used by searches that match nothing
func EmptyList() Document {
	return Document{Data: []Object{}}
}
