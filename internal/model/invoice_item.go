package model

import "time"

// InvoiceItem is the join row between an invoice and an item. It never
// outlives either side.
type InvoiceItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	InvoiceID uint      `json:"invoice_id" gorm:"index;not null"`
	ItemID    uint      `json:"item_id" gorm:"index;not null"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	UnitPrice float64   `json:"unit_price" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks the invoice item's required fields
func (ii *InvoiceItem) Validate() error {
	return checkRequired(
		requiredField{"invoice_id", ii.InvoiceID != 0},
		requiredField{"item_id", ii.ItemID != 0},
		requiredField{"quantity", ii.Quantity != 0},
		requiredField{"unit_price", ii.UnitPrice > 0},
	)
}
