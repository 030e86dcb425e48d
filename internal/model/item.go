package model

import "time"

// Item represents a product sold by a merchant. It participates in invoices
// through InvoiceItem join rows.
type Item struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"type:varchar(255);not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	UnitPrice   float64   `json:"unit_price" gorm:"not null"`
	MerchantID  uint      `json:"merchant_id" gorm:"index;not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	InvoiceItems []InvoiceItem `json:"invoice_items,omitempty" gorm:"foreignKey:ItemID"`
}

// Validate checks the item's required fields. A zero unit price counts as
// absent, matching the create contract (price must be supplied and positive).
func (i *Item) Validate() error {
	return checkRequired(
		requiredField{"name", i.Name != ""},
		requiredField{"description", i.Description != ""},
		requiredField{"unit_price", i.UnitPrice > 0},
		requiredField{"merchant_id", i.MerchantID != 0},
	)
}
