package model

import "time"

// Invoice ties a customer to a merchant and owns its InvoiceItem rows.
// An invoice whose line items all disappear is orphaned and gets deleted
// during item cascade cleanup.
type Invoice struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	CustomerID uint      `json:"customer_id" gorm:"index;not null"`
	MerchantID uint      `json:"merchant_id" gorm:"index;not null"`
	Status     string    `json:"status" gorm:"type:varchar(100);not null"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relations
	InvoiceItems []InvoiceItem `json:"invoice_items,omitempty" gorm:"foreignKey:InvoiceID"`
}

// Validate checks the invoice's required fields
func (i *Invoice) Validate() error {
	return checkRequired(
		requiredField{"customer_id", i.CustomerID != 0},
		requiredField{"merchant_id", i.MerchantID != 0},
		requiredField{"status", i.Status != ""},
	)
}
