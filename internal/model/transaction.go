package model

import "time"

// Transaction records a payment attempt against an invoice. No core logic
// manipulates it; it exists for schema completeness.
type Transaction struct {
	ID                       uint      `json:"id" gorm:"primaryKey"`
	InvoiceID                uint      `json:"invoice_id" gorm:"index;not null"`
	CreditCardNumber         string    `json:"credit_card_number" gorm:"type:varchar(100);not null"`
	CreditCardExpirationDate string    `json:"credit_card_expiration_date" gorm:"type:varchar(100);not null"`
	Result                   string    `json:"result" gorm:"type:varchar(100);not null"`
	CreatedAt                time.Time `json:"created_at"`
	UpdatedAt                time.Time `json:"updated_at"`
}

// Validate checks the transaction's required fields
func (t *Transaction) Validate() error {
	return checkRequired(
		requiredField{"invoice_id", t.InvoiceID != 0},
		requiredField{"credit_card_number", t.CreditCardNumber != ""},
		requiredField{"credit_card_expiration_date", t.CreditCardExpirationDate != ""},
		requiredField{"result", t.Result != ""},
	)
}
