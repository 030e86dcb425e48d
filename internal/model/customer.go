package model

import "time"

// Customer reaches items and merchants transitively through its invoices.
type Customer struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	FirstName string    `json:"first_name" gorm:"type:varchar(255);not null"`
	LastName  string    `json:"last_name" gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Invoices []Invoice `json:"invoices,omitempty" gorm:"foreignKey:CustomerID"`
}

// Validate checks the customer's required fields
func (c *Customer) Validate() error {
	return checkRequired(
		requiredField{"first_name", c.FirstName != ""},
		requiredField{"last_name", c.LastName != ""},
	)
}
