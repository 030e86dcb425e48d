package model

import "time"

// Merchant represents a seller that owns zero or more items. Items reference
// their merchant by foreign key; deleting a merchant does not cascade to them.
type Merchant struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Items []Item `json:"items,omitempty" gorm:"foreignKey:MerchantID"`
}

// Validate checks the merchant's required fields
func (m *Merchant) Validate() error {
	return checkRequired(
		requiredField{"name", m.Name != ""},
	)
}
