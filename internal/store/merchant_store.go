package store

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"marketplace-service/internal/model"
)

// MerchantStore provides lookups and name search over merchants.
type MerchantStore struct {
	db *gorm.DB
}

func NewMerchantStore(db *gorm.DB) *MerchantStore {
	return &MerchantStore{db: db}
}

// List returns all merchants
func (s *MerchantStore) List() ([]model.Merchant, error) {
	var merchants []model.Merchant
	if err := s.db.Find(&merchants).Error; err != nil {
		return nil, fmt.Errorf("list merchants: %w", err)
	}
	return merchants, nil
}

// Get returns the merchant with the given ID or ErrMerchantNotFound.
func (s *MerchantStore) Get(id uint) (*model.Merchant, error) {
	var merchant model.Merchant
	if err := s.db.First(&merchant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMerchantNotFound
		}
		return nil, fmt.Errorf("get merchant %d: %w", id, err)
	}
	return &merchant, nil
}

// Items returns all items belonging to the merchant. The merchant must exist.
func (s *MerchantStore) Items(merchantID uint) ([]model.Item, error) {
	if _, err := s.Get(merchantID); err != nil {
		return nil, err
	}

	var items []model.Item
	if err := s.db.Where("merchant_id = ?", merchantID).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list items for merchant %d: %w", merchantID, err)
	}
	return items, nil
}

// SearchByName returns every merchant whose name contains the fragment,
// case-insensitively, ordered ascending by name. A fragment matching nothing
// yields an empty slice, not an error.
func (s *MerchantStore) SearchByName(fragment string) ([]model.Merchant, error) {
	var merchants []model.Merchant
	pattern := "%" + strings.ToLower(fragment) + "%"
	err := s.db.
		Where("LOWER(name) LIKE ?", pattern).
		Order("name ASC").
		Find(&merchants).Error
	if err != nil {
		return nil, fmt.Errorf("search merchants by name: %w", err)
	}
	return merchants, nil
}
