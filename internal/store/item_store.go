package store

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"marketplace-service/internal/model"
)

// ItemStore provides item CRUD, the combined search, and the invoice cleanup
// that runs when an item is deleted.
type ItemStore struct {
	db *gorm.DB
}

func NewItemStore(db *gorm.DB) *ItemStore {
	return &ItemStore{db: db}
}

// UpdateItemParams is a partial attribute set for an item update. Nil fields
// are left untouched.
type UpdateItemParams struct {
	Name        *string
	Description *string
	UnitPrice   *float64
	MerchantID  *uint
}

// List returns all items
func (s *ItemStore) List() ([]model.Item, error) {
	var items []model.Item
	if err := s.db.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// Get returns the item with the given ID or ErrItemNotFound.
func (s *ItemStore) Get(id uint) (*model.Item, error) {
	var item model.Item
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("get item %d: %w", id, err)
	}
	return &item, nil
}

// Create validates the item's required fields, checks the referenced merchant
// exists, and inserts the record.
func (s *ItemStore) Create(item *model.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	var count int64
	if err := s.db.Model(&model.Merchant{}).Where("id = ?", item.MerchantID).Count(&count).Error; err != nil {
		return fmt.Errorf("check merchant %d: %w", item.MerchantID, err)
	}
	if count == 0 {
		return ErrMerchantNotFound
	}

	if err := s.db.Create(item).Error; err != nil {
		return fmt.Errorf("create item: %w", err)
	}
	return nil
}

// UpdateWithMerchantCheck applies a partial update to the item. When a
// merchant reassignment is requested, the merchant's existence is verified
// strictly before any field is written, so a failed check leaves the item
// completely unmodified.
func (s *ItemStore) UpdateWithMerchantCheck(id uint, params UpdateItemParams) (*model.Item, error) {
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if params.MerchantID != nil {
		var count int64
		if err := s.db.Model(&model.Merchant{}).Where("id = ?", *params.MerchantID).Count(&count).Error; err != nil {
			return nil, fmt.Errorf("check merchant %d: %w", *params.MerchantID, err)
		}
		if count == 0 {
			return nil, ErrMerchantNotFound
		}
	}

	if params.Name != nil {
		item.Name = *params.Name
	}
	if params.Description != nil {
		item.Description = *params.Description
	}
	if params.UnitPrice != nil {
		item.UnitPrice = *params.UnitPrice
	}
	if params.MerchantID != nil {
		item.MerchantID = *params.MerchantID
	}

	if err := s.db.Save(item).Error; err != nil {
		return nil, fmt.Errorf("update item %d: %w", id, err)
	}
	return item, nil
}

// DeleteCascade deletes the item after cleaning up invoices it would orphan.
// Every invoice whose only line is this item is deleted in full, evaluated
// per-invoice; invoices with other lines just lose the row tying them to this
// item. Runs in one transaction.
func (s *ItemStore) DeleteCascade(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var invoiceIDs []uint
		err := tx.Model(&model.InvoiceItem{}).
			Distinct("invoice_id").
			Where("item_id = ?", id).
			Pluck("invoice_id", &invoiceIDs).Error
		if err != nil {
			return fmt.Errorf("find invoices for item %d: %w", id, err)
		}

		for _, invoiceID := range invoiceIDs {
			var lines int64
			if err := tx.Model(&model.InvoiceItem{}).Where("invoice_id = ?", invoiceID).Count(&lines).Error; err != nil {
				return fmt.Errorf("count lines for invoice %d: %w", invoiceID, err)
			}
			if lines != 1 {
				continue
			}
			if err := tx.Where("invoice_id = ?", invoiceID).Delete(&model.InvoiceItem{}).Error; err != nil {
				return fmt.Errorf("delete lines for invoice %d: %w", invoiceID, err)
			}
			if err := tx.Delete(&model.Invoice{}, invoiceID).Error; err != nil {
				return fmt.Errorf("delete invoice %d: %w", invoiceID, err)
			}
		}

		if err := tx.Where("item_id = ?", id).Delete(&model.InvoiceItem{}).Error; err != nil {
			return fmt.Errorf("delete lines for item %d: %w", id, err)
		}
		if err := tx.Delete(&model.Item{}, id).Error; err != nil {
			return fmt.Errorf("delete item %d: %w", id, err)
		}
		return nil
	})
}

// FindItems resolves the combined search to exactly one mode and runs it.
// Rejected queries return a SearchRejectedError carrying the reason.
func (s *ItemStore) FindItems(q ItemSearchQuery) ([]model.Item, error) {
	decision := ResolveItemSearch(q)
	switch decision.Mode {
	case SearchByName:
		return s.FindByNameFragment(q.Name)
	case SearchByPrice:
		return s.FindByPrice(q.MinPrice, q.MaxPrice)
	default:
		return nil, &SearchRejectedError{Reason: decision.Reason}
	}
}

// FindByNameFragment returns items whose name contains the fragment,
// case-insensitively, ordered ascending by name.
func (s *ItemStore) FindByNameFragment(fragment string) ([]model.Item, error) {
	var items []model.Item
	pattern := "%" + strings.ToLower(fragment) + "%"
	err := s.db.
		Where("LOWER(name) LIKE ?", pattern).
		Order("name ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("search items by name: %w", err)
	}
	return items, nil
}

// FindByPrice returns items with unit_price inside the inclusive bounds. A nil
// bound is unbounded on that side; both nil returns all items.
func (s *ItemStore) FindByPrice(minPrice, maxPrice *float64) ([]model.Item, error) {
	query := s.db
	if minPrice != nil {
		query = query.Where("unit_price >= ?", *minPrice)
	}
	if maxPrice != nil {
		query = query.Where("unit_price <= ?", *maxPrice)
	}

	var items []model.Item
	if err := query.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("search items by price: %w", err)
	}
	return items, nil
}

// Merchant returns the merchant that owns the item.
func (s *ItemStore) Merchant(itemID uint) (*model.Merchant, error) {
	item, err := s.Get(itemID)
	if err != nil {
		return nil, err
	}

	var merchant model.Merchant
	if err := s.db.First(&merchant, item.MerchantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMerchantNotFound
		}
		return nil, fmt.Errorf("get merchant %d: %w", item.MerchantID, err)
	}
	return &merchant, nil
}

// Invoices returns the invoices reachable through the item's invoice lines.
func (s *ItemStore) Invoices(itemID uint) ([]model.Invoice, error) {
	if _, err := s.Get(itemID); err != nil {
		return nil, err
	}

	var invoices []model.Invoice
	err := s.db.
		Joins("JOIN invoice_items ON invoice_items.invoice_id = invoices.id").
		Where("invoice_items.item_id = ?", itemID).
		Find(&invoices).Error
	if err != nil {
		return nil, fmt.Errorf("list invoices for item %d: %w", itemID, err)
	}
	return invoices, nil
}

// Customers returns the customers reachable through the item's invoices.
func (s *ItemStore) Customers(itemID uint) ([]model.Customer, error) {
	if _, err := s.Get(itemID); err != nil {
		return nil, err
	}

	var customers []model.Customer
	err := s.db.
		Distinct("customers.*").
		Joins("JOIN invoices ON invoices.customer_id = customers.id").
		Joins("JOIN invoice_items ON invoice_items.invoice_id = invoices.id").
		Where("invoice_items.item_id = ?", itemID).
		Find(&customers).Error
	if err != nil {
		return nil, fmt.Errorf("list customers for item %d: %w", itemID, err)
	}
	return customers, nil
}
