package store_test

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"marketplace-service/internal/model"
)

// newTestDB opens a fresh in-memory SQLite database with the full schema.
// The pool is pinned to a single connection so every query sees the same
// memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&model.Merchant{},
		&model.Item{},
		&model.Customer{},
		&model.Invoice{},
		&model.InvoiceItem{},
		&model.Transaction{},
	)
	require.NoError(t, err)

	return db
}

func createMerchant(t *testing.T, db *gorm.DB, name string) *model.Merchant {
	t.Helper()
	merchant := &model.Merchant{Name: name}
	require.NoError(t, db.Create(merchant).Error)
	return merchant
}

func createItem(t *testing.T, db *gorm.DB, name string, price float64, merchantID uint) *model.Item {
	t.Helper()
	item := &model.Item{
		Name:        name,
		Description: "description of " + name,
		UnitPrice:   price,
		MerchantID:  merchantID,
	}
	require.NoError(t, db.Create(item).Error)
	return item
}

func createCustomer(t *testing.T, db *gorm.DB) *model.Customer {
	t.Helper()
	customer := &model.Customer{FirstName: "Joey", LastName: "Ondricka"}
	require.NoError(t, db.Create(customer).Error)
	return customer
}

func createInvoice(t *testing.T, db *gorm.DB, customerID, merchantID uint) *model.Invoice {
	t.Helper()
	invoice := &model.Invoice{CustomerID: customerID, MerchantID: merchantID, Status: "shipped"}
	require.NoError(t, db.Create(invoice).Error)
	return invoice
}

func createInvoiceItem(t *testing.T, db *gorm.DB, invoiceID, itemID uint) *model.InvoiceItem {
	t.Helper()
	line := &model.InvoiceItem{
		InvoiceID: invoiceID,
		ItemID:    itemID,
		Quantity:  1,
		UnitPrice: 9.99,
	}
	require.NoError(t, db.Create(line).Error)
	return line
}

func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }
func uintPtr(v uint) *uint        { return &v }
