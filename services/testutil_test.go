package services

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/chathuka55/coffee-me-pos/entity"
	"github.com/chathuka55/coffee-me-pos/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	// A single connection keeps every session on the same in-memory DB.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&entity.Item{},
		&entity.Table{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Settings{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewItemRepository(db),
		repository.NewTableRepository(db),
	)
}

func seedItem(t *testing.T, db *gorm.DB, sku string, price float64, stock int) *entity.Item {
	t.Helper()
	item := entity.Item{
		Name:      "Cappuccino " + sku,
		Category:  "coffee",
		Price:     price,
		CostPrice: price / 2,
		Stock:     stock,
		SKU:       sku,
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("seed item: %v", err)
	}
	return &item
}

func seedTable(t *testing.T, db *gorm.DB, number, seats int) *entity.Table {
	t.Helper()
	tbl := entity.Table{Number: number, Seats: seats, Status: entity.TableAvailable}
	if err := db.Create(&tbl).Error; err != nil {
		t.Fatalf("seed table: %v", err)
	}
	return &tbl
}

func itemStock(t *testing.T, db *gorm.DB, id uint) int {
	t.Helper()
	var item entity.Item
	if err := db.First(&item, id).Error; err != nil {
		t.Fatalf("reload item: %v", err)
	}
	return item.Stock
}

func reloadTable(t *testing.T, db *gorm.DB, id uint) *entity.Table {
	t.Helper()
	var tbl entity.Table
	if err := db.First(&tbl, id).Error; err != nil {
		t.Fatalf("reload table: %v", err)
	}
	return &tbl
}
