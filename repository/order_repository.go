package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/chathuka55/coffee-me-pos/entity"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

type OrderFilters struct {
	Status    string
	OrderType string
	DateFrom  *time.Time
	DateTo    *time.Time // inclusive
}

func (r *OrderRepository) List(f OrderFilters) ([]entity.Order, error) {
	db := r.DB.Preload("Items.Item").Preload("Table")
	if f.Status != "" {
		db = db.Where("status = ?", f.Status)
	}
	if f.OrderType != "" {
		db = db.Where("order_type = ?", f.OrderType)
	}
	if f.DateFrom != nil {
		db = db.Where("created_at >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		db = db.Where("created_at <= ?", *f.DateTo)
	}

	var orders []entity.Order
	err := db.Order("created_at DESC").Find(&orders).Error
	return orders, err
}

// FindByID returns the order hydrated with its lines, their items and the table.
func (r *OrderRepository) FindByID(id uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Preload("Items.Item").Preload("Table").First(&o, id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) FindByIDTx(tx *gorm.DB, id uint) (*entity.Order, error) {
	var o entity.Order
	if err := tx.First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) LinesByOrderTx(tx *gorm.DB, orderID uint) ([]entity.OrderItem, error) {
	var lines []entity.OrderItem
	err := tx.Where("order_id = ?", orderID).Find(&lines).Error
	return lines, err
}

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateLine(tx *gorm.DB, line *entity.OrderItem) error {
	return tx.Create(line).Error
}

// UpdateStatus writes the status in a single guarded statement. Zero rows
// affected means the order vanished between lookup and write.
func (r *OrderRepository) UpdateStatus(tx *gorm.DB, orderID uint, status string) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ?", orderID).
		Update("status", status)
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) DeleteLines(tx *gorm.DB, orderID uint) error {
	return tx.Where("order_id = ?", orderID).Delete(&entity.OrderItem{}).Error
}

func (r *OrderRepository) Delete(tx *gorm.DB, orderID uint) error {
	return tx.Delete(&entity.Order{}, orderID).Error
}
