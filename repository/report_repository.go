package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/chathuka55/coffee-me-pos/entity"
)

// ReportRepository runs the aggregation queries behind the sales report.
// Only completed orders count; pending ones are unpaid and reversible.
type ReportRepository struct {
	DB *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{DB: db}
}

type SalesTotals struct {
	Revenue float64
	Orders  int64
}

type KeyCount struct {
	Key   string
	Count int64
}

type TopItemRow struct {
	ItemID   uint    `json:"itemId"`
	Name     string  `json:"name"`
	Quantity int64   `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

type DailyRow struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
	Orders  int64   `json:"orders"`
}

func (r *ReportRepository) ordersInRange(from, to *time.Time) *gorm.DB {
	db := r.DB.Model(&entity.Order{}).Where("status = ?", entity.OrderCompleted)
	if from != nil {
		db = db.Where("created_at >= ?", *from)
	}
	if to != nil {
		db = db.Where("created_at <= ?", *to)
	}
	return db
}

// linesInRange joins order lines to their orders; Table() bypasses gorm's
// soft-delete scope so the deleted_at filters are spelled out.
func (r *ReportRepository) linesInRange(from, to *time.Time) *gorm.DB {
	db := r.DB.Table("order_items").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.deleted_at IS NULL AND order_items.deleted_at IS NULL").
		Where("orders.status = ?", entity.OrderCompleted)
	if from != nil {
		db = db.Where("orders.created_at >= ?", *from)
	}
	if to != nil {
		db = db.Where("orders.created_at <= ?", *to)
	}
	return db
}

func (r *ReportRepository) Totals(from, to *time.Time) (*SalesTotals, error) {
	var row struct {
		Revenue float64
		Orders  int64
	}
	err := r.ordersInRange(from, to).
		Select("COALESCE(SUM(total), 0) AS revenue, COUNT(*) AS orders").
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &SalesTotals{Revenue: row.Revenue, Orders: row.Orders}, nil
}

// Profit sums (snapshot price - current cost price) * quantity per line.
func (r *ReportRepository) Profit(from, to *time.Time) (float64, error) {
	var row struct{ Profit float64 }
	err := r.linesInRange(from, to).
		Joins("JOIN items ON items.id = order_items.item_id").
		Select("COALESCE(SUM((order_items.price - items.cost_price) * order_items.quantity), 0) AS profit").
		Scan(&row).Error
	return row.Profit, err
}

func (r *ReportRepository) CountByPaymentMethod(from, to *time.Time) ([]KeyCount, error) {
	var rows []KeyCount
	err := r.ordersInRange(from, to).
		Select("payment_method AS key, COUNT(*) AS count").
		Group("payment_method").
		Scan(&rows).Error
	return rows, err
}

func (r *ReportRepository) CountByOrderType(from, to *time.Time) ([]KeyCount, error) {
	var rows []KeyCount
	err := r.ordersInRange(from, to).
		Select("order_type AS key, COUNT(*) AS count").
		Group("order_type").
		Scan(&rows).Error
	return rows, err
}

func (r *ReportRepository) TopItems(from, to *time.Time, limit int) ([]TopItemRow, error) {
	if limit <= 0 {
		limit = 5
	}
	var rows []TopItemRow
	err := r.linesInRange(from, to).
		Joins("JOIN items ON items.id = order_items.item_id").
		Select("items.id AS item_id, items.name AS name, SUM(order_items.quantity) AS quantity, SUM(order_items.price * order_items.quantity) AS revenue").
		Group("items.id, items.name").
		Order("revenue DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *ReportRepository) Daily(from, to *time.Time) ([]DailyRow, error) {
	var rows []DailyRow
	err := r.ordersInRange(from, to).
		Select("DATE(created_at) AS date, COALESCE(SUM(total), 0) AS revenue, COUNT(*) AS orders").
		Group("DATE(created_at)").
		Order("date ASC").
		Scan(&rows).Error
	return rows, err
}
