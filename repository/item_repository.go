package repository

import (
	"gorm.io/gorm"

	"github.com/chathuka55/coffee-me-pos/entity"
)

type ItemRepository struct {
	DB *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{DB: db}
}

func (r *ItemRepository) List() ([]entity.Item, error) {
	var items []entity.Item
	err := r.DB.Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *ItemRepository) FindByID(id uint) (*entity.Item, error) {
	var item entity.Item
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *ItemRepository) FindByIDTx(tx *gorm.DB, id uint) (*entity.Item, error) {
	var item entity.Item
	if err := tx.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *ItemRepository) FindBySKU(sku string) (*entity.Item, error) {
	var item entity.Item
	if err := r.DB.Where("sku = ?", sku).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *ItemRepository) Create(item *entity.Item) error {
	return r.DB.Create(item).Error
}

func (r *ItemRepository) Save(item *entity.Item) error {
	return r.DB.Save(item).Error
}

func (r *ItemRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Item{}, id).Error
}

// CountOrderLines counts every order line ever written for the item,
// including lines of deleted orders, so sold items stay undeletable and
// order history keeps resolving.
func (r *ItemRepository) CountOrderLines(itemID uint) (int64, error) {
	var cnt int64
	err := r.DB.Unscoped().Model(&entity.OrderItem{}).
		Where("item_id = ?", itemID).
		Count(&cnt).Error
	return cnt, err
}

// DecrementStockGuard takes qty units off the item's stock only when enough
// stock is present, in one statement. A zero RowsAffected result means the
// stock check lost a race and the caller must fail the transaction.
func (r *ItemRepository) DecrementStockGuard(tx *gorm.DB, itemID uint, qty int) (int64, error) {
	res := tx.Model(&entity.Item{}).
		Where("id = ? AND stock >= ?", itemID, qty).
		Update("stock", gorm.Expr("stock - ?", qty))
	return res.RowsAffected, res.Error
}

func (r *ItemRepository) IncrementStock(tx *gorm.DB, itemID uint, qty int) error {
	return tx.Model(&entity.Item{}).
		Where("id = ?", itemID).
		Update("stock", gorm.Expr("stock + ?", qty)).Error
}

// AdjustStockGuard applies a signed delta, refusing to drive stock negative.
func (r *ItemRepository) AdjustStockGuard(tx *gorm.DB, itemID uint, delta int) (int64, error) {
	res := tx.Model(&entity.Item{}).
		Where("id = ? AND stock + ? >= 0", itemID, delta).
		Update("stock", gorm.Expr("stock + ?", delta))
	return res.RowsAffected, res.Error
}
