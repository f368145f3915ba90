package repository

import (
	"gorm.io/gorm"

	"github.com/chathuka55/coffee-me-pos/entity"
)

type TableRepository struct {
	DB *gorm.DB
}

func NewTableRepository(db *gorm.DB) *TableRepository {
	return &TableRepository{DB: db}
}

func (r *TableRepository) List() ([]entity.Table, error) {
	var tables []entity.Table
	err := r.DB.Order("number ASC").Find(&tables).Error
	return tables, err
}

func (r *TableRepository) FindByID(id uint) (*entity.Table, error) {
	var t entity.Table
	if err := r.DB.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TableRepository) FindByIDTx(tx *gorm.DB, id uint) (*entity.Table, error) {
	var t entity.Table
	if err := tx.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TableRepository) FindByNumber(number int) (*entity.Table, error) {
	var t entity.Table
	if err := r.DB.Where("number = ?", number).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TableRepository) Create(t *entity.Table) error {
	return r.DB.Create(t).Error
}

func (r *TableRepository) Save(t *entity.Table) error {
	return r.DB.Save(t).Error
}

func (r *TableRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Table{}, id).Error
}

func (r *TableRepository) CountPendingOrders(tableID uint) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Order{}).
		Where("table_id = ? AND status = ?", tableID, entity.OrderPending).
		Count(&cnt).Error
	return cnt, err
}

func (r *TableRepository) SetOccupied(tx *gorm.DB, tableID, orderID uint) error {
	return tx.Model(&entity.Table{}).
		Where("id = ?", tableID).
		Updates(map[string]any{
			"status":           entity.TableOccupied,
			"current_order_id": orderID,
		}).Error
}

func (r *TableRepository) Free(tx *gorm.DB, tableID uint) error {
	return tx.Model(&entity.Table{}).
		Where("id = ?", tableID).
		Updates(map[string]any{
			"status":           entity.TableAvailable,
			"current_order_id": nil,
		}).Error
}

func (r *TableRepository) UpdateStatus(id uint, status string) error {
	return r.DB.Model(&entity.Table{}).
		Where("id = ?", id).
		Update("status", status).Error
}
