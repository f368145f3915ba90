package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/chathuka55/coffee-me-pos/entity"
	"github.com/chathuka55/coffee-me-pos/pkg/apperr"
	"github.com/chathuka55/coffee-me-pos/repository"
)

type ItemService struct {
	Repo *repository.ItemRepository
}

func NewItemService(repo *repository.ItemRepository) *ItemService {
	return &ItemService{Repo: repo}
}

type CreateItemReq struct {
	Name        string  `json:"name" binding:"required"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	CostPrice   float64 `json:"costPrice"`
	Stock       int     `json:"stock"`
	SKU         string  `json:"sku" binding:"required"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}

// UpdateItemReq carries pointers so absent fields keep their value.
type UpdateItemReq struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"`
	CostPrice   *float64 `json:"costPrice"`
	Stock       *int     `json:"stock"`
	SKU         *string  `json:"sku"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
}

func (s *ItemService) List() ([]entity.Item, error) {
	return s.Repo.List()
}

func (s *ItemService) Get(id uint) (*entity.Item, error) {
	item, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("item %d not found", id)
		}
		return nil, err
	}
	return item, nil
}

func (s *ItemService) Create(req *CreateItemReq) (*entity.Item, error) {
	sku := strings.TrimSpace(req.SKU)
	if sku == "" {
		return nil, apperr.Validation("sku is required")
	}
	if req.Price < 0 || req.CostPrice < 0 {
		return nil, apperr.Validation("price and cost price cannot be negative")
	}
	if req.Stock < 0 {
		return nil, apperr.Validation("stock cannot be negative")
	}

	if _, err := s.Repo.FindBySKU(sku); err == nil {
		return nil, apperr.Conflict("item with SKU %s already exists", sku)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	item := entity.Item{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		CostPrice:   req.CostPrice,
		Stock:       req.Stock,
		SKU:         sku,
		Description: req.Description,
		Image:       req.Image,
	}
	if err := s.Repo.Create(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *ItemService) Update(id uint, req *UpdateItemReq) (*entity.Item, error) {
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.SKU != nil && *req.SKU != item.SKU {
		sku := strings.TrimSpace(*req.SKU)
		if sku == "" {
			return nil, apperr.Validation("sku cannot be empty")
		}
		other, err := s.Repo.FindBySKU(sku)
		if err == nil && other.ID != id {
			return nil, apperr.Conflict("item with SKU %s already exists", sku)
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		item.SKU = sku
	}
	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, apperr.Validation("price cannot be negative")
		}
		item.Price = *req.Price
	}
	if req.CostPrice != nil {
		if *req.CostPrice < 0 {
			return nil, apperr.Validation("cost price cannot be negative")
		}
		item.CostPrice = *req.CostPrice
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			return nil, apperr.Validation("stock cannot be negative")
		}
		item.Stock = *req.Stock
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Image != nil {
		item.Image = *req.Image
	}

	if err := s.Repo.Save(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete refuses to remove an item that has ever appeared on an order, so
// order history keeps resolving.
func (s *ItemService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	cnt, err := s.Repo.CountOrderLines(id)
	if err != nil {
		return err
	}
	if cnt > 0 {
		return apperr.Conflict("cannot delete item that has been used in orders")
	}
	return s.Repo.Delete(id)
}

// UpdateStock sets an absolute stock count (manual correction path).
func (s *ItemService) UpdateStock(id uint, stock int) (*entity.Item, error) {
	if stock < 0 {
		return nil, apperr.Validation("stock cannot be negative")
	}
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	item.Stock = stock
	if err := s.Repo.Save(item); err != nil {
		return nil, err
	}
	return item, nil
}

// AdjustStock applies a signed delta with an in-statement guard against
// going negative.
func (s *ItemService) AdjustStock(id uint, delta int) (*entity.Item, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	affected, err := s.Repo.AdjustStockGuard(s.Repo.DB, id, delta)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, apperr.Validation("stock cannot be negative")
	}
	return s.Get(id)
}
