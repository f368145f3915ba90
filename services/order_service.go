package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/chathuka55/coffee-me-pos/entity"
	"github.com/chathuka55/coffee-me-pos/pkg/apperr"
	"github.com/chathuka55/coffee-me-pos/repository"
)

// OrderService orchestrates the order lifecycle. Every write that touches
// more than one entity (order rows, item stock, table occupancy) runs
// inside a single gorm transaction and commits or rolls back as a unit.
type OrderService struct {
	DB        *gorm.DB
	Repo      *repository.OrderRepository
	ItemRepo  *repository.ItemRepository
	TableRepo *repository.TableRepository
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	itemRepo *repository.ItemRepository,
	tableRepo *repository.TableRepository,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, ItemRepo: itemRepo, TableRepo: tableRepo}
}

// ----- DTOs from Controller -----

type CartLineIn struct {
	ItemID   uint `json:"id" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,min=1"`
}

type CreateOrderReq struct {
	Items         []CartLineIn `json:"items" binding:"required,min=1"`
	OrderType     string       `json:"orderType" binding:"required"`
	PaymentMethod string       `json:"paymentMethod" binding:"required"`
	Status        string       `json:"status"`
	ServiceCharge float64      `json:"serviceCharge"`
	Discount      float64      `json:"discount"`
	// Subtotal and Total are accepted for wire compatibility but the
	// server recomputes both from the price snapshots.
	Subtotal float64 `json:"subtotal"`
	Total    float64 `json:"total"`

	TableID       *uint  `json:"tableId"`
	StaffName     string `json:"staffName"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
}

// OrderLineView merges the referenced item with the line's quantity and
// price snapshot, matching the shape the POS front end consumes.
type OrderLineView struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	CostPrice   float64 `json:"costPrice"`
	Stock       int     `json:"stock"`
	SKU         string  `json:"sku"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Quantity    int     `json:"quantity"`
}

type OrderView struct {
	ID            uint            `json:"id"`
	Items         []OrderLineView `json:"items"`
	Subtotal      float64         `json:"subtotal"`
	ServiceCharge float64         `json:"serviceCharge"`
	Discount      float64         `json:"discount"`
	Total         float64         `json:"total"`
	OrderType     string          `json:"orderType"`
	PaymentMethod string          `json:"paymentMethod"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
	StaffName     string          `json:"staffName,omitempty"`
	CustomerName  string          `json:"customerName,omitempty"`
	CustomerPhone string          `json:"customerPhone,omitempty"`
	TableID       *uint           `json:"tableId,omitempty"`
	TableNumber   *int            `json:"tableNumber,omitempty"`
}

func orderView(o *entity.Order) *OrderView {
	lines := make([]OrderLineView, 0, len(o.Items))
	for _, l := range o.Items {
		lines = append(lines, OrderLineView{
			ID:          l.ItemID,
			Name:        l.Item.Name,
			Category:    l.Item.Category,
			Price:       l.Price,
			CostPrice:   l.Item.CostPrice,
			Stock:       l.Item.Stock,
			SKU:         l.Item.SKU,
			Description: l.Item.Description,
			Image:       l.Item.Image,
			Quantity:    l.Quantity,
		})
	}
	return &OrderView{
		ID:            o.ID,
		Items:         lines,
		Subtotal:      o.Subtotal,
		ServiceCharge: o.ServiceCharge,
		Discount:      o.Discount,
		Total:         o.Total,
		OrderType:     o.OrderType,
		PaymentMethod: o.PaymentMethod,
		Status:        o.Status,
		CreatedAt:     o.CreatedAt,
		StaffName:     o.StaffName,
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		TableID:       o.TableID,
		TableNumber:   o.TableNumber,
	}
}

// ----- Create -----

func (s *OrderService) Create(req *CreateOrderReq) (*OrderView, error) {
	if len(req.Items) == 0 {
		return nil, apperr.Validation("order must contain at least one item")
	}
	for _, l := range req.Items {
		if l.Quantity < 1 {
			return nil, apperr.Validation("quantity must be at least 1")
		}
	}
	if !entity.ValidOrderType(req.OrderType) {
		return nil, apperr.Validation("invalid order type: %s", req.OrderType)
	}
	if !entity.ValidPaymentMethod(req.PaymentMethod) {
		return nil, apperr.Validation("invalid payment method: %s", req.PaymentMethod)
	}
	status := req.Status
	if status == "" {
		status = entity.OrderPending
	}
	if status != entity.OrderPending && status != entity.OrderCompleted {
		return nil, apperr.Validation("order must be created as pending or completed")
	}
	if req.ServiceCharge < 0 || req.Discount < 0 {
		return nil, apperr.Validation("service charge and discount cannot be negative")
	}
	dineIn := req.OrderType == entity.OrderTypeDineIn
	if dineIn && req.TableID == nil {
		return nil, apperr.Validation("dine-in order requires a table")
	}
	if !dineIn && req.TableID != nil {
		return nil, apperr.Validation("table can only be set on a dine-in order")
	}

	var orderID uint
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		// Validate the cart and capture price snapshots inside the
		// transaction, so the stock re-check below sees the same state.
		subtotal := 0.0
		lines := make([]entity.OrderItem, 0, len(req.Items))
		for _, l := range req.Items {
			item, err := s.ItemRepo.FindByIDTx(tx, l.ItemID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperr.NotFound("item %d not found", l.ItemID)
				}
				return err
			}
			if item.Stock < l.Quantity {
				return apperr.Validation("insufficient stock for %s: available %d, requested %d",
					item.Name, item.Stock, l.Quantity)
			}
			subtotal += item.Price * float64(l.Quantity)
			lines = append(lines, entity.OrderItem{
				ItemID:   item.ID,
				Quantity: l.Quantity,
				Price:    item.Price,
			})
		}

		var table *entity.Table
		if dineIn {
			t, err := s.TableRepo.FindByIDTx(tx, *req.TableID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperr.NotFound("table %d not found", *req.TableID)
				}
				return err
			}
			if t.Status == entity.TableOccupied && t.CurrentOrderID != nil {
				return apperr.Conflict("table %d is already occupied", t.Number)
			}
			table = t
		}

		order := entity.Order{
			Subtotal:      subtotal,
			ServiceCharge: req.ServiceCharge,
			Discount:      req.Discount,
			Total:         subtotal + req.ServiceCharge - req.Discount,
			OrderType:     req.OrderType,
			PaymentMethod: req.PaymentMethod,
			Status:        status,
			StaffName:     req.StaffName,
			CustomerName:  req.CustomerName,
			CustomerPhone: req.CustomerPhone,
		}
		if table != nil {
			order.TableID = &table.ID
			num := table.Number
			order.TableNumber = &num
		}
		if err := s.Repo.Create(tx, &order); err != nil {
			return err
		}

		for i := range lines {
			lines[i].OrderID = order.ID
			if err := s.Repo.CreateLine(tx, &lines[i]); err != nil {
				return err
			}
			// Guarded decrement: a concurrent order that took the stock
			// first makes this miss, and the whole transaction rolls back.
			affected, err := s.ItemRepo.DecrementStockGuard(tx, lines[i].ItemID, lines[i].Quantity)
			if err != nil {
				return err
			}
			if affected == 0 {
				return apperr.Validation("insufficient stock for item %d", lines[i].ItemID)
			}
		}

		// A directly-completed walk-in sale never holds the table.
		if table != nil && status == entity.OrderPending {
			if err := s.TableRepo.SetOccupied(tx, table.ID, order.ID); err != nil {
				return err
			}
		}

		orderID = order.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(orderID)
}

// ----- Checkout -----

// Checkout marks the order completed and frees its table. Stock was
// committed at creation and stays untouched.
func (s *OrderService) Checkout(id uint) (*OrderView, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.FindByIDTx(tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("order %d not found", id)
			}
			return err
		}
		if o.Status == entity.OrderCompleted {
			return apperr.Conflict("order %d is already completed", id)
		}
		affected, err := s.Repo.UpdateStatus(tx, id, entity.OrderCompleted)
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperr.NotFound("order %d not found", id)
		}
		if o.TableID != nil {
			return s.TableRepo.Free(tx, *o.TableID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(id)
}

// ----- Status -----

// UpdateStatus overwrites the status directly. Unlike Checkout it never
// releases the table; the two operations stay distinct on purpose.
func (s *OrderService) UpdateStatus(id uint, status string) (*OrderView, error) {
	if !entity.ValidOrderStatus(status) {
		return nil, apperr.Validation("invalid status: %s", status)
	}
	affected, err := s.Repo.UpdateStatus(s.DB, id, status)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, apperr.NotFound("order %d not found", id)
	}
	return s.Get(id)
}

// ----- Delete -----

// Delete is the compensating transaction for Create: restores every line's
// quantity to item stock, frees the held table, removes order and lines.
func (s *OrderService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.FindByIDTx(tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("order %d not found", id)
			}
			return err
		}
		lines, err := s.Repo.LinesByOrderTx(tx, id)
		if err != nil {
			return err
		}
		for _, l := range lines {
			if err := s.ItemRepo.IncrementStock(tx, l.ItemID, l.Quantity); err != nil {
				return err
			}
		}
		if o.TableID != nil {
			if err := s.TableRepo.Free(tx, *o.TableID); err != nil {
				return err
			}
		}
		if err := s.Repo.DeleteLines(tx, id); err != nil {
			return err
		}
		return s.Repo.Delete(tx, id)
	})
}

// ----- Reads -----

func (s *OrderService) List(f repository.OrderFilters) ([]*OrderView, error) {
	orders, err := s.Repo.List(f)
	if err != nil {
		return nil, err
	}
	out := make([]*OrderView, 0, len(orders))
	for i := range orders {
		out = append(out, orderView(&orders[i]))
	}
	return out, nil
}

func (s *OrderService) ListPending() ([]*OrderView, error) {
	return s.List(repository.OrderFilters{Status: entity.OrderPending})
}

func (s *OrderService) Get(id uint) (*OrderView, error) {
	o, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order %d not found", id)
		}
		return nil, err
	}
	return orderView(o), nil
}
