package services

import (
	"testing"

	"github.com/chathuka55/coffee-me-pos/entity"
	"github.com/chathuka55/coffee-me-pos/pkg/apperr"
	"github.com/chathuka55/coffee-me-pos/repository"
)

func dineInReq(itemID uint, qty int, tableID uint) *CreateOrderReq {
	return &CreateOrderReq{
		Items:         []CartLineIn{{ItemID: itemID, Quantity: qty}},
		OrderType:     entity.OrderTypeDineIn,
		PaymentMethod: entity.PaymentCash,
		TableID:       &tableID,
	}
}

func TestCreateOrder_DineIn(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	item := seedItem(t, db, "CAP-001", 4.5, 30)
	tbl := seedTable(t, db, 1, 4)

	order, err := svc.Create(dineInReq(item.ID, 5, tbl.ID))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if order.Status != entity.OrderPending {
		t.Errorf("status = %q, want pending", order.Status)
	}
	if got := itemStock(t, db, item.ID); got != 25 {
		t.Errorf("stock = %d, want 25", got)
	}
	after := reloadTable(t, db, tbl.ID)
	if after.Status != entity.TableOccupied {
		t.Errorf("table status = %q, want occupied", after.Status)
	}
	if after.CurrentOrderID == nil || *after.CurrentOrderID != order.ID {
		t.Errorf("table currentOrderId = %v, want %d", after.CurrentOrderID, order.ID)
	}
	if order.TableNumber == nil || *order.TableNumber != 1 {
		t.Errorf("order tableNumber = %v, want 1", order.TableNumber)
	}
	if len(order.Items) != 1 || order.Items[0].Quantity != 5 {
		t.Fatalf("order lines = %+v, want one line with quantity 5", order.Items)
	}
	if order.Items[0].Price != 4.5 {
		t.Errorf("line price = %v, want snapshot 4.5", order.Items[0].Price)
	}
}

func TestCreateOrder_TotalsAreServerAuthoritative(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	item := seedItem(t, db, "LAT-001", 5, 10)

	order, err := svc.Create(&CreateOrderReq{
		Items:         []CartLineIn{{ItemID: item.ID, Quantity: 2}},
		OrderType:     entity.OrderTypeTakeaway,
		PaymentMethod: entity.PaymentCard,
		ServiceCharge: 1,
		Discount:      0.5,
		Subtotal:      999, // client lies, server recomputes
		Total:         999,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if order.Subtotal != 10 {
		t.Errorf("subtotal = %v, want 10", order.Subtotal)
	}
	if order.Total != 10.5 {
		t.Errorf("total = %v, want 10.5", order.Total)
	}
}

func TestCreateOrder_InsufficientStock(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	item := seedItem(t, db, "CAP-002", 4.5, 3)

	_, err := svc.Create(&CreateOrderReq{
		Items:         []CartLineIn{{ItemID: item.ID, Quantity: 5}},
		OrderType:     entity.OrderTypeTakeaway,
		PaymentMethod: entity.PaymentCash,
	})
	if !apperr.IsValidation(err) {
		t.Fatalf("err = %v, want validation error", err)
	}
	if got := itemStock(t, db, item.ID); got != 3 {
		t.Errorf("stock = %d, want unchanged 3", got)
	}
}

// A failure on any cart line must leave no order rows and no stock change
// from the lines validated before it.
func TestCreateOrder_Atomicity(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	good := seedItem(t, db, "CAP-003", 4.5, 30)
	short := seedItem(t, db, "CAP-004", 4.5, 1)

	_, err := svc.Create(&CreateOrderReq{
		Items: []CartLineIn{
			{ItemID: good.ID, Quantity: 5},
			{ItemID: short.ID, Quantity: 2},
		},
		OrderType:     entity.OrderTypeTakeaway,
		PaymentMethod: entity.PaymentCash,
	})
	if !apperr.IsValidation(err) {
		t.Fatalf("err = %v, want validation error", err)
	}

	if got := itemStock(t, db, good.ID); got != 30 {
		t.Errorf("good item stock = %d, want untouched 30", got)
	}
	var orders, lines int64
	db.Model(&entity.Order{}).Count(&orders)
	db.Model(&entity.OrderItem{}).Count(&lines)
	if orders != 0 || lines != 0 {
		t.Errorf("orders=%d lines=%d after rollback, want 0/0", orders, lines)
	}
}

func TestCreateOrder_MissingItem(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)

	_, err := svc.Create(&CreateOrderReq{
		Items:         []CartLineIn{{ItemID: 99, Quantity: 1}},
		OrderType:     entity.OrderTypeTakeaway,
		PaymentMethod: entity.PaymentCash,
	})
	if !apperr.IsNotFound(err) {
		t.Fatalf("err = %v, want not-found error", err)
	}
}

func TestCreateOrder_OccupiedTableConflict(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	item := seedItem(t, db, "CAP-005", 4.5, 30)
	tbl := seedTable(t, db, 2, 2)

	if _, err := svc.Create(dineInReq(item.ID, 1, tbl.ID)); err != nil {
		t.Fatalf("first order: %v", err)
	}
	_, err := svc.Create(dineInReq(item.ID, 1, tbl.ID))
	if !apperr.IsConflict(err) {
		t.Fatalf("err = %v, want conflict error", err)
	}
	if got := itemStock(t, db, item.ID); got != 29 {
		t.Errorf("stock = %d, want 29 (only the first order committed)", got)
	}
}

func TestCreateOrder_TableRules(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	item := seedItem(t, db, "CAP-006", 4.5, 30)
	tbl := seedTable(t, db, 3, 4)

	tests := []struct {
		name    string
		req     *CreateOrderReq
		wantErr func(error) bool
	}{
		{
			name: "dine-in without table",
			req: &CreateOrderReq{
				Items:         []CartLineIn{{ItemID: item.ID, Quantity: 1}},
				OrderType:     entity.OrderTypeDineIn,
				PaymentMethod: entity.PaymentCash,
			},
			wantErr: apperr.IsValidation,
		},
		{
			name: "takeaway with table",
			req: &CreateOrderReq{
				Items:         []CartLineIn{{ItemID: item.ID, Quantity: 1}},
				OrderType:     entity.OrderTypeTakeaway,
				PaymentMethod: entity.PaymentCash,
				TableID:       &tbl.ID,
			},
			wantErr: apperr.IsValidation,
		},
		{
			name:    "missing table",
			req:     dineInReq(item.ID, 1, 99),
			wantErr: apperr.IsNotFound,
		},
		{
			name: "bad order type",
			req: &CreateOrderReq{
				Items:         []CartLineIn{{ItemID: item.ID, Quantity: 1}},
				OrderType:     "drive-through",
				PaymentMethod: entity.PaymentCash,
			},
			wantErr: apperr.IsValidation,
		},
		{
			name: "bad payment method",
			req: &CreateOrderReq{
				Items:         []CartLineIn{{ItemID: item.ID, Quantity: 1}},
				OrderType:     entity.OrderTypeTakeaway,
				PaymentMethod: "barter",
			},
			wantErr: apperr.IsValidation,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(tt.req)
			if err == nil || !tt.wantErr(err) {
				t.Errorf("err = %v, wrong kind", err)
			}
		})
	}
}

// A walk-in sale created directly as completed commits stock but never
// holds the table.
func TestCreateOrder_DirectCompleted(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	item := seedItem(t, db, "CAP-007", 4.5, 10)
	tbl := seedTable(t, db, 4, 2)

	req := dineInReq(item.ID, 2, tbl.ID)
	req.Status = entity.OrderCompleted
	order, err := svc.Create(req)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if order.Status != entity.OrderCompleted {
		t.Errorf("status = %q, want completed", order.Status)
	}
	if got := itemStock(t, db, item.ID); got != 8 {
		t.Errorf("stock = %d, want 8", got)
	}
	after := reloadTable(t, db, tbl.ID)
	if after.Status != entity.TableAvailable {
		t.Errorf("table status = %q, want still available", after.Status)
	}
}

func TestCheckoutOrder(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	item := seedItem(t, db, "CAP-008", 4.5, 30)
	tbl := seedTable(t, db, 5, 4)

	order, err := svc.Create(dineInReq(item.ID, 5, tbl.ID))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	done, err := svc.Checkout(order.ID)
	if err != nil {
		t.Fatalf("Checkout returned error: %v", err)
	}
	if done.Status != entity.OrderCompleted {
		t.Errorf("status = %q, want completed", done.Status)
	}
	after := reloadTable(t, db, tbl.ID)
	if after.Status != entity.TableAvailable || after.CurrentOrderID != nil {
		t.Errorf("table = %q/%v, want available with nil currentOrderId", after.Status, after.CurrentOrderID)
	}
	// checkout never touches stock
	if got := itemStock(t, db, item.ID); got != 25 {
		t.Errorf("stock = %d, want 25", got)
	}

	// second checkout conflicts
	if _, err := svc.Checkout(order.ID); !apperr.IsConflict(err) {
		t.Errorf("second checkout err = %v, want conflict", err)
	}
	if _, err := svc.Checkout(999); !apperr.IsNotFound(err) {
		t.Errorf("checkout missing err = %v, want not-found", err)
	}
}

// UpdateStatus is a direct overwrite; unlike Checkout it must not free the
// table.
func TestUpdateOrderStatus_KeepsTable(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	item := seedItem(t, db, "CAP-009", 4.5, 30)
	tbl := seedTable(t, db, 6, 4)

	order, err := svc.Create(dineInReq(item.ID, 1, tbl.ID))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	updated, err := svc.UpdateStatus(order.ID, entity.OrderCompleted)
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if updated.Status != entity.OrderCompleted {
		t.Errorf("status = %q, want completed", updated.Status)
	}
	after := reloadTable(t, db, tbl.ID)
	if after.Status != entity.TableOccupied {
		t.Errorf("table status = %q, want still occupied", after.Status)
	}

	if _, err := svc.UpdateStatus(order.ID, "finished"); !apperr.IsValidation(err) {
		t.Errorf("bad enum err = %v, want validation", err)
	}
	if _, err := svc.UpdateStatus(999, entity.OrderCancelled); !apperr.IsNotFound(err) {
		t.Errorf("missing order err = %v, want not-found", err)
	}
}

// A status write against an order deleted under us must surface as
// not-found, never as a silent no-op.
func TestUpdateOrderStatus_DeletedOrder(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	item := seedItem(t, db, "CAP-010", 4.5, 30)

	order, err := svc.Create(&CreateOrderReq{
		Items:         []CartLineIn{{ItemID: item.ID, Quantity: 1}},
		OrderType:     entity.OrderTypeTakeaway,
		PaymentMethod: entity.PaymentCash,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if err := svc.Delete(order.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	if _, err := svc.UpdateStatus(order.ID, entity.OrderCompleted); !apperr.IsNotFound(err) {
		t.Errorf("deleted order err = %v, want not-found", err)
	}
	if _, err := svc.Checkout(order.ID); !apperr.IsNotFound(err) {
		t.Errorf("deleted order checkout err = %v, want not-found", err)
	}
}

// Delete is the compensating transaction: stock restored exactly, table
// freed, order and lines gone.
func TestDeleteOrder_Conservation(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	item := seedItem(t, db, "CAP-010", 4.5, 30)
	tbl := seedTable(t, db, 7, 4)

	order, err := svc.Create(dineInReq(item.ID, 5, tbl.ID))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if got := itemStock(t, db, item.ID); got != 25 {
		t.Fatalf("stock after create = %d, want 25", got)
	}

	if err := svc.Delete(order.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if got := itemStock(t, db, item.ID); got != 30 {
		t.Errorf("stock = %d, want restored 30", got)
	}
	after := reloadTable(t, db, tbl.ID)
	if after.Status != entity.TableAvailable || after.CurrentOrderID != nil {
		t.Errorf("table = %q/%v, want available/nil", after.Status, after.CurrentOrderID)
	}
	if _, err := svc.Get(order.ID); !apperr.IsNotFound(err) {
		t.Errorf("Get deleted order err = %v, want not-found", err)
	}
	var lines int64
	db.Model(&entity.OrderItem{}).Count(&lines)
	if lines != 0 {
		t.Errorf("order lines = %d, want 0", lines)
	}

	if err := svc.Delete(999); !apperr.IsNotFound(err) {
		t.Errorf("delete missing err = %v, want not-found", err)
	}
}

// Later price edits must not rewrite the snapshot on existing orders.
func TestOrderLinePriceSnapshot(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	item := seedItem(t, db, "CAP-011", 4.0, 10)

	order, err := svc.Create(&CreateOrderReq{
		Items:         []CartLineIn{{ItemID: item.ID, Quantity: 1}},
		OrderType:     entity.OrderTypeTakeaway,
		PaymentMethod: entity.PaymentCash,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := db.Model(&entity.Item{}).Where("id = ?", item.ID).Update("price", 9.0).Error; err != nil {
		t.Fatalf("update price: %v", err)
	}
	got, err := svc.Get(order.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.Items[0].Price != 4.0 {
		t.Errorf("line price = %v, want snapshot 4.0", got.Items[0].Price)
	}
	if got.Subtotal != 4.0 {
		t.Errorf("subtotal = %v, want 4.0", got.Subtotal)
	}
}

func TestListOrders_Filters(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	item := seedItem(t, db, "CAP-012", 4.5, 100)

	mk := func(orderType string, status string) *OrderView {
		req := &CreateOrderReq{
			Items:         []CartLineIn{{ItemID: item.ID, Quantity: 1}},
			OrderType:     orderType,
			PaymentMethod: entity.PaymentCash,
			Status:        status,
		}
		o, err := svc.Create(req)
		if err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
		return o
	}
	mk(entity.OrderTypeTakeaway, entity.OrderPending)
	mk(entity.OrderTypeTakeaway, entity.OrderCompleted)
	mk(entity.OrderTypeDelivery, entity.OrderPending)

	all, err := svc.List(repository.OrderFilters{})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len(all) = %d, want 3", len(all))
	}

	pending, err := svc.ListPending()
	if err != nil {
		t.Fatalf("ListPending returned error: %v", err)
	}
	if len(pending) != 2 {
		t.Errorf("len(pending) = %d, want 2", len(pending))
	}

	delivery, err := svc.List(repository.OrderFilters{OrderType: entity.OrderTypeDelivery})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(delivery) != 1 {
		t.Errorf("len(delivery) = %d, want 1", len(delivery))
	}
}
