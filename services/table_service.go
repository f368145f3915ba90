package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/chathuka55/coffee-me-pos/entity"
	"github.com/chathuka55/coffee-me-pos/pkg/apperr"
	"github.com/chathuka55/coffee-me-pos/repository"
)

type TableService struct {
	Repo *repository.TableRepository
}

func NewTableService(repo *repository.TableRepository) *TableService {
	return &TableService{Repo: repo}
}

type CreateTableReq struct {
	Number int    `json:"number" binding:"required"`
	Seats  int    `json:"seats" binding:"required"`
	Status string `json:"status"`
}

type UpdateTableReq struct {
	Number *int    `json:"number"`
	Seats  *int    `json:"seats"`
	Status *string `json:"status"`
}

func (s *TableService) List() ([]entity.Table, error) {
	return s.Repo.List()
}

func (s *TableService) Get(id uint) (*entity.Table, error) {
	t, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("table %d not found", id)
		}
		return nil, err
	}
	return t, nil
}

func (s *TableService) Create(req *CreateTableReq) (*entity.Table, error) {
	if req.Number <= 0 {
		return nil, apperr.Validation("table number must be positive")
	}
	if req.Seats <= 0 {
		return nil, apperr.Validation("seats must be positive")
	}
	status := req.Status
	if status == "" {
		status = entity.TableAvailable
	}
	if !entity.ValidTableStatus(status) {
		return nil, apperr.Validation("invalid table status: %s", status)
	}

	if _, err := s.Repo.FindByNumber(req.Number); err == nil {
		return nil, apperr.Conflict("table with number %d already exists", req.Number)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	t := entity.Table{Number: req.Number, Seats: req.Seats, Status: status}
	if err := s.Repo.Create(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *TableService) Update(id uint, req *UpdateTableReq) (*entity.Table, error) {
	t, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Number != nil && *req.Number != t.Number {
		if *req.Number <= 0 {
			return nil, apperr.Validation("table number must be positive")
		}
		other, err := s.Repo.FindByNumber(*req.Number)
		if err == nil && other.ID != id {
			return nil, apperr.Conflict("table with number %d already exists", *req.Number)
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		t.Number = *req.Number
	}
	if req.Seats != nil {
		if *req.Seats <= 0 {
			return nil, apperr.Validation("seats must be positive")
		}
		t.Seats = *req.Seats
	}
	if req.Status != nil {
		if !entity.ValidTableStatus(*req.Status) {
			return nil, apperr.Validation("invalid table status: %s", *req.Status)
		}
		t.Status = *req.Status
	}

	if err := s.Repo.Save(t); err != nil {
		return nil, err
	}
	return t, nil
}

// Delete is refused while the table is occupied or any pending order still
// references it, even if the status was left inconsistently non-occupied.
func (s *TableService) Delete(id uint) error {
	t, err := s.Get(id)
	if err != nil {
		return err
	}
	if t.Status == entity.TableOccupied {
		return apperr.Conflict("cannot delete occupied table, complete or cancel the order first")
	}
	cnt, err := s.Repo.CountPendingOrders(id)
	if err != nil {
		return err
	}
	if cnt > 0 {
		return apperr.Conflict("cannot delete table with pending orders")
	}
	return s.Repo.Delete(id)
}

// SetStatus is the manual correction path; it overwrites the status without
// touching currentOrderId.
func (s *TableService) SetStatus(id uint, status string) (*entity.Table, error) {
	if !entity.ValidTableStatus(status) {
		return nil, apperr.Validation("invalid table status: %s", status)
	}
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	if err := s.Repo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	return s.Get(id)
}
