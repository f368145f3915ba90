package services

import (
	"time"

	"github.com/chathuka55/coffee-me-pos/repository"
)

type ReportService struct {
	Repo *repository.ReportRepository
}

func NewReportService(repo *repository.ReportRepository) *ReportService {
	return &ReportService{Repo: repo}
}

type SalesReport struct {
	TotalRevenue   float64                 `json:"totalRevenue"`
	TotalOrders    int64                   `json:"totalOrders"`
	TotalProfit    float64                 `json:"totalProfit"`
	AvgOrderValue  float64                 `json:"avgOrderValue"`
	ProfitMargin   float64                 `json:"profitMargin"`
	PaymentMethods map[string]int64        `json:"paymentMethods"`
	OrderTypes     map[string]int64        `json:"orderTypes"`
	TopItems       []repository.TopItemRow `json:"topItems"`
	DailySales     []repository.DailyRow   `json:"dailySales"`
}

func (s *ReportService) Sales(from, to *time.Time) (*SalesReport, error) {
	totals, err := s.Repo.Totals(from, to)
	if err != nil {
		return nil, err
	}
	profit, err := s.Repo.Profit(from, to)
	if err != nil {
		return nil, err
	}
	byPayment, err := s.Repo.CountByPaymentMethod(from, to)
	if err != nil {
		return nil, err
	}
	byType, err := s.Repo.CountByOrderType(from, to)
	if err != nil {
		return nil, err
	}
	top, err := s.Repo.TopItems(from, to, 5)
	if err != nil {
		return nil, err
	}
	daily, err := s.Repo.Daily(from, to)
	if err != nil {
		return nil, err
	}

	report := &SalesReport{
		TotalRevenue:   totals.Revenue,
		TotalOrders:    totals.Orders,
		TotalProfit:    profit,
		PaymentMethods: make(map[string]int64, len(byPayment)),
		OrderTypes:     make(map[string]int64, len(byType)),
		TopItems:       top,
		DailySales:     daily,
	}
	if totals.Orders > 0 {
		report.AvgOrderValue = totals.Revenue / float64(totals.Orders)
	}
	if totals.Revenue > 0 {
		report.ProfitMargin = profit / totals.Revenue * 100
	}
	for _, kc := range byPayment {
		report.PaymentMethods[kc.Key] = kc.Count
	}
	for _, kc := range byType {
		report.OrderTypes[kc.Key] = kc.Count
	}
	return report, nil
}
