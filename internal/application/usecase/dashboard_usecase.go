package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/phonefixpro/phonefix-api/internal/application/dto"
	"github.com/phonefixpro/phonefix-api/internal/domain/repository"
)

const dashboardRecentSales = 5 // filas del widget de ventas recientes

// DashboardUseCase genera el resumen de KPIs de la tienda.
//
// Fuente de datos: ReportRepository (consultas read-only); no participa en
// transacciones del ledger.
type DashboardUseCase struct {
	reportRepo repository.ReportRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(reportRepo repository.ReportRepository) *DashboardUseCase {
	return &DashboardUseCase{reportRepo: reportRepo}
}

// GetSummary construye el resumen del dashboard.
//
// Cuatro consultas en paralelo:
//  1. CountCustomers + CountItems
//  2. GetSalesStats          → TotalSales + TotalRevenue
//  3. GetInventorySummary    → LowStockItems (low + out)
//  4. ListRecentSales(5)     → RecentSales
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryResponse, error) {
	type countsResult struct {
		customers int
		items     int
		err       error
	}
	type salesResult struct {
		count   int
		revenue decimal.Decimal
		err     error
	}
	type invResult struct {
		summary *repository.InventorySummary
		err     error
	}
	type recentResult struct {
		rows []repository.RecentSaleRow
		err  error
	}

	countsCh := make(chan countsResult, 1)
	salesCh := make(chan salesResult, 1)
	invCh := make(chan invResult, 1)
	recentCh := make(chan recentResult, 1)

	go func() {
		customers, err := uc.reportRepo.CountCustomers(ctx)
		if err != nil {
			countsCh <- countsResult{err: err}
			return
		}
		items, err := uc.reportRepo.CountItems(ctx)
		countsCh <- countsResult{customers: customers, items: items, err: err}
	}()
	go func() {
		count, revenue, err := uc.reportRepo.GetSalesStats(ctx)
		salesCh <- salesResult{count, revenue, err}
	}()
	go func() {
		summary, err := uc.reportRepo.GetInventorySummary(ctx)
		invCh <- invResult{summary, err}
	}()
	go func() {
		rows, err := uc.reportRepo.ListRecentSales(ctx, dashboardRecentSales)
		recentCh <- recentResult{rows, err}
	}()

	counts := <-countsCh
	sales := <-salesCh
	inv := <-invCh
	recent := <-recentCh

	if counts.err != nil {
		return nil, fmt.Errorf("dashboard: conteos: %w", counts.err)
	}
	if sales.err != nil {
		return nil, fmt.Errorf("dashboard: ventas: %w", sales.err)
	}
	if inv.err != nil {
		return nil, fmt.Errorf("dashboard: inventario: %w", inv.err)
	}
	if recent.err != nil {
		return nil, fmt.Errorf("dashboard: ventas recientes: %w", recent.err)
	}

	recentDTOs := make([]dto.RecentSaleDTO, 0, len(recent.rows))
	for _, r := range recent.rows {
		recentDTOs = append(recentDTOs, dto.RecentSaleDTO{
			ID:           r.SaleID,
			ItemName:     r.ItemName,
			CustomerName: r.CustomerName,
			Quantity:     r.Quantity,
			TotalAmount:  r.TotalAmount,
			SaleDate:     r.SaleDate,
		})
	}

	return &dto.DashboardSummaryResponse{
		TotalCustomers: counts.customers,
		TotalItems:     counts.items,
		TotalSales:     sales.count,
		TotalRevenue:   sales.revenue.Round(2),
		LowStockItems:  inv.summary.LowStock + inv.summary.OutOfStock,
		RecentSales:    recentDTOs,
	}, nil
}
