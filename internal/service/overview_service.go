package service

import (
	"github.com/YuriiHoliuk/budget-sync-sub001/internal/domain"
	"github.com/YuriiHoliuk/budget-sync-sub001/internal/engine"
	"golang.org/x/sync/errgroup"
)

// OverviewService assembles monthly budget overviews from a consistent
// snapshot of budgets, allocations, transactions, and account balances
type OverviewService struct {
	snapshotRepo domain.SnapshotRepository
}

// NewOverviewService creates a new OverviewService
func NewOverviewService(snapshotRepo domain.SnapshotRepository) *OverviewService {
	return &OverviewService{snapshotRepo: snapshotRepo}
}

// GetMonthOverview computes the overview for a single month
func (s *OverviewService) GetMonthOverview(month domain.Month) (*domain.MonthlyOverview, error) {
	if !month.Valid() {
		return nil, domain.ErrInvalidMonth
	}

	snapshot, err := s.snapshotRepo.Load()
	if err != nil {
		return nil, err
	}

	return engine.Compute(month, snapshot.Budgets, snapshot.Allocations, snapshot.Transactions, snapshot.Accounts)
}

// GetYearOverview computes the overview for all twelve months of a year.
// The snapshot is loaded once so every month sees the same data.
func (s *OverviewService) GetYearOverview(year int) ([]*domain.MonthlyOverview, error) {
	if year < 2000 || year > 2100 {
		return nil, domain.ErrInvalidInput
	}

	snapshot, err := s.snapshotRepo.Load()
	if err != nil {
		return nil, err
	}

	months := domain.MonthsOfYear(year)
	overviews := make([]*domain.MonthlyOverview, len(months))

	var g errgroup.Group
	for i, month := range months {
		g.Go(func() error {
			overview, err := engine.Compute(month, snapshot.Budgets, snapshot.Allocations, snapshot.Transactions, snapshot.Accounts)
			if err != nil {
				return err
			}
			overviews[i] = overview
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return overviews, nil
}
