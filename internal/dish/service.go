package dish

import (
	"context"
	"errors"

	"github.com/navarojreddy48/PriceWatcher-AI/internal/history"

	"go.uber.org/zap"
)

// Recorder appends to the price audit trail. Logging is best effort:
// a failed history write never fails the dish mutation.
type Recorder interface {
	Record(ctx context.Context, point history.Point) error
}

type Service struct {
	repo     Repository
	recorder Recorder
	logger   *zap.Logger
}

func NewService(repo Repository, recorder Recorder, logger *zap.Logger) *Service {
	return &Service{repo: repo, recorder: recorder, logger: logger}
}

// --------------------------------------------------
// Create dish
// --------------------------------------------------
func (s *Service) Create(
	ctx context.Context,
	tenantID, dishName, category string,
	ourPrice float64,
	competitorAvg *float64,
) (*Dish, error) {

	if dishName == "" || category == "" {
		return nil, errors.New("missing required fields")
	}
	if ourPrice < 0 {
		return nil, errors.New("our_price must not be negative")
	}

	d := &Dish{
		TenantID:      tenantID,
		DishName:      dishName,
		Category:      category,
		OurPrice:      ourPrice,
		CompetitorAvg: competitorAvg,
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}

	s.logPrices(ctx, d)
	return d, nil
}

// --------------------------------------------------
// List tenant catalog
// --------------------------------------------------
func (s *Service) List(ctx context.Context, tenantID string) ([]*Dish, error) {
	return s.repo.ListByTenant(ctx, tenantID)
}

// --------------------------------------------------
// Update dish
// --------------------------------------------------
func (s *Service) Update(
	ctx context.Context,
	tenantID string,
	dishID int,
	dishName, category string,
	ourPrice float64,
	competitorAvg *float64,
) (*Dish, error) {

	if dishName == "" || category == "" {
		return nil, errors.New("missing required fields")
	}

	existing, err := s.repo.FindByID(ctx, dishID)
	if err != nil {
		return nil, err
	}
	if existing.TenantID != tenantID {
		return nil, ErrNotFound
	}

	d := &Dish{
		ID:            dishID,
		TenantID:      tenantID,
		DishName:      dishName,
		Category:      category,
		OurPrice:      ourPrice,
		CompetitorAvg: competitorAvg,
	}
	affected, err := s.repo.Update(ctx, d)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	s.logPrices(ctx, d)
	return d, nil
}

// --------------------------------------------------
// Delete dish
// --------------------------------------------------
func (s *Service) Delete(ctx context.Context, tenantID string, dishID int) error {
	existing, err := s.repo.FindByID(ctx, dishID)
	if err != nil {
		return err
	}
	if existing.TenantID != tenantID {
		return ErrNotFound
	}

	affected, err := s.repo.Delete(ctx, dishID, tenantID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// logPrices appends one history point per metric after a
// price-affecting mutation.
func (s *Service) logPrices(ctx context.Context, d *Dish) {
	dishID := d.ID

	if err := s.recorder.Record(ctx, history.Point{
		TenantID: d.TenantID,
		DishID:   &dishID,
		DishName: d.DishName,
		Metric:   history.MetricOurPrice,
		Value:    d.OurPrice,
	}); err != nil {
		s.logger.Warn("failed to log price history",
			zap.Int("dishID", dishID),
			zap.String("metric", history.MetricOurPrice),
			zap.Error(err),
		)
	}

	if d.CompetitorAvg == nil {
		return
	}
	if err := s.recorder.Record(ctx, history.Point{
		TenantID: d.TenantID,
		DishID:   &dishID,
		DishName: d.DishName,
		Metric:   history.MetricCompetitorAvg,
		Value:    *d.CompetitorAvg,
	}); err != nil {
		s.logger.Warn("failed to log price history",
			zap.Int("dishID", dishID),
			zap.String("metric", history.MetricCompetitorAvg),
			zap.Error(err),
		)
	}
}
