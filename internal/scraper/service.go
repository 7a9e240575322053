package scraper

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/navarojreddy48/PriceWatcher-AI/internal/competitor"
)

// ErrScrapeFailed marks a live probe that could not reach or read the
// competitor website.
var ErrScrapeFailed = errors.New("scrape failed")

// TxStarter is satisfied by *pgxpool.Pool.
type TxStarter interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type Service struct {
	db          TxStarter
	competitors competitor.Repository
	fixtures    FixtureStore
	client      *http.Client
	log         *zap.Logger
}

func NewService(
	db TxStarter,
	competitors competitor.Repository,
	fixtures FixtureStore,
	client *http.Client,
	log *zap.Logger,
) *Service {
	if client == nil {
		client = NewProbeClient()
	}
	return &Service{
		db:          db,
		competitors: competitors,
		fixtures:    fixtures,
		client:      client,
		log:         log,
	}
}

// ScrapeLive probes a competitor's website and stores the page title
// plus the count of price tokens found.
func (s *Service) ScrapeLive(ctx context.Context, tenantID string, competitorID int) (*ProbeResult, error) {
	comp, err := s.competitors.FindByID(ctx, competitorID, tenantID)
	if err != nil {
		return nil, err
	}

	probe, err := ProbeWebsite(ctx, s.client, comp.WebsiteURL)
	if err != nil {
		s.log.Warn("live scrape failed",
			zap.Int("competitor_id", competitorID),
			zap.String("url", comp.WebsiteURL),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrScrapeFailed, err)
	}

	if err := s.competitors.UpdateScrapeResult(ctx, competitorID, tenantID, probe.PricesFound, probe.Title); err != nil {
		return nil, err
	}
	return probe, nil
}

// ReconcileCompetitor loads a competitor's saved page snapshot,
// extracts dish prices and applies them to the owning tenant's
// catalog in one transaction. A missing snapshot reconciles zero
// dishes rather than failing.
func (s *Service) ReconcileCompetitor(ctx context.Context, comp *competitor.Competitor) (int, error) {
	if comp.FixtureFile == nil || *comp.FixtureFile == "" {
		return 0, nil
	}

	html, err := s.fixtures.Load(ctx, *comp.FixtureFile)
	if err != nil {
		if errors.Is(err, ErrFixtureMissing) {
			s.log.Warn("snapshot missing",
				zap.Int("competitor_id", comp.ID),
				zap.String("fixture", *comp.FixtureFile))
			return 0, nil
		}
		return 0, err
	}

	result := Extract(comp.Name, html)

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	updated, err := Reconcile(ctx, newTxRepo(tx), comp.TenantID, result.Items)
	if err != nil {
		return 0, err
	}

	// Touch the row's timestamp only. dishes_tracked belongs to the
	// live probe; the sweep must not clobber it.
	if _, err := tx.Exec(ctx, `
		UPDATE competitors SET last_updated = NOW()
		WHERE id = $1 AND tenant_id = $2
	`, comp.ID, comp.TenantID); err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return updated, nil
}

// ReconcileByID runs the snapshot reconcile for one competitor on
// demand, scoped to the calling tenant.
func (s *Service) ReconcileByID(ctx context.Context, tenantID string, competitorID int) (int, error) {
	comp, err := s.competitors.FindByID(ctx, competitorID, tenantID)
	if err != nil {
		return 0, err
	}
	return s.ReconcileCompetitor(ctx, comp)
}

// ReconcileAll sweeps every competitor that has a snapshot on file.
// One competitor's failure does not stop the sweep.
func (s *Service) ReconcileAll(ctx context.Context) (int, error) {
	competitors, err := s.competitors.ListWithFixtures(ctx)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, comp := range competitors {
		updated, err := s.ReconcileCompetitor(ctx, comp)
		if err != nil {
			s.log.Error("reconcile failed",
				zap.Int("competitor_id", comp.ID),
				zap.String("competitor", comp.Name),
				zap.Error(err))
			continue
		}
		total += updated
	}

	s.log.Info("scrape sweep finished",
		zap.Int("competitors", len(competitors)),
		zap.Int("dishes_updated", total))
	return total, nil
}
