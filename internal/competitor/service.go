package competitor

import (
	"context"
	"errors"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(
	ctx context.Context,
	tenantID, name, platform, websiteURL, fixtureFile, status string,
) (*Competitor, error) {

	if name == "" || platform == "" || websiteURL == "" {
		return nil, errors.New("missing required fields")
	}
	if status == "" {
		status = StatusActive
	}

	comp := &Competitor{
		TenantID:   tenantID,
		Name:       name,
		Platform:   platform,
		WebsiteURL: websiteURL,
		Status:     status,
	}
	if fixture := strings.TrimSpace(fixtureFile); fixture != "" {
		comp.FixtureFile = &fixture
	}

	if err := s.repo.Create(ctx, comp); err != nil {
		return nil, err
	}
	return comp, nil
}

func (s *Service) List(ctx context.Context, tenantID string) ([]*Competitor, error) {
	return s.repo.ListByTenant(ctx, tenantID)
}

func (s *Service) UpdateStatus(ctx context.Context, tenantID string, competitorID int, status string) error {
	if status == "" {
		return errors.New("status is required")
	}

	affected, err := s.repo.UpdateStatus(ctx, competitorID, tenantID, status)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, tenantID string, competitorID int) error {
	affected, err := s.repo.Delete(ctx, competitorID, tenantID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// summaryBands are always present in the response, zeroed when empty.
var summaryBands = []string{"low", "medium", "premium"}

func (s *Service) Summary(ctx context.Context, tenantID string) (*Summary, error) {
	competitors, err := s.repo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	rawBands, err := s.repo.StatusBands(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	bands := make(map[string]StatusBand, len(summaryBands))
	for _, name := range summaryBands {
		bands[name] = rawBands[name]
	}

	if competitors == nil {
		competitors = []*Competitor{}
	}
	return &Summary{
		TenantID:         tenantID,
		TotalCompetitors: len(competitors),
		StatusBands:      bands,
		Competitors:      competitors,
	}, nil
}
