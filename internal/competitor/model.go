package competitor

import "time"

// StatusActive is forced after a successful live scrape.
const StatusActive = "Active"

// Competitor is a tracked rival restaurant. FixtureFile points at a
// local HTML snapshot used by the reconciliation scrape path;
// WebsiteURL feeds the live probe.
type Competitor struct {
	ID            int        `json:"id"`
	TenantID      string     `json:"restaurant_id"`
	Name          string     `json:"restaurant_name"`
	Platform      string     `json:"platform"`
	WebsiteURL    string     `json:"website_url"`
	FixtureFile   *string    `json:"mock_file,omitempty"`
	DishesTracked int        `json:"dishes_tracked"`
	Status        string     `json:"status"`
	ScrapedTitle  *string    `json:"scraped_title"`
	LastUpdated   *time.Time `json:"last_updated"`
	CreatedAt     time.Time  `json:"created_at"`
}

// StatusBand aggregates competitors sharing a lowercase status label.
type StatusBand struct {
	CompetitorCount    int `json:"competitor_count"`
	DishesTrackedTotal int `json:"dishes_tracked_total"`
}

type Summary struct {
	TenantID         string                `json:"restaurant_id"`
	TotalCompetitors int                   `json:"total_competitors"`
	StatusBands      map[string]StatusBand `json:"status_bands"`
	Competitors      []*Competitor         `json:"competitors"`
}
