package dish

import "time"

// Dish belongs to exactly one tenant. Names are only meaningful within
// the owning catalog; lookups always pair (dish_name, tenant).
type Dish struct {
	ID            int       `json:"id"`
	TenantID      string    `json:"restaurant_id"`
	DishName      string    `json:"dish_name"`
	Category      string    `json:"category"`
	OurPrice      float64   `json:"our_price"`
	CompetitorAvg *float64  `json:"competitor_avg"`
	CreatedAt     time.Time `json:"created_at"`
}
