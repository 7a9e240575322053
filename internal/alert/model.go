package alert

import "time"

// Alert records a detected competitor price drop for a tracked dish.
type Alert struct {
	ID        int       `json:"id"`
	TenantID  string    `json:"restaurant_id"`
	DishName  string    `json:"dish_name"`
	OldPrice  float64   `json:"old_price"`
	NewPrice  float64   `json:"new_price"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
