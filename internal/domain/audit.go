package domain

import "time"

// Audit holds the bookkeeping columns stamped by the persistence layer.
// CreatedBy/CreatedAt are set once on insert. UpdatedBy/UpdatedAt stay
// empty until the first update.
type Audit struct {
	CreatedAt time.Time  `json:"createdAt"`
	CreatedBy string     `json:"createdBy"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
	UpdatedBy string     `json:"updatedBy,omitempty"`
}
