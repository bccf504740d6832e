package domain

import "time"

// Order is a user-owned atomic bundle of one or more tickets. Orders are
// immutable once created; deletion cascades to the tickets and frees
// their seats.
type Order struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	Tickets   []Ticket  `json:"tickets"`
}
