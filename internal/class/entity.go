// AngelaMos | 2026
// entity.go

package class

import (
	"time"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusDenied   Status = "denied"
)

func ParseStatus(s string) Status {
	switch Status(s) {
	case StatusApproved:
		return StatusApproved
	case StatusDenied:
		return StatusDenied
	default:
		return StatusPending
	}
}

type Class struct {
	ID             string    `db:"id"`
	Name           string    `db:"name"`
	ImageURL       string    `db:"image_url"`
	InstructorName string    `db:"instructor_name"`
	Email          string    `db:"email"`
	PriceCents     int64     `db:"price_cents"`
	AvailableSeats int       `db:"available_seats"`
	Enrolled       int       `db:"enrolled"`
	Status         Status    `db:"status"`
	Feedback       *string   `db:"feedback"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// SeatCount is the seat state of a class after an enrollment.
type SeatCount struct {
	ID             string `db:"id"`
	AvailableSeats int    `db:"available_seats"`
	Enrolled       int    `db:"enrolled"`
}
