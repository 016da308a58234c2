// AngelaMos | 2026
// entity.go

package cart

import (
	"time"
)

// Entry is a class a student has selected but not yet paid for.
type Entry struct {
	ID         string    `db:"id"`
	Email      string    `db:"email"`
	ClassID    string    `db:"class_id"`
	ClassName  string    `db:"class_name"`
	ImageURL   string    `db:"image_url"`
	PriceCents int64     `db:"price_cents"`
	CreatedAt  time.Time `db:"created_at"`
}
