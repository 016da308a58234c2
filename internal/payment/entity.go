// AngelaMos | 2026
// entity.go

package payment

import (
	"time"
)

// Payment is an append-only record of a completed enrollment payment.
type Payment struct {
	ID            string    `db:"id"`
	Email         string    `db:"email"`
	ClassID       string    `db:"class_id"`
	CartID        string    `db:"cart_id"`
	ClassName     string    `db:"class_name"`
	AmountCents   int64     `db:"amount_cents"`
	TransactionID string    `db:"transaction_id"`
	CreatedAt     time.Time `db:"created_at"`
}

type Stats struct {
	Count        int   `db:"count"`
	RevenueCents int64 `db:"revenue_cents"`
}
