// AngelaMos | 2026
// types.go

package events

import (
	"time"
)

type EnrollmentCompleted struct {
	PaymentID      string    `json:"paymentId"`
	Email          string    `json:"email"`
	ClassID        string    `json:"classId"`
	CartID         string    `json:"cartId"`
	Amount         float64   `json:"amount"`
	TransactionID  string    `json:"transactionId,omitempty"`
	AvailableSeats int       `json:"availableSeats"`
	Enrolled       int       `json:"enrolled"`
	OccurredAt     time.Time `json:"occurredAt"`
}
