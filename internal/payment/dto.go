// AngelaMos | 2026
// dto.go

package payment

import (
	"time"

	"github.com/carterperez-dev/sports-academy/internal/class"
	"github.com/carterperez-dev/sports-academy/internal/core"
)

type CreateIntentRequest struct {
	Price float64 `json:"price" validate:"gt=0"`
}

type CreateIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type CreatePaymentRequest struct {
	Email         string  `json:"email"         validate:"required,email,max=255"`
	ClassID       string  `json:"classId"       validate:"required"`
	CartID        string  `json:"cartId"        validate:"required"`
	ClassName     string  `json:"className"     validate:"max=200"`
	Amount        float64 `json:"amount"        validate:"gte=0"`
	Price         float64 `json:"price"         validate:"gte=0"`
	TransactionID string  `json:"transactionId" validate:"max=255"`
}

// Charged is the paid amount in decimal units. amount wins over the older
// price field when both are sent.
func (r CreatePaymentRequest) Charged() float64 {
	if r.Amount > 0 {
		return r.Amount
	}
	return r.Price
}

type PaymentResponse struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	ClassID       string    `json:"classId"`
	CartID        string    `json:"cartId"`
	ClassName     string    `json:"className"`
	Price         float64   `json:"price"`
	TransactionID string    `json:"transactionId"`
	CreatedAt     time.Time `json:"createdAt"`
}

type EnrollmentResponse struct {
	Payment     PaymentResponse         `json:"payment"`
	Class       class.SeatCountResponse `json:"class"`
	CartDeleted bool                    `json:"cartDeleted"`
}

func ToPaymentResponse(p *Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		Email:         p.Email,
		ClassID:       p.ClassID,
		CartID:        p.CartID,
		ClassName:     p.ClassName,
		Price:         core.FromMinorUnits(p.AmountCents),
		TransactionID: p.TransactionID,
		CreatedAt:     p.CreatedAt,
	}
}

func ToPaymentResponseList(payments []Payment) []PaymentResponse {
	responses := make([]PaymentResponse, 0, len(payments))
	for i := range payments {
		responses = append(responses, ToPaymentResponse(&payments[i]))
	}
	return responses
}

func ToEnrollmentResponse(e *Enrollment) EnrollmentResponse {
	return EnrollmentResponse{
		Payment:     ToPaymentResponse(e.Payment),
		Class:       class.ToSeatCountResponse(e.Seats),
		CartDeleted: e.CartDeleted,
	}
}
