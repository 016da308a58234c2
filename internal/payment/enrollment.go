// AngelaMos | 2026
// enrollment.go

package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel/attribute"

	"github.com/carterperez-dev/sports-academy/internal/cart"
	"github.com/carterperez-dev/sports-academy/internal/class"
	"github.com/carterperez-dev/sports-academy/internal/core"
	"github.com/carterperez-dev/sports-academy/internal/events"
)

type Enrollment struct {
	Payment     *Payment
	Seats       *class.SeatCount
	CartDeleted bool
}

// EnrollmentService records a payment, takes the seat and clears the cart
// entry as one transaction.
type EnrollmentService struct {
	db        *sqlx.DB
	publisher events.Publisher
	logger    *slog.Logger
}

func NewEnrollmentService(
	db *sqlx.DB,
	publisher events.Publisher,
	logger *slog.Logger,
) *EnrollmentService {
	if publisher == nil {
		publisher = events.Nop{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &EnrollmentService{db: db, publisher: publisher, logger: logger}
}

// Complete runs the enrollment for callerEmail. Either all three writes
// commit or none do. The payment email must match the caller.
func (s *EnrollmentService) Complete(
	ctx context.Context,
	callerEmail string,
	req CreatePaymentRequest,
) (*Enrollment, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || email != strings.ToLower(strings.TrimSpace(callerEmail)) {
		return nil, core.ForbiddenError("")
	}

	amount := core.ToMinorUnits(req.Charged())
	if amount <= 0 {
		return nil, core.ValidationError("amount: gt=0")
	}

	if !core.IsValidID(req.ClassID) {
		return nil, core.NotFoundError("class")
	}
	if !core.IsValidID(req.CartID) {
		return nil, core.NotFoundError("cart entry")
	}

	ctx, span := core.StartSpan(ctx, "enrollment.complete",
		attribute.String("enrollment.class_id", req.ClassID),
		attribute.String("enrollment.cart_id", req.CartID),
	)
	defer span.End()

	p := &Payment{
		ID:            uuid.New().String(),
		Email:         email,
		ClassID:       req.ClassID,
		CartID:        req.CartID,
		ClassName:     strings.TrimSpace(req.ClassName),
		AmountCents:   amount,
		TransactionID: strings.TrimSpace(req.TransactionID),
	}

	var seats *class.SeatCount
	err := core.InTx(ctx, s.db, func(tx *sqlx.Tx) error {
		if err := NewRepository(tx).Create(ctx, p); err != nil {
			return err
		}

		var err error
		seats, err = class.NewRepository(tx).Enroll(ctx, p.ClassID)
		if err != nil {
			return classError(err)
		}

		if err := cart.NewRepository(tx).DeleteOwned(ctx, p.CartID, email, p.ClassID); err != nil {
			if errors.Is(err, core.ErrNotFound) {
				return core.NotFoundError("cart entry")
			}
			return err
		}

		return nil
	})
	if err != nil {
		core.SetSpanError(ctx, err)
		return nil, fmt.Errorf("complete enrollment: %w", err)
	}

	core.AddSpanEvent(ctx, "enrollment.committed",
		attribute.String("payment.id", p.ID),
	)

	s.logger.InfoContext(ctx, "enrollment completed",
		"payment_id", p.ID,
		"class_id", p.ClassID,
		"available_seats", seats.AvailableSeats,
	)

	s.publishCompleted(ctx, p, seats)

	return &Enrollment{Payment: p, Seats: seats, CartDeleted: true}, nil
}

func classError(err error) error {
	switch {
	case errors.Is(err, core.ErrCapacityExhausted):
		return core.CapacityExhaustedError()
	case errors.Is(err, core.ErrNotFound):
		return core.NotFoundError("class")
	default:
		return err
	}
}

func (s *EnrollmentService) publishCompleted(
	ctx context.Context,
	p *Payment,
	seats *class.SeatCount,
) {
	evt := events.EnrollmentCompleted{
		PaymentID:      p.ID,
		Email:          p.Email,
		ClassID:        p.ClassID,
		CartID:         p.CartID,
		Amount:         core.FromMinorUnits(p.AmountCents),
		TransactionID:  p.TransactionID,
		AvailableSeats: seats.AvailableSeats,
		Enrolled:       seats.Enrolled,
		OccurredAt:     time.Now().UTC(),
	}

	err := s.publisher.PublishJSON(ctx, events.KeyEnrollmentCompleted, evt)
	if err != nil {
		s.logger.WarnContext(ctx, "publish enrollment event failed",
			"payment_id", p.ID,
			"error", err,
		)
	}
}
