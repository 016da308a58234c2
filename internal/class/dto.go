// AngelaMos | 2026
// dto.go

package class

import (
	"time"

	"github.com/carterperez-dev/sports-academy/internal/core"
)

type CreateClassRequest struct {
	Name           string  `json:"name"           validate:"required,min=1,max=200"`
	ImageURL       string  `json:"image"          validate:"omitempty,url,max=2048"`
	InstructorName string  `json:"instructorName" validate:"max=100"`
	Email          string  `json:"email"          validate:"required,email,max=255"`
	Price          float64 `json:"price"          validate:"gte=0"`
	AvailableSeats int     `json:"availableSeats" validate:"gte=0"`
}

type FeedbackRequest struct {
	Feedback string `json:"feedback" validate:"max=2000"`
}

type ClassResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	ImageURL       string    `json:"image"`
	InstructorName string    `json:"instructorName"`
	Email          string    `json:"email"`
	Price          float64   `json:"price"`
	AvailableSeats int       `json:"availableSeats"`
	Enrolled       int       `json:"enrolled"`
	Status         Status    `json:"status"`
	Feedback       *string   `json:"feedback,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type SeatCountResponse struct {
	ID             string `json:"id"`
	AvailableSeats int    `json:"availableSeats"`
	Enrolled       int    `json:"enrolled"`
}

func ToClassResponse(c *Class) ClassResponse {
	return ClassResponse{
		ID:             c.ID,
		Name:           c.Name,
		ImageURL:       c.ImageURL,
		InstructorName: c.InstructorName,
		Email:          c.Email,
		Price:          core.FromMinorUnits(c.PriceCents),
		AvailableSeats: c.AvailableSeats,
		Enrolled:       c.Enrolled,
		Status:         ParseStatus(string(c.Status)),
		Feedback:       c.Feedback,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func ToClassResponseList(classes []Class) []ClassResponse {
	responses := make([]ClassResponse, 0, len(classes))
	for i := range classes {
		responses = append(responses, ToClassResponse(&classes[i]))
	}
	return responses
}

func ToSeatCountResponse(s *SeatCount) SeatCountResponse {
	return SeatCountResponse{
		ID:             s.ID,
		AvailableSeats: s.AvailableSeats,
		Enrolled:       s.Enrolled,
	}
}
