// AngelaMos | 2026
// dto.go

package cart

import (
	"time"

	"github.com/carterperez-dev/sports-academy/internal/core"
)

type CreateEntryRequest struct {
	Email     string  `json:"email"     validate:"required,email,max=255"`
	ClassID   string  `json:"classId"   validate:"required,uuid"`
	ClassName string  `json:"name"      validate:"max=200"`
	ImageURL  string  `json:"image"     validate:"omitempty,url,max=2048"`
	Price     float64 `json:"price"     validate:"gte=0"`
}

type EntryResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	ClassID   string    `json:"classId"`
	ClassName string    `json:"name"`
	ImageURL  string    `json:"image"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"createdAt"`
}

type DeleteResponse struct {
	Deleted bool `json:"deleted"`
}

func ToEntryResponse(e *Entry) EntryResponse {
	return EntryResponse{
		ID:        e.ID,
		Email:     e.Email,
		ClassID:   e.ClassID,
		ClassName: e.ClassName,
		ImageURL:  e.ImageURL,
		Price:     core.FromMinorUnits(e.PriceCents),
		CreatedAt: e.CreatedAt,
	}
}

func ToEntryResponseList(entries []Entry) []EntryResponse {
	responses := make([]EntryResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, ToEntryResponse(&entries[i]))
	}
	return responses
}
