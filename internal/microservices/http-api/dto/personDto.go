package dto

import (
	"time"

	"moviehub/internal/microservices/http-api/models"
)

// CreatePersonDTO for creating a director or cast member
type CreatePersonDTO struct {
	Name      string     `json:"name" binding:"required"`
	Bio       *string    `json:"bio,omitempty"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
}

// PersonResponse for returning person information
type PersonResponse struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Bio       *string    `json:"bio,omitempty"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
}

// FromModelToPersonResponse converts a Person model to PersonResponse DTO
func FromModelToPersonResponse(p *models.Person) *PersonResponse {
	return &PersonResponse{
		ID:        p.ID,
		Name:      p.Name,
		Bio:       p.Bio,
		BirthDate: p.BirthDate,
	}
}
