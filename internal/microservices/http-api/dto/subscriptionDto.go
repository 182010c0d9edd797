package dto

import (
	"time"

	"moviehub/internal/microservices/http-api/models"
)

// CreateSubscriptionDTO for activating a subscription
type CreateSubscriptionDTO struct {
	Plan string `json:"plan" binding:"required,oneof=monthly yearly"`
}

// SubscriptionResponse for returning subscription state
type SubscriptionResponse struct {
	ID        int64     `json:"id"`
	Plan      string    `json:"plan"`
	Active    bool      `json:"active"`
	StartedAt time.Time `json:"started_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// FromModelToSubscriptionResponse converts a Subscription model to its DTO
func FromModelToSubscriptionResponse(s *models.Subscription) *SubscriptionResponse {
	return &SubscriptionResponse{
		ID:        s.ID,
		Plan:      s.Plan,
		Active:    s.Active,
		StartedAt: s.StartedAt,
		ExpiresAt: s.ExpiresAt,
	}
}
