package dto

import (
	"moviehub/internal/microservices/http-api/models"
)

// UpdatePreferencesDTO replaces the user's favorite genres and persons
type UpdatePreferencesDTO struct {
	FavoriteGenreIDs  []int64 `json:"favorite_genre_ids"`
	FavoritePersonIDs []int64 `json:"favorite_person_ids"`
}

// UserResponse for profile views
type UserResponse struct {
	ID              string   `json:"id"`
	Username        string   `json:"username"`
	Email           string   `json:"email"`
	Role            string   `json:"role"`
	IsSubscribed    bool     `json:"is_subscribed"`
	FavoriteGenres  []string `json:"favorite_genres,omitempty"`
	FavoritePersons []string `json:"favorite_persons,omitempty"`
}

// FromModelToUserResponse converts a User model to UserResponse DTO
func FromModelToUserResponse(u *models.User) *UserResponse {
	resp := &UserResponse{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		Role:         u.Role,
		IsSubscribed: u.IsSubscribed,
	}
	for _, g := range u.FavoriteGenres {
		resp.FavoriteGenres = append(resp.FavoriteGenres, g.Name)
	}
	for _, p := range u.FavoritePersons {
		resp.FavoritePersons = append(resp.FavoritePersons, p.Name)
	}
	return resp
}
