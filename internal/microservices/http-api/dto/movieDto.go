package dto

import (
	"time"

	"moviehub/internal/microservices/http-api/models"
)

// CreateMovieDTO for creating a movie
type CreateMovieDTO struct {
	Title       string     `json:"title" binding:"required"`
	Overview    *string    `json:"overview,omitempty"`
	DirectorID  *int64     `json:"director_id,omitempty"`
	CastIDs     []int64    `json:"cast_ids,omitempty"`
	GenreIDs    []int64    `json:"genre_ids,omitempty"`
	Popularity  float64    `json:"popularity"`
	Runtime     *int       `json:"runtime,omitempty"`
	ReleaseDate *time.Time `json:"release_date,omitempty"`
	AgeRating   *string    `json:"age_rating,omitempty"`
	Language    *string    `json:"language,omitempty"`
}

// UpdateMovieDTO for updating a movie (partial)
type UpdateMovieDTO struct {
	Title       *string    `json:"title,omitempty"`
	Overview    *string    `json:"overview,omitempty"`
	DirectorID  *int64     `json:"director_id,omitempty"`
	Popularity  *float64   `json:"popularity,omitempty"`
	Runtime     *int       `json:"runtime,omitempty"`
	ReleaseDate *time.Time `json:"release_date,omitempty"`
	AgeRating   *string    `json:"age_rating,omitempty"`
	Language    *string    `json:"language,omitempty"`
	IsApproved  *bool      `json:"is_approved,omitempty"`
}

// MovieResponse for the detail view
type MovieResponse struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Overview    *string    `json:"overview,omitempty"`
	Genres      []string   `json:"genres"`
	Director    *string    `json:"director,omitempty"`
	Cast        []string   `json:"cast,omitempty"`
	Popularity  float64    `json:"popularity"`
	Views       int64      `json:"views"`
	Runtime     *int       `json:"runtime,omitempty"`
	ReleaseDate *time.Time `json:"release_date,omitempty"`
	AgeRating   *string    `json:"age_rating,omitempty"`
	Language    *string    `json:"language,omitempty"`
	IsApproved  bool       `json:"is_approved"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

// MovieBasicResponse for list views
type MovieBasicResponse struct {
	ID         int64    `json:"id"`
	Title      string   `json:"title"`
	Genres     []string `json:"genres,omitempty"`
	Popularity float64  `json:"popularity"`
	Views      int64    `json:"views"`
}

// FromModelToMovieResponse converts a Movie model to MovieResponse DTO
func FromModelToMovieResponse(m *models.Movie) *MovieResponse {
	resp := &MovieResponse{
		ID:          m.ID,
		Title:       m.Title,
		Overview:    m.Overview,
		Genres:      m.GenreNames(),
		Popularity:  m.Popularity,
		Views:       m.Views,
		Runtime:     m.Runtime,
		ReleaseDate: m.ReleaseDate,
		AgeRating:   m.AgeRating,
		Language:    m.Language,
		IsApproved:  m.IsApproved,
		CreatedAt:   m.CreatedAt,
	}
	if m.Director != nil {
		resp.Director = &m.Director.Name
	}
	for _, p := range m.Cast {
		resp.Cast = append(resp.Cast, p.Name)
	}
	return resp
}

// FromModelToMovieBasicResponse converts a Movie model to MovieBasicResponse DTO
func FromModelToMovieBasicResponse(m *models.Movie) MovieBasicResponse {
	return MovieBasicResponse{
		ID:         m.ID,
		Title:      m.Title,
		Genres:     m.GenreNames(),
		Popularity: m.Popularity,
		Views:      m.Views,
	}
}

// PaginatedMovieResponse for paginated movie lists
type PaginatedMovieResponse struct {
	Data       []MovieBasicResponse `json:"data"`
	Page       int                  `json:"page"`
	PageSize   int                  `json:"page_size"`
	Total      int                  `json:"total"`
	TotalPages int                  `json:"total_pages"`
}

// NewPaginatedMovieResponse creates a paginated movie response
func NewPaginatedMovieResponse(data []MovieBasicResponse, total, page, pageSize int) *PaginatedMovieResponse {
	totalPages := total / pageSize
	if total%pageSize != 0 {
		totalPages++
	}

	return &PaginatedMovieResponse{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}
