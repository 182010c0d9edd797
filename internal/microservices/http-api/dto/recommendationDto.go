package dto

import (
	"moviehub/internal/microservices/http-api/models"
)

// RecommendedMovieResponse is one ranked entry of a recommendation list.
type RecommendedMovieResponse struct {
	ID         int64    `json:"id"`
	Title      string   `json:"title"`
	Genres     []string `json:"genres"`
	Popularity float64  `json:"popularity"`
	Score      float64  `json:"score"`
}

// SimilarMovieResponse is one entry of a similar-titles list.
type SimilarMovieResponse struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Genres       []string `json:"genres"`
	Popularity   float64  `json:"popularity"`
	SharedGenres int      `json:"shared_genres"`
}

// FromModelToRecommendedMovieResponse converts a scored movie to its DTO
func FromModelToRecommendedMovieResponse(m *models.Movie, score float64) RecommendedMovieResponse {
	return RecommendedMovieResponse{
		ID:         m.ID,
		Title:      m.Title,
		Genres:     m.GenreNames(),
		Popularity: m.Popularity,
		Score:      score,
	}
}

// FromModelToSimilarMovieResponse converts a matched movie to its DTO
func FromModelToSimilarMovieResponse(m *models.Movie, shared int) SimilarMovieResponse {
	return SimilarMovieResponse{
		ID:           m.ID,
		Title:        m.Title,
		Genres:       m.GenreNames(),
		Popularity:   m.Popularity,
		SharedGenres: shared,
	}
}
