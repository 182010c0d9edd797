package service

import (
	"context"

	"moviehub/internal/microservices/http-api/models"
)

// MovieCatalog is the slice of the movie repository the ranking and
// watch-history services read from. *repository.MovieRepo satisfies it.
type MovieCatalog interface {
	GetByID(ctx context.Context, id int64) (*models.Movie, error)
	ListApproved(ctx context.Context) ([]models.Movie, error)
	IncrementViews(ctx context.Context, id int64) error
	GetTrending(ctx context.Context, limit int) ([]models.Movie, error)
}
