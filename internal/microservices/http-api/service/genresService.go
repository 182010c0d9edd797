package service

import (
	"context"
	"errors"
	"strings"

	"moviehub/internal/microservices/http-api/models"
	"moviehub/internal/microservices/http-api/repository"
)

type GenreService interface {
	GetAll(ctx context.Context) ([]models.Genre, error)
	Create(ctx context.Context, g *models.Genre) error
	GetMoviesByGenre(ctx context.Context, genreID int64) ([]models.Movie, error)
}

type genreService struct {
	repo *repository.GenreRepo
}

func NewGenreService(repo *repository.GenreRepo) GenreService {
	return &genreService{repo: repo}
}

func (s *genreService) GetAll(ctx context.Context) ([]models.Genre, error) {
	return s.repo.GetAll(ctx)
}

func (s *genreService) Create(ctx context.Context, g *models.Genre) error {
	if strings.TrimSpace(g.Name) == "" {
		return errors.New("genre name is required")
	}
	g.Name = strings.TrimSpace(g.Name)
	return s.repo.Create(ctx, g)
}

func (s *genreService) GetMoviesByGenre(ctx context.Context, genreID int64) ([]models.Movie, error) {
	return s.repo.GetMoviesByGenre(ctx, genreID)
}
