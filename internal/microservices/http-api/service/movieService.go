package service

import (
	"context"
	"errors"
	"strings"

	"moviehub/internal/microservices/http-api/dto"
	"moviehub/internal/microservices/http-api/models"
	"moviehub/internal/microservices/http-api/repository"

	"gorm.io/gorm"
)

var ErrMovieNotFound = errors.New("movie not found")

// ApprovalNotifier is told when a movie becomes approved so subscribed
// users with a matching favorite genre can be notified.
type ApprovalNotifier interface {
	MovieApproved(movie *models.Movie)
}

type MovieService interface {
	GetAll(ctx context.Context, page, pageSize int) ([]models.Movie, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Movie, error)
	Create(ctx context.Context, req *dto.CreateMovieDTO, sellerID string) (*models.Movie, error)
	Update(ctx context.Context, id int64, req *dto.UpdateMovieDTO) (*models.Movie, error)
	Delete(ctx context.Context, id int64) error
	SearchByTitle(ctx context.Context, title string) ([]models.Movie, error)
	Approve(ctx context.Context, id int64) (*models.Movie, error)
	ReplaceGenresForMovie(ctx context.Context, movieID int64, genreIDs []int64) error
}

type movieService struct {
	repo     *repository.MovieRepo
	notifier ApprovalNotifier
}

func NewMovieService(repo *repository.MovieRepo, notifier ApprovalNotifier) MovieService {
	return &movieService{repo: repo, notifier: notifier}
}

func (s *movieService) GetAll(ctx context.Context, page, pageSize int) ([]models.Movie, int64, error) {
	return s.repo.GetAll(ctx, page, pageSize)
}

func (s *movieService) GetByID(ctx context.Context, id int64) (*models.Movie, error) {
	movie, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return movie, nil
}

func (s *movieService) Create(ctx context.Context, req *dto.CreateMovieDTO, sellerID string) (*models.Movie, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, errors.New("title is required")
	}

	movie := &models.Movie{
		Title:       strings.TrimSpace(req.Title),
		Overview:    req.Overview,
		DirectorID:  req.DirectorID,
		Popularity:  req.Popularity,
		Runtime:     req.Runtime,
		ReleaseDate: req.ReleaseDate,
		AgeRating:   req.AgeRating,
		Language:    req.Language,
	}
	if sellerID != "" {
		movie.SellerID = &sellerID
	}

	if err := s.repo.Create(ctx, movie); err != nil {
		return nil, err
	}

	if len(req.GenreIDs) > 0 {
		if err := s.repo.ReplaceGenresForMovie(ctx, movie.ID, req.GenreIDs); err != nil {
			return nil, err
		}
	}
	if len(req.CastIDs) > 0 {
		if err := s.repo.ReplaceCastForMovie(ctx, movie.ID, req.CastIDs); err != nil {
			return nil, err
		}
	}

	return s.GetByID(ctx, movie.ID)
}

func (s *movieService) Update(ctx context.Context, id int64, req *dto.UpdateMovieDTO) (*models.Movie, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	wasApproved := existing.IsApproved

	if req.Title != nil && strings.TrimSpace(*req.Title) != "" {
		existing.Title = strings.TrimSpace(*req.Title)
	}
	if req.Overview != nil {
		existing.Overview = req.Overview
	}
	if req.DirectorID != nil {
		existing.DirectorID = req.DirectorID
	}
	if req.Popularity != nil {
		existing.Popularity = *req.Popularity
	}
	if req.Runtime != nil {
		existing.Runtime = req.Runtime
	}
	if req.ReleaseDate != nil {
		existing.ReleaseDate = req.ReleaseDate
	}
	if req.AgeRating != nil {
		existing.AgeRating = req.AgeRating
	}
	if req.Language != nil {
		existing.Language = req.Language
	}
	if req.IsApproved != nil {
		existing.IsApproved = *req.IsApproved
	}

	if err := s.repo.Update(ctx, id, existing); err != nil {
		return nil, err
	}

	if !wasApproved && existing.IsApproved && s.notifier != nil {
		s.notifier.MovieApproved(existing)
	}

	return existing, nil
}

func (s *movieService) Delete(ctx context.Context, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *movieService) SearchByTitle(ctx context.Context, title string) ([]models.Movie, error) {
	return s.repo.SearchByTitle(ctx, title)
}

// Approve flips the approval flag and fans out notifications to
// subscribed users whose favorite genres match.
func (s *movieService) Approve(ctx context.Context, id int64) (*models.Movie, error) {
	movie, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if movie.IsApproved {
		return movie, nil
	}

	movie.IsApproved = true
	if err := s.repo.Update(ctx, id, movie); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.MovieApproved(movie)
	}
	return movie, nil
}

func (s *movieService) ReplaceGenresForMovie(ctx context.Context, movieID int64, genreIDs []int64) error {
	if _, err := s.GetByID(ctx, movieID); err != nil {
		return err
	}
	return s.repo.ReplaceGenresForMovie(ctx, movieID, genreIDs)
}
