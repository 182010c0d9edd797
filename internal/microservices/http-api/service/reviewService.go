package service

import (
	"context"
	"errors"

	"moviehub/internal/microservices/http-api/dto"
	"moviehub/internal/microservices/http-api/models"
	"moviehub/internal/microservices/http-api/repository"

	"gorm.io/gorm"
)

// ErrInvalidRating guards the 1..5 range a second time behind the
// binding validation; a bad rating is never stored.
var ErrInvalidRating = errors.New("rating must be between 1 and 5")

type ReviewService interface {
	CreateOrUpdateReview(userID string, movieID int64, rating int, content string) (*dto.ReviewResponse, error)
	DeleteReview(userID string, movieID int64) error
	GetUserReview(userID string, movieID int64) (*dto.ReviewResponse, error)
	GetMovieReviews(movieID int64, page, pageSize int) (*dto.PaginatedReviewResponse, error)
	GetMovieAverageRating(movieID int64) (float64, int64, error)
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
	movieRepo  *repository.MovieRepo
}

func NewReviewService(reviewRepo repository.ReviewRepository, movieRepo *repository.MovieRepo) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		movieRepo:  movieRepo,
	}
}

// CreateOrUpdateReview creates or updates a user's review for a movie
func (s *reviewService) CreateOrUpdateReview(userID string, movieID int64, rating int, content string) (*dto.ReviewResponse, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	ctx := context.Background()

	// Check if movie exists
	if _, err := s.movieRepo.GetByID(ctx, movieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	// Check if review already exists
	existingReview, err := s.reviewRepo.GetByUserAndMovie(userID, movieID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var review *models.Review

	if existingReview != nil {
		existingReview.Rating = rating
		existingReview.Content = content
		if err := s.reviewRepo.Update(existingReview); err != nil {
			return nil, err
		}
		review = existingReview
	} else {
		newReview := &models.Review{
			UserID:  userID,
			MovieID: movieID,
			Rating:  rating,
			Content: content,
		}
		if err := s.reviewRepo.Create(newReview); err != nil {
			return nil, err
		}
		// Reload with user data
		review, err = s.reviewRepo.GetByUserAndMovie(userID, movieID)
		if err != nil {
			return nil, err
		}
	}

	return dto.FromModelToReviewResponse(review), nil
}

// DeleteReview deletes a user's review for a movie
func (s *reviewService) DeleteReview(userID string, movieID int64) error {
	ctx := context.Background()

	if _, err := s.movieRepo.GetByID(ctx, movieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMovieNotFound
		}
		return err
	}

	return s.reviewRepo.Delete(userID, movieID)
}

// GetUserReview retrieves a user's review for a specific movie
func (s *reviewService) GetUserReview(userID string, movieID int64) (*dto.ReviewResponse, error) {
	review, err := s.reviewRepo.GetByUserAndMovie(userID, movieID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("review not found")
		}
		return nil, err
	}

	return dto.FromModelToReviewResponse(review), nil
}

// GetMovieReviews retrieves all reviews for a movie with pagination
func (s *reviewService) GetMovieReviews(movieID int64, page, pageSize int) (*dto.PaginatedReviewResponse, error) {
	ctx := context.Background()

	if _, err := s.movieRepo.GetByID(ctx, movieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	reviews, total, err := s.reviewRepo.GetByMovie(movieID, page, pageSize)
	if err != nil {
		return nil, err
	}

	reviewResponses := make([]dto.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		reviewResponses = append(reviewResponses, *dto.FromModelToReviewResponse(&review))
	}

	return dto.NewPaginatedReviewResponse(reviewResponses, int(total), page, pageSize), nil
}

// GetMovieAverageRating retrieves the average rating and count for a movie
func (s *reviewService) GetMovieAverageRating(movieID int64) (float64, int64, error) {
	ctx := context.Background()

	if _, err := s.movieRepo.GetByID(ctx, movieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, 0, ErrMovieNotFound
		}
		return 0, 0, err
	}

	avg, err := s.reviewRepo.CalculateAverageRating(movieID)
	if err != nil {
		return 0, 0, err
	}

	count, err := s.reviewRepo.CountReviews(movieID)
	if err != nil {
		return 0, 0, err
	}

	return avg, count, nil
}
