package service

import (
	"context"
	"errors"

	"moviehub/internal/microservices/http-api/dto"
	"moviehub/internal/microservices/http-api/models"
	"moviehub/internal/microservices/http-api/repository"

	"gorm.io/gorm"
)

type UserService interface {
	GetProfile(userID string) (*dto.UserResponse, error)
	UpdatePreferences(userID string, req *dto.UpdatePreferencesDTO) (*dto.UserResponse, error)
	RecordActivity(ctx context.Context, userID string, movieID int64) error
	GetActivity(userID string) ([]models.UserActivity, error)
}

type userService struct {
	userRepo  repository.UserRepository
	movieRepo *repository.MovieRepo
}

func NewUserService(userRepo repository.UserRepository, movieRepo *repository.MovieRepo) UserService {
	return &userService{userRepo: userRepo, movieRepo: movieRepo}
}

func (s *userService) GetProfile(userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByIDWithPreferences(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return dto.FromModelToUserResponse(user), nil
}

// UpdatePreferences replaces the user's favorite genres and persons.
func (s *userService) UpdatePreferences(userID string, req *dto.UpdatePreferencesDTO) (*dto.UserResponse, error) {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if req.FavoriteGenreIDs != nil {
		if err := s.userRepo.ReplaceFavoriteGenres(userID, req.FavoriteGenreIDs); err != nil {
			return nil, err
		}
	}
	if req.FavoritePersonIDs != nil {
		if err := s.userRepo.ReplaceFavoritePersons(userID, req.FavoritePersonIDs); err != nil {
			return nil, err
		}
	}

	return s.GetProfile(userID)
}

// RecordActivity appends a movie to the user's viewing-activity sequence.
// The recommendation engine reads this sequence as its recency signal.
func (s *userService) RecordActivity(ctx context.Context, userID string, movieID int64) error {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if _, err := s.movieRepo.GetByID(ctx, movieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMovieNotFound
		}
		return err
	}
	return s.userRepo.AppendActivity(userID, movieID)
}

func (s *userService) GetActivity(userID string) ([]models.UserActivity, error) {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.userRepo.GetActivity(userID)
}
