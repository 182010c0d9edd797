package service

import (
	"context"
	"errors"
	"time"

	"moviehub/internal/microservices/http-api/dto"
	"moviehub/internal/microservices/http-api/models"
	"moviehub/internal/microservices/http-api/repository"

	"gorm.io/gorm"
)

var ErrNoActiveSubscription = errors.New("no active subscription")

type SubscriptionService interface {
	Subscribe(ctx context.Context, userID, plan string) (*dto.SubscriptionResponse, error)
	GetActive(ctx context.Context, userID string) (*dto.SubscriptionResponse, error)
	Cancel(ctx context.Context, userID string) error
}

type subscriptionService struct {
	subRepo  repository.SubscriptionRepository
	userRepo repository.UserRepository
}

func NewSubscriptionService(subRepo repository.SubscriptionRepository, userRepo repository.UserRepository) SubscriptionService {
	return &subscriptionService{subRepo: subRepo, userRepo: userRepo}
}

// Subscribe activates a subscription and sets the user's flag.
func (s *subscriptionService) Subscribe(ctx context.Context, userID, plan string) (*dto.SubscriptionResponse, error) {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	duration := 30 * 24 * time.Hour
	if plan == "yearly" {
		duration = 365 * 24 * time.Hour
	}

	sub := &models.Subscription{
		UserID:    userID,
		Plan:      plan,
		Active:    true,
		StartedAt: time.Now(),
		ExpiresAt: time.Now().Add(duration),
	}
	if err := s.subRepo.Create(ctx, sub); err != nil {
		return nil, err
	}

	if err := s.userRepo.SetSubscribed(userID, true); err != nil {
		return nil, err
	}

	return dto.FromModelToSubscriptionResponse(sub), nil
}

func (s *subscriptionService) GetActive(ctx context.Context, userID string) (*dto.SubscriptionResponse, error) {
	sub, err := s.subRepo.GetActiveByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoActiveSubscription
		}
		return nil, err
	}
	return dto.FromModelToSubscriptionResponse(sub), nil
}

func (s *subscriptionService) Cancel(ctx context.Context, userID string) error {
	sub, err := s.subRepo.GetActiveByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoActiveSubscription
		}
		return err
	}

	if err := s.subRepo.Cancel(ctx, sub.ID); err != nil {
		return err
	}
	return s.userRepo.SetSubscribed(userID, false)
}
