package service_test

import (
	"context"

	"moviehub/internal/microservices/http-api/models"

	"github.com/stretchr/testify/mock"
)

// --- MOCK MOVIE CATALOG ---

type MockMovieCatalog struct {
	mock.Mock
}

func (m *MockMovieCatalog) GetByID(ctx context.Context, id int64) (*models.Movie, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Movie), args.Error(1)
}

func (m *MockMovieCatalog) ListApproved(ctx context.Context) ([]models.Movie, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Movie), args.Error(1)
}

func (m *MockMovieCatalog) IncrementViews(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMovieCatalog) GetTrending(ctx context.Context, limit int) ([]models.Movie, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]models.Movie), args.Error(1)
}

// --- MOCK WATCH HISTORY REPOSITORY ---

type MockWatchHistoryRepo struct {
	mock.Mock
}

func (m *MockWatchHistoryRepo) FindByUser(ctx context.Context, userID string) (*models.WatchHistory, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WatchHistory), args.Error(1)
}

func (m *MockWatchHistoryRepo) Create(ctx context.Context, history *models.WatchHistory) error {
	args := m.Called(ctx, history)
	return args.Error(0)
}

func (m *MockWatchHistoryRepo) Save(ctx context.Context, history *models.WatchHistory) error {
	args := m.Called(ctx, history)
	return args.Error(0)
}

// --- MOCK USER REPOSITORY ---

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepo) FindByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepo) FindByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepo) FindByIDWithPreferences(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepo) FindByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepo) SetSubscribed(id string, subscribed bool) error {
	args := m.Called(id, subscribed)
	return args.Error(0)
}

func (m *MockUserRepo) ReplaceFavoriteGenres(userID string, genreIDs []int64) error {
	args := m.Called(userID, genreIDs)
	return args.Error(0)
}

func (m *MockUserRepo) ReplaceFavoritePersons(userID string, personIDs []int64) error {
	args := m.Called(userID, personIDs)
	return args.Error(0)
}

func (m *MockUserRepo) GetActivity(userID string) ([]models.UserActivity, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.UserActivity), args.Error(1)
}

func (m *MockUserRepo) AppendActivity(userID string, movieID int64) error {
	args := m.Called(userID, movieID)
	return args.Error(0)
}

func (m *MockUserRepo) FindSubscribedByFavoriteGenres(genreIDs []int64) ([]models.User, error) {
	args := m.Called(genreIDs)
	return args.Get(0).([]models.User), args.Error(1)
}

// --- MOCK REVIEW REPOSITORY ---

type MockReviewRepo struct {
	mock.Mock
}

func (m *MockReviewRepo) Create(review *models.Review) error {
	args := m.Called(review)
	return args.Error(0)
}

func (m *MockReviewRepo) Update(review *models.Review) error {
	args := m.Called(review)
	return args.Error(0)
}

func (m *MockReviewRepo) Delete(userID string, movieID int64) error {
	args := m.Called(userID, movieID)
	return args.Error(0)
}

func (m *MockReviewRepo) GetByUserAndMovie(userID string, movieID int64) (*models.Review, error) {
	args := m.Called(userID, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewRepo) GetByMovie(movieID int64, page, pageSize int) ([]models.Review, int64, error) {
	args := m.Called(movieID, page, pageSize)
	return args.Get(0).([]models.Review), args.Get(1).(int64), args.Error(2)
}

func (m *MockReviewRepo) GetByUser(userID string) ([]models.Review, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockReviewRepo) CalculateAverageRating(movieID int64) (float64, error) {
	args := m.Called(movieID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockReviewRepo) CalculateAverageRatings() (map[int64]float64, error) {
	args := m.Called()
	return args.Get(0).(map[int64]float64), args.Error(1)
}

func (m *MockReviewRepo) CountReviews(movieID int64) (int64, error) {
	args := m.Called(movieID)
	return args.Get(0).(int64), args.Error(1)
}
