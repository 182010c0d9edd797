package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"moviehub/internal/microservices/http-api/dto"
	"moviehub/internal/microservices/http-api/handler"
	"moviehub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- MOCK SERVICE ---

type MockRecommendationService struct {
	mock.Mock
}

func (m *MockRecommendationService) RecommendForUser(ctx context.Context, userID string) ([]dto.RecommendedMovieResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.RecommendedMovieResponse), args.Error(1)
}

func (m *MockRecommendationService) FindSimilar(ctx context.Context, movieID int64) ([]dto.SimilarMovieResponse, error) {
	args := m.Called(ctx, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.SimilarMovieResponse), args.Error(1)
}

func (m *MockRecommendationService) GetTrending(ctx context.Context, limit int) ([]dto.MovieBasicResponse, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.MovieBasicResponse), args.Error(1)
}

func (m *MockRecommendationService) GetTopRated(ctx context.Context, limit int) ([]dto.MovieBasicResponse, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.MovieBasicResponse), args.Error(1)
}

// --- SETUP ---

func setupRecommendationRouter(mockService *MockRecommendationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewRecommendationHandler(mockService)
	h.RegisterRoutes(r.Group("/movies"))
	return r
}

func TestRecommendForUserHandler(t *testing.T) {
	mockService := new(MockRecommendationService)
	router := setupRecommendationRouter(mockService)

	mockService.On("RecommendForUser", mock.Anything, testUserID).
		Return([]dto.RecommendedMovieResponse{
			{ID: 1, Title: "Movie One", Score: 0.79},
			{ID: 2, Title: "Movie Two", Score: 0.7},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/movies/genre-user-rating-activity/"+testUserID, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Recommendations []dto.RecommendedMovieResponse `json:"recommendations"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Recommendations, 2)
	assert.Equal(t, int64(1), resp.Recommendations[0].ID)
}

func TestRecommendForUserHandlerUnknownUser(t *testing.T) {
	mockService := new(MockRecommendationService)
	router := setupRecommendationRouter(mockService)

	mockService.On("RecommendForUser", mock.Anything, "missing").
		Return(nil, service.ErrUserNotFound)

	req := httptest.NewRequest(http.MethodGet, "/movies/genre-user-rating-activity/missing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "user not found")
}

func TestRecommendForUserHandlerInternalError(t *testing.T) {
	mockService := new(MockRecommendationService)
	router := setupRecommendationRouter(mockService)

	mockService.On("RecommendForUser", mock.Anything, testUserID).
		Return(nil, errors.New("db down"))

	req := httptest.NewRequest(http.MethodGet, "/movies/genre-user-rating-activity/"+testUserID, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestFindSimilarHandler(t *testing.T) {
	mockService := new(MockRecommendationService)
	router := setupRecommendationRouter(mockService)

	mockService.On("FindSimilar", mock.Anything, int64(1)).
		Return([]dto.SimilarMovieResponse{
			{ID: 2, Title: "Movie Two", SharedGenres: 2},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/movies/similar/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"shared_genres":2`)
}

func TestFindSimilarHandlerEmptyIsOK(t *testing.T) {
	mockService := new(MockRecommendationService)
	router := setupRecommendationRouter(mockService)

	mockService.On("FindSimilar", mock.Anything, int64(9)).
		Return([]dto.SimilarMovieResponse{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/movies/similar/9", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"similar":[]`)
}

func TestFindSimilarHandlerUnknownMovie(t *testing.T) {
	mockService := new(MockRecommendationService)
	router := setupRecommendationRouter(mockService)

	mockService.On("FindSimilar", mock.Anything, int64(404)).
		Return(nil, service.ErrMovieNotFound)

	req := httptest.NewRequest(http.MethodGet, "/movies/similar/404", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFindSimilarHandlerBadID(t *testing.T) {
	mockService := new(MockRecommendationService)
	router := setupRecommendationRouter(mockService)

	req := httptest.NewRequest(http.MethodGet, "/movies/similar/abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "FindSimilar", mock.Anything, mock.Anything)
}

func TestTrendingHandlerClampsLimit(t *testing.T) {
	mockService := new(MockRecommendationService)
	router := setupRecommendationRouter(mockService)

	mockService.On("GetTrending", mock.Anything, 10).
		Return([]dto.MovieBasicResponse{{ID: 1, Title: "Movie One"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/movies/trending?limit=999", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertCalled(t, "GetTrending", mock.Anything, 10)
}

func TestTopRatedHandler(t *testing.T) {
	mockService := new(MockRecommendationService)
	router := setupRecommendationRouter(mockService)

	mockService.On("GetTopRated", mock.Anything, 5).
		Return([]dto.MovieBasicResponse{{ID: 2, Title: "Movie Two"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/movies/top-rated?limit=5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Movie Two")
}
