package service_test

import (
	"context"
	"testing"

	"moviehub/internal/microservices/http-api/models"
	"moviehub/internal/microservices/http-api/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func genres(names ...string) []models.Genre {
	out := make([]models.Genre, 0, len(names))
	for i, n := range names {
		out = append(out, models.Genre{ID: int64(i + 1), Name: n})
	}
	return out
}

func testCatalog() []models.Movie {
	return []models.Movie{
		{ID: 1, Title: "Movie One", IsApproved: true, Popularity: 50, Genres: genres("Action", "Adventure", "Comedy")},
		{ID: 2, Title: "Movie Two", IsApproved: true, Popularity: 80, Genres: genres("Action", "Adventure", "Science Fiction")},
		{ID: 3, Title: "Movie Three", IsApproved: true, Popularity: 90, Genres: genres("Comedy")},
	}
}

func newRecommendationFixture() (*MockMovieCatalog, *MockUserRepo, *MockReviewRepo, service.RecommendationService) {
	movieRepo := new(MockMovieCatalog)
	userRepo := new(MockUserRepo)
	reviewRepo := new(MockReviewRepo)
	svc := service.NewRecommendationService(movieRepo, userRepo, reviewRepo, nil, 0)
	return movieRepo, userRepo, reviewRepo, svc
}

func TestRecommendForUserRanksBySignals(t *testing.T) {
	movieRepo, userRepo, reviewRepo, svc := newRecommendationFixture()

	user := &models.User{
		ID:             testUserID,
		FavoriteGenres: genres("Action", "Adventure", "Comedy"),
	}
	userRepo.On("FindByIDWithPreferences", testUserID).Return(user, nil)
	movieRepo.On("ListApproved", mock.Anything).Return(testCatalog(), nil)
	reviewRepo.On("GetByUser", testUserID).Return([]models.Review{
		{UserID: testUserID, MovieID: 1, Rating: 4},
	}, nil)
	userRepo.On("GetActivity", testUserID).Return([]models.UserActivity{
		{UserID: testUserID, MovieID: 1},
		{UserID: testUserID, MovieID: 2},
	}, nil)
	reviewRepo.On("CalculateAverageRatings").Return(map[int64]float64{1: 4.0}, nil)

	recs, err := svc.RecommendForUser(context.Background(), testUserID)

	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, int64(1), recs[0].ID)
	assert.Equal(t, int64(2), recs[1].ID)
	assert.Equal(t, int64(3), recs[2].ID)

	// genre 0.4 + own rating 4/5*0.3 + activity 1/2*0.3
	assert.InDelta(t, 0.79, recs[0].Score, 0.0001)
	// genre 0.4 + activity 2/2*0.3
	assert.InDelta(t, 0.7, recs[1].Score, 0.0001)
	// genre match only
	assert.InDelta(t, 0.4, recs[2].Score, 0.0001)
}

func TestRecommendForUserIsDeterministic(t *testing.T) {
	movieRepo, userRepo, reviewRepo, svc := newRecommendationFixture()

	user := &models.User{ID: testUserID, FavoriteGenres: genres("Action")}
	userRepo.On("FindByIDWithPreferences", testUserID).Return(user, nil)
	movieRepo.On("ListApproved", mock.Anything).Return(testCatalog(), nil)
	reviewRepo.On("GetByUser", testUserID).Return([]models.Review{}, nil)
	userRepo.On("GetActivity", testUserID).Return([]models.UserActivity{}, nil)
	reviewRepo.On("CalculateAverageRatings").Return(map[int64]float64{}, nil)

	first, err := svc.RecommendForUser(context.Background(), testUserID)
	require.NoError(t, err)
	second, err := svc.RecommendForUser(context.Background(), testUserID)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	// equal genre-only scores fall back to popularity desc
	require.Len(t, first, 2)
	assert.Equal(t, int64(2), first[0].ID)
	assert.Equal(t, int64(1), first[1].ID)
}

func TestRecommendForUserNoSignals(t *testing.T) {
	movieRepo, userRepo, reviewRepo, svc := newRecommendationFixture()

	user := &models.User{ID: testUserID}
	userRepo.On("FindByIDWithPreferences", testUserID).Return(user, nil)
	movieRepo.On("ListApproved", mock.Anything).Return(testCatalog(), nil)
	reviewRepo.On("GetByUser", testUserID).Return([]models.Review{}, nil)
	userRepo.On("GetActivity", testUserID).Return([]models.UserActivity{}, nil)
	reviewRepo.On("CalculateAverageRatings").Return(map[int64]float64{}, nil)

	recs, err := svc.RecommendForUser(context.Background(), testUserID)

	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestRecommendForUserUnknownUser(t *testing.T) {
	_, userRepo, _, svc := newRecommendationFixture()

	userRepo.On("FindByIDWithPreferences", "missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.RecommendForUser(context.Background(), "missing")

	assert.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestFindSimilarOrdersBySharedGenres(t *testing.T) {
	movieRepo, _, _, svc := newRecommendationFixture()

	catalog := testCatalog()
	movieRepo.On("GetByID", mock.Anything, int64(1)).Return(&catalog[0], nil)
	movieRepo.On("ListApproved", mock.Anything).Return(catalog, nil)

	similar, err := svc.FindSimilar(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, similar, 2)
	assert.Equal(t, int64(2), similar[0].ID)
	assert.Equal(t, 2, similar[0].SharedGenres)
	assert.Equal(t, int64(3), similar[1].ID)
	assert.Equal(t, 1, similar[1].SharedGenres)
}

func TestFindSimilarExcludesReference(t *testing.T) {
	movieRepo, _, _, svc := newRecommendationFixture()

	catalog := testCatalog()
	movieRepo.On("GetByID", mock.Anything, int64(3)).Return(&catalog[2], nil)
	movieRepo.On("ListApproved", mock.Anything).Return(catalog, nil)

	similar, err := svc.FindSimilar(context.Background(), 3)

	require.NoError(t, err)
	require.Len(t, similar, 1)
	assert.Equal(t, int64(1), similar[0].ID)
}

func TestFindSimilarNoOverlap(t *testing.T) {
	movieRepo, _, _, svc := newRecommendationFixture()

	loner := models.Movie{ID: 9, Title: "Loner", IsApproved: true, Genres: genres("Documentary")}
	catalog := append(testCatalog(), loner)
	movieRepo.On("GetByID", mock.Anything, int64(9)).Return(&loner, nil)
	movieRepo.On("ListApproved", mock.Anything).Return(catalog, nil)

	similar, err := svc.FindSimilar(context.Background(), 9)

	require.NoError(t, err)
	assert.Empty(t, similar)
}

func TestFindSimilarUnknownMovie(t *testing.T) {
	movieRepo, _, _, svc := newRecommendationFixture()

	movieRepo.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.FindSimilar(context.Background(), 404)

	assert.ErrorIs(t, err, service.ErrMovieNotFound)
}

func TestGetTopRatedSortsByAverage(t *testing.T) {
	movieRepo, _, reviewRepo, svc := newRecommendationFixture()

	movieRepo.On("ListApproved", mock.Anything).Return(testCatalog(), nil)
	reviewRepo.On("CalculateAverageRatings").Return(map[int64]float64{1: 3.2, 2: 4.8, 3: 4.8}, nil)

	top, err := svc.GetTopRated(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, top, 3)
	// ties keep catalog order
	assert.Equal(t, int64(2), top[0].ID)
	assert.Equal(t, int64(3), top[1].ID)
	assert.Equal(t, int64(1), top[2].ID)
}

func TestGetTrendingDelegatesToRepo(t *testing.T) {
	movieRepo, _, _, svc := newRecommendationFixture()

	movieRepo.On("GetTrending", mock.Anything, 2).Return(testCatalog()[:2], nil)

	trending, err := svc.GetTrending(context.Background(), 2)

	require.NoError(t, err)
	assert.Len(t, trending, 2)
	movieRepo.AssertCalled(t, "GetTrending", mock.Anything, 2)
}
