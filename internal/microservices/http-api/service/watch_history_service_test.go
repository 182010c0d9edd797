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

const testUserID = "11111111-2222-3333-4444-555555555555"

func historyWith(ids ...int64) *models.WatchHistory {
	h := &models.WatchHistory{ID: 1, UserID: testUserID}
	for i, id := range ids {
		h.Entries = append(h.Entries, models.WatchHistoryEntry{
			HistoryID: 1, MovieID: id, Position: i,
		})
	}
	return h
}

func TestRecordWatchFirstMovie(t *testing.T) {
	movieRepo := new(MockMovieCatalog)
	historyRepo := new(MockWatchHistoryRepo)
	svc := service.NewWatchHistoryService(historyRepo, movieRepo, false)

	movieRepo.On("GetByID", mock.Anything, int64(42)).Return(&models.Movie{ID: 42}, nil)
	movieRepo.On("IncrementViews", mock.Anything, int64(42)).Return(nil)
	historyRepo.On("FindByUser", mock.Anything, testUserID).Return(nil, gorm.ErrRecordNotFound)
	historyRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.WatchHistory")).Return(nil)
	historyRepo.On("Save", mock.Anything, mock.AnythingOfType("*models.WatchHistory")).Return(nil)

	resp, err := svc.RecordWatch(context.Background(), testUserID, 42)

	require.NoError(t, err)
	assert.Equal(t, []int64{42}, resp.Movies)
	historyRepo.AssertCalled(t, "Create", mock.Anything, mock.AnythingOfType("*models.WatchHistory"))
	movieRepo.AssertNumberOfCalls(t, "IncrementViews", 1)
}

func TestRecordWatchUnknownMovie(t *testing.T) {
	movieRepo := new(MockMovieCatalog)
	historyRepo := new(MockWatchHistoryRepo)
	svc := service.NewWatchHistoryService(historyRepo, movieRepo, false)

	movieRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.RecordWatch(context.Background(), testUserID, 99)

	assert.ErrorIs(t, err, service.ErrMovieNotFound)
	movieRepo.AssertNotCalled(t, "IncrementViews", mock.Anything, mock.Anything)
	historyRepo.AssertNotCalled(t, "FindByUser", mock.Anything, mock.Anything)
}

func TestRecordWatchDuplicateKeepsViewIncrement(t *testing.T) {
	movieRepo := new(MockMovieCatalog)
	historyRepo := new(MockWatchHistoryRepo)
	svc := service.NewWatchHistoryService(historyRepo, movieRepo, false)

	movieRepo.On("GetByID", mock.Anything, int64(7)).Return(&models.Movie{ID: 7}, nil)
	movieRepo.On("IncrementViews", mock.Anything, int64(7)).Return(nil)
	historyRepo.On("FindByUser", mock.Anything, testUserID).Return(historyWith(7, 8), nil)

	_, err := svc.RecordWatch(context.Background(), testUserID, 7)

	assert.ErrorIs(t, err, service.ErrAlreadyInHistory)
	// historical behavior: the rejected rewatch still counts as a view
	movieRepo.AssertNumberOfCalls(t, "IncrementViews", 1)
	historyRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestRecordWatchDuplicateGatedSkipsIncrement(t *testing.T) {
	movieRepo := new(MockMovieCatalog)
	historyRepo := new(MockWatchHistoryRepo)
	svc := service.NewWatchHistoryService(historyRepo, movieRepo, true)

	movieRepo.On("GetByID", mock.Anything, int64(7)).Return(&models.Movie{ID: 7}, nil)
	historyRepo.On("FindByUser", mock.Anything, testUserID).Return(historyWith(7), nil)

	_, err := svc.RecordWatch(context.Background(), testUserID, 7)

	assert.ErrorIs(t, err, service.ErrAlreadyInHistory)
	movieRepo.AssertNotCalled(t, "IncrementViews", mock.Anything, mock.Anything)
}

func TestRecordWatchEvictsOldest(t *testing.T) {
	movieRepo := new(MockMovieCatalog)
	historyRepo := new(MockWatchHistoryRepo)
	svc := service.NewWatchHistoryService(historyRepo, movieRepo, false)

	full := historyWith(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)

	movieRepo.On("GetByID", mock.Anything, int64(11)).Return(&models.Movie{ID: 11}, nil)
	movieRepo.On("IncrementViews", mock.Anything, int64(11)).Return(nil)
	historyRepo.On("FindByUser", mock.Anything, testUserID).Return(full, nil)
	historyRepo.On("Save", mock.Anything, mock.AnythingOfType("*models.WatchHistory")).Return(nil)

	resp, err := svc.RecordWatch(context.Background(), testUserID, 11)

	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, resp.Movies)
}

func TestGetHistoryPagination(t *testing.T) {
	movieRepo := new(MockMovieCatalog)
	historyRepo := new(MockWatchHistoryRepo)
	svc := service.NewWatchHistoryService(historyRepo, movieRepo, false)

	historyRepo.On("FindByUser", mock.Anything, testUserID).
		Return(historyWith(1, 2, 3, 4, 5, 6, 7, 8, 9, 10), nil)

	resp, err := svc.GetHistory(context.Background(), testUserID, 2, 3)

	require.NoError(t, err)
	assert.Equal(t, []int64{4, 5, 6}, resp.WatchHistory.Movies)
	assert.Equal(t, 2, resp.Pagination.CurrentPage)
	assert.Equal(t, 4, resp.Pagination.TotalPages)
	assert.Equal(t, 10, resp.Pagination.TotalItems)
	assert.Equal(t, 3, resp.Pagination.ItemsPerPage)
	assert.True(t, resp.Pagination.HasNextPage)
	assert.True(t, resp.Pagination.HasPrevPage)
}

func TestGetHistoryPageBeyondEnd(t *testing.T) {
	movieRepo := new(MockMovieCatalog)
	historyRepo := new(MockWatchHistoryRepo)
	svc := service.NewWatchHistoryService(historyRepo, movieRepo, false)

	historyRepo.On("FindByUser", mock.Anything, testUserID).Return(historyWith(1, 2), nil)

	resp, err := svc.GetHistory(context.Background(), testUserID, 5, 10)

	require.NoError(t, err)
	assert.Empty(t, resp.WatchHistory.Movies)
	assert.Equal(t, 2, resp.Pagination.TotalItems)
	assert.False(t, resp.Pagination.HasNextPage)
}

func TestGetHistoryUnknownUser(t *testing.T) {
	movieRepo := new(MockMovieCatalog)
	historyRepo := new(MockWatchHistoryRepo)
	svc := service.NewWatchHistoryService(historyRepo, movieRepo, false)

	historyRepo.On("FindByUser", mock.Anything, testUserID).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetHistory(context.Background(), testUserID, 1, 10)

	assert.ErrorIs(t, err, service.ErrHistoryNotFound)
}

func TestRemoveFromHistory(t *testing.T) {
	movieRepo := new(MockMovieCatalog)
	historyRepo := new(MockWatchHistoryRepo)
	svc := service.NewWatchHistoryService(historyRepo, movieRepo, false)

	historyRepo.On("FindByUser", mock.Anything, testUserID).Return(historyWith(1, 2, 3), nil)
	historyRepo.On("Save", mock.Anything, mock.AnythingOfType("*models.WatchHistory")).Return(nil)

	resp, err := svc.RemoveFromHistory(context.Background(), testUserID, 2)

	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3}, resp.Movies)
}

func TestRemoveFromHistoryNotMember(t *testing.T) {
	movieRepo := new(MockMovieCatalog)
	historyRepo := new(MockWatchHistoryRepo)
	svc := service.NewWatchHistoryService(historyRepo, movieRepo, false)

	historyRepo.On("FindByUser", mock.Anything, testUserID).Return(historyWith(1, 2, 3), nil)

	_, err := svc.RemoveFromHistory(context.Background(), testUserID, 42)

	assert.ErrorIs(t, err, service.ErrHistoryNotFound)
	historyRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}
