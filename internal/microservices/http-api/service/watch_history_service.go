package service

import (
	"context"
	"errors"

	"moviehub/internal/microservices/http-api/dto"
	"moviehub/internal/microservices/http-api/models"
	"moviehub/internal/microservices/http-api/repository"

	"gorm.io/gorm"
)

var (
	ErrHistoryNotFound  = errors.New("watch history not found")
	ErrAlreadyInHistory = errors.New("movie already in watch history")
)

type WatchHistoryService interface {
	RecordWatch(ctx context.Context, userID string, movieID int64) (*dto.WatchHistoryResponse, error)
	GetHistory(ctx context.Context, userID string, page, limit int) (*dto.HistoryPageResponse, error)
	RemoveFromHistory(ctx context.Context, userID string, movieID int64) (*dto.WatchHistoryResponse, error)
}

type watchHistoryService struct {
	historyRepo repository.WatchHistoryRepository
	movieRepo   MovieCatalog

	// gateViewIncrement delays the view-count bump until the watch is
	// accepted. Off by default: the platform has always counted the view
	// even when the movie was already in the history, and analytics
	// depend on that today.
	gateViewIncrement bool
}

func NewWatchHistoryService(
	historyRepo repository.WatchHistoryRepository,
	movieRepo MovieCatalog,
	gateViewIncrement bool,
) WatchHistoryService {
	return &watchHistoryService{
		historyRepo:       historyRepo,
		movieRepo:         movieRepo,
		gateViewIncrement: gateViewIncrement,
	}
}

// RecordWatch appends the movie as the newest history entry, creating
// the record on first use and evicting the oldest entry past capacity.
// The movie's view counter is incremented exactly once per call that
// passes the movie lookup; a duplicate rejection keeps the increment
// unless gateViewIncrement is set.
func (s *watchHistoryService) RecordWatch(ctx context.Context, userID string, movieID int64) (*dto.WatchHistoryResponse, error) {
	if _, err := s.movieRepo.GetByID(ctx, movieID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	if !s.gateViewIncrement {
		if err := s.movieRepo.IncrementViews(ctx, movieID); err != nil {
			return nil, err
		}
	}

	history, err := s.historyRepo.FindByUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		// lazily created on the first watch event
		history = &models.WatchHistory{UserID: userID}
		if err := s.historyRepo.Create(ctx, history); err != nil {
			return nil, err
		}
	}

	if _, _, err := history.Append(movieID); err != nil {
		if errors.Is(err, models.ErrDuplicateMovie) {
			return nil, ErrAlreadyInHistory
		}
		return nil, err
	}

	if err := s.historyRepo.Save(ctx, history); err != nil {
		return nil, err
	}

	if s.gateViewIncrement {
		if err := s.movieRepo.IncrementViews(ctx, movieID); err != nil {
			return nil, err
		}
	}

	return dto.FromModelToWatchHistoryResponse(history), nil
}

// GetHistory returns one page of the movies sequence plus pagination
// metadata. Page and limit must already be normalized by the caller.
func (s *watchHistoryService) GetHistory(ctx context.Context, userID string, page, limit int) (*dto.HistoryPageResponse, error) {
	history, err := s.historyRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHistoryNotFound
		}
		return nil, err
	}

	movies := history.MovieIDs()
	total := len(movies)

	skip := (page - 1) * limit
	if skip > total {
		skip = total
	}
	end := skip + limit
	if end > total {
		end = total
	}

	return &dto.HistoryPageResponse{
		WatchHistory: &dto.WatchHistoryResponse{
			ID:     history.ID,
			UserID: history.UserID,
			Movies: movies[skip:end],
		},
		Pagination: dto.NewHistoryPagination(total, page, limit),
	}, nil
}

// RemoveFromHistory deletes at most one occurrence of the movie. A
// missing record and a movie that is not a member both report
// ErrHistoryNotFound; the public API has never told them apart and
// clients match on the message.
func (s *watchHistoryService) RemoveFromHistory(ctx context.Context, userID string, movieID int64) (*dto.WatchHistoryResponse, error) {
	history, err := s.historyRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHistoryNotFound
		}
		return nil, err
	}

	if !history.Remove(movieID) {
		return nil, ErrHistoryNotFound
	}

	if err := s.historyRepo.Save(ctx, history); err != nil {
		return nil, err
	}

	return dto.FromModelToWatchHistoryResponse(history), nil
}
