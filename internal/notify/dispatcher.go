package notify

import (
	"context"
	"fmt"
	"log/slog"

	"moviehub/internal/microservices/http-api/models"
	"moviehub/internal/microservices/http-api/repository"
)

// Dispatcher fans out a notification to every subscribed user whose
// favorite genres overlap an approved movie's genres. Delivery runs on
// the worker pool so approval requests never wait on it.
type Dispatcher struct {
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
	pool             *WorkerPool
}

func NewDispatcher(userRepo repository.UserRepository, notificationRepo repository.NotificationRepository, pool *WorkerPool) *Dispatcher {
	return &Dispatcher{
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		pool:             pool,
	}
}

// MovieApproved queues one notification per matching subscriber.
func (d *Dispatcher) MovieApproved(movie *models.Movie) {
	genreIDs := make([]int64, 0, len(movie.Genres))
	for _, g := range movie.Genres {
		genreIDs = append(genreIDs, g.ID)
	}
	if len(genreIDs) == 0 {
		return
	}

	movieID := movie.ID
	title := movie.Title

	d.pool.Submit(func(ctx context.Context) error {
		users, err := d.userRepo.FindSubscribedByFavoriteGenres(genreIDs)
		if err != nil {
			return fmt.Errorf("find subscribers for movie %d: %w", movieID, err)
		}

		for _, u := range users {
			n := &models.Notification{
				UserID:  u.ID,
				Type:    "NEW_MOVIE",
				MovieID: movieID,
				Title:   title,
				Message: fmt.Sprintf("New movie in your favorite genres: %s", title),
			}
			if err := d.notificationRepo.Create(ctx, n); err != nil {
				slog.Error("create notification failed", "user_id", u.ID, "movie_id", movieID, "error", err)
			}
		}

		slog.Info("movie approval notifications sent", "movie_id", movieID, "recipients", len(users))
		return nil
	})
}
