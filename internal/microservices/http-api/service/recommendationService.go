package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"

	"moviehub/internal/microservices/http-api/dto"
	"moviehub/internal/microservices/http-api/models"
	"moviehub/internal/microservices/http-api/repository"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

// Signal weights of the composite score. They sum to 1 so the score
// stays in [0,1] regardless of which signals fire.
const (
	genreWeight    = 0.4
	ratingWeight   = 0.3
	activityWeight = 0.3

	trendingCacheKey = "movies:trending"
	topRatedCacheKey = "movies:top-rated"
)

type RecommendationService interface {
	RecommendForUser(ctx context.Context, userID string) ([]dto.RecommendedMovieResponse, error)
	FindSimilar(ctx context.Context, movieID int64) ([]dto.SimilarMovieResponse, error)
	GetTrending(ctx context.Context, limit int) ([]dto.MovieBasicResponse, error)
	GetTopRated(ctx context.Context, limit int) ([]dto.MovieBasicResponse, error)
}

type recommendationService struct {
	movieRepo  MovieCatalog
	userRepo   repository.UserRepository
	reviewRepo repository.ReviewRepository
	rdb        *redis.Client
	cacheTTL   time.Duration
}

func NewRecommendationService(
	movieRepo MovieCatalog,
	userRepo repository.UserRepository,
	reviewRepo repository.ReviewRepository,
	rdb *redis.Client,
	cacheTTL time.Duration,
) RecommendationService {
	return &recommendationService{
		movieRepo:  movieRepo,
		userRepo:   userRepo,
		reviewRepo: reviewRepo,
		rdb:        rdb,
		cacheTTL:   cacheTTL,
	}
}

// RecommendForUser ranks the catalog for a user from three signals:
// favorite-genre overlap, the user's rating history (own rating when
// present, review average otherwise) and position in the activity
// sequence. The result is deterministic for unchanged data: score desc,
// popularity desc, then catalog insertion order.
func (s *recommendationService) RecommendForUser(ctx context.Context, userID string) ([]dto.RecommendedMovieResponse, error) {
	user, err := s.userRepo.FindByIDWithPreferences(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	movies, err := s.movieRepo.ListApproved(ctx)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	ownRatings := make(map[int64]int, len(reviews))
	for _, review := range reviews {
		ownRatings[review.MovieID] = review.Rating
	}

	activity, err := s.userRepo.GetActivity(userID)
	if err != nil {
		return nil, err
	}
	// last occurrence wins: rewatching moves a movie up the recency scale
	lastPos := make(map[int64]int, len(activity))
	for i, entry := range activity {
		lastPos[entry.MovieID] = i
	}

	averages, err := s.reviewRepo.CalculateAverageRatings()
	if err != nil {
		return nil, err
	}

	favorites := make(map[string]bool, len(user.FavoriteGenres))
	for _, g := range user.FavoriteGenres {
		favorites[g.Name] = true
	}

	type scoredMovie struct {
		movie models.Movie
		score float64
	}
	var candidates []scoredMovie

	for _, movie := range movies {
		genreMatch := false
		for _, g := range movie.Genres {
			if favorites[g.Name] {
				genreMatch = true
				break
			}
		}
		_, rated := ownRatings[movie.ID]
		pos, inActivity := lastPos[movie.ID]

		// candidate set is the union of the three signal sources
		if !genreMatch && !rated && !inActivity {
			continue
		}

		var score float64
		if genreMatch {
			score += genreWeight
		}
		if rated {
			score += ratingWeight * float64(ownRatings[movie.ID]) / 5.0
		} else if avg, ok := averages[movie.ID]; ok {
			score += ratingWeight * avg / 5.0
		}
		if inActivity {
			score += activityWeight * float64(pos+1) / float64(len(activity))
		}

		score = math.Round(score*10000) / 10000
		candidates = append(candidates, scoredMovie{movie: movie, score: score})
	}

	// movies arrive in id order; the stable sort keeps catalog insertion
	// order as the final tie-break
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].movie.Popularity > candidates[j].movie.Popularity
	})

	results := make([]dto.RecommendedMovieResponse, 0, len(candidates))
	for _, c := range candidates {
		results = append(results, dto.FromModelToRecommendedMovieResponse(&c.movie, c.score))
	}
	return results, nil
}

// FindSimilar returns every catalog movie sharing at least one genre
// label with the reference, ordered by shared-genre count then
// popularity. An empty result is not an error.
func (s *recommendationService) FindSimilar(ctx context.Context, movieID int64) ([]dto.SimilarMovieResponse, error) {
	reference, err := s.movieRepo.GetByID(ctx, movieID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	refGenres := make(map[string]bool, len(reference.Genres))
	for _, g := range reference.Genres {
		refGenres[g.Name] = true
	}

	movies, err := s.movieRepo.ListApproved(ctx)
	if err != nil {
		return nil, err
	}

	type match struct {
		movie  models.Movie
		shared int
	}
	var matches []match
	for _, movie := range movies {
		if movie.ID == reference.ID {
			continue
		}
		shared := 0
		for _, g := range movie.Genres {
			if refGenres[g.Name] {
				shared++
			}
		}
		if shared > 0 {
			matches = append(matches, match{movie: movie, shared: shared})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].shared != matches[j].shared {
			return matches[i].shared > matches[j].shared
		}
		return matches[i].movie.Popularity > matches[j].movie.Popularity
	})

	results := make([]dto.SimilarMovieResponse, 0, len(matches))
	for _, m := range matches {
		results = append(results, dto.FromModelToSimilarMovieResponse(&m.movie, m.shared))
	}
	return results, nil
}

// GetTrending lists approved movies by view count, Redis-cached.
func (s *recommendationService) GetTrending(ctx context.Context, limit int) ([]dto.MovieBasicResponse, error) {
	cacheKey := fmt.Sprintf("%s:%d", trendingCacheKey, limit)
	if cached, ok := s.fromCache(ctx, cacheKey); ok {
		return cached, nil
	}

	movies, err := s.movieRepo.GetTrending(ctx, limit)
	if err != nil {
		return nil, err
	}

	results := make([]dto.MovieBasicResponse, 0, len(movies))
	for i := range movies {
		results = append(results, dto.FromModelToMovieBasicResponse(&movies[i]))
	}

	s.toCache(ctx, cacheKey, results)
	return results, nil
}

// GetTopRated lists approved movies by review average, ties broken by
// movie id for determinism. Redis-cached like trending.
func (s *recommendationService) GetTopRated(ctx context.Context, limit int) ([]dto.MovieBasicResponse, error) {
	cacheKey := fmt.Sprintf("%s:%d", topRatedCacheKey, limit)
	if cached, ok := s.fromCache(ctx, cacheKey); ok {
		return cached, nil
	}

	movies, err := s.movieRepo.ListApproved(ctx)
	if err != nil {
		return nil, err
	}
	averages, err := s.reviewRepo.CalculateAverageRatings()
	if err != nil {
		return nil, err
	}

	// list is id-ordered, stable sort keeps id as the tie-break
	sort.SliceStable(movies, func(i, j int) bool {
		return averages[movies[i].ID] > averages[movies[j].ID]
	})
	if len(movies) > limit {
		movies = movies[:limit]
	}

	results := make([]dto.MovieBasicResponse, 0, len(movies))
	for i := range movies {
		results = append(results, dto.FromModelToMovieBasicResponse(&movies[i]))
	}

	s.toCache(ctx, cacheKey, results)
	return results, nil
}

func (s *recommendationService) fromCache(ctx context.Context, key string) ([]dto.MovieBasicResponse, bool) {
	if s.rdb == nil {
		return nil, false
	}
	cached, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		return nil, false
	}
	var results []dto.MovieBasicResponse
	if err := json.Unmarshal([]byte(cached), &results); err != nil {
		return nil, false
	}
	slog.Debug("movie list cache hit", "key", key)
	return results, true
}

func (s *recommendationService) toCache(ctx context.Context, key string, results []dto.MovieBasicResponse) {
	if s.rdb == nil {
		return
	}
	if data, err := json.Marshal(results); err == nil {
		s.rdb.Set(ctx, key, data, s.cacheTTL)
	}
}
