package repository

import (
	"errors"

	"moviehub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(review *models.Review) error
	Update(review *models.Review) error
	Delete(userID string, movieID int64) error
	GetByUserAndMovie(userID string, movieID int64) (*models.Review, error)
	GetByMovie(movieID int64, page, pageSize int) ([]models.Review, int64, error)
	GetByUser(userID string) ([]models.Review, error)
	CalculateAverageRating(movieID int64) (float64, error)
	CalculateAverageRatings() (map[int64]float64, error)
	CountReviews(movieID int64) (int64, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// Create a new review
func (r *reviewRepository) Create(review *models.Review) error {
	return r.db.Create(review).Error
}

// Update an existing review
func (r *reviewRepository) Update(review *models.Review) error {
	return r.db.Save(review).Error
}

// Delete a review by user and movie
func (r *reviewRepository) Delete(userID string, movieID int64) error {
	result := r.db.Where("user_id = ? AND movie_id = ?", userID, movieID).Delete(&models.Review{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("review not found")
	}
	return nil
}

// GetByUserAndMovie retrieves a user's review for a specific movie
func (r *reviewRepository) GetByUserAndMovie(userID string, movieID int64) (*models.Review, error) {
	var review models.Review
	err := r.db.Where("user_id = ? AND movie_id = ?", userID, movieID).
		Preload("User").
		First(&review).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// GetByMovie retrieves all reviews for a specific movie with pagination
func (r *reviewRepository) GetByMovie(movieID int64, page, pageSize int) ([]models.Review, int64, error) {
	var reviews []models.Review
	var total int64

	if err := r.db.Model(&models.Review{}).Where("movie_id = ?", movieID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := r.db.Where("movie_id = ?", movieID).
		Preload("User").
		Order("created_at DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&reviews).Error

	if err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

// GetByUser retrieves every review authored by a user. The recommendation
// engine uses these as the rating-history signal.
func (r *reviewRepository) GetByUser(userID string) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.Where("user_id = ?", userID).Order("id asc").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// CalculateAverageRating calculates the average rating for a movie
func (r *reviewRepository) CalculateAverageRating(movieID int64) (float64, error) {
	var avg struct {
		Average float64
	}

	err := r.db.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) as average").
		Where("movie_id = ?", movieID).
		Scan(&avg).Error

	if err != nil {
		return 0, err
	}

	return avg.Average, nil
}

// CalculateAverageRatings returns the review average per movie id in one
// query. The recommendation engine feeds its rating signal from this map.
func (r *reviewRepository) CalculateAverageRatings() (map[int64]float64, error) {
	var rows []struct {
		MovieID int64
		Average float64
	}

	err := r.db.Model(&models.Review{}).
		Select("movie_id, AVG(rating) as average").
		Group("movie_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	averages := make(map[int64]float64, len(rows))
	for _, row := range rows {
		averages[row.MovieID] = row.Average
	}
	return averages, nil
}

// CountReviews counts the total number of reviews for a movie
func (r *reviewRepository) CountReviews(movieID int64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Review{}).Where("movie_id = ?", movieID).Count(&count).Error
	return count, err
}
