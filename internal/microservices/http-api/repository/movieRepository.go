package repository

import (
	"context"
	"fmt"
	"strings"

	"moviehub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type MovieRepo struct {
	db *gorm.DB
}

func NewMovieRepo(db *gorm.DB) *MovieRepo {
	return &MovieRepo{db: db}
}

func (r *MovieRepo) GetAll(ctx context.Context, page, pageSize int) ([]models.Movie, int64, error) {
	var list []models.Movie
	var total int64

	// Count total records
	if err := r.db.WithContext(ctx).Model(&models.Movie{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize

	if err := r.db.WithContext(ctx).
		Preload("Genres").
		Order("created_at desc").
		Limit(pageSize).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *MovieRepo) GetByID(ctx context.Context, id int64) (*models.Movie, error) {
	var m models.Movie
	if err := r.db.WithContext(ctx).
		Preload("Genres").
		Preload("Director").
		Preload("Cast").
		First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MovieRepo) Create(ctx context.Context, m *models.Movie) error {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("create movie: %w", err)
	}
	return nil
}

func (r *MovieRepo) Update(ctx context.Context, id int64, m *models.Movie) error {
	// ensure ID set for Save
	m.ID = id
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return fmt.Errorf("update movie: %w", err)
	}
	return nil
}

func (r *MovieRepo) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&models.Movie{}, id).Error; err != nil {
		return fmt.Errorf("delete movie: %w", err)
	}
	return nil
}

// ListApproved returns every approved movie with genres preloaded, in
// catalog insertion order. The recommendation engine scans this set.
func (r *MovieRepo) ListApproved(ctx context.Context) ([]models.Movie, error) {
	var list []models.Movie
	if err := r.db.WithContext(ctx).
		Preload("Genres").
		Where("is_approved = ?", true).
		Order("id asc").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list approved movies: %w", err)
	}
	return list, nil
}

// IncrementViews bumps the movie's view counter by 1 atomically.
func (r *MovieRepo) IncrementViews(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).
		Model(&models.Movie{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1))
	if result.Error != nil {
		return fmt.Errorf("increment views: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SearchByTitle performs case-insensitive partial match on title.
// Splits query into tokens and requires each token to appear in the title.
func (r *MovieRepo) SearchByTitle(ctx context.Context, title string) ([]models.Movie, error) {
	var list []models.Movie
	tokens := strings.Fields(title)
	db := r.db.WithContext(ctx)

	// if empty tokens, return empty list
	if len(tokens) == 0 {
		return list, nil
	}

	clauses := make([]string, 0, len(tokens))
	args := make([]interface{}, 0, len(tokens))
	for _, t := range tokens {
		clauses = append(clauses, "title ILIKE ?")
		args = append(args, "%"+t+"%")
	}

	where := strings.Join(clauses, " AND ")
	if err := db.Preload("Genres").Where(where, args...).Order("created_at desc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("search movies by title: %w", err)
	}
	return list, nil
}

// GetTrending returns approved movies ordered by view count descending,
// ties broken by id ascending for a deterministic listing.
func (r *MovieRepo) GetTrending(ctx context.Context, limit int) ([]models.Movie, error) {
	var list []models.Movie
	if err := r.db.WithContext(ctx).
		Preload("Genres").
		Where("is_approved = ?", true).
		Order("views desc, id asc").
		Limit(limit).
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get trending movies: %w", err)
	}
	return list, nil
}

func (r *MovieRepo) ReplaceGenresForMovie(ctx context.Context, movieID int64, genreIDs []int64) error {
	tx := r.db.WithContext(ctx).Begin()
	var m models.Movie
	if err := tx.First(&m, movieID).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("movie not found: %w", err)
	}
	genres := make([]models.Genre, 0, len(genreIDs))
	for _, id := range genreIDs {
		genres = append(genres, models.Genre{ID: id})
	}
	if err := tx.Model(&m).Association("Genres").Replace(&genres); err != nil {
		tx.Rollback()
		return fmt.Errorf("replace genres: %w", err)
	}
	return tx.Commit().Error
}

func (r *MovieRepo) ReplaceCastForMovie(ctx context.Context, movieID int64, personIDs []int64) error {
	tx := r.db.WithContext(ctx).Begin()
	var m models.Movie
	if err := tx.First(&m, movieID).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("movie not found: %w", err)
	}
	persons := make([]models.Person, 0, len(personIDs))
	for _, id := range personIDs {
		persons = append(persons, models.Person{ID: id})
	}
	if err := tx.Model(&m).Association("Cast").Replace(&persons); err != nil {
		tx.Rollback()
		return fmt.Errorf("replace cast: %w", err)
	}
	return tx.Commit().Error
}
