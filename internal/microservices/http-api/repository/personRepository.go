package repository

import (
	"context"
	"fmt"

	"moviehub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type PersonRepo struct {
	db *gorm.DB
}

func NewPersonRepo(db *gorm.DB) *PersonRepo {
	return &PersonRepo{db: db}
}

func (r *PersonRepo) GetAll(ctx context.Context, page, pageSize int) ([]models.Person, int64, error) {
	var list []models.Person
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Person{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := r.db.WithContext(ctx).
		Order("name asc").
		Limit(pageSize).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *PersonRepo) GetByID(ctx context.Context, id int64) (*models.Person, error) {
	var p models.Person
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PersonRepo) Create(ctx context.Context, p *models.Person) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("create person: %w", err)
	}
	return nil
}

func (r *PersonRepo) Update(ctx context.Context, id int64, p *models.Person) error {
	p.ID = id
	if err := r.db.WithContext(ctx).Save(p).Error; err != nil {
		return fmt.Errorf("update person: %w", err)
	}
	return nil
}

func (r *PersonRepo) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&models.Person{}, id).Error; err != nil {
		return fmt.Errorf("delete person: %w", err)
	}
	return nil
}

// GetMoviesByPerson returns movies this person directed or appeared in.
func (r *PersonRepo) GetMoviesByPerson(ctx context.Context, personID int64) ([]models.Movie, error) {
	var list []models.Movie
	if err := r.db.WithContext(ctx).
		Model(&models.Movie{}).
		Joins("LEFT JOIN movie_cast mc ON mc.movie_id = movies.id").
		Where("movies.director_id = ? OR mc.person_id = ?", personID, personID).
		Distinct("movies.*").
		Preload("Genres").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get movies by person: %w", err)
	}
	return list, nil
}
