package service

import (
	"context"
	"errors"
	"strings"

	"moviehub/internal/microservices/http-api/models"
	"moviehub/internal/microservices/http-api/repository"

	"gorm.io/gorm"
)

var ErrPersonNotFound = errors.New("person not found")

type PersonService interface {
	GetAll(ctx context.Context, page, pageSize int) ([]models.Person, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Person, error)
	Create(ctx context.Context, p *models.Person) error
	Update(ctx context.Context, id int64, p *models.Person) error
	Delete(ctx context.Context, id int64) error
	GetMoviesByPerson(ctx context.Context, personID int64) ([]models.Movie, error)
}

type personService struct {
	repo *repository.PersonRepo
}

func NewPersonService(repo *repository.PersonRepo) PersonService {
	return &personService{repo: repo}
}

func (s *personService) GetAll(ctx context.Context, page, pageSize int) ([]models.Person, int64, error) {
	return s.repo.GetAll(ctx, page, pageSize)
}

func (s *personService) GetByID(ctx context.Context, id int64) (*models.Person, error) {
	person, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPersonNotFound
		}
		return nil, err
	}
	return person, nil
}

func (s *personService) Create(ctx context.Context, p *models.Person) error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("name is required")
	}
	p.Name = strings.TrimSpace(p.Name)
	return s.repo.Create(ctx, p)
}

func (s *personService) Update(ctx context.Context, id int64, p *models.Person) error {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if strings.TrimSpace(p.Name) != "" {
		existing.Name = strings.TrimSpace(p.Name)
	}
	if p.Bio != nil {
		existing.Bio = p.Bio
	}
	if p.BirthDate != nil {
		existing.BirthDate = p.BirthDate
	}

	return s.repo.Update(ctx, id, existing)
}

func (s *personService) Delete(ctx context.Context, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *personService) GetMoviesByPerson(ctx context.Context, personID int64) ([]models.Movie, error) {
	if _, err := s.GetByID(ctx, personID); err != nil {
		return nil, err
	}
	return s.repo.GetMoviesByPerson(ctx, personID)
}
