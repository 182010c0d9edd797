package repository

import (
	"moviehub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(user *models.User) error
	FindByUsername(username string) (*models.User, error)
	FindByID(id string) (*models.User, error)
	FindByIDWithPreferences(id string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	SetSubscribed(id string, subscribed bool) error
	ReplaceFavoriteGenres(userID string, genreIDs []int64) error
	ReplaceFavoritePersons(userID string, personIDs []int64) error
	GetActivity(userID string) ([]models.UserActivity, error)
	AppendActivity(userID string, movieID int64) error
	FindSubscribedByFavoriteGenres(genreIDs []int64) ([]models.User, error)
}

// userRepository is the GORM implementation of UserRepository.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of UserRepository in a GORM implementation
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	// return nil on miss, never a zero-value struct
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByIDWithPreferences loads the user together with the favorite-genre
// and favorite-person associations used by the recommendation engine.
func (r *userRepository) FindByIDWithPreferences(id string) (*models.User, error) {
	var user models.User
	if err := r.db.
		Preload("FavoriteGenres").
		Preload("FavoritePersons").
		First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) SetSubscribed(id string, subscribed bool) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Update("is_subscribed", subscribed).Error
}

func (r *userRepository) ReplaceFavoriteGenres(userID string, genreIDs []int64) error {
	var user models.User
	if err := r.db.First(&user, "id = ?", userID).Error; err != nil {
		return err
	}
	genres := make([]models.Genre, 0, len(genreIDs))
	for _, id := range genreIDs {
		genres = append(genres, models.Genre{ID: id})
	}
	return r.db.Model(&user).Association("FavoriteGenres").Replace(&genres)
}

func (r *userRepository) ReplaceFavoritePersons(userID string, personIDs []int64) error {
	var user models.User
	if err := r.db.First(&user, "id = ?", userID).Error; err != nil {
		return err
	}
	persons := make([]models.Person, 0, len(personIDs))
	for _, id := range personIDs {
		persons = append(persons, models.Person{ID: id})
	}
	return r.db.Model(&user).Association("FavoritePersons").Replace(&persons)
}

// GetActivity returns the user's viewing-activity rows in insertion order
// (oldest first). Position in this sequence is the recency signal.
func (r *userRepository) GetActivity(userID string) ([]models.UserActivity, error) {
	var activity []models.UserActivity
	if err := r.db.
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&activity).Error; err != nil {
		return nil, err
	}
	return activity, nil
}

func (r *userRepository) AppendActivity(userID string, movieID int64) error {
	return r.db.Create(&models.UserActivity{UserID: userID, MovieID: movieID}).Error
}

// FindSubscribedByFavoriteGenres returns subscribed users having at least
// one of the given genres among their favorites. Used by the approval
// notification fan-out.
func (r *userRepository) FindSubscribedByFavoriteGenres(genreIDs []int64) ([]models.User, error) {
	if len(genreIDs) == 0 {
		return nil, nil
	}
	var users []models.User
	if err := r.db.
		Distinct("users.*").
		Joins("JOIN user_favorite_genres ufg ON ufg.user_id = users.id").
		Where("users.is_subscribed = ? AND ufg.genre_id IN ?", true, genreIDs).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
