package models

import "time"

type Movie struct {
	ID          int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string     `json:"title" gorm:"not null"`
	Overview    *string    `json:"overview,omitempty" gorm:"type:text"`
	DirectorID  *int64     `json:"director_id,omitempty" gorm:"index"`
	Popularity  float64    `json:"popularity" gorm:"default:0"`
	Views       int64      `json:"views" gorm:"default:0;check:views >= 0"`
	Runtime     *int       `json:"runtime,omitempty"`
	ReleaseDate *time.Time `json:"release_date,omitempty"`
	AgeRating   *string    `json:"age_rating,omitempty"`
	Language    *string    `json:"language,omitempty"`
	IsApproved  bool       `json:"is_approved" gorm:"default:false"`
	SellerID    *string    `json:"seller_id,omitempty" gorm:"type:uuid;index"`
	CreatedAt   *time.Time `json:"created_at,omitempty" gorm:"autoCreateTime"`

	// associations
	Genres   []Genre  `json:"genres,omitempty" gorm:"many2many:movie_genres;constraint:OnDelete:CASCADE;"`
	Director *Person  `json:"director,omitempty" gorm:"foreignKey:DirectorID"`
	Cast     []Person `json:"cast,omitempty" gorm:"many2many:movie_cast;constraint:OnDelete:CASCADE;"`
}

func (Movie) TableName() string {
	return "movies"
}

// GenreNames returns the movie's genre labels in association order.
func (m *Movie) GenreNames() []string {
	names := make([]string, 0, len(m.Genres))
	for _, g := range m.Genres {
		names = append(names, g.Name)
	}
	return names
}
