package models

// explicit join model to match the migration (has its own id)
type MovieGenre struct {
	ID      int64 `json:"id" gorm:"primaryKey;autoIncrement"`
	MovieID int64 `json:"movie_id" gorm:"index;not null"`
	GenreID int64 `json:"genre_id" gorm:"index;not null"`
}

func (MovieGenre) TableName() string {
	return "movie_genres"
}
