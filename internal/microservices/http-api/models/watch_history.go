package models

import (
	"errors"
	"time"
)

// WatchHistoryCapacity is the maximum number of movies kept per user.
// Inserting past it evicts the oldest entry (FIFO).
const WatchHistoryCapacity = 10

// ErrDuplicateMovie is returned by Append when the movie is already present.
var ErrDuplicateMovie = errors.New("movie already in watch history")

// WatchHistory holds a user's recently watched movies. At most one record
// exists per user; entries are ordered oldest first.
type WatchHistory struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Entries []WatchHistoryEntry `gorm:"foreignKey:HistoryID;constraint:OnDelete:CASCADE;" json:"entries"`
}

func (WatchHistory) TableName() string {
	return "watch_histories"
}

type WatchHistoryEntry struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	HistoryID int64     `gorm:"not null;index" json:"history_id"`
	MovieID   int64     `gorm:"not null" json:"movie_id"`
	Position  int       `gorm:"not null" json:"position"`
	WatchedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"watched_at"`
}

func (WatchHistoryEntry) TableName() string {
	return "watch_history_entries"
}

// MovieIDs returns the movie ids oldest first.
func (h *WatchHistory) MovieIDs() []int64 {
	ids := make([]int64, 0, len(h.Entries))
	for _, e := range h.Entries {
		ids = append(ids, e.MovieID)
	}
	return ids
}

// Contains reports whether the movie is already in the history.
func (h *WatchHistory) Contains(movieID int64) bool {
	for _, e := range h.Entries {
		if e.MovieID == movieID {
			return true
		}
	}
	return false
}

// Append adds the movie as the newest entry. It rejects duplicates and,
// when the capacity is exceeded, evicts the oldest entry. The evicted
// movie id is returned when an eviction happened.
func (h *WatchHistory) Append(movieID int64) (evicted int64, didEvict bool, err error) {
	if h.Contains(movieID) {
		return 0, false, ErrDuplicateMovie
	}

	h.Entries = append(h.Entries, WatchHistoryEntry{
		HistoryID: h.ID,
		MovieID:   movieID,
		WatchedAt: time.Now(),
	})

	if len(h.Entries) > WatchHistoryCapacity {
		evicted = h.Entries[0].MovieID
		didEvict = true
		h.Entries = h.Entries[1:]
	}

	h.renumber()
	return evicted, didEvict, nil
}

// Remove deletes at most one occurrence of the movie, preserving the
// relative order of the remaining entries. It reports whether an entry
// was removed.
func (h *WatchHistory) Remove(movieID int64) bool {
	for i, e := range h.Entries {
		if e.MovieID == movieID {
			h.Entries = append(h.Entries[:i], h.Entries[i+1:]...)
			h.renumber()
			return true
		}
	}
	return false
}

func (h *WatchHistory) renumber() {
	for i := range h.Entries {
		h.Entries[i].Position = i
	}
}
