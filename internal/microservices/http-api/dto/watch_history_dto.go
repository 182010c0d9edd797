package dto

import (
	"moviehub/internal/microservices/http-api/models"
)

// RecordWatchRequest is the POST /watch-history body.
type RecordWatchRequest struct {
	UserID  string `json:"userId" binding:"required,uuid"`
	MovieID int64  `json:"movieId" binding:"required"`
}

// WatchHistoryResponse mirrors the stored record: movie ids oldest first.
type WatchHistoryResponse struct {
	ID     int64   `json:"id"`
	UserID string  `json:"userId"`
	Movies []int64 `json:"movies"`
}

// FromModelToWatchHistoryResponse converts a WatchHistory model to its DTO
func FromModelToWatchHistoryResponse(h *models.WatchHistory) *WatchHistoryResponse {
	return &WatchHistoryResponse{
		ID:     h.ID,
		UserID: h.UserID,
		Movies: h.MovieIDs(),
	}
}

// HistoryPagination carries the page metadata of a history page.
// Field names follow the public API contract.
type HistoryPagination struct {
	CurrentPage  int  `json:"currentPage"`
	TotalPages   int  `json:"totalPages"`
	TotalItems   int  `json:"totalItems"`
	ItemsPerPage int  `json:"itemsPerPage"`
	HasNextPage  bool `json:"hasNextPage"`
	HasPrevPage  bool `json:"hasPrevPage"`
}

// HistoryPageResponse is the GET /watch-history/:user_id payload.
type HistoryPageResponse struct {
	WatchHistory *WatchHistoryResponse `json:"watchHistory"`
	Pagination   HistoryPagination     `json:"pagination"`
}

// NewHistoryPagination computes the metadata for a page over total items.
func NewHistoryPagination(total, page, limit int) HistoryPagination {
	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}

	return HistoryPagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   total,
		ItemsPerPage: limit,
		HasNextPage:  page*limit < total,
		HasPrevPage:  page > 1,
	}
}
