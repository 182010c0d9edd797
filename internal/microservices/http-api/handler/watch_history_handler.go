package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"moviehub/internal/microservices/http-api/dto"
	"moviehub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type WatchHistoryHandler struct {
	svc service.WatchHistoryService
}

func NewWatchHistoryHandler(svc service.WatchHistoryService) *WatchHistoryHandler {
	return &WatchHistoryHandler{svc: svc}
}

func (h *WatchHistoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/", h.Record)
	rg.GET("/:user_id", h.Get)
	rg.DELETE("/:user_id/:movie_id", h.Remove)
}

// Record appends a movie to the user's watch history. The history keeps
// the ten most recent distinct movies; recording an eleventh evicts the
// oldest entry.
func (h *WatchHistoryHandler) Record(c *gin.Context) {
	var req dto.RecordWatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	history, err := h.svc.RecordWatch(ctx, req.UserID, req.MovieID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMovieNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "movie not found"})
		case errors.Is(err, service.ErrAlreadyInHistory):
			c.JSON(http.StatusBadRequest, gin.H{"error": "movie already in watch history"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, history)
}

// Get returns one page of the user's watch history, oldest first.
func (h *WatchHistoryHandler) Get(c *gin.Context) {
	userID := c.Param("user_id")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 {
		limit = 10
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	resp, err := h.svc.GetHistory(ctx, userID, page, limit)
	if err != nil {
		if errors.Is(err, service.ErrHistoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "watch history not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Remove deletes a single movie from the user's history. The relative
// order of the remaining entries does not change.
func (h *WatchHistoryHandler) Remove(c *gin.Context) {
	userID := c.Param("user_id")

	movieID, err := strconv.ParseInt(c.Param("movie_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid movie id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	history, err := h.svc.RemoveFromHistory(ctx, userID, movieID)
	if err != nil {
		if errors.Is(err, service.ErrHistoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "watch history not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, history)
}
