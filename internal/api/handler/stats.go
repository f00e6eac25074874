package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"

	"github.com/streamlens/streamlens-data/internal/api/respond"
	"github.com/streamlens/streamlens-data/internal/cache"
	"github.com/streamlens/streamlens-data/internal/config"
)

// GetStatistics returns the latest snapshot for a (stat_type, media_type) key.
// @Summary Get latest statistics snapshot
// @Description Returns the latest aggregate payload for a media kind and stat type. Distribution payloads carry data/total/count; rating payloads carry data/total_ratings/average_rating.
// @Tags statistics
// @Produce json
// @Param mediaType path string true "Media type" Enums(movies, series)
// @Param statType path string true "Stat type" Enums(country_distribution, genre_distribution, yearly_distribution, country_avg_ratings, genre_avg_ratings)
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /statistics/{mediaType}/{statType} [get]
func (h *Handler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	mediaType := config.MediaKind(chi.URLParam(r, "mediaType"))
	statType := chi.URLParam(r, "statType")

	if !mediaType.Valid() {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_MEDIA_TYPE",
			"Media type must be 'movies' or 'series'")
		return
	}
	if !config.ValidStatType(statType) {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_STAT_TYPE",
			fmt.Sprintf("Unknown stat type %q", statType))
		return
	}

	cacheKey := fmt.Sprintf("stats:%s:%s", statType, mediaType)

	// Check cache
	if data, etag, ok := h.cache.Get(cacheKey); ok {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.WriteNotModified(w, etag)
			return
		}
		respond.WriteJSON(w, data, etag, cache.TTLStats, true)
		return
	}

	// Query Postgres — the stats row holds the complete JSON payload.
	var raw []byte
	var createdAt time.Time
	err := h.pool.QueryRow(r.Context(), "get_latest_stat",
		statType, string(mediaType)).Scan(&raw, &createdAt)
	if errors.Is(err, pgx.ErrNoRows) {
		respond.WriteError(w, http.StatusNotFound, "NOT_FOUND",
			fmt.Sprintf("No %s snapshot for %s", statType, mediaType))
		return
	}
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "INTERNAL_ERROR",
			"Failed to load statistics snapshot")
		return
	}

	etag := h.cache.Set(cacheKey, raw, cache.TTLStats)
	respond.WriteJSON(w, raw, etag, cache.TTLStats, false)
}
