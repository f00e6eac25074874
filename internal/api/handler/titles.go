package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"

	"github.com/streamlens/streamlens-data/internal/api/respond"
	"github.com/streamlens/streamlens-data/internal/cache"
)

// TitleRecord is the API shape for a stored movie or series.
type TitleRecord struct {
	TMDBID           int64    `json:"tmdb_id"`
	Title            string   `json:"title"`
	ReleaseDate      *string  `json:"release_date"`
	Rating           *float64 `json:"rating"`
	Genre            *string  `json:"genre"`
	OriginalLanguage *string  `json:"original_language"`
	PosterPath       *string  `json:"poster_path"`
}

// TitleListResponse wraps a title listing with its count.
type TitleListResponse struct {
	Data  []TitleRecord `json:"data"`
	Count int           `json:"count"`
}

// ListMovies returns all stored movies.
// @Summary List movies
// @Description Returns all movies currently in the catalog.
// @Tags titles
// @Produce json
// @Success 200 {object} TitleListResponse
// @Router /movies [get]
func (h *Handler) ListMovies(w http.ResponseWriter, r *http.Request) {
	h.listTitles(w, r, "list_movies", "titles:movies")
}

// ListSeries returns all stored series.
// @Summary List series
// @Description Returns all series currently in the catalog.
// @Tags titles
// @Produce json
// @Success 200 {object} TitleListResponse
// @Router /series [get]
func (h *Handler) ListSeries(w http.ResponseWriter, r *http.Request) {
	h.listTitles(w, r, "list_series", "titles:series")
}

// GetMovie returns one movie by TMDB id.
// @Summary Get movie
// @Description Returns a single movie by its TMDB id.
// @Tags titles
// @Produce json
// @Param tmdbID path int true "TMDB id"
// @Success 200 {object} TitleRecord
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /movies/{tmdbID} [get]
func (h *Handler) GetMovie(w http.ResponseWriter, r *http.Request) {
	h.getTitle(w, r, "movie_by_id", "movie")
}

// GetSeries returns one series by TMDB id.
// @Summary Get series
// @Description Returns a single series by its TMDB id.
// @Tags titles
// @Produce json
// @Param tmdbID path int true "TMDB id"
// @Success 200 {object} TitleRecord
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /series/{tmdbID} [get]
func (h *Handler) GetSeries(w http.ResponseWriter, r *http.Request) {
	h.getTitle(w, r, "serie_by_id", "series")
}

func (h *Handler) listTitles(w http.ResponseWriter, r *http.Request, stmt, cacheKey string) {
	if data, etag, ok := h.cache.Get(cacheKey); ok {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.WriteNotModified(w, etag)
			return
		}
		respond.WriteJSON(w, data, etag, cache.TTLTitles, true)
		return
	}

	rows, err := h.pool.Query(r.Context(), stmt)
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "INTERNAL_ERROR",
			"Failed to load titles")
		return
	}
	defer rows.Close()

	titles := make([]TitleRecord, 0, 64)
	for rows.Next() {
		rec, err := scanTitle(rows)
		if err != nil {
			respond.WriteError(w, http.StatusInternalServerError, "INTERNAL_ERROR",
				"Failed to load titles")
			return
		}
		titles = append(titles, rec)
	}
	if rows.Err() != nil {
		respond.WriteError(w, http.StatusInternalServerError, "INTERNAL_ERROR",
			"Failed to load titles")
		return
	}

	body, err := json.Marshal(TitleListResponse{Data: titles, Count: len(titles)})
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "INTERNAL_ERROR",
			"Failed to encode titles")
		return
	}

	etag := h.cache.Set(cacheKey, body, cache.TTLTitles)
	respond.WriteJSON(w, body, etag, cache.TTLTitles, false)
}

func (h *Handler) getTitle(w http.ResponseWriter, r *http.Request, stmt, kind string) {
	id, err := strconv.ParseInt(chi.URLParam(r, "tmdbID"), 10, 64)
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_ID",
			"TMDB id must be an integer")
		return
	}

	cacheKey := fmt.Sprintf("title:%s:%d", kind, id)
	if data, etag, ok := h.cache.Get(cacheKey); ok {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.WriteNotModified(w, etag)
			return
		}
		respond.WriteJSON(w, data, etag, cache.TTLTitles, true)
		return
	}

	rec, err := scanTitle(h.pool.QueryRow(r.Context(), stmt, id))
	if errors.Is(err, pgx.ErrNoRows) {
		respond.WriteError(w, http.StatusNotFound, "NOT_FOUND",
			fmt.Sprintf("No %s with tmdb_id %d", kind, id))
		return
	}
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "INTERNAL_ERROR",
			"Failed to load title")
		return
	}

	body, err := json.Marshal(rec)
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "INTERNAL_ERROR",
			"Failed to encode title")
		return
	}

	etag := h.cache.Set(cacheKey, body, cache.TTLTitles)
	respond.WriteJSON(w, body, etag, cache.TTLTitles, false)
}

// scanTitle works for both pgx.Row and pgx.Rows.
func scanTitle(row pgx.Row) (TitleRecord, error) {
	var rec TitleRecord
	var released *time.Time
	err := row.Scan(&rec.TMDBID, &rec.Title, &released, &rec.Rating,
		&rec.Genre, &rec.OriginalLanguage, &rec.PosterPath)
	if err != nil {
		return rec, err
	}
	if released != nil {
		s := released.Format("2006-01-02")
		rec.ReleaseDate = &s
	}
	return rec, nil
}
