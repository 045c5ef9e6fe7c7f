package comment

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/clipnote/clipnote/internal/auth"
	"github.com/clipnote/clipnote/internal/database"
	"github.com/clipnote/clipnote/internal/httputil"
	"github.com/go-chi/chi/v5"
)

// ListCache holds marshaled list payloads keyed by video id. A nil cache
// disables caching entirely.
type ListCache interface {
	Get(ctx context.Context, videoID string) ([]byte, bool)
	Set(ctx context.Context, videoID string, payload []byte)
	Invalidate(ctx context.Context, videoID string)
}

type Handler struct {
	svc   *Service
	cache ListCache
}

func NewHandler(db database.DBTX, cache ListCache) *Handler {
	return &Handler{svc: NewService(db), cache: cache}
}

type createRequest struct {
	VideoID   string   `json:"video_id"`
	Comment   string   `json:"comment"`
	Timestamp *float64 `json:"timestamp"`
}

// List serves GET /api/video-comments?video_id=... and is open to everyone.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	videoID := r.URL.Query().Get("video_id")

	if h.cache != nil {
		if payload, ok := h.cache.Get(r.Context(), videoID); ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write(payload)
			return
		}
	}

	comments, err := h.svc.List(r.Context(), videoID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	payload, err := json.Marshal(comments)
	if err != nil {
		httputil.WriteError(w, http.StatusInternalServerError, "could not encode comments")
		return
	}

	if h.cache != nil {
		h.cache.Set(r.Context(), videoID, payload)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}

// Create serves POST /api/video-comments. The auth middleware has already
// rejected anonymous callers before this runs.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	actor := Actor{ID: auth.UserIDFromContext(r.Context())}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Create(r.Context(), actor, req.VideoID, req.Comment, req.Timestamp)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	if h.cache != nil {
		h.cache.Invalidate(r.Context(), req.VideoID)
	}

	httputil.WriteJSON(w, http.StatusCreated, created)
}

// Delete serves DELETE /api/video-comments/{id}. Only the stored owner may
// delete; everyone else gets a generic 403.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	actor := Actor{ID: auth.UserIDFromContext(r.Context())}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.WriteError(w, http.StatusNotFound, "comment not found")
		return
	}

	videoID, err := h.svc.Delete(r.Context(), actor, id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	if h.cache != nil {
		h.cache.Invalidate(r.Context(), videoID)
	}

	httputil.WriteMessage(w, http.StatusOK, "comment deleted")
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	var vErr *ValidationError
	switch {
	case errors.As(err, &vErr):
		httputil.WriteFieldError(w, http.StatusBadRequest, vErr.Field, vErr.Message)
	case errors.Is(err, ErrNotFound):
		httputil.WriteError(w, http.StatusNotFound, "comment not found")
	case errors.Is(err, ErrNotOwner):
		httputil.WriteError(w, http.StatusForbidden, "forbidden")
	default:
		slog.Error("comment operation failed", "error", err)
		httputil.WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}
