package page

import (
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/clipnote/clipnote/internal/httputil"
	"github.com/clipnote/clipnote/internal/validate"
)

// Handler serves the server-rendered pages.
type Handler struct {
	defaultVideoID string
}

func NewHandler(defaultVideoID string) *Handler {
	return &Handler{defaultVideoID: defaultVideoID}
}

type watchPageData struct {
	VideoID string
	Nonce   string
}

var watchPageTemplate = template.Must(template.New("watch").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>Watch — ClipNote</title>
    <style nonce="{{.Nonce}}">` + appCSS + `</style>
</head>
<body>
    <div class="container">
        <header>
            <div class="logo">ClipNote</div>
            <nav class="nav">
                <div id="nav-signed-out">
                    <a href="/login">Sign in</a>
                    <a href="/register">Create account</a>
                </div>
                <div id="nav-signed-in" class="hidden">
                    <span class="username" id="nav-username"></span>
                    <button type="button" id="logout-btn">Sign out</button>
                </div>
            </nav>
        </header>

        <div class="player-region">
            <div class="player-container" id="player-container"></div>
            <div class="player-loading" id="player-loading">Loading player...</div>
        </div>

        <section class="new-comment-section hidden" id="new-comment-section">
            <div class="new-comment-header">
                <span class="new-comment-title">COMMENT AT</span>
                <span class="new-comment-time" id="comment-time">00:00</span>
            </div>
            <form id="comment-form">
                <textarea class="comment-input" id="comment-input" maxlength="1000" placeholder="Add a comment at the current timestamp..."></textarea>
                <button type="submit" class="submit-button">Comment</button>
            </form>
        </section>

        <div class="login-prompt hidden" id="login-prompt">
            <p>Sign in to leave a comment at the current timestamp.</p>
            <a href="/login">Sign in</a>
        </div>

        <section class="comments-section">
            <h2>Comments</h2>
            <div id="comments-list"></div>
        </section>
    </div>

    <div class="notice hidden" id="notice"></div>

    <script src="https://player.vimeo.com/api/player.js"></script>
    <script nonce="{{.Nonce}}">` + playerJS + appJS + `
        initWatchPage({{.VideoID}});
    </script>
</body>
</html>`))

// Home serves the watch page for the configured default video.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, h.defaultVideoID)
}

func (h *Handler) WatchPage(w http.ResponseWriter, r *http.Request) {
	videoID := chi.URLParam(r, "videoID")
	if msg := validate.VideoID(videoID); msg != "" {
		http.NotFound(w, r)
		return
	}
	h.render(w, r, videoID)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, videoID string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := watchPageTemplate.Execute(w, watchPageData{
		VideoID: videoID,
		Nonce:   httputil.NonceFromContext(r.Context()),
	}); err != nil {
		slog.Error("page: failed to render watch page", "error", err)
	}
}
