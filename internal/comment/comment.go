// Package comment implements timestamp-anchored video comments: storage,
// validation, ordering, and owner-gated deletion.
package comment

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/clipnote/clipnote/internal/database"
	"github.com/clipnote/clipnote/internal/validate"
	"github.com/jackc/pgx/v5"
)

var (
	ErrNotFound = errors.New("comment not found")
	ErrNotOwner = errors.New("not the comment owner")
)

// ValidationError reports which request field failed and why.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Actor is the authenticated identity performing an operation. It is always
// passed in explicitly; the service never reads auth state from anywhere else.
type Actor struct {
	ID string
}

// Comment is the denormalized view returned to callers: the owning user's
// display name is joined in and the anchor is pre-formatted, so raw foreign
// keys never leak past the service.
type Comment struct {
	ID                 int64   `json:"id"`
	Username           string  `json:"username"`
	UserID             string  `json:"user_id"`
	Text               string  `json:"text"`
	Timestamp          float64 `json:"timestamp"`
	TimestampFormatted string  `json:"timestamp_formatted"`
	CreatedAt          string  `json:"created_at"`
}

type Service struct {
	db database.DBTX
}

func NewService(db database.DBTX) *Service {
	return &Service{db: db}
}

// List returns all comments for a video ordered by anchor timestamp; equal
// anchors keep insertion order via the serial id.
func (s *Service) List(ctx context.Context, videoID string) ([]Comment, error) {
	if msg := validate.VideoID(videoID); msg != "" {
		return nil, &ValidationError{Field: "video_id", Message: msg}
	}

	rows, err := s.db.Query(ctx,
		`SELECT c.id, c.user_id, u.name, c.body, c.timestamp_seconds, c.created_at
		 FROM video_comments c
		 JOIN users u ON u.id = c.user_id
		 WHERE c.video_id = $1
		 ORDER BY c.timestamp_seconds ASC, c.id ASC`,
		videoID,
	)
	if err != nil {
		return nil, fmt.Errorf("query comments: %w", err)
	}
	defer rows.Close()

	var comments []Comment
	for rows.Next() {
		var (
			id        int64
			userID    string
			username  string
			body      string
			timestamp float64
			createdAt time.Time
		)
		if err := rows.Scan(&id, &userID, &username, &body, &timestamp, &createdAt); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, Comment{
			ID:                 id,
			Username:           username,
			UserID:             userID,
			Text:               body,
			Timestamp:          timestamp,
			TimestampFormatted: FormatTimestamp(timestamp),
			CreatedAt:          createdAt.Format(time.RFC3339),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}

	if comments == nil {
		comments = []Comment{}
	}

	return comments, nil
}

// Create persists a comment owned by actor. Identical repeated submissions
// create distinct rows; there is no dedup.
func (s *Service) Create(ctx context.Context, actor Actor, videoID, text string, timestamp *float64) (Comment, error) {
	if msg := validate.VideoID(videoID); msg != "" {
		return Comment{}, &ValidationError{Field: "video_id", Message: msg}
	}
	if msg := validate.Comment(text); msg != "" {
		return Comment{}, &ValidationError{Field: "comment", Message: msg}
	}
	if timestamp == nil {
		return Comment{}, &ValidationError{Field: "timestamp", Message: "timestamp is required"}
	}
	if math.IsNaN(*timestamp) || math.IsInf(*timestamp, 0) {
		return Comment{}, &ValidationError{Field: "timestamp", Message: "timestamp must be a finite number"}
	}
	if *timestamp < 0 {
		return Comment{}, &ValidationError{Field: "timestamp", Message: "timestamp must be zero or greater"}
	}

	var id int64
	var createdAt time.Time
	err := s.db.QueryRow(ctx,
		`INSERT INTO video_comments (user_id, video_id, body, timestamp_seconds)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		actor.ID, videoID, text, *timestamp,
	).Scan(&id, &createdAt)
	if err != nil {
		return Comment{}, fmt.Errorf("insert comment: %w", err)
	}

	var username string
	if err := s.db.QueryRow(ctx, `SELECT name FROM users WHERE id = $1`, actor.ID).Scan(&username); err != nil {
		return Comment{}, fmt.Errorf("lookup comment author: %w", err)
	}

	return Comment{
		ID:                 id,
		Username:           username,
		UserID:             actor.ID,
		Text:               text,
		Timestamp:          *timestamp,
		TimestampFormatted: FormatTimestamp(*timestamp),
		CreatedAt:          createdAt.Format(time.RFC3339),
	}, nil
}

// Delete removes a comment permanently. Ownership is checked against the
// stored user_id, never against anything the client supplies. The removed
// comment's video id is returned so callers can invalidate caches.
func (s *Service) Delete(ctx context.Context, actor Actor, id int64) (string, error) {
	var ownerID, videoID string
	err := s.db.QueryRow(ctx,
		`SELECT user_id, video_id FROM video_comments WHERE id = $1`, id,
	).Scan(&ownerID, &videoID)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("lookup comment: %w", err)
	}

	if ownerID != actor.ID {
		return "", ErrNotOwner
	}

	if _, err := s.db.Exec(ctx, `DELETE FROM video_comments WHERE id = $1`, id); err != nil {
		return "", fmt.Errorf("delete comment: %w", err)
	}

	return videoID, nil
}
