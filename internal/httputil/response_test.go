package httputil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWriteJSONSetsContentTypeHeader(t *testing.T) {
	recorder := httptest.NewRecorder()

	WriteJSON(recorder, http.StatusOK, map[string]string{"key": "value"})

	contentType := recorder.Header().Get("Content-Type")
	if contentType != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", contentType)
	}
}

func TestWriteJSONSetsStatusCode(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
	}{
		{"OK", http.StatusOK},
		{"Created", http.StatusCreated},
		{"BadRequest", http.StatusBadRequest},
		{"InternalServerError", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()

			WriteJSON(recorder, tt.statusCode, map[string]string{"key": "value"})

			if recorder.Code != tt.statusCode {
				t.Errorf("expected status %d, got %d", tt.statusCode, recorder.Code)
			}
		})
	}
}

func TestWriteJSONEncodesSliceBody(t *testing.T) {
	recorder := httptest.NewRecorder()
	payload := []string{"alpha", "beta", "gamma"}

	WriteJSON(recorder, http.StatusOK, payload)

	var decoded []string
	err := json.NewDecoder(recorder.Body).Decode(&decoded)
	if err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	if len(decoded) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(decoded))
	}
	if decoded[0] != "alpha" || decoded[1] != "beta" || decoded[2] != "gamma" {
		t.Errorf("unexpected slice contents: %v", decoded)
	}
}

func TestWriteErrorProducesCorrectJSON(t *testing.T) {
	recorder := httptest.NewRecorder()

	WriteError(recorder, http.StatusBadRequest, "invalid input")

	var decoded ErrorBody
	err := json.NewDecoder(recorder.Body).Decode(&decoded)
	if err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	if decoded.Error != "invalid input" {
		t.Errorf("expected error=invalid input, got %s", decoded.Error)
	}
}

func TestWriteErrorSetsStatusCode(t *testing.T) {
	recorder := httptest.NewRecorder()

	WriteError(recorder, http.StatusForbidden, "forbidden")

	if recorder.Code != http.StatusForbidden {
		t.Errorf("expected status %d, got %d", http.StatusForbidden, recorder.Code)
	}
}

func TestWriteMessageProducesCorrectJSON(t *testing.T) {
	recorder := httptest.NewRecorder()

	WriteMessage(recorder, http.StatusOK, "comment deleted")

	if recorder.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, recorder.Code)
	}

	var decoded MessageBody
	err := json.NewDecoder(recorder.Body).Decode(&decoded)
	if err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	if decoded.Message != "comment deleted" {
		t.Errorf("expected message=comment deleted, got %s", decoded.Message)
	}
}

func TestWriteFieldErrorIncludesFieldDetail(t *testing.T) {
	recorder := httptest.NewRecorder()

	WriteFieldError(recorder, http.StatusBadRequest, "timestamp", "timestamp must be zero or greater")

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, recorder.Code)
	}

	var decoded FieldErrorBody
	err := json.NewDecoder(recorder.Body).Decode(&decoded)
	if err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	if decoded.Error != "timestamp must be zero or greater" {
		t.Errorf("unexpected error summary: %q", decoded.Error)
	}
	msgs := decoded.Fields["timestamp"]
	if len(msgs) != 1 || msgs[0] != "timestamp must be zero or greater" {
		t.Errorf("unexpected field detail: %v", decoded.Fields)
	}
}

func TestWriteFieldErrorWithVariousFields(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		message string
	}{
		{"VideoID", "video_id", "video_id is required"},
		{"Comment", "comment", "comment must be 1000 characters or fewer"},
		{"Timestamp", "timestamp", "timestamp is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()

			WriteFieldError(recorder, http.StatusBadRequest, tt.field, tt.message)

			var decoded FieldErrorBody
			if err := json.NewDecoder(recorder.Body).Decode(&decoded); err != nil {
				t.Fatalf("failed to decode response body: %v", err)
			}
			if len(decoded.Fields[tt.field]) != 1 || decoded.Fields[tt.field][0] != tt.message {
				t.Errorf("expected field %q with message %q, got %v", tt.field, tt.message, decoded.Fields)
			}
		})
	}
}
