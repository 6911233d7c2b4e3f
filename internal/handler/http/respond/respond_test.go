package respond

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"
)

func TestJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	JSON(rec, 201, map[string]int{"id": 7})

	if rec.Code != 201 {
		t.Errorf("status = %d, want 201", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var body map[string]int
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["id"] != 7 {
		t.Errorf("body id = %d, want 7", body["id"])
	}
}

func TestSafeError(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		err      error
		wantBody string
	}{
		{"validation error passes through", 400, errors.New("text is required"), "text is required"},
		{"not found passes through", 404, errors.New("summary not found"), "summary not found"},
		{"unsupported passes through", 422, errors.New("unsupported script"), "unsupported script"},
		{"internal detail is masked", 400, errors.New("dial tcp 10.0.0.1:5432: connection refused"), "internal server error"},
		{"5xx is always masked", 500, errors.New("summary not found"), "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			SafeError(rec, tt.code, tt.err)

			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid JSON body: %v", err)
			}
			if body["error"] != tt.wantBody {
				t.Errorf("error message = %q, want %q", body["error"], tt.wantBody)
			}
		})
	}
}

func TestSanitizeError(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"dsn password", "connect postgres://app:hunter2@db:5432/x failed", "connect postgres://app:****@db:5432/x failed"},
		{"bearer token", "request with Bearer eyJhbGciOi.abc_d rejected", "request with Bearer **** rejected"},
		{"plain message", "summary not found", "summary not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeError(errors.New(tt.in)); got != tt.want {
				t.Errorf("SanitizeError() = %q, want %q", got, tt.want)
			}
		})
	}
}
