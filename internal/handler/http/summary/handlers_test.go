package summary_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fidel-summary/internal/domain/entity"
	"fidel-summary/internal/handler/http/auth"
	"fidel-summary/internal/handler/http/summary"
	"fidel-summary/internal/repository"
	"fidel-summary/internal/script"
	"fidel-summary/internal/summarize"
	sumUC "fidel-summary/internal/usecase/summary"
)

const amharicBody = "የኢትዮጵያ ኢኮኖሚ ባለፈው ዓመት በስድስት በመቶ አድጓል። " +
	"የእርሻ ምርት በተለይ በቡና ዘርፍ ከፍተኛ ጭማሪ አሳይቷል። " +
	"መንግሥት አዳዲስ የመሠረተ ልማት ፕሮጀክቶችን ጀምሯል። " +
	"የዋጋ ንረት ግን አሁንም ከፍተኛ ፈተና ሆኖ ቀጥሏል።"

type stubRepo struct {
	stored    map[int64]*entity.Summary
	nextID    int64
	createErr error
}

func newStubRepo() *stubRepo {
	return &stubRepo{stored: map[int64]*entity.Summary{}, nextID: 1}
}

func (s *stubRepo) Create(_ context.Context, sum *entity.Summary) error {
	if s.createErr != nil {
		return s.createErr
	}
	sum.ID = s.nextID
	sum.CreatedAt = time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	s.nextID++
	stored := *sum
	s.stored[sum.ID] = &stored
	return nil
}

func (s *stubRepo) FindByID(_ context.Context, id int64) (*entity.Summary, error) {
	sum, ok := s.stored[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	return sum, nil
}

func (s *stubRepo) ListByOwner(_ context.Context, ownerID string, _ repository.SummaryListFilters, _, _ int) ([]*entity.Summary, error) {
	out := []*entity.Summary{}
	for _, sum := range s.stored {
		if sum.OwnerID == ownerID {
			out = append(out, sum)
		}
	}
	return out, nil
}

func (s *stubRepo) CountByOwner(_ context.Context, ownerID string, _ repository.SummaryListFilters) (int64, error) {
	var n int64
	for _, sum := range s.stored {
		if sum.OwnerID == ownerID {
			n++
		}
	}
	return n, nil
}

func (s *stubRepo) Delete(_ context.Context, id int64, ownerID string) error {
	sum, ok := s.stored[id]
	if !ok || sum.OwnerID != ownerID {
		return entity.ErrNotFound
	}
	delete(s.stored, id)
	return nil
}

func (s *stubRepo) DeleteOlderThan(_ context.Context, _ time.Time) (int64, error) {
	return 0, nil
}

func newService(repo repository.SummaryRepository) *sumUC.Service {
	return &sumUC.Service{
		Repo:   repo,
		Engine: summarize.NewEngine(summarize.DefaultConfig()),
		Gate:   script.NewGate(script.Ethiopic(), 0),
	}
}

func asOwner(r *http.Request, owner string) *http.Request {
	return r.WithContext(auth.WithOwner(r.Context(), owner))
}

func TestCreateHandler_Success(t *testing.T) {
	repo := newStubRepo()
	handler := summary.CreateHandler{Svc: newService(repo)}

	body, _ := json.Marshal(map[string]string{
		"text":    amharicBody,
		"variant": "simple",
	})
	req := httptest.NewRequest(http.MethodPost, "/summaries", strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, asOwner(req, "user-1"))

	if rr.Code != http.StatusCreated {
		t.Fatalf("status code = %d, want %d, body: %s", rr.Code, http.StatusCreated, rr.Body.String())
	}

	var dto summary.DTO
	if err := json.Unmarshal(rr.Body.Bytes(), &dto); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if dto.ID == 0 {
		t.Error("expected a non-zero id")
	}
	if dto.Variant != "simple" {
		t.Errorf("variant = %q, want %q", dto.Variant, "simple")
	}
	if dto.SourceType != "text" {
		t.Errorf("source_type = %q, want %q", dto.SourceType, "text")
	}
	if dto.SummarizedText == "" {
		t.Error("expected a non-empty summarized_text")
	}
}

func TestCreateHandler_Failures(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{"invalid json", "{not json", http.StatusBadRequest},
		{"missing input", `{"variant":"simple"}`, http.StatusBadRequest},
		{"non target script", `{"text":"This is English text only, nothing else.","variant":"simple"}`, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := summary.CreateHandler{Svc: newService(newStubRepo())}
			req := httptest.NewRequest(http.MethodPost, "/summaries", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, asOwner(req, "user-1"))

			if rr.Code != tt.wantCode {
				t.Errorf("status code = %d, want %d, body: %s", rr.Code, tt.wantCode, rr.Body.String())
			}
		})
	}
}

func TestCreateHandler_UnknownVariantFallsBack(t *testing.T) {
	handler := summary.CreateHandler{Svc: newService(newStubRepo())}

	req := httptest.NewRequest(http.MethodPost, "/summaries",
		strings.NewReader(`{"text":"`+amharicBody+`","variant":"extreme"}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, asOwner(req, "user-1"))

	if rr.Code != http.StatusCreated {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusCreated)
	}

	var dto summary.DTO
	if err := json.Unmarshal(rr.Body.Bytes(), &dto); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if dto.Variant != "advanced" {
		t.Errorf("variant = %q, want fallback %q", dto.Variant, "advanced")
	}
}

func createFixture(t *testing.T, repo *stubRepo, owner string) *entity.Summary {
	t.Helper()
	sum := &entity.Summary{
		OwnerID:        owner,
		OriginalText:   amharicBody,
		SummarizedText: "የኢትዮጵያ ኢኮኖሚ ባለፈው ዓመት በስድስት በመቶ አድጓል",
		Variant:        "simple",
		SourceType:     entity.SourceTypeText,
	}
	if err := repo.Create(context.Background(), sum); err != nil {
		t.Fatalf("fixture create failed: %v", err)
	}
	return sum
}

func TestGetHandler(t *testing.T) {
	repo := newStubRepo()
	stored := createFixture(t, repo, "user-1")
	handler := summary.GetHandler{Svc: newService(repo)}

	tests := []struct {
		name     string
		path     string
		owner    string
		wantCode int
	}{
		{"found", "/summaries/1", "user-1", http.StatusOK},
		{"other owner reads as missing", "/summaries/1", "user-2", http.StatusNotFound},
		{"missing row", "/summaries/99", "user-1", http.StatusNotFound},
		{"bad id", "/summaries/abc", "user-1", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, asOwner(req, tt.owner))

			if rr.Code != tt.wantCode {
				t.Fatalf("status code = %d, want %d", rr.Code, tt.wantCode)
			}
			if tt.wantCode == http.StatusOK {
				var dto summary.DTO
				if err := json.Unmarshal(rr.Body.Bytes(), &dto); err != nil {
					t.Fatalf("invalid JSON body: %v", err)
				}
				if dto.ID != stored.ID {
					t.Errorf("id = %d, want %d", dto.ID, stored.ID)
				}
			}
		})
	}
}

func TestListHandler(t *testing.T) {
	repo := newStubRepo()
	createFixture(t, repo, "user-1")
	createFixture(t, repo, "user-1")
	createFixture(t, repo, "user-2")

	handler := summary.ListHandler{Svc: newService(repo), Logger: slog.Default()}

	req := httptest.NewRequest(http.MethodGet, "/summaries?page=1&limit=10", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, asOwner(req, "user-1"))

	if rr.Code != http.StatusOK {
		t.Fatalf("status code = %d, want %d, body: %s", rr.Code, http.StatusOK, rr.Body.String())
	}

	var resp struct {
		Data       []summary.DTO `json:"data"`
		Pagination struct {
			Total int64 `json:"total"`
		} `json:"pagination"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Errorf("data length = %d, want 2", len(resp.Data))
	}
	if resp.Pagination.Total != 2 {
		t.Errorf("total = %d, want 2", resp.Pagination.Total)
	}
}

func TestListHandler_BadTimeFilter(t *testing.T) {
	handler := summary.ListHandler{Svc: newService(newStubRepo()), Logger: slog.Default()}

	req := httptest.NewRequest(http.MethodGet, "/summaries?from=yesterday", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, asOwner(req, "user-1"))

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status code = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestDeleteHandler(t *testing.T) {
	repo := newStubRepo()
	createFixture(t, repo, "user-1")
	handler := summary.DeleteHandler{Svc: newService(repo)}

	tests := []struct {
		name     string
		path     string
		owner    string
		wantCode int
	}{
		{"other owner cannot delete", "/summaries/1", "user-2", http.StatusNotFound},
		{"owner deletes", "/summaries/1", "user-1", http.StatusNoContent},
		{"already gone", "/summaries/1", "user-1", http.StatusNotFound},
		{"bad id", "/summaries/x", "user-1", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodDelete, tt.path, nil)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, asOwner(req, tt.owner))

			if rr.Code != tt.wantCode {
				t.Errorf("status code = %d, want %d", rr.Code, tt.wantCode)
			}
		})
	}
}
