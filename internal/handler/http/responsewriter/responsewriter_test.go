package responsewriter

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWrap_RecordsStatusAndSize(t *testing.T) {
	rec := httptest.NewRecorder()
	w := Wrap(rec)

	w.WriteHeader(http.StatusCreated)
	n, err := w.Write([]byte("hello"))
	if err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if n != 5 {
		t.Errorf("Write() = %d bytes, want 5", n)
	}

	if w.StatusCode() != http.StatusCreated {
		t.Errorf("StatusCode() = %d, want %d", w.StatusCode(), http.StatusCreated)
	}
	if w.BytesWritten() != 5 {
		t.Errorf("BytesWritten() = %d, want 5", w.BytesWritten())
	}
}

func TestWrap_ImplicitOK(t *testing.T) {
	rec := httptest.NewRecorder()
	w := Wrap(rec)

	if _, err := w.Write([]byte("body")); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if w.StatusCode() != http.StatusOK {
		t.Errorf("StatusCode() = %d, want 200", w.StatusCode())
	}
}

func TestWrap_SecondWriteHeaderIgnored(t *testing.T) {
	rec := httptest.NewRecorder()
	w := Wrap(rec)

	w.WriteHeader(http.StatusNotFound)
	w.WriteHeader(http.StatusOK)

	if w.StatusCode() != http.StatusNotFound {
		t.Errorf("StatusCode() = %d, want %d", w.StatusCode(), http.StatusNotFound)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("recorded status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
