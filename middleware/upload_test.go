package middleware

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type countingStore struct {
	limit int64
	saved int
}

func (s *countingStore) Save(_ context.Context, field string, _ *multipart.FileHeader) (string, error) {
	s.saved++
	return "http://test/uploads/" + field + "/x.png", nil
}

func (s *countingStore) MaxBytes() int64 { return s.limit }

func uploadRouter(store *countingStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/upload", SingleImage(store, "logo"), func(c *gin.Context) {
		url, _ := UploadedURL(c)
		c.JSON(http.StatusOK, gin.H{"url": url})
	})
	return r
}

func postFile(r http.Handler, size int) *httptest.ResponseRecorder {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, _ := w.CreateFormFile("logo", "logo.png")
	part.Write(bytes.Repeat([]byte{0x89}, size))
	w.Close()

	req := httptest.NewRequest(http.MethodPost, "/upload", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestSingleImageRejectsOversizedBodyBeforeSave(t *testing.T) {
	store := &countingStore{limit: 1 << 10}
	rec := postFile(uploadRouter(store), 4*multipartOverhead)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", rec.Code, rec.Body.String())
	}
	if store.saved != 0 {
		t.Fatalf("store.Save called %d times for an oversized body", store.saved)
	}
}

func TestSingleImageWithinLimit(t *testing.T) {
	store := &countingStore{limit: 1 << 10}
	rec := postFile(uploadRouter(store), 512)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if store.saved != 1 {
		t.Fatalf("store.Save called %d times, want 1", store.saved)
	}
}

func TestSingleImageWithoutFilePassesThrough(t *testing.T) {
	store := &countingStore{limit: 1 << 10}
	req := httptest.NewRequest(http.MethodPost, "/upload", nil)
	rec := httptest.NewRecorder()
	uploadRouter(store).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK || store.saved != 0 {
		t.Fatalf("status = %d saved = %d, want 200 and no save", rec.Code, store.saved)
	}
}
