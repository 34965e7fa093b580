package upload

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

// smallest valid PNG header; enough for content sniffing
var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 13, 'I', 'H', 'D', 'R'}

func uploadRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(t.TempDir(), "http://localhost:8080/uploads")
	r.POST("/api/admin/upload", h.Upload)
	return r
}

func multipartBody(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return &buf, w.FormDataContentType()
}

func TestUploadAcceptsPNG(t *testing.T) {
	r := uploadRouter(t)
	body, contentType := multipartBody(t, "receipt.png", pngBytes)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/upload", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp struct {
		FileURL     string `json:"file_url"`
		FileType    string `json:"file_type"`
		DisplayName string `json:"display_name"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(resp.FileURL, "http://localhost:8080/uploads/") {
		t.Errorf("file_url = %q", resp.FileURL)
	}
	if !strings.HasSuffix(resp.FileURL, ".png") {
		t.Errorf("stored name should carry the sniffed extension: %q", resp.FileURL)
	}
	if strings.Contains(resp.FileURL, "receipt") {
		t.Errorf("stored name must not reuse the client filename: %q", resp.FileURL)
	}
	if resp.FileType != "image/png" {
		t.Errorf("file_type = %q", resp.FileType)
	}
	if resp.DisplayName != "receipt.png" {
		t.Errorf("display_name = %q", resp.DisplayName)
	}
}

func TestUploadRejectsDisallowedType(t *testing.T) {
	r := uploadRouter(t)
	// an executable-looking payload, even with an image filename
	body, contentType := multipartBody(t, "innocent.png", []byte("#!/bin/sh\nrm -rf /\n"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/upload", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body = %s", w.Code, w.Body.String())
	}
}

func TestUploadRequiresFile(t *testing.T) {
	r := uploadRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/upload", strings.NewReader(""))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=x")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
