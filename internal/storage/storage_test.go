package storage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"framework4future/portal/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngHeader is enough for content sniffing.
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestDetectImage(t *testing.T) {
	contentType, ext, err := DetectImage(pngHeader)
	require.NoError(t, err)
	assert.Equal(t, "image/png", contentType)
	assert.Equal(t, ".png", ext)

	_, _, err = DetectImage([]byte("plain text"))
	assert.ErrorIs(t, err, ErrNotImage)
}

func TestLocalStore_Save(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(dir, "/uploads/")

	url, err := store.Save(context.Background(), pngHeader)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	written, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(url, "/uploads/")))
	require.NoError(t, err)
	assert.Equal(t, pngHeader, written)

	_, err = store.Save(context.Background(), []byte("<html></html>"))
	assert.ErrorIs(t, err, ErrNotImage)
}

func TestCloudinaryStore_Save(t *testing.T) {
	cfg := config.CloudinaryConfig{CloudName: "demo", APIKey: "key", APISecret: "secret", Folder: "portal"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		publicID := r.PostForm.Get("public_id")
		assert.True(t, strings.HasPrefix(publicID, "portal/"))
		assert.Equal(t, "key", r.PostForm.Get("api_key"))
		assert.Equal(t, sign(publicID, r.PostForm.Get("timestamp"), "secret"), r.PostForm.Get("signature"))
		assert.True(t, strings.HasPrefix(r.PostForm.Get("file"), "data:image/png;base64,"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"secure_url":"https://res.cloudinary.com/demo/image/upload/v1/portal/x.png"}`))
	}))
	defer srv.Close()

	store := NewCloudinaryStore(cfg, srv.Client())
	store.endpoint = srv.URL

	url, err := store.Save(context.Background(), pngHeader)
	require.NoError(t, err)
	assert.Equal(t, "https://res.cloudinary.com/demo/image/upload/v1/portal/x.png", url)
}

func TestCloudinaryStore_Error(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"message":"Invalid Signature"}}`))
	}))
	defer srv.Close()

	store := NewCloudinaryStore(config.CloudinaryConfig{CloudName: "demo", APIKey: "k", APISecret: "s"}, srv.Client())
	store.endpoint = srv.URL

	_, err := store.Save(context.Background(), pngHeader)
	assert.ErrorContains(t, err, "Invalid Signature")
}

func TestNew_PicksBackend(t *testing.T) {
	local := New(config.UploadConfig{Dir: "uploads", PublicBaseURL: "/uploads"}, config.CloudinaryConfig{})
	assert.IsType(t, &LocalStore{}, local)

	cloud := New(config.UploadConfig{}, config.CloudinaryConfig{CloudName: "c", APIKey: "k", APISecret: "s"})
	assert.IsType(t, &CloudinaryStore{}, cloud)
}
