package platform

import (
	"bytes"
	"context"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/ecocollect/internal/client/models"
	"github.com/dmitrijs2005/ecocollect/internal/common"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n0000")

type part struct {
	field, filename, contentType string
	data                         []byte
}

func attach(t *testing.T, a Attacher, field string, photo models.Photo) (part, error) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := a.Attach(context.Background(), w, field, photo); err != nil {
		return part{}, err
	}
	require.NoError(t, w.Close())

	r := multipart.NewReader(&buf, w.Boundary())
	p, err := r.NextPart()
	require.NoError(t, err)
	data, err := io.ReadAll(p)
	require.NoError(t, err)

	_, params, err := mime.ParseMediaType(p.Header.Get("Content-Disposition"))
	require.NoError(t, err)
	return part{field: params["name"], filename: params["filename"], contentType: p.Header.Get("Content-Type"), data: data}, nil
}

func writePhoto(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "IMG_0001.png")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestParse(t *testing.T) {
	p, err := Parse(" iOS ")
	require.NoError(t, err)
	assert.Equal(t, IOS, p)

	_, err = Parse("windows")
	require.ErrorIs(t, err, common.ErrUnknownPlatform)
}

func TestNewAttacher(t *testing.T) {
	a, err := NewAttacher(Web, nil)
	require.NoError(t, err)
	assert.IsType(t, &WebAttacher{}, a)

	a, err = NewAttacher(Android, nil)
	require.NoError(t, err)
	assert.Equal(t, &NativeAttacher{Platform: Android}, a)

	_, err = NewAttacher("tv", nil)
	require.ErrorIs(t, err, common.ErrUnknownPlatform)
}

func TestWebAttacher_RemoteBlob(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/webp")
		_, _ = w.Write([]byte("RIFFxxxxWEBP"))
	}))
	defer srv.Close()

	got, err := attach(t, &WebAttacher{HTTPClient: srv.Client()}, "photo", models.Photo{URI: srv.URL + "/blob/1"})
	require.NoError(t, err)
	assert.Equal(t, part{field: "photo", filename: "photo.jpg", contentType: "image/webp", data: []byte("RIFFxxxxWEBP")}, got)
}

func TestWebAttacher_LocalFileIsSniffed(t *testing.T) {
	path := writePhoto(t, pngHeader)

	got, err := attach(t, &WebAttacher{}, "preuve_impot", models.Photo{URI: "file://" + path})
	require.NoError(t, err)
	assert.Equal(t, "preuve_impot.jpg", got.filename)
	assert.Equal(t, "image/png", got.contentType)
	assert.Equal(t, pngHeader, got.data)
}

func TestWebAttacher_FetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := attach(t, &WebAttacher{}, "photo", models.Photo{URI: srv.URL})
	require.ErrorContains(t, err, "failed to read photo")
}

func TestNativeAttacher_IOSStripsPrefix(t *testing.T) {
	path := writePhoto(t, []byte("jpeg-bytes"))

	got, err := attach(t, &NativeAttacher{Platform: IOS}, "cip_document", models.Photo{URI: "file://" + path})
	require.NoError(t, err)
	assert.Equal(t, part{field: "cip_document", filename: "cip_document.jpg", contentType: "image/jpeg", data: []byte("jpeg-bytes")}, got)
}

func TestNativeAttacher_AndroidExplicitMime(t *testing.T) {
	path := writePhoto(t, []byte("png-bytes"))

	got, err := attach(t, &NativeAttacher{Platform: Android}, "residence_proof", models.Photo{URI: "file://" + path, MimeType: "image/png"})
	require.NoError(t, err)
	assert.Equal(t, "image/png", got.contentType)
	assert.Equal(t, []byte("png-bytes"), got.data)

	got, err = attach(t, &NativeAttacher{Platform: Android}, "residence_proof", models.Photo{URI: path})
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", got.contentType)
}

func TestNativeAttacher_MissingFile(t *testing.T) {
	_, err := attach(t, &NativeAttacher{Platform: Android}, "photo", models.Photo{URI: "/does/not/exist.jpg"})
	require.ErrorContains(t, err, "failed to read photo")
}
