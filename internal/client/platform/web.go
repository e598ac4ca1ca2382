package platform

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"strings"

	"github.com/dmitrijs2005/ecocollect/internal/client/models"
	"github.com/dmitrijs2005/ecocollect/internal/netx"
)

// WebAttacher turns the photo URI into a blob first and attaches the blob
// as "<field>.jpg".
type WebAttacher struct {
	HTTPClient *http.Client
}

func (a *WebAttacher) Attach(ctx context.Context, w *multipart.Writer, field string, photo models.Photo) error {
	data, contentType, err := a.blob(ctx, photo.URI)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", field, err)
	}

	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	return writeFilePart(w, field, field+".jpg", contentType, data)
}

func (a *WebAttacher) blob(ctx context.Context, uri string) ([]byte, string, error) {
	if strings.HasPrefix(uri, "http://") || strings.HasPrefix(uri, "https://") {
		return netx.Fetch(ctx, a.HTTPClient, uri)
	}

	data, err := os.ReadFile(strings.TrimPrefix(uri, "file://"))
	if err != nil {
		return nil, "", err
	}
	return data, "", nil
}
