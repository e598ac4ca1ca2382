package platform

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/url"
	"os"
	"strings"

	"github.com/dmitrijs2005/ecocollect/internal/client/models"
)

const defaultMimeType = "image/jpeg"

// NativeAttacher attaches the file behind the URI with an explicit MIME
// type. iOS URIs lose their file:// prefix; Android URIs are resolved as
// given.
type NativeAttacher struct {
	Platform Platform
}

func (a *NativeAttacher) Attach(_ context.Context, w *multipart.Writer, field string, photo models.Photo) error {
	path := a.resolve(photo.URI)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", field, err)
	}

	mimeType := photo.MimeType
	if mimeType == "" {
		mimeType = defaultMimeType
	}
	return writeFilePart(w, field, field+".jpg", mimeType, data)
}

func (a *NativeAttacher) resolve(uri string) string {
	if a.Platform == IOS {
		return strings.Replace(uri, "file://", "", 1)
	}

	u, err := url.Parse(uri)
	if err != nil || u.Scheme != "file" {
		return uri
	}
	return u.Path
}
