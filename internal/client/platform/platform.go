// Package platform holds the capabilities that differ between the web and
// the native targets. The target is picked once from configuration and the
// rest of the client only sees the Attacher interface.
package platform

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"github.com/dmitrijs2005/ecocollect/internal/client/models"
	"github.com/dmitrijs2005/ecocollect/internal/common"
)

type Platform string

const (
	Web     Platform = "web"
	Android Platform = "android"
	IOS     Platform = "ios"
)

func Parse(s string) (Platform, error) {
	switch p := Platform(strings.ToLower(strings.TrimSpace(s))); p {
	case Web, Android, IOS:
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", common.ErrUnknownPlatform, s)
}

// Attacher writes a locally captured photo into a multipart body.
type Attacher interface {
	Attach(ctx context.Context, w *multipart.Writer, field string, photo models.Photo) error
}

// NewAttacher returns the attachment strategy of p. httpClient is used by
// the web strategy to fetch remote URIs and may be nil.
func NewAttacher(p Platform, httpClient *http.Client) (Attacher, error) {
	switch p {
	case Web:
		return &WebAttacher{HTTPClient: httpClient}, nil
	case Android, IOS:
		return &NativeAttacher{Platform: p}, nil
	}
	return nil, fmt.Errorf("%w: %q", common.ErrUnknownPlatform, p)
}

func writeFilePart(w *multipart.Writer, field, filename, contentType string, data []byte) error {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, escapeQuotes(field), escapeQuotes(filename)))
	h.Set("Content-Type", contentType)

	part, err := w.CreatePart(h)
	if err != nil {
		return err
	}
	_, err = part.Write(data)
	return err
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
