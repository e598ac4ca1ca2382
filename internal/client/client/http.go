package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/ecocollect/internal/client/platform"
	"github.com/dmitrijs2005/ecocollect/internal/client/storage"
	"github.com/dmitrijs2005/ecocollect/internal/common"
	"github.com/dmitrijs2005/ecocollect/internal/logging"
)

// HTTPClient is the REST implementation of Client.
type HTTPClient struct {
	baseURL   string
	http      *http.Client
	transport *authTransport
	attacher  platform.Attacher
	log       logging.Logger
}

type Option func(*HTTPClient)

// WithBaseTransport replaces the transport below the credential layer.
func WithBaseTransport(rt http.RoundTripper) Option {
	return func(c *HTTPClient) {
		c.transport.base = rt
	}
}

// NewHTTPClient builds a client rooted at baseURL. store is read on every
// request for the credential; attacher encodes photos for multipart calls.
func NewHTTPClient(baseURL string, store storage.Storage, attacher platform.Attacher, log logging.Logger, opts ...Option) *HTTPClient {
	t := &authTransport{base: http.DefaultTransport, store: store, log: log}
	c := &HTTPClient{
		baseURL:   strings.TrimRight(baseURL, "/"),
		http:      &http.Client{Transport: t},
		transport: t,
		attacher:  attacher,
		log:       log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *HTTPClient) url(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// doJSON sends in (when non-nil) as JSON and decodes the response into out
// (when non-nil).
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, query url.Values, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path, query), body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, out)
}

// doMultipart sends the form built by fill.
func (c *HTTPClient) doMultipart(ctx context.Context, method, path string, fill func(w *multipart.Writer) error, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := fill(w); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path, nil), &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", w.FormDataContentType())
	return c.do(req, out)
}

func (c *HTTPClient) do(req *http.Request, out any) error {
	requestID := uuid.NewString()
	req = req.WithContext(logging.WithRequestID(req.Context(), requestID))
	req.Header.Set(common.RequestIDHeaderName, requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		return mapTransportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, requestID, body)
	}

	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", req.Method, req.URL.Path, err)
	}
	return nil
}

func mapTransportError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, errCredentialRead) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrUnavailable, err)
}

func writeFields(w *multipart.Writer, fields [][2]string) error {
	for _, f := range fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return err
		}
	}
	return nil
}
