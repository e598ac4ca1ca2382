package client

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/ecocollect/internal/client/storage"
	"github.com/dmitrijs2005/ecocollect/internal/common"
	"github.com/dmitrijs2005/ecocollect/internal/logging"
)

var errCredentialRead = errors.New("failed to read credential")

// authTransport attaches the stored credential and a request id to every
// outgoing request and logs failures on the way back.
type authTransport struct {
	base  http.RoundTripper
	store storage.Storage
	log   logging.Logger
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	credential, _, err := t.store.Get(ctx, common.CredentialKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errCredentialRead, err)
	}

	requestID, ok := logging.RequestID(ctx)
	if !ok {
		requestID = req.Header.Get(common.RequestIDHeaderName)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ctx = logging.WithRequestID(ctx, requestID)
	}

	req = req.Clone(ctx)
	if credential != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.AuthScheme+" "+credential)
	}
	req.Header.Set(common.RequestIDHeaderName, requestID)

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		t.log.Error(ctx, "api request failed", "method", req.Method, "path", req.URL.Path, "error", err)
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, readErr := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		resp.Body = io.NopCloser(bytes.NewReader(body))
		if readErr != nil {
			return nil, readErr
		}

		t.log.Error(ctx, "api error",
			"method", req.Method,
			"path", req.URL.Path,
			"status", resp.StatusCode,
			"payload", string(body))
	}

	return resp, nil
}
