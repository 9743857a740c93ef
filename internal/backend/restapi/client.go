// Package restapi implements the service interfaces over the task REST API.
package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"

	"taskdeck/internal/config"
	"taskdeck/internal/logging"
	"taskdeck/internal/metrics"
	"taskdeck/internal/reqid"
	"taskdeck/internal/service"
	"taskdeck/internal/session"
)

const (
	// APITimeout bounds every API call.
	APITimeout = 10 * time.Second

	// maxBodySize caps how much of a response body is read.
	maxBodySize = 4 << 20
)

// Client implements service.Service against the task API.
type Client struct {
	baseURL string
	http    *http.Client
	dialer  *websocket.Dialer
	store   session.Store
	logger  *zap.Logger
}

var _ service.Service = (*Client)(nil)

// New creates a client for cfg.APIURL that keeps its session in store.
func New(cfg *config.Config, store session.Store, logger *zap.Logger) *Client {
	return NewWithHTTPClient(cfg.APIURL, &http.Client{}, store, logger)
}

// NewWithHTTPClient creates a client with a custom HTTP client (for testing).
func NewWithHTTPClient(baseURL string, httpClient *http.Client, store session.Store, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		dialer:  websocket.DefaultDialer,
		store:   store,
		logger:  logger,
	}
}

// call sends one JSON request and returns the response body of a 2xx reply.
// in may be nil for requests without a body.
func (c *Client) call(ctx context.Context, op, method, path string, in any) ([]byte, error) {
	start := time.Now()
	ctx, _ = reqid.Ensure(ctx)
	logger := logging.WithRequest(ctx, c.logger).With(zap.String("op", op))

	body, status, err := c.roundTrip(ctx, op, method, path, in)

	outcome := "ok"
	if err != nil {
		outcome = service.KindOf(err).String()
	}
	metrics.RecordAPICall(op, outcome, time.Since(start))
	logger.Debug("api call",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", status),
		zap.Duration("duration", time.Since(start)),
		zap.String("outcome", outcome),
	)
	return body, err
}

func (c *Client) roundTrip(ctx context.Context, op, method, path string, in any) ([]byte, int, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	var reqBody io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return nil, 0, fmt.Errorf("%s: failed to encode request: %w", op, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: failed to create request: %w", op, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	c.decorate(ctx, req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, networkError(op, err)
	}
	defer resp.Body.Close()

	if err := googleapi.CheckResponse(resp); err != nil {
		return nil, resp.StatusCode, wrapError(op, err)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, resp.StatusCode, networkError(op, err)
	}
	return data, resp.StatusCode, nil
}

// decorate adds the request id and, when a session exists, the bearer token.
func (c *Client) decorate(ctx context.Context, req *http.Request) {
	req.Header.Set(reqid.Header, reqid.FromContext(ctx))
	if tok, ok := c.token(ctx); ok {
		tok.SetAuthHeader(req)
	}
}

// token returns the stored session as a bearer token.
func (c *Client) token(ctx context.Context) (*oauth2.Token, bool) {
	if c.store == nil {
		return nil, false
	}
	sess, err := c.store.Load()
	if err != nil {
		if !errors.Is(err, session.ErrNoSession) {
			logging.WithRequest(ctx, c.logger).Warn("failed to load session", zap.Error(err))
		}
		return nil, false
	}
	return sess.OAuth2Token(), true
}

// decode unmarshals a 2xx body into out.
func decode(op string, body []byte, out any) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return &service.Error{Op: op, Kind: service.KindDecode, Message: "empty response body"}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &service.Error{Op: op, Kind: service.KindDecode, Message: "malformed response body", Err: err}
	}
	return nil
}

func networkError(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &service.Error{Op: op, Kind: service.KindNetwork, Message: "request timed out", Err: err}
	}
	return &service.Error{Op: op, Kind: service.KindNetwork, Err: err}
}

// wrapError maps a non-2xx response to a service error.
func wrapError(op string, err error) error {
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return &service.Error{Op: op, Kind: service.KindUnknown, Err: err}
	}

	return &service.Error{
		Op:      op,
		Kind:    kindForStatus(gerr.Code),
		Status:  gerr.Code,
		Message: serverMessage(gerr),
		Err:     gerr,
	}
}

func kindForStatus(code int) service.Kind {
	switch {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return service.KindUnauthorized
	case code == http.StatusNotFound:
		return service.KindNotFound
	case code >= 500:
		return service.KindServer
	default:
		return service.KindInvalid
	}
}

// serverMessage extracts the message from an {"error": "..."} body, falling
// back to the structured googleapi message when the body has that shape.
func serverMessage(gerr *googleapi.Error) string {
	var reply struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal([]byte(gerr.Body), &reply); err == nil && reply.Error != "" {
		return reply.Error
	}
	return gerr.Message
}
