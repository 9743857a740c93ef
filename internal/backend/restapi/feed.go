package restapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"taskdeck/internal/logging"
	"taskdeck/internal/reqid"
	"taskdeck/internal/service"
)

// WatchTasks implements service.TaskFeed over the API's /ws endpoint.
func (c *Client) WatchTasks(ctx context.Context, fn func(service.Task)) error {
	const op = "watch tasks"

	ctx, id := reqid.Ensure(ctx)
	logger := logging.WithRequest(ctx, c.logger)

	header := http.Header{}
	header.Set(reqid.Header, id)
	if tok, ok := c.token(ctx); ok {
		header.Set("Authorization", tok.Type()+" "+tok.AccessToken)
	}

	conn, resp, err := c.dialer.DialContext(ctx, websocketURL(c.baseURL)+"/ws", header)
	if err != nil {
		if resp != nil {
			return &service.Error{Op: op, Kind: kindForStatus(resp.StatusCode), Status: resp.StatusCode, Err: err}
		}
		if ctx.Err() != nil {
			return nil
		}
		return networkError(op, err)
	}
	defer conn.Close()

	// Unblock ReadMessage when the caller goes away.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	logger.Debug("watching tasks")
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return networkError(op, err)
		}

		var task service.Task
		if err := json.Unmarshal(data, &task); err != nil {
			logger.Warn("skipping malformed task", zap.Error(err))
			continue
		}
		fn(task)
	}
}

// websocketURL maps an http(s) base URL to ws(s).
func websocketURL(base string) string {
	switch {
	case strings.HasPrefix(base, "https://"):
		return "wss://" + strings.TrimPrefix(base, "https://")
	case strings.HasPrefix(base, "http://"):
		return "ws://" + strings.TrimPrefix(base, "http://")
	default:
		return base
	}
}
