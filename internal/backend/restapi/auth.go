package restapi

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"taskdeck/internal/logging"
	"taskdeck/internal/service"
	"taskdeck/internal/session"
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginReply struct {
	Token string `json:"token"`
}

// Login implements service.AuthService.
func (c *Client) Login(ctx context.Context, username, password string) (session.Session, error) {
	const op = "login"

	body, err := c.call(ctx, op, http.MethodPost, "/login", credentials{Username: username, Password: password})
	if err != nil {
		return session.Session{}, err
	}

	var reply loginReply
	if err := decode(op, body, &reply); err != nil {
		return session.Session{}, err
	}
	if reply.Token == "" {
		return session.Session{}, &service.Error{Op: op, Kind: service.KindDecode, Message: "response has no token"}
	}

	sess := session.FromToken(reply.Token)
	if err := c.store.Save(sess); err != nil {
		return session.Session{}, fmt.Errorf("%s: %w", op, err)
	}

	logging.WithRequest(ctx, c.logger).Info("logged in", zap.String("username", username))
	return sess, nil
}

// Signup implements service.AuthService.
func (c *Client) Signup(ctx context.Context, username, password string) error {
	_, err := c.call(ctx, "signup", http.MethodPost, "/signup", credentials{Username: username, Password: password})
	return err
}

// Logout implements service.AuthService.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.store.Clear(); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// CurrentSession implements service.AuthService.
func (c *Client) CurrentSession(ctx context.Context) (session.Session, error) {
	return c.store.Load()
}
