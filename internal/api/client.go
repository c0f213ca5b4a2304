// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/mintzukunft/mintelligent-tui/internal/model"
	"github.com/mintzukunft/mintelligent-tui/internal/session"
	"github.com/mintzukunft/mintelligent-tui/internal/util"
)

const (
	// DefaultBaseURL is the backend endpoint used when no configuration
	// overrides it.
	DefaultBaseURL = "http://localhost:8000"

	// DefaultTimeout bounds every round trip. No operation retries; a timed
	// out request surfaces as one failed operation.
	DefaultTimeout = 60 * time.Second

	// maxResponseSize caps how much of a response body is read.
	maxResponseSize = 10 * 1024 * 1024 // 10MB

	// userAgent identifies this client to the backend.
	userAgent = "mintelligent-tui/0.1.0"
)

// sharedHTTPClient is reused for all backend requests so connections pool
// across operations.
var sharedHTTPClient = &http.Client{
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
	},
	Timeout: DefaultTimeout,
}

// Error variables for backend operations. The UI maps each to one localized
// alert string.
var (
	// ErrNotRegistered indicates the login identity is unknown to the
	// backend (HTTP 401 or 404 on login).
	ErrNotRegistered = errors.New("user not registered")

	// ErrLoginFailed indicates login failed for any other reason.
	ErrLoginFailed = errors.New("login failed")

	// ErrRegisterFailed indicates the registration step itself failed; no
	// follow-up login is attempted in that case.
	ErrRegisterFailed = errors.New("registration failed")

	// ErrRequestFailed is the generic failure for chat operations.
	ErrRequestFailed = errors.New("request failed")
)

// BackendError carries the HTTP status of a failed operation.
type BackendError struct {
	Op     string
	Status int
}

// Error implements the error interface.
func (e *BackendError) Error() string {
	return fmt.Sprintf("%s: backend returned HTTP %d", e.Op, e.Status)
}

// Unwrap lets callers match the generic sentinel with errors.Is.
func (e *BackendError) Unwrap() error {
	return ErrRequestFailed
}

// Client talks to the MINTelligent backend. All methods are safe for
// concurrent use; the zero value is not usable, construct with NewClient.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewClient creates a backend client for baseURL. Message sends are locally
// throttled to one per second with a small burst so a scripted session cannot
// hammer the backend.
func NewClient(baseURL string, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: sharedHTTPClient,
		limiter:    rate.NewLimiter(rate.Every(time.Second), 3),
		logger:     logger,
	}
}

// WithHTTPClient sets a custom HTTP client (used by tests).
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// WithTimeout sets the per-request timeout.
func (c *Client) WithTimeout(timeout time.Duration) *Client {
	hc := *c.httpClient
	hc.Timeout = timeout
	c.httpClient = &hc
	return c
}

// BaseURL returns the configured backend endpoint.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// =============================================================================
// AUTH OPERATIONS
// =============================================================================

// Login authenticates identifier/password against the backend and returns a
// ready-to-store session. An unknown identity (HTTP 401/404) maps to
// ErrNotRegistered so the UI can steer the user to registration.
func (c *Client) Login(ctx context.Context, identifier, password string) (*session.Session, error) {
	body := loginRequest{Username: identifier, Password: password}

	resp, raw, err := c.do(ctx, http.MethodPost, "/auth/login", nil, body, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoginFailed, err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotRegistered
	case !successStatus(resp.StatusCode):
		return nil, fmt.Errorf("%w: HTTP %d", ErrLoginFailed, resp.StatusCode)
	}

	var lr loginResponse
	if err := json.Unmarshal(raw, &lr); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoginFailed, err)
	}
	if lr.AccessToken == "" {
		return nil, fmt.Errorf("%w: no access token in response", ErrLoginFailed)
	}

	username := lr.Username
	if username == "" {
		username = identifier
	}

	sess := &session.Session{
		UserID:      lr.UserID,
		Username:    username,
		AccessToken: lr.AccessToken,
		TokenType:   lr.TokenType,
	}
	for _, chat := range lr.History {
		id := chat.ChatID.String()
		if id == "" {
			continue
		}
		sess.Conversations = append(sess.Conversations, session.Conversation{
			ID:    id,
			Title: chat.Title,
		})
	}
	return sess, nil
}

// Register creates an account and, on success, logs in with the same
// credentials. The display name is split on the first whitespace into first
// and last name; the role is collected in the form but never forwarded.
func (c *Client) Register(ctx context.Context, name, email, password string, _ Role) (*session.Session, error) {
	first, last := util.SplitName(name)
	body := registerRequest{
		FirstName: first,
		LastName:  last,
		Username:  email,
		Password:  password,
		Email:     email,
	}

	resp, _, err := c.do(ctx, http.MethodPost, "/auth/register", nil, body, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRegisterFailed, err)
	}
	if !successStatus(resp.StatusCode) {
		return nil, fmt.Errorf("%w: HTTP %d", ErrRegisterFailed, resp.StatusCode)
	}

	// The account exists now; a failed follow-up login surfaces as a login
	// error, not a registration error.
	return c.Login(ctx, email, password)
}

// =============================================================================
// CHAT OPERATIONS
// =============================================================================

// SendMessage posts content to the backend. An empty chatID starts a new
// conversation; the reply names the conversation the backend filed it under.
// Sends are throttled by the client-side limiter.
func (c *Client) SendMessage(ctx context.Context, sess *session.Session, chatID, content string) (*BotReply, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var query url.Values
	if chatID != "" {
		query = url.Values{"chat_id": {chatID}}
	}

	resp, raw, err := c.do(ctx, http.MethodPost, "/chat", query, sendRequest{Content: content}, sess)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	if !successStatus(resp.StatusCode) {
		return nil, &BackendError{Op: "send message", Status: resp.StatusCode}
	}

	var br botResponse
	if err := json.Unmarshal(raw, &br); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	return &BotReply{
		ChatID:        br.ChatID.String(),
		Content:       br.Content,
		Status:        br.Status,
		Visualization: model.DecodeVisualization(br.VisualizationData),
	}, nil
}

// FetchHistory loads the full message history of a conversation, oldest
// first. Entries matching neither contracted shape are dropped and counted,
// never guessed at.
func (c *Client) FetchHistory(ctx context.Context, sess *session.Session, chatID string) ([]model.Message, error) {
	query := url.Values{"id": {chatID}}

	resp, raw, err := c.do(ctx, http.MethodGet, "/open", query, nil, sess)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	if !successStatus(resp.StatusCode) {
		return nil, &BackendError{Op: "fetch history", Status: resp.StatusCode}
	}

	var env historyEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	messages := make([]model.Message, 0, len(env.History))
	dropped := 0
	for _, entry := range env.History {
		item := DecodeHistoryItem(entry)
		if item.Kind == HistoryUnparseable {
			dropped++
			continue
		}
		messages = append(messages, item.Message())
	}
	if dropped > 0 {
		c.logger.Warn("dropped unparseable history entries",
			"chat_id", chatID, "dropped", dropped, "kept", len(messages))
	}
	return messages, nil
}

// DeleteChat removes a conversation on the backend.
func (c *Client) DeleteChat(ctx context.Context, sess *session.Session, chatID string) error {
	query := url.Values{"id": {chatID}}

	resp, _, err := c.do(ctx, http.MethodDelete, "/chat", query, nil, sess)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	if !successStatus(resp.StatusCode) {
		return &BackendError{Op: "delete chat", Status: resp.StatusCode}
	}
	return nil
}

// =============================================================================
// TRANSPORT
// =============================================================================

// do performs one round trip and returns the response plus its fully read,
// size-limited body. sess may be nil for unauthenticated endpoints.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, sess *session.Session) (*http.Response, []byte, error) {
	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, nil, fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, reader)
	if err != nil {
		return nil, nil, fmt.Errorf("create request: %w", err)
	}
	c.setHeaders(req, sess)

	// Log method and path only. Bodies and headers carry credentials and
	// message content and must never reach the log.
	requestID := req.Header.Get("X-Request-ID")
	c.logger.Debug("backend request", "method", method, "path", path, "request_id", requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("backend request error",
			"method", method, "path", path, "request_id", requestID, "error", err)
		return nil, nil, err
	}
	defer resp.Body.Close()

	c.logger.Debug("backend response",
		"method", method, "path", path, "request_id", requestID,
		"status", resp.StatusCode, "duration", time.Since(start))

	raw, err := readResponse(resp)
	if err != nil {
		return nil, nil, err
	}
	return resp, raw, nil
}

// setHeaders sets the common headers, including the bearer token when a
// session is present.
func (c *Client) setHeaders(req *http.Request, sess *session.Session) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())

	if sess != nil && sess.AccessToken != "" {
		req.Header.Set("Authorization", sess.AuthScheme()+" "+sess.AccessToken)
	}
}

// readResponse reads the body with a size cap so a misbehaving backend cannot
// exhaust memory.
func readResponse(resp *http.Response) ([]byte, error) {
	limited := io.LimitReader(resp.Body, maxResponseSize)
	raw, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if int64(len(raw)) == maxResponseSize {
		return nil, fmt.Errorf("response exceeded maximum size of %d bytes", maxResponseSize)
	}
	return raw, nil
}

func successStatus(code int) bool {
	return code >= 200 && code < 300
}
