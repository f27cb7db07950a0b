package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/JSON implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Login implements [ServerAdapter]. It POSTs creds to POST /sessions. The
// server answers 303 to the user's page, which the client follows with the
// fresh session cookie; the user is decoded from that final response.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		SetResult(&user).
		Post("/sessions")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	h.logger.Debug().Int64("user_id", user.UserID).Msg("session created")
	return user, nil
}

// Logout implements [ServerAdapter] via DELETE /sessions.
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete("/sessions")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	return mapHTTPError(resp)
}

// GetPost implements [ServerAdapter] via GET /posts/{id}.
func (h *httpServerAdapter) GetPost(ctx context.Context, postID int64) (models.Post, error) {
	var post models.Post

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(postID, 10)).
		SetResult(&post).
		Get("/posts/{id}")
	if err != nil {
		return models.Post{}, fmt.Errorf("get post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	return post, nil
}

// ListComments implements [ServerAdapter] via GET /posts/{id}/comments.
func (h *httpServerAdapter) ListComments(ctx context.Context, postID int64) ([]models.Comment, error) {
	var comments []models.Comment

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(postID, 10)).
		SetResult(&comments).
		Get("/posts/{id}/comments")
	if err != nil {
		return nil, fmt.Errorf("list comments request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return comments, nil
}

// CreateComment implements [ServerAdapter] via POST /comments.
func (h *httpServerAdapter) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	var created models.Comment

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(comment).
		SetResult(&created).
		Post("/comments")
	if err != nil {
		return models.Comment{}, fmt.Errorf("create comment request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Comment{}, err
	}

	return created, nil
}

// UpdateComment implements [ServerAdapter] via PATCH /comments/{id}.
func (h *httpServerAdapter) UpdateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	var updated models.Comment

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", strconv.FormatInt(comment.CommentID, 10)).
		SetBody(map[string]string{"body": comment.Body}).
		SetResult(&updated).
		Patch("/comments/{id}")
	if err != nil {
		return models.Comment{}, fmt.Errorf("update comment request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Comment{}, err
	}

	return updated, nil
}
