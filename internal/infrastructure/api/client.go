package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tourguide-client/internal/config"
	"github.com/tourguide-client/internal/domain/repository"
	apperrors "github.com/tourguide-client/internal/pkg/errors"
)

// Client — общий транспорт для всех шлюзов тур-сервиса.
// Подкладывает bearer-токен из локального хранилища и переводит
// ответы сервера в доменные ошибки. Повторов не делает.
type Client struct {
	httpClient *http.Client
	baseURL    string
	creds      repository.CredentialStore
	logger     *zap.Logger
}

func NewClient(cfg *config.ClientConfig, creds repository.CredentialStore, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		creds:   creds,
		logger:  logger,
	}
}

// errorBody — формат тела ошибки удалённого API.
type errorBody struct {
	Detail string `json:"detail"`
}

// do выполняет один запрос к API и декодирует ответ в out.
// При authenticated=true отсутствие токена — немедленный
// ErrUnauthorized без сетевого вызова.
func (c *Client) do(
	ctx context.Context,
	method, path string,
	query url.Values,
	body interface{},
	out interface{},
	authenticated bool,
) error {
	var token string
	if authenticated {
		var err error
		token, err = c.creds.Token(ctx)
		if err != nil {
			return fmt.Errorf("failed to read token: %w", err)
		}
		if token == "" {
			return apperrors.ErrUnauthorized
		}
	}

	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.logger.Debug("Calling tour API",
		zap.String("method", method),
		zap.String("path", path))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Tour API request failed", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("%w: %v", apperrors.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return c.mapStatus(path, resp.StatusCode, data)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			c.logger.Error("Failed to decode response", zap.String("path", path), zap.Error(err))
			return fmt.Errorf("%w: %v", apperrors.ErrServer, err)
		}
	}

	return nil
}

// mapStatus переводит неуспешный HTTP-статус в доменную ошибку.
func (c *Client) mapStatus(path string, status int, body []byte) error {
	detail := extractDetail(body)

	c.logger.Warn("Tour API returned error",
		zap.String("path", path),
		zap.Int("status_code", status),
		zap.String("detail", detail))

	switch status {
	case http.StatusUnauthorized:
		return apperrors.ErrUnauthorized
	case http.StatusNotFound:
		if detail != "" {
			return apperrors.ErrTourNotFound.WithMessage(detail)
		}
		return apperrors.ErrTourNotFound
	case http.StatusConflict:
		return apperrors.ErrAlreadyEnrolled
	default:
		if detail != "" {
			return apperrors.ErrServer.WithMessage(detail)
		}
		return apperrors.ErrServer.WithDetails(map[string]interface{}{
			"status_code": status,
		})
	}
}

func extractDetail(body []byte) string {
	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		return ""
	}
	return parsed.Detail
}
