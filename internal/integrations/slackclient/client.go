package slackclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент Web API мессенджера
// Используется для отправки сообщений в канал и установки статуса пользователя
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента
func NewClient(baseURL, token string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// PostMessage отправляет текстовое сообщение в канал
func (c *Client) PostMessage(ctx context.Context, channelID, text string) error {
	req := postMessageRequest{
		Channel: channelID,
		Text:    text,
	}

	if err := c.call(ctx, "chat.postMessage", req); err != nil {
		return err
	}

	c.log.Info("PostMessage: message posted to channel=%s", channelID)
	return nil
}

// SetUserStatus устанавливает статус пользователя с моментом автоматического снятия
func (c *Client) SetUserStatus(ctx context.Context, userID, emoji, statusText string, expiration int64) error {
	req := setProfileRequest{
		User: userID,
		Profile: profile{
			StatusEmoji:      emoji,
			StatusText:       statusText,
			StatusExpiration: expiration,
		},
	}

	if err := c.call(ctx, "users.profile.set", req); err != nil {
		return err
	}

	c.log.Info("SetUserStatus: status set for user=%s", userID)
	return nil
}

// call выполняет POST запрос к методу Web API и разбирает общий ответ
func (c *Client) call(ctx context.Context, method string, payload interface{}) error {
	url := fmt.Sprintf("%s/%s", c.baseURL, method)

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: %s - unexpected status code %d: %s", ErrInvalidResponse, method, resp.StatusCode, string(raw))
	}

	var apiResp apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return fmt.Errorf("%w: %s - failed to decode response: %v", ErrInvalidResponse, method, err)
	}

	if !apiResp.OK {
		return fmt.Errorf("%w: %s - %s", ErrAPIError, method, apiResp.Error)
	}

	return nil
}
