package telegram

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	neturl "net/url"
	"strings"
	"time"
)

// ErrFileNotFound is returned when Telegram does not recognize a file id
// or the resolved file path has expired.
var ErrFileNotFound = errors.New("telegram file not found")

// APIError carries a non-OK answer from the Bot API.
type APIError struct {
	StatusCode  int
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram api error: status %d: %s", e.StatusCode, e.Description)
}

type Client struct {
	baseURL    string
	botToken   string
	httpClient *http.Client
}

type apiResponse struct {
	OK          bool            `json:"ok"`
	ErrorCode   int             `json:"error_code,omitempty"`
	Description string          `json:"description,omitempty"`
	Result      json.RawMessage `json:"result,omitempty"`
}

type fileResult struct {
	FileID   string `json:"file_id"`
	FileSize int64  `json:"file_size"`
	FilePath string `json:"file_path"`
}

type sendPhotoRequest struct {
	ChatID  int64  `json:"chat_id"`
	Photo   string `json:"photo"`
	Caption string `json:"caption"`
}

// Photo is a resolved, streamable photo. Body must be closed by the caller.
type Photo struct {
	ContentType   string
	ContentLength int64
	Body          io.ReadCloser
}

func NewClient(baseURL, botToken string) *Client {
	return &Client{
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		botToken: botToken,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// GetFile asks the Bot API to translate a stable file id into a fresh,
// short-lived file path. The path expires, so it must never be cached.
func (c *Client) GetFile(fileID string) (string, error) {
	url := fmt.Sprintf("%s/bot%s/getFile?file_id=%s", c.baseURL, c.botToken, neturl.QueryEscape(fileID))
	resp, err := c.httpClient.Get(url)
	if err != nil {
		return "", fmt.Errorf("failed to execute getFile request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read getFile response: %w", err)
	}

	var apiResp apiResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return "", fmt.Errorf("failed to decode getFile response: %w, body: %s", err, string(body))
	}

	if !apiResp.OK {
		// Telegram answers 400 with ok:false for unknown or expired ids
		if resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusNotFound {
			return "", ErrFileNotFound
		}
		return "", &APIError{StatusCode: resp.StatusCode, Description: apiResp.Description}
	}

	var file fileResult
	if err := json.Unmarshal(apiResp.Result, &file); err != nil {
		return "", fmt.Errorf("failed to decode file result: %w", err)
	}
	if file.FilePath == "" {
		return "", fmt.Errorf("getFile returned empty file_path, body: %s", string(body))
	}

	return file.FilePath, nil
}

// DownloadFile streams the file bytes behind a freshly resolved path. The
// returned body is not read here so the caller can pipe it through.
func (c *Client) DownloadFile(filePath string) (*Photo, error) {
	url := fmt.Sprintf("%s/file/bot%s/%s", c.baseURL, c.botToken, filePath)
	resp, err := c.httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to execute download request: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusBadRequest {
			return nil, ErrFileNotFound
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Description: string(body)}
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return &Photo{
		ContentType:   contentType,
		ContentLength: resp.ContentLength,
		Body:          resp.Body,
	}, nil
}

// ResolvePhoto performs the two-hop lookup from a stable file id to a live
// byte stream. Every call re-resolves the path; a stored path goes stale
// and would serve 404s to the front-end.
func (c *Client) ResolvePhoto(fileID string) (*Photo, error) {
	filePath, err := c.GetFile(fileID)
	if err != nil {
		return nil, err
	}
	return c.DownloadFile(filePath)
}

// SendPhoto posts a photo with a caption to a chat. One attempt, no retry:
// the caller decides whether a failed publish is retried by a human.
func (c *Client) SendPhoto(chatID int64, fileID, caption string) error {
	jsonData, err := json.Marshal(sendPhotoRequest{
		ChatID:  chatID,
		Photo:   fileID,
		Caption: caption,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal sendPhoto request: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendPhoto", c.baseURL, c.botToken)
	resp, err := c.httpClient.Post(url, "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to execute sendPhoto request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read sendPhoto response: %w", err)
	}

	var apiResp apiResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return fmt.Errorf("failed to decode sendPhoto response: %w, body: %s", err, string(body))
	}
	if !apiResp.OK {
		return &APIError{StatusCode: resp.StatusCode, Description: apiResp.Description}
	}

	return nil
}
