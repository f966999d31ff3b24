package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// Client 用于与 Whisper 转写服务交互。
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// Option 用于构造 Client 时扩展可选配置。
type Option func(*options)

type options struct {
	httpClient *http.Client
	timeout    time.Duration
	hasTimeout bool
}

// WithHTTPClient 允许复用已有的 http.Client。
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *options) {
		o.httpClient = httpClient
	}
}

// WithTimeout 设置客户端的请求超时时间。
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		if timeout > 0 {
			o.timeout = timeout
			o.hasTimeout = true
		}
	}
}

// NewClient 创建指向转写服务的新客户端实例。
func NewClient(endpoint string, opts ...Option) (*Client, error) {
	trimmed := strings.TrimSpace(endpoint)
	if trimmed == "" {
		return nil, errors.New("speech: endpoint must not be empty")
	}
	if !strings.HasPrefix(trimmed, "http://") && !strings.HasPrefix(trimmed, "https://") {
		trimmed = "http://" + trimmed
	}

	options := options{}
	for _, opt := range opts {
		opt(&options)
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	// 转写大文件较慢，默认超时放宽到 60 秒
	if options.hasTimeout {
		httpClient.Timeout = options.timeout
	} else if httpClient.Timeout == 0 {
		httpClient.Timeout = 60 * time.Second
	}

	return &Client{
		endpoint:   strings.TrimRight(trimmed, "/"),
		httpClient: httpClient,
	}, nil
}

// Transcription is the result of a speech-to-text request.
type Transcription struct {
	Text     string  `json:"text"`
	Language string  `json:"language"`
	Duration float64 `json:"duration"`
}

// Transcribe uploads audio and returns the recognized text.
func (c *Client) Transcribe(ctx context.Context, filename string, audio io.Reader, language string) (*Transcription, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("speech: build form: %w", err)
	}
	if _, err := io.Copy(part, audio); err != nil {
		return nil, fmt.Errorf("speech: read audio: %w", err)
	}
	if language != "" {
		if err := writer.WriteField("language", language); err != nil {
			return nil, fmt.Errorf("speech: build form: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("speech: build form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/transcribe", &buf)
	if err != nil {
		return nil, fmt.Errorf("speech: build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("speech: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("speech: transcribe failed with status %d: %s", resp.StatusCode, data)
	}

	var result Transcription
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("speech: decode response: %w", err)
	}
	return &result, nil
}
