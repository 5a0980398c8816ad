// Package ocr is the image-to-text boundary: a thin client for the
// OCR.space parse/image API. Everything downstream of this package works
// on plain text; failures here are boundary errors the caller handles
// before extraction ever runs.
package ocr

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const DefaultEndpoint = "https://api.ocr.space/parse/image"

type Config struct {
	APIKey   string
	Endpoint string        // default DefaultEndpoint
	Language string        // default "eng"
	Engine   int           // default 2
	Timeout  time.Duration // default 30s
}

type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Language == "" {
		cfg.Language = "eng"
	}
	if cfg.Engine <= 0 {
		cfg.Engine = 2
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// ParseImage sends a base64-encoded image (data-URL form accepted by the
// API) and returns the transcription plus per-word overlay metadata. The
// overlay is surfaced for callers that want positional data; field
// extraction uses only the text.
func (c *Client) ParseImage(ctx context.Context, imageBase64 string) (Result, error) {
	if strings.TrimSpace(imageBase64) == "" {
		return Result{}, fmt.Errorf("ocr: image data is required")
	}

	form := url.Values{}
	form.Set("base64Image", imageBase64)
	form.Set("language", c.cfg.Language)
	form.Set("isOverlayRequired", "true")
	form.Set("detectOrientation", "true")
	form.Set("scale", "true")
	form.Set("OCREngine", strconv.Itoa(c.cfg.Engine))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return Result{}, fmt.Errorf("ocr: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("apikey", c.cfg.APIKey)

	start := time.Now()
	c.logger.Info("ocr.http.request", "endpoint", c.cfg.Endpoint, "engine", c.cfg.Engine, "image_bytes", len(imageBase64))

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("ocr.http.send_error", "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return Result{}, fmt.Errorf("ocr: send request: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Warn("ocr.http.body_close_error", "error", cerr)
		}
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("ocr: read response: %w", err)
	}

	c.logger.Info("ocr.http.response",
		"status", resp.StatusCode,
		"bytes", len(raw),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode/100 != 2 {
		return Result{}, fmt.Errorf("ocr: non-2xx status: %d", resp.StatusCode)
	}

	var pr parseResponse
	if err := json.Unmarshal(raw, &pr); err != nil {
		return Result{}, fmt.Errorf("ocr: decode response: %w", err)
	}
	if pr.IsErroredOnProcessing || len(pr.ParsedResults) == 0 {
		return Result{}, fmt.Errorf("ocr: processing failed: %s", strings.Join(pr.ErrorMessage, "; "))
	}

	first := pr.ParsedResults[0]
	return Result{
		Text:     first.ParsedText,
		Overlay:  first.TextOverlay,
		Duration: time.Since(start),
	}, nil
}
