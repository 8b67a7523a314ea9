package content

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	apperrors "github.com/intellect-edu/edusite-api/pkg/errors"
)

const (
	upstreamTimeout = 10 * time.Second

	// Listing responses are small (the CMS paginates), but cap the body read
	// anyway so a misbehaving upstream cannot exhaust memory.
	maxUpstreamBodyBytes = 4 << 20
)

// ContentClient fetches published documents from the headless CMS.
type ContentClient interface {
	ListDocuments(ctx context.Context, contentType string) ([]Document, error)
	GetDocument(ctx context.Context, contentType, slug string) (*Document, error)
}

type httpContentClient struct {
	baseURL    string
	apiToken   string
	httpClient *http.Client
}

// NewContentClient talks to the CMS HTTP API at baseURL. The token is optional;
// when present it is sent as a bearer credential.
func NewContentClient(baseURL, apiToken string) ContentClient {
	return &httpContentClient{
		baseURL:  baseURL,
		apiToken: apiToken,
		httpClient: &http.Client{
			Timeout: upstreamTimeout,
		},
	}
}

type listEnvelope struct {
	Data []Document `json:"data"`
}

type documentEnvelope struct {
	Data Document `json:"data"`
}

func (c *httpContentClient) ListDocuments(ctx context.Context, contentType string) ([]Document, error) {
	endpoint := fmt.Sprintf("%s/api/%s?status=published", c.baseURL, url.PathEscape(contentType))

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var envelope listEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, apperrors.NewUpstreamError("Content is temporarily unavailable", err)
	}

	return envelope.Data, nil
}

func (c *httpContentClient) GetDocument(ctx context.Context, contentType, slug string) (*Document, error) {
	endpoint := fmt.Sprintf("%s/api/%s/%s", c.baseURL, url.PathEscape(contentType), url.PathEscape(slug))

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var envelope documentEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, apperrors.NewUpstreamError("Content is temporarily unavailable", err)
	}

	return &envelope.Data, nil
}

func (c *httpContentClient) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, apperrors.NewUpstreamError("Content is temporarily unavailable", err)
	}

	req.Header.Set("Accept", "application/json")
	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewUpstreamError("Content is temporarily unavailable", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, apperrors.NewNotFoundError("Content not found", nil)
	case resp.StatusCode >= 400:
		return nil, apperrors.NewUpstreamError(
			"Content is temporarily unavailable",
			fmt.Errorf("cms responded with status %d", resp.StatusCode),
		)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxUpstreamBodyBytes))
	if err != nil {
		return nil, apperrors.NewUpstreamError("Content is temporarily unavailable", err)
	}

	return body, nil
}
