// Package webflow provides a minimal client for the Webflow CMS API, used to
// push a static page into a site. It covers exactly what the page-creation
// command needs; it is not a general SDK.
package webflow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/brikdesigns/brik/internal/logger"
	apperrors "github.com/brikdesigns/brik/pkg/errors"
)

// DefaultBaseURL is the production Webflow API endpoint.
const DefaultBaseURL = "https://api.webflow.com/v2"

// Options configures a Client.
type Options struct {
	// Token is the API bearer token. Required.
	Token string
	// BaseURL overrides the API endpoint, mainly for tests.
	BaseURL string
	// HTTPClient overrides the transport; nil selects a client with a
	// 30 second timeout.
	HTTPClient *http.Client
	Logger     *logger.Logger
}

// Client calls the Webflow API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient creates a Webflow API client.
func NewClient(opts Options) (*Client, error) {
	if opts.Token == "" {
		return nil, apperrors.NewValidationError("webflow.token", "api token is required", nil)
	}
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		baseURL:    baseURL,
		token:      opts.Token,
		httpClient: httpClient,
		log:        opts.Logger.WithComponent("webflow"),
	}, nil
}

// CreatePageRequest describes the page to create.
type CreatePageRequest struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
	// ParentID optionally nests the page under a folder.
	ParentID string `json:"parentId,omitempty"`
	Draft    bool   `json:"isDraft,omitempty"`
}

// Page is a created page as returned by the API.
type Page struct {
	ID          string    `json:"id"`
	SiteID      string    `json:"siteId"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	CreatedOn   time.Time `json:"createdOn"`
	LastUpdated time.Time `json:"lastUpdated"`
}

type apiErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CreatePage creates a static page under the given site.
func (c *Client) CreatePage(ctx context.Context, siteID string, req CreatePageRequest) (*Page, error) {
	if siteID == "" {
		return nil, apperrors.NewValidationError("webflow.site_id", "site id is required", nil)
	}
	if req.Title == "" {
		return nil, apperrors.NewValidationError("webflow.title", "page title is required", nil)
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/sites/%s/pages", c.baseURL, siteID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.token)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	c.log.WithFields(map[string]any{"site": siteID, "slug": req.Slug}).Debug("creating page")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errBody apiErrorBody
		_ = json.NewDecoder(resp.Body).Decode(&errBody)
		return nil, apperrors.NewAPIError(resp.StatusCode, errBody.Code, errBody.Message)
	}

	var page Page
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, err
	}

	c.log.WithFields(map[string]any{"page": page.ID}).Info("page created")
	return &page, nil
}
