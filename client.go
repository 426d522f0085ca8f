package derpi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Version is the SDK version reported in the User-Agent header.
const Version = "1.0.0"

const (
	defaultBaseURL   = "https://derpibooru.org"
	defaultUserAgent = "go-derpi/" + Version
	requestTimeout   = 10 * time.Second
)

// Options configure a Client. The zero value talks to derpibooru.org
// anonymously with the site's default filter.
type Options struct {
	// BaseURL overrides the API host, e.g. for Philomena sister sites or
	// tests. Scheme defaults to https when omitted.
	BaseURL string
	// APIKey is attached as the key query parameter on every request when
	// set. Required for reverse image search by upload.
	APIKey string
	// FilterID is the content filter applied to search and tag requests
	// that don't choose their own. Zero means FilterDefault.
	FilterID int
	// UserAgent overrides the product-identifying User-Agent string.
	UserAgent string
	// HTTPClient overrides the underlying transport. Nil uses a client
	// with a 10-second timeout.
	HTTPClient *http.Client
}

// Client talks to a Derpibooru/Philomena HTTP API. It is safe for
// concurrent use. Each Client owns its own slug-resolution cache, so
// independent Clients never share state.
type Client struct {
	baseURL     *url.URL
	apiKey      string
	filterID    int
	userAgent   string
	http        *http.Client
	resolutions *resolutionCache
}

// NewClient builds a Client from opts.
func NewClient(opts Options) (*Client, error) {
	base, err := parseBaseURL(opts.BaseURL)
	if err != nil {
		return nil, err
	}

	filterID := opts.FilterID
	if filterID == 0 {
		filterID = FilterDefault
	}
	userAgent := strings.TrimSpace(opts.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: requestTimeout}
	}

	return &Client{
		baseURL:     base,
		apiKey:      opts.APIKey,
		filterID:    filterID,
		userAgent:   userAgent,
		http:        httpClient,
		resolutions: newResolutionCache(),
	}, nil
}

// fetchJSON executes ep with param substituted and decodes the body into
// dest.
func (c *Client) fetchJSON(ctx context.Context, ep endpoint, param string, query url.Values, dest any) error {
	req, err := c.newRequest(ctx, ep.method, ep.build(param, query), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	return c.execute(req, dest)
}

// postForm executes ep as a multipart/form-data POST. file may be nil when
// the form carries only plain fields.
func (c *Client) postForm(ctx context.Context, ep endpoint, fields map[string]string, fileField string, file io.Reader, dest any) error {
	var body strings.Builder
	writer := multipart.NewWriter(&body)
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return fmt.Errorf("write form field %s: %w", name, err)
		}
	}
	if file != nil {
		part, err := writer.CreateFormFile(fileField, "image")
		if err != nil {
			return fmt.Errorf("create form file: %w", err)
		}
		if _, err := io.Copy(part, file); err != nil {
			return fmt.Errorf("copy upload: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("finish form: %w", err)
	}

	req, err := c.newRequest(ctx, ep.method, ep.build("", nil), strings.NewReader(body.String()))
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return c.execute(req, dest)
}

func (c *Client) newRequest(ctx context.Context, method string, rel *url.URL, body io.Reader) (*http.Request, error) {
	reqURL := c.baseURL.ResolveReference(rel)
	if c.apiKey != "" {
		query := reqURL.Query()
		if query.Get("key") == "" {
			query.Set("key", c.apiKey)
			reqURL.RawQuery = query.Encode()
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	return req, nil
}

// execute runs the request, enforces the success-status contract and decodes
// the JSON body. 200 and 301 both count as success; the API issues 301s when
// it canonicalizes a slug.
func (c *Client) execute(req *http.Request, dest any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{URL: req.URL.String(), Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusMovedPermanently {
		return &UnexpectedStatusError{URL: req.URL.String(), StatusCode: resp.StatusCode}
	}
	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return &DecodeError{URL: req.URL.String(), Err: err}
	}
	return nil
}

func parseBaseURL(base string) (*url.URL, error) {
	trimmed := strings.TrimSpace(base)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", base, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
