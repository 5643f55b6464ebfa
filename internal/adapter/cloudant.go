package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/health-portal/internal/config"
	"github.com/MKhiriev/health-portal/internal/logger"
	"github.com/MKhiriev/health-portal/internal/utils"
	"github.com/go-resty/resty/v2"
)

type cloudantAdapter struct {
	client *utils.HTTPClient
	tokens *iamTokenSource

	logger *logger.Logger
}

// NewCloudantAdapter constructs a resty implementation of [DocumentStore]
// pointed at cfg.URL. Every request is bounded by cfg.CallTimeout and
// carries an IAM bearer token obtained with cfg.APIKey.
//
// Returns [ErrConfiguration] if the API key or the URL is missing or the URL
// cannot be parsed. No network call is made here.
func NewCloudantAdapter(cfg config.Cloudant, logger *logger.Logger) (DocumentStore, error) {
	if !cfg.Configured() {
		return nil, fmt.Errorf("%w: api key and url are required", ErrConfiguration)
	}

	baseURL, err := normalizeBaseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid url: %w", ErrConfiguration, err)
	}

	return &cloudantAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.CallTimeout),
		tokens: newIAMTokenSource(cfg.IAMURL, cfg.APIKey, cfg.CallTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Host == "" {
		return "", fmt.Errorf("missing host in %q", raw)
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (c *cloudantAdapter) ServerInformation(ctx context.Context) (ServerInfo, error) {
	req, err := c.authedRequest(ctx)
	if err != nil {
		return ServerInfo{}, err
	}

	resp, err := req.Get("/")
	if err != nil {
		return ServerInfo{}, mapTransportError("server information", err)
	}
	if err = c.checkResponse(resp); err != nil {
		return ServerInfo{}, err
	}

	var info ServerInfo
	if err = json.Unmarshal(resp.Body(), &info); err != nil {
		return ServerInfo{}, fmt.Errorf("%w: decode server information: %w", ErrConnectivity, err)
	}

	return info, nil
}

func (c *cloudantAdapter) DatabaseExists(ctx context.Context, db string) (bool, error) {
	req, err := c.authedRequest(ctx)
	if err != nil {
		return false, err
	}

	resp, err := req.SetPathParam("db", db).Get("/{db}")
	if err != nil {
		return false, mapTransportError("database information", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return false, nil
	}
	if err = c.checkResponse(resp); err != nil {
		return false, err
	}

	return true, nil
}

func (c *cloudantAdapter) CreateDatabase(ctx context.Context, db string) error {
	req, err := c.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.SetPathParam("db", db).Put("/{db}")
	if err != nil {
		return mapTransportError("create database", err)
	}
	if resp.StatusCode() == http.StatusPreconditionFailed {
		// created concurrently by another instance
		return nil
	}

	return c.checkResponse(resp)
}

func (c *cloudantAdapter) Find(ctx context.Context, db string, query FindQuery) ([]json.RawMessage, error) {
	req, err := c.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetPathParam("db", db).
		SetBody(query).
		Post("/{db}/_find")
	if err != nil {
		return nil, mapTransportError("find documents", err)
	}
	if err = c.checkResponse(resp); err != nil {
		return nil, err
	}

	var body findResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("%w: decode find response: %w", ErrRequestFailed, err)
	}
	if body.Warning != "" {
		c.logger.Debug().Str("db", db).Str("warning", body.Warning).Msg("query warning from document store")
	}

	return body.Docs, nil
}

func (c *cloudantAdapter) PostDocument(ctx context.Context, db string, doc any) (DocumentResult, error) {
	req, err := c.authedRequest(ctx)
	if err != nil {
		return DocumentResult{}, err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetPathParam("db", db).
		SetBody(doc).
		Post("/{db}")
	if err != nil {
		return DocumentResult{}, mapTransportError("post document", err)
	}
	if err = c.checkResponse(resp); err != nil {
		return DocumentResult{}, err
	}

	var result DocumentResult
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return DocumentResult{}, fmt.Errorf("%w: decode post document response: %w", ErrRequestFailed, err)
	}

	return result, nil
}

func (c *cloudantAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	return c.client.R().SetContext(ctx).SetAuthToken(token), nil
}

// checkResponse maps the response status and forgets the cached token when
// the service refused it, so the next call performs a fresh exchange.
func (c *cloudantAdapter) checkResponse(resp *resty.Response) error {
	err := mapHTTPError(resp)
	if errors.Is(err, ErrUnauthorized) {
		c.tokens.Invalidate()
	}
	return err
}
