package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/health-portal/internal/utils"
)

// iamGrantType is the OAuth grant used to exchange an API key for a token.
const iamGrantType = "urn:ibm:params:oauth:grant-type:apikey"

// tokenRefreshMargin renews a token this long before it actually expires.
const tokenRefreshMargin = time.Minute

// iamTokenSource exchanges an API key for bearer tokens and caches the
// current one until shortly before it expires.
type iamTokenSource struct {
	client *utils.HTTPClient
	url    string
	apiKey string

	mu        sync.Mutex
	token     string
	expiresAt time.Time

	now func() time.Time
}

func newIAMTokenSource(url, apiKey string, timeout time.Duration) *iamTokenSource {
	return &iamTokenSource{
		client: utils.NewHTTPClient("", timeout),
		url:    strings.TrimSpace(url),
		apiKey: apiKey,
		now:    time.Now,
	}
}

// Token returns a valid bearer token, performing the exchange when the cached
// one is missing or about to expire.
func (s *iamTokenSource) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != "" && s.now().Before(s.expiresAt.Add(-tokenRefreshMargin)) {
		return s.token, nil
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"grant_type": iamGrantType,
			"apikey":     s.apiKey,
		}).
		Post(s.url)
	if err != nil {
		return "", mapTransportError("iam token exchange", err)
	}
	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrConnectivity) {
			return "", fmt.Errorf("iam token exchange: %w", err)
		}
		// any other refusal of the key means the credentials are unusable
		return "", fmt.Errorf("%w: %w: iam token exchange: %w", ErrConnectivity, ErrUnauthorized, err)
	}

	var body iamTokenResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return "", fmt.Errorf("%w: decode iam token response: %w", ErrConnectivity, err)
	}
	if body.AccessToken == "" {
		return "", fmt.Errorf("%w: %w: iam token response has no access token", ErrConnectivity, ErrUnauthorized)
	}

	s.token = body.AccessToken
	s.expiresAt = s.expiry(body)

	return s.token, nil
}

// Invalidate drops the cached token so the next call performs a new exchange.
func (s *iamTokenSource) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.expiresAt = time.Time{}
}

func (s *iamTokenSource) expiry(body iamTokenResponse) time.Time {
	if body.Expiration > 0 {
		return time.Unix(body.Expiration, 0)
	}
	if body.ExpiresIn > 0 {
		return s.now().Add(time.Duration(body.ExpiresIn) * time.Second)
	}
	// no lifetime given: use the token once
	return s.now()
}
