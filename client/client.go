package client

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const cachePrefix = "console:cache:"

// Options configures a Client.
type Options struct {
	BaseURL     string
	IdentityURL string
	Timeout     time.Duration
	Redis       *redis.Client
	CacheTTL    time.Duration
	Limiter     *rate.Limiter
	Logger      zerolog.Logger
	HTTPClient  *http.Client
}

// Client calls the cinema REST API. The zero token is anonymous; use
// WithToken to get a per-request copy that carries the operator's bearer.
type Client struct {
	baseURL     string
	identityURL string
	token       string
	httpClient  *http.Client
	timeout     time.Duration

	redis    *redis.Client
	cacheTTL time.Duration
	limiter  *rate.Limiter
	log      zerolog.Logger
}

func New(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	identity := opts.IdentityURL
	if identity == "" {
		identity = strings.TrimSuffix(strings.TrimRight(opts.BaseURL, "/"), "/v1")
	}
	return &Client{
		baseURL:     strings.TrimRight(opts.BaseURL, "/"),
		identityURL: strings.TrimRight(identity, "/"),
		httpClient:  httpClient,
		timeout:     timeout,
		redis:       opts.Redis,
		cacheTTL:    opts.CacheTTL,
		limiter:     opts.Limiter,
		log:         opts.Logger.With().Str("component", "api-client").Logger(),
	}
}

// WithToken returns a copy that sends Authorization: Bearer <token>.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.token = token
	return &cp
}

func (c *Client) Token() string {
	return c.token
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	key := c.cacheKey(path, query)
	if c.readCache(ctx, key, out) {
		cacheHits.WithLabelValues(resourceOf(path)).Inc()
		return nil
	}
	raw, err := c.do(ctx, http.MethodGet, c.baseURL, path, query, nil, "")
	if err != nil {
		return err
	}
	if err := decode(raw, out); err != nil {
		return err
	}
	c.writeCache(ctx, key, raw)
	return nil
}

// send issues a mutating JSON request and drops cached reads of the
// touched resources.
func (c *Client) send(ctx context.Context, method, path string, query url.Values, body, out any, also ...string) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
	}
	raw, err := c.do(ctx, method, c.baseURL, path, query, payload, "application/json")
	if err != nil {
		return err
	}
	c.invalidate(ctx, append([]string{resourceOf(path)}, also...)...)
	return decode(raw, out)
}

func (c *Client) do(ctx context.Context, method, base, path string, query url.Values, body []byte, contentType string) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	endpoint := base + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, err
	}
	if contentType != "" && body != nil {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	c.addHeaders(req)

	resource := resourceOf(path)
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		observe(method, resource, "error", start)
		c.log.Warn().Err(err).Str("method", method).Str("path", path).Msg("api request failed")
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()
	observe(method, resource, strconv.Itoa(resp.StatusCode), start)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrUnavailable, err)
	}
	c.log.Debug().Str("method", method).Str("path", path).Int("status", resp.StatusCode).
		Dur("took", time.Since(start)).Msg("api request")

	if resp.StatusCode >= 300 {
		return nil, newAPIError(resp.StatusCode, raw)
	}
	// Some endpoints answer 200 with succeeded=false.
	var env struct {
		Succeeded *bool    `json:"succeeded"`
		Messages  []string `json:"messages"`
	}
	if json.Unmarshal(raw, &env) == nil && env.Succeeded != nil && !*env.Succeeded {
		return nil, &APIError{Status: resp.StatusCode, Messages: env.Messages}
	}
	return raw, nil
}

func (c *Client) addHeaders(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

func decode(raw []byte, out any) error {
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// sharedResources read the same for every employee, so one cached copy
// serves all tokens.
var sharedResources = map[string]bool{"statistics": true}

func (c *Client) cacheKey(path string, query url.Values) string {
	res := resourceOf(path)
	scope := "shared"
	if !sharedResources[res] {
		sum := sha256.Sum256([]byte(c.token))
		scope = hex.EncodeToString(sum[:8])
	}
	target := path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	return cachePrefix + scope + ":" + res + ":" + target
}

func (c *Client) readCache(ctx context.Context, key string, out any) bool {
	if c.redis == nil || c.cacheTTL <= 0 {
		return false
	}
	val, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(val, out); err != nil {
		return false
	}
	return true
}

func (c *Client) writeCache(ctx context.Context, key string, raw []byte) {
	if c.redis == nil || c.cacheTTL <= 0 {
		return
	}
	if err := c.redis.Set(ctx, key, raw, c.cacheTTL).Err(); err != nil {
		c.log.Debug().Err(err).Str("key", key).Msg("cache write failed")
	}
}

// invalidate drops every cached read of the given resources, for all tokens.
func (c *Client) invalidate(ctx context.Context, resources ...string) {
	if c.redis == nil || c.cacheTTL <= 0 {
		return
	}
	for _, res := range resources {
		if res == "" {
			continue
		}
		iter := c.redis.Scan(ctx, 0, cachePrefix+"*:"+res+":*", 100).Iterator()
		var keys []string
		for iter.Next(ctx) {
			keys = append(keys, iter.Val())
		}
		if err := iter.Err(); err != nil {
			c.log.Debug().Err(err).Str("resource", res).Msg("cache scan failed")
			continue
		}
		if len(keys) > 0 {
			c.redis.Del(ctx, keys...)
		}
	}
}

// resourceOf maps "/schedule/cinema/3" to "schedule".
func resourceOf(path string) string {
	p := strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(p, '/'); i >= 0 {
		p = p[:i]
	}
	return strings.ToLower(p)
}

// IsUnauthorized reports whether the API rejected the bearer token.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}
