package routing

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/valyala/fasthttp"
)

const (
	DefaultBaseURL   = "https://www.routingnumbers.info"
	DefaultTimeout   = 3 * time.Second
	defaultCacheSize = 1024
)

var (
	// ErrRoutingNumberRequired is returned for an empty routing number.
	ErrRoutingNumberRequired = errors.New("routing number is required")

	// ErrBankNotFound is returned when the service does not know the number.
	ErrBankNotFound = errors.New("bank not found")
)

// Bank is a resolved financial institution.
type Bank struct {
	RoutingNumber string
	Name          string
}

// Options configures a Client.
type Options struct {
	BaseURL   string
	Timeout   time.Duration
	CacheSize int
	// Dial overrides how connections are made; nil uses the network.
	Dial fasthttp.DialFunc
}

// Client looks up bank names by ABA routing number. Successful lookups are
// cached; failures are not. Each lookup is a single attempt bounded by the
// configured timeout or the context deadline, whichever is sooner.
type Client struct {
	baseURL string
	timeout time.Duration
	http    *fasthttp.Client
	cache   *lru.Cache[string, Bank]
}

type nameResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Name    string `json:"name"`
}

// New creates a Client.
func New(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.CacheSize <= 0 {
		opts.CacheSize = defaultCacheSize
	}
	cache, _ := lru.New[string, Bank](opts.CacheSize)
	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		timeout: opts.Timeout,
		http: &fasthttp.Client{
			Name:                "appformat",
			Dial:                opts.Dial,
			ReadTimeout:         opts.Timeout,
			WriteTimeout:        opts.Timeout,
			MaxIdleConnDuration: 90 * time.Second,
		},
		cache: cache,
	}
}

// Lookup resolves the bank name for a routing number.
func (c *Client) Lookup(ctx context.Context, routingNumber string) (Bank, error) {
	routingNumber = strings.TrimSpace(routingNumber)
	if routingNumber == "" {
		return Bank{}, ErrRoutingNumberRequired
	}
	if b, ok := c.cache.Get(routingNumber); ok {
		return b, nil
	}
	if err := ctx.Err(); err != nil {
		return Bank{}, err
	}

	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.baseURL + "/api/name.json?rn=" + url.QueryEscape(routingNumber))
	req.Header.SetMethod(fasthttp.MethodGet)

	if err := c.http.DoTimeout(req, resp, timeout); err != nil {
		return Bank{}, fmt.Errorf("routing lookup %s: %w", routingNumber, err)
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return Bank{}, fmt.Errorf("routing lookup %s: http status %d", routingNumber, resp.StatusCode())
	}

	var nr nameResponse
	if err := json.Unmarshal(resp.Body(), &nr); err != nil {
		return Bank{}, fmt.Errorf("decode routing response: %w", err)
	}
	if nr.Code != fasthttp.StatusOK || nr.Name == "" {
		return Bank{}, fmt.Errorf("%w: %s", ErrBankNotFound, routingNumber)
	}

	b := Bank{RoutingNumber: routingNumber, Name: nr.Name}
	c.cache.Add(routingNumber, b)
	return b, nil
}
