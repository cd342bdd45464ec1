package propertyapi

import (
	"net/http"
	"strings"
	"time"

	"homevest-listings/internal/validators"
)

const (
	DefaultCreatePath = "/api/properties"
	DefaultTimeout    = 30 * time.Second
	DefaultMaxRetries = 3
	DefaultRetryDelay = 2 * time.Second
)

// ClientConfig holds the settings of a property service client
type ClientConfig struct {
	BaseURL    string
	CreatePath string
	// Timeout bounds each individual HTTP attempt
	Timeout time.Duration
	// MaxRetries is how many times a 503 is retried before giving up
	MaxRetries int
	RetryDelay time.Duration

	// HTTPClient is used as is when it sets its own Timeout. Otherwise a copy
	// bounded by Timeout is used.
	HTTPClient *http.Client
	FileOpener FileOpener
	Validator  validators.ListingValidator
}

// DefaultClientConfig returns the production retry and timeout policy for baseURL
func DefaultClientConfig(baseURL string) ClientConfig {
	return ClientConfig{
		BaseURL:    baseURL,
		CreatePath: DefaultCreatePath,
		Timeout:    DefaultTimeout,
		MaxRetries: DefaultMaxRetries,
		RetryDelay: DefaultRetryDelay,
	}
}

// Client submits property listings to the property service. It holds no
// per-call state and is safe for concurrent use.
type Client struct {
	baseURL    string
	createPath string
	maxRetries int
	retryDelay time.Duration
	httpClient *http.Client
	files      FileOpener
	validator  validators.ListingValidator
}

// NewClient creates a new property service client
func NewClient(cfg ClientConfig) *Client {
	httpClient := cfg.HTTPClient
	switch {
	case httpClient == nil:
		httpClient = &http.Client{
			Timeout: cfg.Timeout,
		}
	case httpClient.Timeout == 0 && cfg.Timeout > 0:
		bounded := *httpClient
		bounded.Timeout = cfg.Timeout
		httpClient = &bounded
	}
	files := cfg.FileOpener
	if files == nil {
		files = LocalFileOpener{}
	}
	validator := cfg.Validator
	if validator == nil {
		validator = validators.NewListingValidator()
	}
	createPath := cfg.CreatePath
	if createPath == "" {
		createPath = DefaultCreatePath
	}
	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		createPath: "/" + strings.TrimLeft(createPath, "/"),
		maxRetries: maxRetries,
		retryDelay: cfg.RetryDelay,
		httpClient: httpClient,
		files:      files,
		validator:  validator,
	}
}

// MaxAttempts returns the total number of requests a single submission may send
func (c *Client) MaxAttempts() int {
	return c.maxRetries + 1
}

func (c *Client) createURL() string {
	return c.baseURL + c.createPath
}
