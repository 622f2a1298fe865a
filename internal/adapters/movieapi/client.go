// Package movieapi implements ports.MovieSource against the remote movie service.
package movieapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	jmespath "github.com/jmespath-community/go-jmespath"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/target/movie-gallery/internal/domain/movie"
	apperrors "github.com/target/movie-gallery/internal/errors"
	"github.com/target/movie-gallery/internal/observability/metrics"
	"github.com/target/movie-gallery/internal/observability/statsd"
	"github.com/target/movie-gallery/internal/ports"
)

const (
	defaultMoviesPath = "/movies"
	defaultTimeout    = 10 * time.Second
	maxBodyBytes      = 4 << 20
)

// Default response mapping expressions.
const (
	DefaultSuccessExpr = "success"
	DefaultMoviesExpr  = "data.movies"
	DefaultTotalExpr   = "data.total"
)

// Mapping locates the contract fields inside a response document.
type Mapping struct {
	Success string
	Movies  string
	Total   string
}

// ClientCredentials configures the OAuth2 client-credentials grant for service-to-service calls.
type ClientCredentials struct {
	ClientID     string
	ClientSecret string
	TokenURL     string
	Scopes       []string
}

// Config configures the movie service client.
type Config struct {
	BaseURL           string
	MoviesPath        string
	Timeout           time.Duration
	BearerToken       string
	ClientCredentials *ClientCredentials
	Mapping           Mapping
	HTTPClient        *http.Client
	Metrics           statsd.Sink
	Logger            *slog.Logger
}

// Client fetches pages of movies.
type Client struct {
	endpoint *url.URL
	http     *http.Client
	mapping  Mapping
	metrics  statsd.Sink
	logger   *slog.Logger
}

var _ ports.MovieSource = (*Client)(nil)

// NewClient validates the configuration and builds an authenticated HTTP client.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		return nil, apperrors.Validationf("movie api base url is required")
	}
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, apperrors.Validationf("movie api base url %q is invalid", base)
	}
	path := strings.TrimSpace(cfg.MoviesPath)
	if path == "" {
		path = defaultMoviesPath
	}
	u = u.JoinPath(path)

	mapping, err := compileMapping(cfg.Mapping)
	if err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		endpoint: u,
		http:     buildHTTPClient(ctx, cfg),
		mapping:  mapping,
		metrics:  cfg.Metrics,
		logger:   logger.With("component", "movieapi"),
	}, nil
}

func compileMapping(m Mapping) (Mapping, error) {
	out := Mapping{
		Success: firstNonEmpty(m.Success, DefaultSuccessExpr),
		Movies:  firstNonEmpty(m.Movies, DefaultMoviesExpr),
		Total:   firstNonEmpty(m.Total, DefaultTotalExpr),
	}
	for name, expr := range map[string]string{"success": out.Success, "movies": out.Movies, "total": out.Total} {
		if _, err := jmespath.Compile(expr); err != nil {
			return Mapping{}, apperrors.Wrapf(err, apperrors.ErrCodeValidation, "invalid %s mapping %q", name, expr)
		}
	}
	return out, nil
}

func buildHTTPClient(ctx context.Context, cfg Config) *http.Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	base := cfg.HTTPClient
	if base == nil {
		base = &http.Client{Timeout: timeout}
	}

	// The oauth2 helpers pick up the base client from the context for token requests and transport.
	oauthCtx := context.WithValue(context.WithoutCancel(ctx), oauth2.HTTPClient, base)

	var client *http.Client
	switch cc := cfg.ClientCredentials; {
	case cc != nil && strings.TrimSpace(cc.TokenURL) != "":
		conf := clientcredentials.Config{
			ClientID:     cc.ClientID,
			ClientSecret: cc.ClientSecret,
			TokenURL:     cc.TokenURL,
			Scopes:       cc.Scopes,
		}
		client = conf.Client(oauthCtx)
	case strings.TrimSpace(cfg.BearerToken) != "":
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: strings.TrimSpace(cfg.BearerToken), TokenType: "Bearer"})
		client = oauth2.NewClient(oauthCtx, ts)
	default:
		return base
	}
	client.Timeout = timeout
	return client
}

// GetMovies requests one page of movies. A reply carrying success=false is returned as a
// response with Success unset and a nil error; anything that cannot be interpreted is an error.
func (c *Client) GetMovies(ctx context.Context, limit, page int) (movie.FetchResponse, error) {
	start := time.Now()
	resp, status, err := c.fetch(ctx, limit, page)

	result := metrics.ResultSuccess
	switch {
	case err != nil:
		result = metrics.ResultError
		c.logger.WarnContext(ctx, "movie fetch failed", "page", page, "status", status, "error", err)
	case !resp.Success:
		result = metrics.ResultSoftFailure
		c.logger.InfoContext(ctx, "movie service reported failure", "page", page, "status", status)
	}
	metrics.EmitMovieFetch(c.metrics, metrics.FetchMetric{
		Result:   result,
		Status:   status,
		Duration: time.Since(start),
		Err:      err,
	})
	return resp, err
}

func (c *Client) fetch(ctx context.Context, limit, page int) (movie.FetchResponse, int, error) {
	u := *c.endpoint
	q := u.Query()
	q.Set("limit", strconv.Itoa(limit))
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return movie.FetchResponse{}, 0, apperrors.Wrap(err, apperrors.ErrCodeInternal, "build movies request")
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return movie.FetchResponse{}, 0, apperrors.WrapTransport(err, "get movies")
	}
	defer func() { _ = res.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))
	if err != nil {
		return movie.FetchResponse{}, res.StatusCode, apperrors.WrapTransport(err, "read movies response")
	}

	var doc any
	decodeErr := json.Unmarshal(body, &doc)
	ok := res.StatusCode >= 200 && res.StatusCode < 300

	if !ok {
		// A JSON body that explicitly reports failure is part of the contract.
		if decodeErr == nil {
			if success, found := c.success(doc); found && !success {
				return movie.FetchResponse{Success: false}, res.StatusCode, nil
			}
		}
		return movie.FetchResponse{}, res.StatusCode, apperrors.Upstreamf("movie service replied %d", res.StatusCode)
	}
	if decodeErr != nil {
		return movie.FetchResponse{}, res.StatusCode, apperrors.Wrap(decodeErr, apperrors.ErrCodeUpstream, "decode movies response")
	}

	out, err := c.mapResponse(doc)
	return out, res.StatusCode, err
}

func (c *Client) success(doc any) (value, found bool) {
	v, err := jmespath.Search(c.mapping.Success, doc)
	if err != nil || v == nil {
		return false, false
	}
	b, isBool := v.(bool)
	return b, isBool
}

func (c *Client) mapResponse(doc any) (movie.FetchResponse, error) {
	success, found := c.success(doc)
	if !found {
		return movie.FetchResponse{}, apperrors.Upstreamf("movie response has no boolean at %q", c.mapping.Success)
	}
	if !success {
		return movie.FetchResponse{Success: false}, nil
	}

	rawMovies, err := jmespath.Search(c.mapping.Movies, doc)
	if err != nil {
		return movie.FetchResponse{}, apperrors.Wrap(err, apperrors.ErrCodeUpstream, "map movies")
	}
	if rawMovies == nil {
		// success without a payload; the view treats this like a reported failure.
		return movie.FetchResponse{Success: true}, nil
	}

	movies, err := decodeMovies(rawMovies)
	if err != nil {
		return movie.FetchResponse{}, err
	}

	total := len(movies)
	rawTotal, err := jmespath.Search(c.mapping.Total, doc)
	if err != nil {
		return movie.FetchResponse{}, apperrors.Wrap(err, apperrors.ErrCodeUpstream, "map total")
	}
	if rawTotal != nil {
		n, ok := rawTotal.(float64)
		if !ok || n < 0 {
			return movie.FetchResponse{}, apperrors.Upstreamf("movie total %v is not a non-negative number", rawTotal)
		}
		total = int(n)
	}

	return movie.FetchResponse{
		Success: true,
		Data:    &movie.PageResult{Movies: movies, Total: total},
	}, nil
}

// decodeMovies round-trips the mapped subtree through JSON so field tags apply.
func decodeMovies(raw any) ([]movie.Movie, error) {
	if _, ok := raw.([]any); !ok {
		return nil, apperrors.Upstreamf("movie list is %T, want array", raw)
	}
	b, err := json.Marshal(raw)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeUpstream, "encode movie list")
	}
	var movies []movie.Movie
	if err := json.Unmarshal(b, &movies); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, apperrors.Upstreamf("movie field %q has unexpected type %s", typeErr.Field, typeErr.Value)
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeUpstream, "decode movie list")
	}
	if movies == nil {
		movies = []movie.Movie{}
	}
	return movies, nil
}

func firstNonEmpty(v, fallback string) string {
	if s := strings.TrimSpace(v); s != "" {
		return s
	}
	return fallback
}

// String identifies the endpoint for logs.
func (c *Client) String() string {
	return fmt.Sprintf("movieapi(%s)", c.endpoint.Redacted())
}
