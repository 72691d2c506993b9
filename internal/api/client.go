package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"emperror.dev/errors"
	ghapi "github.com/cli/go-gh/v2/pkg/api"
	"github.com/google/go-github/v41/github"
	"github.com/shurcooL/githubv4"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

const defaultHost = "github.com"

// ClientOptions configures a Client
type ClientOptions struct {
	// Host is github.com or a GitHub Enterprise Server hostname.
	Host string
	// Token overrides the credentials stored by gh.
	Token   string
	Timeout time.Duration
	// Transport replaces the default HTTP transport.
	Transport http.RoundTripper
}

// Client talks to the GitHub REST and GraphQL APIs of one host
type Client struct {
	host string
	rest *github.Client
	gql  *githubv4.Client
}

// NewClient creates a client for the configured host. Both APIs share one authenticated
// HTTP client.
func NewClient(opts ClientOptions) (*Client, error) {
	host := NormalizeHost(opts.Host)
	httpClient, err := newHTTPClient(ghapi.ClientOptions{
		Host:      host,
		AuthToken: opts.Token,
		Timeout:   opts.Timeout,
		Transport: opts.Transport,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create GitHub HTTP client")
	}

	rest := github.NewClient(httpClient)
	if host != defaultHost {
		rest, err = github.NewEnterpriseClient(RESTURL(host), RESTURL(host), httpClient)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create GitHub REST client")
		}
	}

	return &Client{
		host: host,
		rest: rest,
		gql:  githubv4.NewEnterpriseClient(GraphQLURL(host), httpClient),
	}, nil
}

// Host returns the normalized host the client talks to
func (c *Client) Host() string {
	return c.host
}

// newHTTPClient uses a static oauth2 token when one was passed explicitly and falls
// back to the credentials gh has stored for the host.
func newHTTPClient(opts ghapi.ClientOptions) (*http.Client, error) {
	if opts.AuthToken == "" {
		return ghapi.NewHTTPClient(opts)
	}

	ctx := context.Background()
	if opts.Transport != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, &http.Client{Transport: opts.Transport})
	}
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.AuthToken})
	httpClient := oauth2.NewClient(ctx, src)
	httpClient.Timeout = opts.Timeout
	return httpClient, nil
}

// NormalizeHost strips the scheme and trailing slashes from a server URL
func NormalizeHost(serverURL string) string {
	host := strings.TrimSpace(serverURL)
	host = strings.TrimPrefix(host, "https://")
	host = strings.TrimPrefix(host, "http://")
	host = strings.TrimRight(host, "/")
	if host == "" {
		return defaultHost
	}
	return strings.ToLower(host)
}

// GraphQLURL returns the GraphQL endpoint for a host
func GraphQLURL(host string) string {
	host = NormalizeHost(host)
	if host == defaultHost {
		return "https://api.github.com/graphql"
	}
	return "https://" + host + "/api/graphql"
}

// RESTURL returns the REST API root for a GitHub Enterprise Server host
func RESTURL(host string) string {
	return "https://" + NormalizeHost(host) + "/api/v3/"
}

// WebURL returns the base URL of the web UI for a host
func WebURL(host string) string {
	return "https://" + NormalizeHost(host)
}

func (c *Client) query(ctx context.Context, query any, variables map[string]any) (reterr error) {
	log := logrus.WithFields(logrus.Fields{
		"host":      c.host,
		"variables": variables,
	})
	log.Debug("executing GitHub GraphQL query...")
	startTime := time.Now()
	defer func() {
		log := log.WithField("elapsed", time.Since(startTime))
		if reterr != nil {
			log.WithError(reterr).Debug("GitHub GraphQL query failed")
		} else {
			log.Debug("GitHub GraphQL query succeeded")
		}
	}()
	return c.gql.Query(ctx, query, variables)
}

// do runs one REST call and logs its duration and the remaining rate limit
func (c *Client) do(operation string, fields logrus.Fields, call func() (*github.Response, error)) error {
	log := logrus.WithFields(fields).WithFields(logrus.Fields{
		"host":      c.host,
		"operation": operation,
	})
	startTime := time.Now()
	resp, err := call()
	log = log.WithField("elapsed", time.Since(startTime))
	if resp != nil {
		log = log.WithField("rateRemaining", resp.Rate.Remaining)
	}
	if err != nil {
		log.WithError(err).Debug("GitHub API request failed")
		return err
	}
	log.Debug("GitHub API request succeeded")
	return nil
}

// IsNotFound reports whether err is an HTTP 404 from the REST API
func IsNotFound(err error) bool {
	var errResp *github.ErrorResponse
	return errors.As(err, &errResp) && errResp.Response != nil && errResp.Response.StatusCode == http.StatusNotFound
}
