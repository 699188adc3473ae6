package scraper

import (
	"fmt"
	"time"

	browser "github.com/EDDYCJY/fake-useragent"
	"github.com/go-resty/resty/v2"
)

type Options struct {
	BaseURL    string
	Timeout    time.Duration
	RetryCount int
	// UserAgent overrides the generated browser identifier when set.
	UserAgent string
}

// Client talks to the upstream store API. The user-agent is picked once at
// construction and reused for every request.
type Client struct {
	http      *resty.Client
	userAgent string
}

func NewClient(opts Options) *Client {
	ua := opts.UserAgent
	if ua == "" {
		ua = browser.Chrome()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}

	client := resty.New()
	client.SetBaseURL(opts.BaseURL)
	client.SetHeader("User-Agent", ua)
	client.SetTimeout(opts.Timeout)
	client.SetRetryCount(opts.RetryCount)

	return &Client{
		http:      client,
		userAgent: ua,
	}
}

// UserAgent reports the browser identifier attached to outbound requests.
func (c *Client) UserAgent() string {
	return c.userAgent
}

func (c *Client) getJSON(path string, out any) error {
	res, err := c.http.R().
		SetResult(out).
		Get(path)
	if err != nil {
		return err
	}
	if res.IsError() {
		return fmt.Errorf("GET %s: unexpected status %s", path, res.Status())
	}
	return nil
}

// PostJSON issues a POST with an optional JSON body and decodes the JSON
// response into out. The upstream read endpoints are all GETs, this exists
// for the few form-style endpoints the site also exposes.
func (c *Client) PostJSON(path string, body, out any) error {
	req := c.http.R().SetResult(out)
	if body != nil {
		req.SetBody(body)
	}
	res, err := req.Post(path)
	if err != nil {
		return err
	}
	if res.IsError() {
		return fmt.Errorf("POST %s: unexpected status %s", path, res.Status())
	}
	return nil
}
