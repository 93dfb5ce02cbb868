package smartjob

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"smartjob-scraper/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"github.com/mazen160/go-random"
	"go.opentelemetry.io/otel/codes"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

type Client struct {
	BaseUrl *url.URL
	Http    *resty.Client

	delayMin    time.Duration
	delayMax    time.Duration
	maxAttempts int
	sleep       func(time.Duration)
}

type ClientOptions struct {
	BaseUrl string
	// pacing delay range, defaults to 1s-3s
	DelayMin time.Duration
	DelayMax time.Duration
	// fetch attempt budget per url, defaults to 3
	MaxAttempts int
}

func NewClient(ctx context.Context, opts ClientOptions) (*Client, error) {
	baseUrl, err := url.Parse(opts.BaseUrl)
	if err != nil {
		return nil, err
	}

	client := resty.New()
	client.SetBaseURL(opts.BaseUrl)
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	client.SetHeader("user-agent", userAgent)
	client.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(baseUrl.Hostname()))
	client.SetTimeout(time.Second * 10)

	telemetry.InstrumentResty(client, "scrapers/smartjob/http")

	c := &Client{
		BaseUrl:     baseUrl,
		Http:        client,
		delayMin:    opts.DelayMin,
		delayMax:    opts.DelayMax,
		maxAttempts: opts.MaxAttempts,
		sleep:       time.Sleep,
	}
	if c.delayMin == 0 && c.delayMax == 0 {
		c.delayMin = time.Second
		c.delayMax = time.Second * 3
	}
	if c.maxAttempts == 0 {
		c.maxAttempts = 3
	}
	return c, nil
}

// ListingUrl builds the search results url for a 1-indexed page number.
func (c *Client) ListingUrl(page int) string {
	return fmt.Sprintf("%s/resumes?page=%d", strings.TrimRight(c.BaseUrl.String(), "/"), page)
}

// FetchDocument gets a url and parses the body into a document,
// retrying transport and http-status failures up to the attempt
// budget. A returned error means the url yielded no data at all, the
// caller is expected to move on rather than abort the run.
func (c *Client) FetchDocument(ctx context.Context, link string) (*goquery.Document, error) {
	ctx, span := tracer.Start(ctx, "client:FetchDocument")
	defer span.End()

	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		res, err := c.Http.R().
			SetContext(ctx).
			Get(link)
		if err == nil && res.IsError() {
			err = fmt.Errorf("unexpected status %s", res.Status())
		}
		if err == nil {
			doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, "failed to parse html")
				return nil, err
			}
			return doc, nil
		}

		lastErr = err
		slog.WarnContext(ctx, "fetch attempt failed", "attempt", attempt, "url", link, "err", err)
		if attempt < c.maxAttempts {
			c.sleep(c.backoffDelay())
		}
	}

	err := fmt.Errorf("failed to fetch %s after %d attempts: %w", link, c.maxAttempts, lastErr)
	span.RecordError(err)
	span.SetStatus(codes.Error, "retries exhausted")
	slog.ErrorContext(ctx, "giving up on url", "url", link, "attempts", c.maxAttempts, "err", lastErr)
	return nil, err
}

// Pace sleeps one randomized pacing delay, to be called between
// consecutive requests.
func (c *Client) Pace() {
	c.sleep(randDuration(c.delayMin, c.delayMax))
}

// retry backoff is double the pacing range
func (c *Client) backoffDelay() time.Duration {
	return randDuration(c.delayMin*2, c.delayMax*2)
}

func randDuration(min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}
	ms, err := random.IntRange(int(min/time.Millisecond), int(max/time.Millisecond))
	if err != nil {
		return min
	}
	return time.Duration(ms) * time.Millisecond
}
