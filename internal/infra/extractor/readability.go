package extractor

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"

	"fidel-summary/internal/resilience/circuitbreaker"
	"fidel-summary/internal/resilience/retry"
	"fidel-summary/internal/usecase/summary"
)

// ReadabilityExtractor implements summary.TextExtractor using the Mozilla
// Readability algorithm. Pages Readability cannot parse fall back to a
// goquery pass that concatenates paragraph text.
//
// Thread safety: ReadabilityExtractor is safe for concurrent use.
type ReadabilityExtractor struct {
	client         *http.Client
	circuitBreaker *circuitbreaker.CircuitBreaker
	config         Config
}

// NewReadabilityExtractor creates an extractor with the given configuration.
// The HTTP client enforces TLS 1.2+, the redirect limit, and SSRF validation
// of every redirect target.
func NewReadabilityExtractor(config Config) *ReadabilityExtractor {
	e := &ReadabilityExtractor{
		circuitBreaker: circuitbreaker.New(circuitbreaker.ExtractorConfig()),
		config:         config,
	}

	e.client = &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
			TLSClientConfig: &tls.Config{
				MinVersion: tls.VersionTLS12,
			},
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= e.config.MaxRedirects {
				return fmt.Errorf("%w: %d redirects", summary.ErrTooManyRedirects, len(via))
			}
			if err := validateURL(req.URL.String(), e.config.DenyPrivateIPs); err != nil {
				return fmt.Errorf("redirect target validation failed: %w", err)
			}
			return nil
		},
	}
	return e
}

// ExtractText fetches the URL and returns the extracted plain text.
// Transient network failures and 5xx responses are retried with backoff; the
// fetch runs through the circuit breaker, so a site that keeps failing is
// blocked for a while instead of being hammered. An open breaker is not
// retried.
func (e *ReadabilityExtractor) ExtractText(ctx context.Context, urlStr string) (string, error) {
	if err := validateURL(urlStr, e.config.DenyPrivateIPs); err != nil {
		return "", err
	}

	var result interface{}
	err := retry.WithBackoff(ctx, retry.ExtractorConfig(), func() error {
		var execErr error
		result, execErr = e.circuitBreaker.Execute(func() (interface{}, error) {
			return e.doFetch(ctx, urlStr)
		})
		return execErr
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

func (e *ReadabilityExtractor) doFetch(ctx context.Context, urlStr string) (interface{}, error) {
	reqCtx, cancel := context.WithTimeout(ctx, e.config.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, urlStr, nil)
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", summary.ErrInvalidURL, err)
	}
	req.Header.Set("User-Agent", "FidelSummaryBot/1.0")

	resp, err := e.client.Do(req)
	if err != nil {
		if reqCtx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("%w: request exceeded %v", summary.ErrFetchTimeout, e.config.Timeout)
		}
		// Unwrap redirect validation errors so callers can match sentinels.
		if urlErr, ok := err.(*url.Error); ok && urlErr.Err != nil {
			return "", urlErr.Err
		}
		return "", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", &retry.HTTPError{StatusCode: resp.StatusCode, Message: resp.Status}
	}

	limitedReader := io.LimitReader(resp.Body, e.config.MaxBodySize+1)
	htmlBytes, err := io.ReadAll(limitedReader)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	if int64(len(htmlBytes)) > e.config.MaxBodySize {
		return "", fmt.Errorf("%w: response size exceeds limit %d bytes",
			summary.ErrBodyTooLarge, e.config.MaxBodySize)
	}

	// Prefer the post-redirect URL for Readability's relative-link handling.
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		parsedURL = nil
	}
	if resp.Request != nil && resp.Request.URL != nil {
		parsedURL = resp.Request.URL
	}

	article, err := readability.FromReader(bytes.NewReader(htmlBytes), parsedURL)
	if err == nil && strings.TrimSpace(article.TextContent) != "" {
		return article.TextContent, nil
	}

	slog.Debug("readability extraction empty, trying paragraph fallback",
		slog.String("url", urlStr))
	text, fallbackErr := paragraphFallback(htmlBytes)
	if fallbackErr != nil {
		return "", fmt.Errorf("%w: %v", summary.ErrExtractionFailed, fallbackErr)
	}
	if text == "" {
		return "", fmt.Errorf("%w: no readable content found", summary.ErrExtractionFailed)
	}
	return text, nil
}

// paragraphFallback joins the text of all <p> elements. Crude compared to
// Readability, but enough for the simple article pages common on Amharic
// news sites.
func paragraphFallback(htmlBytes []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(htmlBytes))
	if err != nil {
		return "", err
	}

	var parts []string
	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		if t := strings.TrimSpace(s.Text()); t != "" {
			parts = append(parts, t)
		}
	})
	return strings.Join(parts, "\n"), nil
}
