package ingestion

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	// Bulletins are published under a fixed name: oil_xls_<YYYYMMDD>162000.xls.
	// The 162000 time-of-day suffix is a constant part of the path.
	urlDateLayout = "20060102"
	urlTimeSuffix = "162000"
	urlExtension  = ".xls"
)

// Locator resolves a report date to the published bulletin URL and answers
// whether that bulletin exists upstream.
//
// Probe and Fetch are independent requests: a successful probe discards its
// payload and extraction re-fetches the same URL. Nothing is cached between
// the two.
type Locator struct {
	baseURL string
	client  *http.Client
}

// NewLocator builds a Locator for the given publication base URL. A zero
// timeout disables the per-request bound.
func NewLocator(baseURL string, timeout time.Duration) *Locator {
	return &Locator{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// URL returns the deterministic bulletin location for a report date.
func (l *Locator) URL(date time.Time) string {
	return fmt.Sprintf("%s/oil_xls_%s%s%s", l.baseURL, date.Format(urlDateLayout), urlTimeSuffix, urlExtension)
}

// Probe checks whether the bulletin for a date was published.
//
// A 404 means "not published" and is not an error: reports do not come out
// every calendar day. Any 2xx counts as available regardless of payload
// content; content validation happens downstream in Extract. Other statuses
// and transport failures are reported as errors.
func (l *Locator) Probe(ctx context.Context, date time.Time) (bool, error) {
	resp, err := l.get(ctx, date)
	if err != nil {
		return false, err
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return false, nil
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return true, nil
	default:
		return false, fmt.Errorf("probe %s: unexpected status %s", l.URL(date), resp.Status)
	}
}

// Fetch downloads the bulletin payload for a date.
func (l *Locator) Fetch(ctx context.Context, date time.Time) ([]byte, error) {
	resp, err := l.get(ctx, date)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", l.URL(date), resp.Status)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: read body: %w", l.URL(date), err)
	}
	return payload, nil
}

func (l *Locator) get(ctx context.Context, date time.Time) (*http.Response, error) {
	url := l.URL(date)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request %s: %w", url, err)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", url, err)
	}
	return resp, nil
}
