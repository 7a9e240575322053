package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	probeTimeout   = 12 * time.Second
	probeUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
)

// priceTokenPattern matches INR-denominated price tokens in page text.
var priceTokenPattern = regexp.MustCompile(`(?i)(?:₹|Rs\.?|INR)\s*\d+(?:\.\d{1,2})?`)

// ProbeResult summarizes a live fetch of a competitor website.
type ProbeResult struct {
	Title       string `json:"scraped_title"`
	PricesFound int    `json:"prices_found"`
}

// NewProbeClient returns the HTTP client used for live website probes.
func NewProbeClient() *http.Client {
	return &http.Client{Timeout: probeTimeout}
}

// ProbeWebsite fetches a competitor page and reports its title plus
// the number of distinct price tokens spotted in the body.
func ProbeWebsite(ctx context.Context, client *http.Client, url string) (*ProbeResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", probeUserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	html := string(body)

	// Price tokens are counted against the page's visible text, not
	// the raw markup, so script bodies and attributes don't inflate
	// the tracked count.
	title := "Unknown title"
	text := html
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(html)); err == nil {
		if t := strings.TrimSpace(doc.Find("title").First().Text()); t != "" {
			title = t
		}
		doc.Find("script,style").Remove()
		text = doc.Text()
	}

	return &ProbeResult{
		Title:       title,
		PricesFound: countDistinctPrices(text),
	}, nil
}

func countDistinctPrices(text string) int {
	distinct := make(map[string]bool)
	for _, token := range priceTokenPattern.FindAllString(text, -1) {
		distinct[token] = true
	}
	return len(distinct)
}
