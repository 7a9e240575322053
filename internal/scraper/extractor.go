package scraper

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Item is one dish pulled out of a competitor page.
type Item struct {
	DishName string  `json:"dish_name"`
	Price    float64 `json:"price"`
}

// Result is the outcome of extracting a competitor page.
type Result struct {
	Competitor string `json:"competitor"`
	Items      []Item `json:"items"`
}

// menuEntryPattern matches inline JS menu definitions of the form
// name: 'Paneer Tikka', category: 'Starters', basePrice: 250
var menuEntryPattern = regexp.MustCompile(
	`(?i)name\s*:\s*'([^']+)'\s*,\s*category\s*:\s*'[^']+'\s*,\s*basePrice\s*:\s*(\d+(?:\.\d+)?)`,
)

// Extract pulls dish prices from a competitor's HTML. Structured
// markup is tried first; the inline-script pattern only runs when the
// markup yields nothing. Malformed pages produce an empty result,
// never an error.
func Extract(competitorName, html string) Result {
	result := Result{Competitor: competitorName, Items: []Item{}}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return result
	}

	result.Items = extractMarkup(doc)
	if len(result.Items) == 0 {
		result.Items = extractInlineScript(html)
	}
	return result
}

// extractMarkup walks div.restaurant-card > div.menu-item blocks.
// Pages without card groupings are treated as one big container.
// Items missing either a name or a parsable price are skipped.
func extractMarkup(doc *goquery.Document) []Item {
	containers := doc.Find("div.restaurant-card")
	if containers.Length() == 0 {
		containers = doc.Selection
	}

	items := []Item{}
	containers.Each(func(_ int, card *goquery.Selection) {
		card.Find("div.menu-item").Each(func(_ int, entry *goquery.Selection) {
			name := strings.TrimSpace(entry.Find("span.dish-name").First().Text())
			if name == "" {
				return
			}

			priceText := strings.TrimSpace(entry.Find("span.dish-price").First().Text())
			if priceText == "" {
				priceText = strings.TrimSpace(entry.Find("span.price").First().Text())
			}
			price, ok := parsePrice(priceText)
			if !ok {
				return
			}

			items = append(items, Item{DishName: name, Price: price})
		})
	})
	return items
}

// extractInlineScript scans the raw page for JS menu entries. Repeat
// dish names are collapsed case-insensitively, first occurrence wins.
func extractInlineScript(html string) []Item {
	items := []Item{}
	seen := make(map[string]bool)

	for _, match := range menuEntryPattern.FindAllStringSubmatch(html, -1) {
		name := strings.TrimSpace(match[1])
		key := strings.ToLower(name)
		if name == "" || seen[key] {
			continue
		}

		price, err := strconv.ParseFloat(match[2], 64)
		if err != nil {
			continue
		}

		seen[key] = true
		items = append(items, Item{DishName: name, Price: price})
	}
	return items
}

// parsePrice accepts a bare numeric only. Currency markers or other
// decoration in the price element make the item unparsable.
func parsePrice(text string) (float64, bool) {
	price, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, false
	}
	return price, true
}
