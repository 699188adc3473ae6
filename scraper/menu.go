package scraper

import (
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

type menuResponse struct {
	MenuTpl struct {
		Desktop string `json:"Desktop"`
	} `json:"MenuTpl"`
}

var (
	ErrNoMenuFragment = errors.New("menu response has no desktop fragment")
	ErrNoMenuColumn   = errors.New("menu fragment has no menu column")
)

// CategorySlugs fetches the navigation menu and extracts one slug per
// category anchor, in document order. Markup drift upstream surfaces as an
// error rather than an empty list.
func (c *Client) CategorySlugs() ([]string, error) {
	var menu menuResponse
	if err := c.getJSON("/menu/", &menu); err != nil {
		return nil, err
	}
	return parseMenuSlugs(menu.MenuTpl.Desktop)
}

func parseMenuSlugs(fragment string) ([]string, error) {
	if strings.TrimSpace(fragment) == "" {
		return nil, ErrNoMenuFragment
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil, err
	}
	column := doc.Find(".menu-column").First()
	if column.Length() == 0 {
		return nil, ErrNoMenuColumn
	}

	var slugs []string
	column.Find("a[title]").Each(func(_ int, anchor *goquery.Selection) {
		href, ok := anchor.Attr("href")
		if !ok {
			return
		}
		// The slug is the second-to-last path segment: /cat/phones/ -> phones
		parts := strings.Split(href, "/")
		if len(parts) < 2 {
			return
		}
		slugs = append(slugs, parts[len(parts)-2])
	})
	return slugs, nil
}
