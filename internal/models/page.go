package models

import "fmt"

// Page identifies a dashboard page. The set is closed; routing matches
// exhaustively instead of re-validating strings.
type Page string

// Application pages, in sidebar order.
const (
	PageHome      Page = "home"
	PageDashboard Page = "dashboard"
	PageSettings  Page = "settings"
)

// Pages lists all pages in sidebar order.
var Pages = []Page{PageHome, PageDashboard, PageSettings}

// pageLabels maps page IDs to their sidebar labels.
var pageLabels = map[Page]string{
	PageHome:      "Home",
	PageDashboard: "Dashboard",
	PageSettings:  "Settings",
}

// ParsePage validates a page identifier.
func ParsePage(s string) (Page, error) {
	switch p := Page(s); p {
	case PageHome, PageDashboard, PageSettings:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPage, s)
	}
}

// Label returns the sidebar label for the page.
func (p Page) Label() string {
	return pageLabels[p]
}

// NavigationItem is one entry of the sidebar navigation menu.
type NavigationItem struct {
	ID      Page   `json:"id"`
	Label   string `json:"label"`
	Current bool   `json:"current"`
}

// NavigationItems returns the sidebar menu with the current page marked.
func NavigationItems(current Page) []NavigationItem {
	items := make([]NavigationItem, len(Pages))
	for i, p := range Pages {
		items[i] = NavigationItem{
			ID:      p,
			Label:   p.Label(),
			Current: p == current,
		}
	}
	return items
}
