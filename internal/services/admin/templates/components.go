package templates

import (
	"strconv"
	"strings"
)

// BrandName is appended to every page title.
const BrandName = "Progressive Bar"

// ComposePageTitle appends the brand suffix unless already present.
func ComposePageTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return BrandName
	}
	if strings.HasSuffix(title, "| "+BrandName) {
		return title
	}
	return title + " | " + BrandName
}

func flashClass(kind string) string {
	if kind == "" {
		kind = "info"
	}
	return "alert-" + kind
}

// pollTrigger is the htmx trigger that re-fetches a fragment every seconds.
func pollTrigger(seconds int) string {
	return "every " + strconv.Itoa(seconds) + "s"
}
