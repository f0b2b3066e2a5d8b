package templates

import (
	"net/url"
	"strings"

	admini18n "github.com/louisbranch/tableside/internal/services/admin/i18n"
)

// LanguageOption represents a supported language option in the header.
type LanguageOption struct {
	Tag    string
	Label  string
	Active bool
}

// LanguageOptions returns supported language options with active selection.
func LanguageOptions(page PageContext, loc Localizer) []LanguageOption {
	active := admini18n.NormalizeTag(page.Lang)
	supported := admini18n.Supported()
	options := make([]LanguageOption, 0, len(supported))
	for _, tag := range supported {
		options = append(options, LanguageOption{
			Tag:    tag.String(),
			Label:  T(loc, admini18n.LanguageKeyLabel(tag)),
			Active: tag == active,
		})
	}
	return options
}

// LanguageURL returns the current URL with the language param updated.
func LanguageURL(page PageContext, tag string) string {
	path := strings.TrimSpace(page.CurrentPath)
	if path == "" {
		path = "/"
	}
	values, err := url.ParseQuery(page.CurrentQuery)
	if err != nil {
		values = url.Values{}
	}
	values.Set(admini18n.LangParam, tag)
	return path + "?" + values.Encode()
}
