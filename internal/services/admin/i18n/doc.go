// Package i18n provides localization helpers for the dashboard UI.
//
// Catalogs are registered with golang.org/x/text/message at init; handlers
// resolve a printer per request from the lang query parameter, the language
// cookie or Accept-Language, in that order.
package i18n
