package templates

import "golang.org/x/text/message"

// Localizer is the slice of *message.Printer the components need.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// T translates key with loc. Component tests render without a printer, so a
// nil loc prints the key itself to keep missing wiring visible in markup.
func T(loc Localizer, key message.Reference, args ...any) string {
	if loc != nil {
		return loc.Sprintf(key, args...)
	}
	if id, ok := key.(string); ok {
		return id
	}
	return ""
}
