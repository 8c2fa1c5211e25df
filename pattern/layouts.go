package pattern

import "strings"

// Predefined ISO-8601 layouts.
const (
	ISODate           = "yyyy-MM-dd"
	ISOTime           = "HH:mm:ss"
	ISODateTime       = "yyyy-MM-dd'T'HH:mm:ss"
	ISODateTimeMicro  = "yyyy-MM-dd'T'HH:mm:ss.ffffff"
	ISODateTimeOffset = "yyyy-MM-dd'T'HH:mm:sszzz"
	ISODateTimeUTC    = "yyyy-MM-dd'T'HH:mm:ssZ"
	Compact           = "yyyyMMdd'T'HHmmss"
	// Extended covers every year in range, with a sign for BC years.
	Extended = "Y-MM-dd'T'HH:mm:ss.ffffff"
)

// Layouts maps layout names to layouts, for command-line use.
var Layouts = map[string]string{
	"ISODate":           ISODate,
	"ISOTime":           ISOTime,
	"ISODateTime":       ISODateTime,
	"ISODateTimeMicro":  ISODateTimeMicro,
	"ISODateTimeOffset": ISODateTimeOffset,
	"ISODateTimeUTC":    ISODateTimeUTC,
	"Compact":           Compact,
	"Extended":          Extended,
}

// Lookup turns a layout name ("ISODateTime", case-insensitive) into its
// layout, or returns the argument unchanged.
func Lookup(layout string) string {
	for name, l := range Layouts {
		if strings.EqualFold(name, layout) {
			return l
		}
	}
	return layout
}
