package interop

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-datetime/calendar"
	"github.com/tartampluch/go-datetime/internal/config"
	"github.com/tartampluch/go-datetime/pattern"
)

// Date is a date property found in a vCard.
type Date struct {
	// Name is the formatted name of the contact, or its structured name.
	Name string
	// Field is the vCard property, BDAY or ANNIVERSARY.
	Field string
	// Value is local wall time unless HasOffset is set. Dates without a
	// year are placed in config.DefaultLeapYear.
	Value     calendar.Instant
	YearKnown bool
	Offset    int
	HasOffset bool
}

var dateFields = []string{config.VCardBDAY, config.VCardAnniversary}

// DecodeDates reads every card of r and returns its BDAY and ANNIVERSARY
// values. Malformed cards and unreadable dates are logged and skipped.
func DecodeDates(r io.Reader) ([]Date, error) {
	decoder := vcard.NewDecoder(r)
	opts := pattern.DefaultOptions()

	var dates []Date
	for {
		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return dates, fmt.Errorf("%s: %w", config.ErrVCardDecode, err)
		}
		if err != nil {
			slog.Warn(config.MsgSkippedCard,
				config.LogKeyComponent, config.CompInterop,
				config.LogKeyError, err)
			continue
		}

		name := ""
		if fn := card.Get(config.VCardFN); fn != nil {
			name = fn.Value
		} else if n := card.Get(config.VCardN); n != nil {
			name = n.Value
		}

		for _, field := range dateFields {
			prop := card.Get(field)
			if prop == nil || prop.Value == "" {
				continue
			}
			d, ok := parseDate(prop.Value, opts)
			if !ok {
				slog.Debug(config.MsgSkippedDate,
					config.LogKeyComponent, config.CompInterop,
					config.LogKeyName, name,
					config.LogKeyValue, prop.Value)
				continue
			}
			d.Name, d.Field = name, field
			dates = append(dates, d)
		}
	}
	return dates, nil
}

func parseDate(value string, opts *pattern.Options) (Date, bool) {
	for _, layout := range config.VCardLayoutsWithYear {
		if res, err := pattern.ParseInstant(value, layout, opts); err == nil {
			return Date{Value: res.Instant, YearKnown: true, Offset: res.Offset, HasOffset: res.HasOffset}, true
		}
	}
	leap := strconv.Itoa(config.DefaultLeapYear) + value
	for _, layout := range config.VCardLayoutsNoYear {
		if res, err := pattern.ParseInstant(leap, layout, opts); err == nil {
			return Date{Value: res.Instant}, true
		}
	}
	return Date{}, false
}
