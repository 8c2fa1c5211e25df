package names

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-datetime/calendar"
	"github.com/tartampluch/go-datetime/internal/config"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// ErrUnsupportedLanguage is returned by Localized for languages without an
// embedded name table.
var ErrUnsupportedLanguage = errors.New(config.ErrLocaleMissing)

var (
	bundleOnce sync.Once
	bundle     *i18n.Bundle
	available  []string
)

// loadBundle reads every embedded active.<lang>.json file into one bundle.
func loadBundle() {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc(config.LocaleFormat, json.Unmarshal)

	entries, err := localeFS.ReadDir(config.LocaleDir)
	if err != nil {
		slog.Error(config.ErrLocalesAccess,
			config.LogKeyComponent, config.CompNames,
			config.LogKeyError, err,
		)
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, config.LocalePrefix) || !strings.HasSuffix(name, config.LocaleSuffix) {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompNames,
				config.LogKeyFile, name,
			)
			continue
		}

		langCode := strings.TrimSuffix(strings.TrimPrefix(name, config.LocalePrefix), config.LocaleSuffix)
		if langCode == "" {
			slog.Warn(config.MsgLocaleBadName,
				config.LogKeyComponent, config.CompNames,
				config.LogKeyFile, name,
			)
			continue
		}

		path := config.LocaleDir + "/" + name
		if _, err := bundle.LoadMessageFileFS(localeFS, path); err != nil {
			slog.Error(config.ErrLocaleLoad,
				config.LogKeyComponent, config.CompNames,
				config.LogKeyFile, name,
				config.LogKeyError, err,
			)
			continue
		}
		available = append(available, langCode)
		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompNames,
			config.LogKeyLang, langCode,
			config.LogKeyFile, name,
		)
	}
}

// Languages returns the base language codes of the embedded tables.
func Languages() []string {
	bundleOnce.Do(loadBundle)
	return append([]string(nil), available...)
}

// Localized builds a Static table for lang, a BCP 47 tag such as "fr" or
// "de-CH". Only the base language is used. Names missing from the
// translation fall back to English.
func Localized(lang string) (*Static, error) {
	bundleOnce.Do(loadBundle)

	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnsupportedLanguage, lang, err)
	}
	base, _ := tag.Base()
	code := base.String()
	if !supported(code) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, lang)
	}

	loc := i18n.NewLocalizer(bundle, code)
	t := &Static{}
	for i := 0; i < 12; i++ {
		t.Months[i] = localize(loc, fmt.Sprintf(config.FormatTKeyMonth, i+1), English.Months[i])
		t.MonthAbbrs[i] = localize(loc, fmt.Sprintf(config.FormatTKeyMonthAbbr, i+1), English.MonthAbbrs[i])
	}
	for i := 0; i < 7; i++ {
		d := calendar.Sunday + calendar.Weekday(i)
		t.Weekdays[i] = localize(loc, fmt.Sprintf(config.FormatTKeyWeekday, d), English.Weekdays[i])
		t.WeekdayAbbrs[i] = localize(loc, fmt.Sprintf(config.FormatTKeyWeekdayAbbr, d), English.WeekdayAbbrs[i])
	}
	return t, nil
}

func supported(code string) bool {
	for _, l := range available {
		if l == code {
			return true
		}
	}
	return false
}

func localize(loc *i18n.Localizer, key, fallback string) string {
	msg, err := loc.Localize(&i18n.LocalizeConfig{MessageID: key})
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompNames,
			config.LogKeyKey, key,
			config.LogKeyError, err,
		)
		return fallback
	}
	return msg
}
