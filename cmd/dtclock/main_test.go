package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-datetime/calendar"
	"github.com/tartampluch/go-datetime/internal/config"
	"github.com/tartampluch/go-datetime/zone"
)

const posixParis = "CET-1CEST,M3.5.0,M10.5.0/3"

// run executes the command line without DTCLOCK_ variables and returns the
// exit code and stdout.
func run(t *testing.T, args ...string) (int, string) {
	t.Helper()
	for _, key := range []string{config.KeyZone, config.KeyZones, config.KeyLayout, config.KeyLang, config.KeyPort, config.KeyLogLevel} {
		name := config.EnvPrefix + strings.ToUpper(key)
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	var out bytes.Buffer
	code := runMain(args, &out)
	return code, out.String()
}

// -----------------------------------------------------------------------------
// Commands
// -----------------------------------------------------------------------------

func TestVersion(t *testing.T) {
	code, out := run(t, "--version")
	assert.Equal(t, config.ExitCodeSuccess, code)
	assert.True(t, strings.HasPrefix(out, config.AppName+" version "))
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"UnixEpoch", []string{"format", "0", "--zone", "UTC0", "--layout", "ISODateTime"}, "1970-01-01T00:00:00\n"},
		{"SummerInParis", []string{"format", "1720000000", "--zone", posixParis}, "2024-07-03T11:46:40+02:00\n"},
		{"ISOInput", []string{"format", "2024-01-15T12:00:00", "--zone", posixParis, "--layout", "dd MMMM yyyy"}, "15 January 2024\n"},
		{"French", []string{"format", "2024-01-15", "--lang", "fr", "--layout", "MMMM"}, "janvier\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out := run(t, tt.args...)
			assert.Equal(t, config.ExitCodeSuccess, code)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestFormat_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"NotAnInstant", []string{"format", "yesterday"}},
		{"UnknownZone", []string{"format", "0", "--zone", "Nowhere/Zone"}},
		{"UnknownLanguage", []string{"format", "0", "--lang", "xx"}},
		{"MissingArgument", []string{"format"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _ := run(t, tt.args...)
			assert.Equal(t, config.ExitCodeError, code)
		})
	}
}

func TestParse(t *testing.T) {
	want := calendar.Date(2024, 3, 15, 0, 0, 0, 0, 0)

	code, out := run(t, "parse", "2024-03-15", "--layout", "ISODate")
	assert.Equal(t, config.ExitCodeSuccess, code)
	assert.Contains(t, out, "iso="+want.String())
	assert.Contains(t, out, "consumed=10")
	assert.NotContains(t, out, "offset=")
}

func TestParse_Offset(t *testing.T) {
	code, out := run(t, "parse", "2024-03-15T10:00:00-05:00")
	assert.Equal(t, config.ExitCodeSuccess, code)
	assert.Contains(t, out, "offset=-300")
}

func TestParse_Failure(t *testing.T) {
	code, out := run(t, "parse", "2024-3-15", "--layout", "yyyy-MM-dd")
	assert.Equal(t, config.ExitCodeError, code)
	assert.Empty(t, out)
}

func TestParse_Strict(t *testing.T) {
	code, _ := run(t, "parse", "2024/03/15", "--layout", "yyyy-MM-dd")
	assert.Equal(t, config.ExitCodeError, code)

	code, _ = run(t, "parse", "2024/03/15", "--layout", "yyyy-MM-dd", "--strict=false")
	assert.Equal(t, config.ExitCodeSuccess, code)
}

func TestVTimezone(t *testing.T) {
	code, out := run(t, "vtimezone", "--zone", posixParis)
	assert.Equal(t, config.ExitCodeSuccess, code)
	assert.Contains(t, out, "BEGIN:VTIMEZONE")
	assert.Contains(t, out, "DTSTART:19700329T020000")
}

func TestVCard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.vcf")
	card := "BEGIN:VCARD\r\nVERSION:4.0\r\nFN:Ada Lovelace\r\nBDAY:18151210\r\nEND:VCARD\r\n" +
		"BEGIN:VCARD\r\nVERSION:4.0\r\nFN:Leap Day\r\nBDAY:--0229\r\nEND:VCARD\r\n"
	require.NoError(t, os.WriteFile(path, []byte(card), config.FilePermUserRW))

	code, out := run(t, "vcard", path)
	assert.Equal(t, config.ExitCodeSuccess, code)
	assert.Equal(t, "Ada Lovelace\tBDAY\t1815-12-10\nLeap Day\tBDAY\t--02-29\n", out)
}

func TestVCard_MissingFile(t *testing.T) {
	code, _ := run(t, "vcard", filepath.Join(t.TempDir(), "missing.vcf"))
	assert.Equal(t, config.ExitCodeError, code)
}

func TestNow(t *testing.T) {
	code, out := run(t, "now", "--zone", "UTC0", "--layout", "yyyy")
	assert.Equal(t, config.ExitCodeSuccess, code)
	assert.Len(t, strings.TrimSpace(out), 4)
}

func TestServe_BadPort(t *testing.T) {
	code, _ := run(t, "serve", "--port", "0")
	assert.Equal(t, config.ExitCodeError, code)
}

// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

func TestWriteTransitions(t *testing.T) {
	z, err := zone.ParsePOSIX(posixParis)
	require.NoError(t, err)

	var out bytes.Buffer
	writeTransitions(&out, z, calendar.Date(2024, 1, 1, 0, 0, 0, 0, 0), 1)

	want := calendar.Date(2024, 3, 31, 2, 0, 0, 0, 0).String() + " dst\n" +
		calendar.Date(2024, 10, 27, 2, 0, 0, 0, 0).String() + " std\n"
	assert.Equal(t, want, out.String())
}

func TestWriteTransitions_FixedZone(t *testing.T) {
	var out bytes.Buffer
	writeTransitions(&out, zone.Fixed("UTC", 0), calendar.Date(2024, 1, 1, 0, 0, 0, 0, 0), 5)
	assert.Empty(t, out.String())
}
