// Package zonedb maps zone names to rules read from TOML or YAML files.
//
//	[zones."Europe/Paris"]
//	posix = "CET-1CEST,M3.5.0,M10.5.0/3"
//
//	[zones.Custom]
//	name = "XST"
//	offset = 60
//	dst_name = "XDT"
//	start = "M3.5.0"
//	end = "M10.5.0/3"
package zonedb

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tartampluch/go-datetime/internal/config"
	"github.com/tartampluch/go-datetime/zone"
	"gopkg.in/yaml.v3"
)

// ErrUnknownZone is returned by Resolve for names that are neither in the
// database nor valid POSIX TZ strings.
var ErrUnknownZone = errors.New(config.ErrUnknownZone)

// Entry is one zone of a zones file. POSIX, when set, takes precedence over
// the other fields. Offset and Delta are in minutes; Delta defaults to one
// hour when Start and End are given.
type Entry struct {
	POSIX   string `toml:"posix" yaml:"posix"`
	Name    string `toml:"name" yaml:"name"`
	Offset  int    `toml:"offset" yaml:"offset"`
	DSTName string `toml:"dst_name" yaml:"dst_name"`
	Delta   int    `toml:"delta" yaml:"delta"`
	Start   string `toml:"start" yaml:"start"`
	End     string `toml:"end" yaml:"end"`
}

type file struct {
	Zones map[string]Entry `toml:"zones" yaml:"zones"`
}

// Zone builds the zone described by the entry.
func (e Entry) Zone() (zone.Zone, error) {
	if e.POSIX != "" {
		return zone.ParsePOSIX(e.POSIX)
	}
	if e.Name == "" {
		return zone.Zone{}, errors.New(config.ErrZoneEntry)
	}
	z := zone.Fixed(e.Name, e.Offset)
	if e.Start == "" && e.End == "" {
		return z, nil
	}

	start, err := zone.ParseTransition(e.Start)
	if err != nil {
		return zone.Zone{}, fmt.Errorf("%s: %w", config.ErrZoneEntry, err)
	}
	end, err := zone.ParseTransition(e.End)
	if err != nil {
		return zone.Zone{}, fmt.Errorf("%s: %w", config.ErrZoneEntry, err)
	}
	delta := e.Delta
	if delta == 0 {
		delta = config.DefaultDSTDeltaMinutes
	}
	z.DSTName = e.DSTName
	if z.DSTName == "" {
		z.DSTName = e.Name
	}
	z.Rule = zone.PosixRule{Start: start, End: end, DeltaMinutes: delta}
	return z, nil
}

// DB is a read-only set of named zones. A nil *DB is empty.
type DB struct {
	zones map[string]zone.Zone
}

// New returns a database holding zones.
func New(zones map[string]zone.Zone) *DB {
	return &DB{zones: zones}
}

// Lookup returns the zone registered under name.
func (db *DB) Lookup(name string) (zone.Zone, bool) {
	if db == nil {
		return zone.Zone{}, false
	}
	z, ok := db.zones[name]
	return z, ok
}

// Names returns the registered names in sorted order.
func (db *DB) Names() []string {
	if db == nil {
		return nil
	}
	names := make([]string, 0, len(db.zones))
	for name := range db.zones {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Resolve returns the zone called name, or parses name as a POSIX TZ string
// when it is not registered.
func (db *DB) Resolve(name string) (zone.Zone, error) {
	if z, ok := db.Lookup(name); ok {
		slog.Debug(config.MsgZoneResolved,
			config.LogKeyComponent, config.CompZoneDB,
			config.LogKeyZone, name)
		return z, nil
	}
	z, err := zone.ParsePOSIX(name)
	if err != nil {
		return zone.Zone{}, fmt.Errorf("%w: %q", ErrUnknownZone, name)
	}
	return z, nil
}

// FormatOf returns the zones file format implied by the extension of name,
// which may be a path or a URL.
func FormatOf(name string) (string, error) {
	if u, err := url.Parse(name); err == nil && u.Scheme != "" && u.Host != "" {
		name = path.Base(u.Path)
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case config.ExtTOML:
		return config.ZonesFormatTOML, nil
	case config.ExtYAML, config.ExtYML:
		return config.ZonesFormatYAML, nil
	}
	return "", fmt.Errorf("%s: %q", config.ErrZonesFormat, name)
}

// LoadReader decodes a zones file in format (toml or yaml).
func LoadReader(r io.Reader, format string) (*DB, error) {
	var f file
	switch format {
	case config.ZonesFormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&f); err != nil {
			return nil, fmt.Errorf("%s: %w", config.ErrZonesFile, err)
		}
	case config.ZonesFormatYAML:
		if err := yaml.NewDecoder(r).Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%s: %w", config.ErrZonesFile, err)
		}
	default:
		return nil, fmt.Errorf("%s: %q", config.ErrZonesFormat, format)
	}

	zones := make(map[string]zone.Zone, len(f.Zones))
	for name, e := range f.Zones {
		z, err := e.Zone()
		if err != nil {
			return nil, fmt.Errorf("%s %q: %w", config.ErrZoneEntry, name, err)
		}
		zones[name] = z
	}
	slog.Debug(config.MsgZonesLoaded,
		config.LogKeyComponent, config.CompZoneDB,
		config.LogKeyFormat, format,
		config.LogKeyCount, len(zones))
	return New(zones), nil
}

// LoadFile reads the zones file at path.
func LoadFile(path string) (*DB, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrZonesOpen, err)
	}
	defer func() { _ = f.Close() }()
	return LoadReader(f, format)
}

// Load reads a zones file from a path or an http(s) URL. An empty source
// yields an empty database.
func Load(ctx context.Context, source string, fetcher Fetcher) (*DB, error) {
	if source == "" {
		return New(nil), nil
	}
	u, err := url.Parse(source)
	if err != nil || (u.Scheme != config.SchemeHTTP && u.Scheme != config.SchemeHTTPS) {
		return LoadFile(source)
	}

	format, err := FormatOf(source)
	if err != nil {
		return nil, err
	}
	rc, err := fetcher.Fetch(ctx, source)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	data, err := io.ReadAll(io.LimitReader(rc, config.MaxHTTPResponseSize+1))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrFetchRead, err)
	}
	if len(data) > config.MaxHTTPResponseSize {
		return nil, errors.New(config.ErrFetchTooLarge)
	}
	return LoadReader(bytes.NewReader(data), format)
}
