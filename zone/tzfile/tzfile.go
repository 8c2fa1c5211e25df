// Package tzfile extracts the POSIX rule stored at the end of TZif files
// (RFC 8536), the binary zone format of /usr/share/zoneinfo.
//
// Only the footer is used. Historical transitions are skipped, so a zone is
// always described by its current rule.
package tzfile

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/tartampluch/go-datetime/internal/config"
	"github.com/tartampluch/go-datetime/zone"
)

var (
	ErrBadMagic  = errors.New(config.ErrTZifMagic)
	ErrVersion   = errors.New(config.ErrTZifVersion)
	ErrTruncated = errors.New(config.ErrTZifTruncated)
	ErrNoFooter  = errors.New(config.ErrTZifFooter)
)

const magic = "TZif"

// LocaltimePath is the file read by Local.
var LocaltimePath = config.LocaltimePath

// header is the fixed 44-byte TZif header.
type header struct {
	Magic    [4]byte
	Version  byte
	_        [15]byte
	IsUTCCnt uint32
	IsStdCnt uint32
	LeapCnt  uint32
	TimeCnt  uint32
	TypeCnt  uint32
	CharCnt  uint32
}

// dataSize returns the length of the data block that follows h, for 4-byte
// (v1) or 8-byte (v2+) transition times.
func (h header) dataSize(timeSize int64) int64 {
	return int64(h.TimeCnt)*(timeSize+1) +
		int64(h.TypeCnt)*6 +
		int64(h.CharCnt) +
		int64(h.LeapCnt)*(timeSize+4) +
		int64(h.IsStdCnt) +
		int64(h.IsUTCCnt)
}

func readHeader(r io.Reader) (header, error) {
	var h header
	if err := binary.Read(r, binary.BigEndian, &h); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return h, ErrTruncated
		}
		return h, err
	}
	if string(h.Magic[:]) != magic {
		return h, ErrBadMagic
	}
	return h, nil
}

func skip(r io.Reader, n int64) error {
	if _, err := io.CopyN(io.Discard, r, n); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrTruncated
		}
		return err
	}
	return nil
}

// ReadFooter returns the POSIX TZ string of a TZif stream. Version 1 files
// carry no footer and are rejected. An empty footer, which TZif uses for
// zones that cannot be described by a rule, is reported as ErrNoFooter.
func ReadFooter(r io.Reader) (string, error) {
	br := bufio.NewReader(r)

	h, err := readHeader(br)
	if err != nil {
		return "", err
	}
	if h.Version < '2' {
		return "", ErrVersion
	}
	if err := skip(br, h.dataSize(4)); err != nil {
		return "", err
	}

	if h, err = readHeader(br); err != nil {
		return "", err
	}
	if err := skip(br, h.dataSize(8)); err != nil {
		return "", err
	}

	if b, err := br.ReadByte(); err != nil || b != '\n' {
		return "", ErrNoFooter
	}
	footer, err := br.ReadString('\n')
	if err != nil {
		return "", ErrNoFooter
	}
	footer = strings.TrimSuffix(footer, "\n")
	if footer == "" {
		return "", ErrNoFooter
	}
	return footer, nil
}

// Decode reads a TZif stream and parses its footer.
func Decode(r io.Reader) (zone.Zone, error) {
	footer, err := ReadFooter(r)
	if err != nil {
		return zone.Zone{}, err
	}
	return zone.ParsePOSIX(footer)
}

// LoadZone reads the TZif file at path.
func LoadZone(path string) (zone.Zone, error) {
	f, err := os.Open(path)
	if err != nil {
		return zone.Zone{}, fmt.Errorf("%s: %w", config.ErrTZifOpen, err)
	}
	defer f.Close()

	z, err := Decode(f)
	if err != nil {
		return zone.Zone{}, fmt.Errorf("%s: %w", path, err)
	}
	slog.Debug(config.MsgFooterRead,
		config.LogKeyComponent, config.CompTZFile,
		config.LogKeyFile, path,
		config.LogKeyRule, z.POSIX(),
	)
	return z, nil
}

// Local returns the zone of the host, read from LocaltimePath.
func Local() (zone.Zone, error) {
	return LoadZone(LocaltimePath)
}
