package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// UserAgent identifies the HTTP client used to fetch zone files.
var UserAgent = "Go-Datetime/" + Version

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName           = "dtclock"
	LocalhostBindAddr = "127.0.0.1"
	LogFileName       = "dtclock.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Commands, Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion = "version"
	FlagDebug   = "debug"
	FlagZone    = "zone"
	FlagZones   = "zones"
	FlagLayout  = "layout"
	FlagLang    = "lang"
	FlagStrict  = "strict"
	FlagYears   = "years"
	FlagFrom    = "from"
	FlagPort    = "port"

	FlagDescVersion = "Show application version and exit"
	FlagDescDebug   = "Enable debug logging"
	FlagDescZone    = "POSIX TZ rule or a zone name from the zones file"
	FlagDescZones   = "Path or http(s) URL of a TOML/YAML zones file"
	FlagDescLayout  = "Format/parse pattern"
	FlagDescLang    = "Language of month and weekday names"
	FlagDescStrict  = "Require literal pattern text to match the input exactly"
	FlagDescYears   = "Number of transitions years to list"
	FlagDescFrom    = "First year of the VTIMEZONE definition"
	FlagDescPort    = "Port of the VTIMEZONE feed"

	CmdShortRoot        = "Inspect instants, patterns and DST rules"
	CmdShortNow         = "Print the current time of a synchronized zoned clock"
	CmdShortFormat      = "Format a Unix timestamp or an ISO instant"
	CmdShortParse       = "Parse text with a pattern"
	CmdShortTransitions = "List upcoming DST transitions of a zone"
	CmdShortVTimezone   = "Print the VTIMEZONE calendar of a zone"
	CmdShortVCard       = "List the dates found in a vCard file"
	CmdShortServe       = "Serve the VTIMEZONE calendar of a zone over HTTP"

	MsgVersionOutput   = "%s version %s (commit %s, built %s, %s/%s)\n"
	MsgParseOutput     = "raw=%d iso=%s consumed=%d\n"
	MsgParseOffset     = "offset=%+d\n"
	MsgTransitionLine  = "%s %s\n"
	MsgVCardLine       = "%s\t%s\t%s\n"
	MsgTransitionToDST = "dst"
	MsgTransitionToStd = "std"
)

// -----------------------------------------------------------------------------
// Environment Settings (koanf)
// -----------------------------------------------------------------------------

const (
	// EnvPrefix is stripped from environment variable names before they are
	// mapped onto settings keys (DTCLOCK_ZONE -> zone).
	EnvPrefix = "DTCLOCK_"

	KeyZone     = "zone"
	KeyZones    = "zones"
	KeyLayout   = "layout"
	KeyLang     = "lang"
	KeyPort     = "port"
	KeyLogLevel = "log_level"
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	DefaultZone     = "UTC0"
	DefaultLayout   = "yyyy-MM-dd'T'HH:mm:sszzz"
	DefaultLanguage = "en"
	DefaultPort     = "18081"
	DefaultLogLevel = "info"
	DefaultYears    = 2
	DefaultLeapYear = 2000 // Leap year fallback for vCard dates like --02-29

	// DefaultPosixRule applies when a POSIX TZ string names a DST zone
	// without transition rules.
	DefaultPosixRule = ",M3.2.0,M11.1.0"

	// DefaultTransitionSeconds is the POSIX default transition time (02:00).
	DefaultTransitionSeconds = 2 * 60 * 60

	// DefaultDSTDeltaMinutes is used when the DST offset is omitted.
	DefaultDSTDeltaMinutes = 60

	// VTimezoneEpochYear is the DTSTART year used for zones without DST.
	VTimezoneEpochYear = 1601

	// DefaultVTimezoneFrom is the first year written by the vtimezone and
	// serve commands.
	DefaultVTimezoneFrom = 1970

	// ZoneLocal selects the host zone read from LocaltimePath.
	ZoneLocal = "local"

	// TwoDigitYearPivot splits two-digit years between 19xx and 20xx.
	TwoDigitYearPivot = 50

	// MaxYearDigits bounds variable-width year parsing.
	MaxYearDigits = 6

	// LocaltimePath is where POSIX hosts keep the active binary zone file.
	LocaltimePath = "/etc/localtime"

	// Zones file formats, chosen by file extension.
	ZonesFormatTOML = "toml"
	ZonesFormatYAML = "yaml"
	ExtTOML         = ".toml"
	ExtYAML         = ".yaml"
	ExtYML          = ".yml"

	// Limits
	MinPort = 1
	MaxPort = 65535
)

// SupportedLanguages defines the embedded name-table languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fr", "de"}

// -----------------------------------------------------------------------------
// Translation Keys (I18n name tables)
// -----------------------------------------------------------------------------

const (
	// FormatTKeyMonth etc. expect the 1-based month or weekday number.
	FormatTKeyMonth       = "month_%d"
	FormatTKeyMonthAbbr   = "month_abbr_%d"
	FormatTKeyWeekday     = "weekday_%d"
	FormatTKeyWeekdayAbbr = "weekday_abbr_%d"

	LocaleDir    = "locales"
	LocalePrefix = "active."
	LocaleSuffix = ".json"
	LocaleFormat = "json"
)

// -----------------------------------------------------------------------------
// Pattern Markers
// -----------------------------------------------------------------------------

const (
	EraAD     = "AD"
	EraBC     = "BC"
	MarkerAM  = "AM"
	MarkerPM  = "PM"
	MarkerUTC = "Z"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	// iCal Properties
	ICalVersion = "2.0"
	ICalProdid  = "-//Go Datetime//Zone Export//EN"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"

	CompTimezone = "VTIMEZONE"
	CompStandard = "STANDARD"
	CompDaylight = "DAYLIGHT"

	PropVersion    = "VERSION"
	PropProdid     = "PRODID"
	PropCalScale   = "CALSCALE"
	PropMethod     = "METHOD"
	PropTZID       = "TZID"
	PropTZName     = "TZNAME"
	PropOffsetFrom = "TZOFFSETFROM"
	PropOffsetTo   = "TZOFFSETTO"
	PropDTStart    = "DTSTART"
	PropRRule      = "RRULE"
	PropRDate      = "RDATE"

	// VTimezoneRDateYears bounds the explicit dates listed for transitions
	// that RRULE cannot express (times outside 00:00..24:00).
	VTimezoneRDateYears = 30

	// LayoutICalLocal renders floating local date-times (RFC 5545 §3.3.5).
	LayoutICalLocal = "yyyyMMdd'T'HHmmss"
	// LayoutICalOffset renders UTC offsets (RFC 5545 §3.3.14).
	LayoutICalOffset = "zzzz"

	VCardBDAY        = "BDAY"
	VCardAnniversary = "ANNIVERSARY"
	VCardFN          = "FN"
	VCardN           = "N"

	// Output layouts of the vcard command.
	LayoutVCardDate   = "yyyy-MM-dd"
	LayoutVCardNoYear = "'--'MM-dd"
)

// VCardLayoutsWithYear are tried in order for dated vCard values.
var VCardLayoutsWithYear = []string{
	"yyyy-MM-dd'T'HH:mm:ssZ",
	"yyyyMMdd'T'HHmmssZ",
	"yyyy-MM-dd",
	"yyyyMMdd",
}

// VCardLayoutsNoYear are tried for truncated (--MMDD) vCard values, which
// are prefixed with DefaultLeapYear first so that --0229 is valid.
var VCardLayoutsNoYear = []string{
	"yyyy'--'MM-dd",
	"yyyy'--'MMdd",
}

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	HTTPTimeout         = 30 * time.Second
	ShutdownTimeout     = 5 * time.Second
	ServerReadTimeout   = 10 * time.Second
	ServerWriteTimeout  = 30 * time.Second
	ServerIdleTimeout   = 60 * time.Second
	RetryAfterSeconds   = "10"
	AllowedMethods      = "GET, HEAD"
	MaxHTTPResponseSize = 4 * 1024 * 1024 // zones files are small
	SchemeHTTP          = "http"
	SchemeHTTPS         = "https"
	RouteRoot           = "/"
	HTTPMsgMethodNotAll = "Method not allowed"
	HTTPMsgInitializing = "Feed is initializing, retry shortly"
	AddrSeparator       = ":"
)

// -----------------------------------------------------------------------------
// HTTP Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	HeaderContentType     = "Content-Type"
	HeaderCacheControl    = "Cache-Control"
	HeaderETag            = "ETag"
	HeaderLastModified    = "Last-Modified"
	HeaderRetryAfter      = "Retry-After"
	HeaderAllow           = "Allow"
	HeaderXContentType    = "X-Content-Type-Options"
	HeaderUserAgent       = "User-Agent"
	HeaderIfNoneMatch     = "If-None-Match"
	HeaderIfModifiedSince = "If-Modified-Since"

	MimeTextCalendar    = "text/calendar; charset=utf-8"
	MimeNoSniff         = "nosniff"
	CacheControlPrivate = "private, no-cache"

	// FormatETag expects a string argument.
	FormatETag = `"%s"`
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrParseFormat     = "parse failed at offset %d of %q (layout %q)"
	ErrParseFailed     = "input does not match layout"
	ErrPosixRule       = "invalid POSIX TZ rule"
	ErrPosixTransition = "invalid POSIX transition"
	ErrTZifMagic       = "not a TZif file"
	ErrTZifVersion     = "TZif version 2 or later required"
	ErrTZifTruncated   = "truncated TZif data"
	ErrTZifFooter      = "TZif file has no POSIX footer"
	ErrTZifOpen        = "failed to open zone file"
	ErrZonesFile       = "failed to decode zones file"
	ErrZonesFormat     = "unsupported zones file format"
	ErrZoneEntry       = "invalid zone entry"
	ErrUnknownZone     = "unknown zone"
	ErrZonesOpen       = "failed to open zones file"
	ErrFetchStatus     = "unexpected HTTP status"
	ErrFetchTooLarge   = "zones file exceeds size limit"
	ErrFetchRequest    = "failed to create request"
	ErrFetchNetwork    = "network error during fetch"
	ErrFetchRead       = "failed to read zones file"
	ErrInvalidURL      = "invalid URL structure"
	ErrProtocol        = "unsupported protocol scheme (http/https only)"
	ErrSettings        = "failed to load settings"
	ErrPortRequired    = "server port is required"
	ErrPortNumber      = "server port must be a number"
	ErrPortRange       = "server port must be between 1 and 65535"
	ErrServerStartup   = "server startup failed"
	ErrServerShutdown  = "server shutdown failed"
	ErrWriteResp       = "failed to write response body"
	ErrICalEncode      = "failed to encode iCalendar data"
	ErrVCardDecode     = "failed to decode vCard stream"
	ErrLocalesAccess   = "failed to access embedded locales"
	ErrLocaleLoad      = "failed to load locale file"
	ErrLocaleMissing   = "locale has no name table"
	ErrInstantArg      = "argument is neither a Unix timestamp nor an ISO instant"
	ErrLogFile         = "failed to open log file"
	ErrCacheDir        = "could not determine user cache dir"
	ErrCreateDir       = "could not create app cache dir"
	ErrAppFailed       = "application failed unexpectedly"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting   = "Starting application"
	MsgAppStop       = "Application stopped"
	MsgServerListen  = "HTTP server listening"
	MsgServerStop    = "Shutting down HTTP server..."
	MsgCacheUpdated  = "Feed cache updated"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
	MsgSkippedCard   = "Skipping malformed vCard"
	MsgSkippedDate   = "Skipping invalid date format"
	MsgZonesLoaded   = "Zones file loaded"
	MsgZoneResolved  = "Zone resolved"
	MsgFooterRead    = "TZif footer read"
	MsgDSTRecalc     = "DST cache recalculated"
	MsgClockStarted  = "Zoned clock started"
	MsgFetchStart    = "Initiating zones file download"
	MsgFetchStatus   = "Server returned error status"
	MsgFetchBody     = "Zones file downloading"
	MsgLogWarning    = "Warning: %s at %s: %v\n"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyURL       = "url"
	LogKeyStatus    = "status_code"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyPort      = "port"
	LogKeyZone      = "zone"
	LogKeyRule      = "rule"
	LogKeyCount     = "count"
	LogKeyValue     = "value"
	LogKeyName      = "name"
	LogKeySizeBytes = "size_bytes"
	LogKeyETag      = "etag"
	LogKeyDST       = "dst"
	LogKeyNext      = "next_transition"
	LogKeyFormat    = "format"
	LogKeyLength    = "content_length"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompNames   = "names"
	CompTZFile  = "tzfile"
	CompZoneDB  = "zonedb"
	CompFetcher = "fetcher"
	CompClock   = "clock"
	CompInterop = "interop"
	CompServer  = "server"
	CompCLI     = "cli"
)
