package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/tartampluch/go-datetime/calendar"
	"github.com/tartampluch/go-datetime/clock"
	"github.com/tartampluch/go-datetime/internal/config"
	"github.com/tartampluch/go-datetime/internal/server"
	"github.com/tartampluch/go-datetime/internal/zonedb"
	"github.com/tartampluch/go-datetime/interop"
	"github.com/tartampluch/go-datetime/names"
	"github.com/tartampluch/go-datetime/pattern"
	"github.com/tartampluch/go-datetime/zone"
	"github.com/tartampluch/go-datetime/zone/tzfile"
)

// instantLayouts are tried in order on arguments that are not Unix
// timestamps.
var instantLayouts = []string{
	pattern.ISODateTimeOffset,
	pattern.ISODateTimeMicro,
	pattern.ISODateTime,
	pattern.ISODate,
	pattern.Extended,
}

// app carries the settings shared by every command. Flags write straight
// into settings, so environment values act as flag defaults.
type app struct {
	settings *config.Settings
	out      io.Writer
	fetcher  zonedb.Fetcher
	logFile  io.Closer

	showVersion bool
	debug       bool
	strict      bool
	years       int
	from        int
}

func (a *app) close() {
	if a.logFile != nil {
		_ = a.logFile.Close()
	}
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           config.AppName,
		Short:         config.CmdShortRoot,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			a.logFile = setupLogging(a.settings.Level(), a.debug)
			logStartupInfo()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.showVersion {
				printVersion(a.out)
				return nil
			}
			return cmd.Help()
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVar(&a.showVersion, config.FlagVersion, false, config.FlagDescVersion)
	pf.BoolVar(&a.debug, config.FlagDebug, false, config.FlagDescDebug)
	pf.StringVar(&a.settings.Zone, config.FlagZone, a.settings.Zone, config.FlagDescZone)
	pf.StringVar(&a.settings.Zones, config.FlagZones, a.settings.Zones, config.FlagDescZones)
	pf.StringVar(&a.settings.Lang, config.FlagLang, a.settings.Lang, config.FlagDescLang)

	root.AddCommand(
		a.nowCommand(),
		a.formatCommand(),
		a.parseCommand(),
		a.transitionsCommand(),
		a.vtimezoneCommand(),
		a.vcardCommand(),
		a.serveCommand(),
	)
	return root
}

func (a *app) layoutFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&a.settings.Layout, config.FlagLayout, a.settings.Layout, config.FlagDescLayout)
}

func (a *app) nowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "now",
		Short: config.CmdShortNow,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			z, err := a.zone(cmd)
			if err != nil {
				return err
			}
			opts, err := a.options()
			if err != nil {
				return err
			}
			c := clock.NewZonedSynced(zone.FromUTC(calendar.FromTime(time.Now().UTC()), z), clock.Platform())
			if next, _, ok := c.NextTransition(); ok {
				slog.Debug(config.MsgClockStarted,
					config.LogKeyComponent, config.CompCLI,
					config.LogKeyDST, c.IsDST(),
					config.LogKeyNext, next.String(),
				)
			}
			_, err = fmt.Fprintln(a.out, c.Now().Format(pattern.Lookup(a.settings.Layout), opts))
			return err
		},
	}
	a.layoutFlag(cmd)
	return cmd
}

func (a *app) formatCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format <unix-seconds|iso>",
		Short: config.CmdShortFormat,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			z, err := a.zone(cmd)
			if err != nil {
				return err
			}
			opts, err := a.options()
			if err != nil {
				return err
			}
			t, err := parseInstantArg(args[0], z, opts)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.out, t.Format(pattern.Lookup(a.settings.Layout), opts))
			return err
		},
	}
	a.layoutFlag(cmd)
	return cmd
}

func parseInstantArg(arg string, z zone.Zone, opts *pattern.Options) (zone.Time, error) {
	if sec, err := strconv.ParseInt(arg, 10, 64); err == nil {
		return zone.FromUTC(calendar.FromUnix(sec), z), nil
	}
	for _, layout := range instantLayouts {
		if t, err := zone.Parse(arg, layout, z, opts); err == nil {
			return t, nil
		}
	}
	return zone.Time{}, fmt.Errorf("%s: %q", config.ErrInstantArg, arg)
}

func (a *app) parseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <text>",
		Short: config.CmdShortParse,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			opts, err := a.options()
			if err != nil {
				return err
			}
			opts.MatchText = a.strict

			input, layout := args[0], pattern.Lookup(a.settings.Layout)
			var res pattern.Result
			n := pattern.Parse(input, layout, opts, &res)
			if n <= 0 {
				return &pattern.ParseError{Input: input, Layout: layout, Offset: -n}
			}
			fmt.Fprintf(a.out, config.MsgParseOutput, int64(res.Instant), res.Instant.String(), n)
			if res.HasOffset {
				fmt.Fprintf(a.out, config.MsgParseOffset, res.Offset)
			}
			return nil
		},
	}
	a.layoutFlag(cmd)
	cmd.Flags().BoolVar(&a.strict, config.FlagStrict, true, config.FlagDescStrict)
	return cmd
}

func (a *app) transitionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transitions",
		Short: config.CmdShortTransitions,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			z, err := a.zone(cmd)
			if err != nil {
				return err
			}
			std := zone.FromUTC(calendar.FromTime(time.Now().UTC()), z).Standard()
			writeTransitions(a.out, z, std, a.years)
			return nil
		},
	}
	cmd.Flags().IntVar(&a.years, config.FlagYears, config.DefaultYears, config.FlagDescYears)
	return cmd
}

// writeTransitions lists the transitions of z in the years following std,
// as local standard time.
func writeTransitions(w io.Writer, z zone.Zone, std calendar.Instant, years int) {
	end := std.AddYears(years)
	for {
		at, toDST, ok := z.NextTransition(std)
		if !ok || at > end {
			return
		}
		label := config.MsgTransitionToStd
		if toDST {
			label = config.MsgTransitionToDST
		}
		fmt.Fprintf(w, config.MsgTransitionLine, at.String(), label)
		std = at
	}
}

func (a *app) vtimezoneCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vtimezone",
		Short: config.CmdShortVTimezone,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			z, err := a.zone(cmd)
			if err != nil {
				return err
			}
			return interop.EncodeZone(a.out, z, a.settings.Zone, a.from)
		},
	}
	cmd.Flags().IntVar(&a.from, config.FlagFrom, config.DefaultVTimezoneFrom, config.FlagDescFrom)
	return cmd
}

func (a *app) vcardCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "vcard <file>",
		Short: config.CmdShortVCard,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer func() { _ = f.Close() }()

			dates, err := interop.DecodeDates(f)
			if err != nil {
				return err
			}
			for _, d := range dates {
				layout := config.LayoutVCardDate
				if !d.YearKnown {
					layout = config.LayoutVCardNoYear
				}
				fmt.Fprintf(a.out, config.MsgVCardLine, d.Name, d.Field, pattern.Format(d.Value, layout, nil))
			}
			return nil
		},
	}
}

func (a *app) serveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: config.CmdShortServe,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			z, err := a.zone(cmd)
			if err != nil {
				return err
			}
			srv := server.NewFeedServer(a.settings.Port)
			if err := srv.UpdateZone(z, a.settings.Zone, a.from); err != nil {
				return err
			}
			err = srv.Start(cmd.Context())
			slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompCLI)
			return err
		},
	}
	cmd.Flags().StringVar(&a.settings.Port, config.FlagPort, a.settings.Port, config.FlagDescPort)
	cmd.Flags().IntVar(&a.from, config.FlagFrom, config.DefaultVTimezoneFrom, config.FlagDescFrom)
	return cmd
}

// zone resolves the configured zone: the host zone for "local", otherwise a
// zones file entry or a POSIX rule.
func (a *app) zone(cmd *cobra.Command) (zone.Zone, error) {
	name := a.settings.Zone
	if name == "" {
		name = config.DefaultZone
	}
	if name == config.ZoneLocal {
		return tzfile.Local()
	}

	if a.fetcher == nil {
		a.fetcher = zonedb.NewHTTPFetcher()
	}
	db, err := zonedb.Load(cmd.Context(), a.settings.Zones, a.fetcher)
	if err != nil {
		return zone.Zone{}, err
	}
	z, err := db.Resolve(name)
	if err != nil {
		return zone.Zone{}, err
	}
	slog.Debug(config.MsgZoneResolved,
		config.LogKeyComponent, config.CompCLI,
		config.LogKeyZone, name,
		config.LogKeyRule, z.POSIX(),
	)
	return z, nil
}

// options returns pattern options with the names of the configured
// language.
func (a *app) options() (*pattern.Options, error) {
	opts := pattern.DefaultOptions()
	if a.settings.Lang == "" {
		return opts, nil
	}
	t, err := names.Localized(a.settings.Lang)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrSettings, err)
	}
	opts.Names = t
	return opts, nil
}
