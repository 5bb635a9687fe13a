package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/SeppPenner/AceTime/posix/tzposix"
	"github.com/SeppPenner/AceTime/rfc9636"
	"github.com/SeppPenner/AceTime/timeoffset"
	"github.com/SeppPenner/AceTime/timezone"
	"github.com/SeppPenner/AceTime/zonecache"
	"github.com/SeppPenner/AceTime/zonedb"

	"log/slog"
)

const (
	LevelTrace = slog.Level(-8)
	LevelFatal = slog.Level(12)
)

// Custom Logger methods for Trace and Fatal
func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}

func Fatal(msg string, args ...any) {
	slog.Log(context.Background(), LevelFatal, msg, args...)
	os.Exit(1)
}

const defaultZoneinfoDir = "/usr/share/zoneinfo"

// resolveZone makes sure registry carries zone, loading it from a TZif
// source directory via rfc9636.ToZoneInfo if the hand-authored registry
// does not already have it.
func resolveZone(registry *zonedb.Registry, zone, source string) (zonedb.ZoneInfoBroker, string) {
	broker := registry.Get(zone)
	if broker.IsNotNull() {
		return broker, ""
	}

	loc, err := rfc9636.LoadLocation(zone, []string{source})
	if err != nil {
		Fatal("could not load zone from TZif source", "zone", zone, "source", source, "error", err)
	}
	if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		rfc9636.DumpLocation(loc)
	}
	registry.Add(rfc9636.ToZoneInfo(loc))
	return registry.Get(zone), loc.Extend()
}

func parseLocalDateTime(s string) (timeoffset.LocalDateTime, error) {
	if s == "" || strings.EqualFold(s, "now") {
		now := time.Now()
		return timeoffset.ForParts(int16(now.Year()), uint8(now.Month()), uint8(now.Day()), now.Hour(), now.Minute()), nil
	}

	parts := strings.SplitN(s, "T", 2)
	if len(parts) != 2 {
		return timeoffset.LocalDateTime{}, fmt.Errorf("expected YYYY-MM-DDTHH:MM, got %q", s)
	}
	dateParts := strings.Split(parts[0], "-")
	timeParts := strings.Split(parts[1], ":")
	if len(dateParts) != 3 || len(timeParts) < 2 {
		return timeoffset.LocalDateTime{}, fmt.Errorf("expected YYYY-MM-DDTHH:MM, got %q", s)
	}

	year, err := strconv.Atoi(dateParts[0])
	if err != nil {
		return timeoffset.LocalDateTime{}, fmt.Errorf("bad year in %q: %w", s, err)
	}
	month, err := strconv.Atoi(dateParts[1])
	if err != nil {
		return timeoffset.LocalDateTime{}, fmt.Errorf("bad month in %q: %w", s, err)
	}
	day, err := strconv.Atoi(dateParts[2])
	if err != nil {
		return timeoffset.LocalDateTime{}, fmt.Errorf("bad day in %q: %w", s, err)
	}
	hour, err := strconv.Atoi(timeParts[0])
	if err != nil {
		return timeoffset.LocalDateTime{}, fmt.Errorf("bad hour in %q: %w", s, err)
	}
	minute, err := strconv.Atoi(timeParts[1])
	if err != nil {
		return timeoffset.LocalDateTime{}, fmt.Errorf("bad minute in %q: %w", s, err)
	}

	return timeoffset.ForParts(int16(year), uint8(month), uint8(day), hour, minute), nil
}

func main() {
	pflag.FuncP("loglevel", "l", "Set loglevel to trace, debug, info, warning, error or fatal", func(value string) error {
		lv := strings.ToLower(value)
		switch {
		case strings.HasPrefix("trace", lv):
			slog.SetLogLoggerLevel(LevelTrace)
		case strings.HasPrefix("debug", lv):
			slog.SetLogLoggerLevel(slog.LevelDebug)
		case strings.HasPrefix("info", lv):
			slog.SetLogLoggerLevel(slog.LevelInfo)
		case strings.HasPrefix("warning", lv):
			slog.SetLogLoggerLevel(slog.LevelWarn)
		case strings.HasPrefix("error", lv):
			slog.SetLogLoggerLevel(slog.LevelError)
		case strings.HasPrefix("fatal", lv):
			slog.SetLogLoggerLevel(LevelFatal)
		default:
			return errors.New("the loglevel parameter value must be a prefix of one of these words: trace, debug, info, warning, error, fatal")
		}
		return nil
	})

	var zone, source, at string
	var list bool
	pflag.StringVarP(&zone, "zone", "z", "", "zone name to query, e.g. America/Los_Angeles")
	pflag.StringVarP(&source, "source", "s", defaultZoneinfoDir, "TZif zoneinfo directory to fall back to for zones not already known")
	pflag.StringVarP(&at, "at", "a", "now", "local wall-clock instant to resolve, YYYY-MM-DDTHH:MM, or \"now\"")
	pflag.BoolVarP(&list, "list", "L", false, "list the zones already known without touching a TZif source")
	pflag.Parse()

	registry := zonedb.NewRegistry()

	if list {
		names := registry.Names()
		sort.Strings(names)
		for _, name := range names {
			fmt.Println(name)
		}
		return
	}

	if zone == "" {
		Fatal("missing required flag", "flag", "--zone")
	}

	broker, extend := resolveZone(registry, zone, source)
	if broker.IsNull() {
		Fatal("unknown zone", "zone", zone)
	}

	ldt, err := parseLocalDateTime(at)
	if err != nil {
		Fatal("bad --at value", "at", at, "error", err)
	}

	cache := zonecache.New(1)
	tz := timezone.ForZoneInfo(broker, cache)
	odt := tz.OffsetDateTime(ldt)
	if odt.Offset.IsError() {
		Fatal("could not resolve offset", "zone", zone, "at", at)
	}
	epochSeconds := odt.ToEpochSeconds()

	fmt.Printf("%s %04d-%02d-%02dT%02d:%02d %s (UTC%s) delta %s\n",
		zone,
		ldt.Date.Year, ldt.Date.Month, ldt.Date.Day, ldt.Hour(), ldt.Minute(),
		tz.Abbrev(epochSeconds), odt.Offset.String(), tz.DeltaOffset(epochSeconds).String())

	if extend != "" {
		posixZone, err := tzposix.DecodeTZ(extend)
		if err != nil {
			slog.Error("DecodeTZ failure", "TZ", extend, "error", err)
		} else {
			fmt.Println(tzposix.Describe(posixZone))
		}
	}

	slog.Info("resolved", "zone", zone, "epochSeconds", epochSeconds)
}
