package cronparser

import (
	"errors"
	"fmt"
	"strings"
	"time"

	cron "github.com/netresearch/go-cron"
)

var _parser = cron.MustNewParser(
	cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// ErrNeverFires is returned for a schedule with no future occurrence.
var ErrNeverFires = errors.New("schedule never fires")

// Parser computes audit schedule occurrences using go-cron.
type Parser struct{}

// New creates a new cron parser.
func New() *Parser {
	return &Parser{}
}

// NextAfter returns the next occurrence strictly after `after`.
// If tz is non-empty and the spec has no CRON_TZ=/TZ= prefix, it prepends CRON_TZ=<tz>.
// Defaults to UTC when no tz is given.
func (p *Parser) NextAfter(
	spec,
	tz string,
	after time.Time,
) (time.Time, error) {
	schedule, err := parse(spec, tz)
	if err != nil {
		return time.Time{}, err
	}

	next := schedule.Next(after)
	if next.IsZero() {
		return time.Time{}, fmt.Errorf("%q: %w", spec, ErrNeverFires)
	}

	return next, nil
}

// Period returns the gap between the first two occurrences after `after`.
// Staleness checks use it as the expected audit interval.
func (p *Parser) Period(
	spec,
	tz string,
	after time.Time,
) (time.Duration, error) {
	first, err := p.NextAfter(spec, tz, after)
	if err != nil {
		return 0, err
	}

	second, err := p.NextAfter(spec, tz, first)
	if err != nil {
		return 0, err
	}

	return second.Sub(first), nil
}

func parse(spec, tz string) (cron.Schedule, error) {
	schedule, err := _parser.Parse(buildSpec(spec, tz))
	if err != nil {
		return nil, fmt.Errorf("parse cron spec %q: %w", spec, err)
	}

	return schedule, nil
}

func buildSpec(spec, tz string) string {
	hasTZPrefix := strings.HasPrefix(spec, "CRON_TZ=") ||
		strings.HasPrefix(spec, "TZ=")

	if tz != "" && !hasTZPrefix {
		return "CRON_TZ=" + tz + " " + spec
	}

	if !hasTZPrefix {
		return "CRON_TZ=UTC " + spec
	}

	return spec
}
