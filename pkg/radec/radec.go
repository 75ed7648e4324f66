package radec

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrParse is returned when a coordinate string does not match the expected
// sexagesimal form.
var ErrParse = errors.New("cannot parse coordinate string")

const (
	degPerHour = 360.0 / 24.0
	degPerRad  = 180.0 / math.Pi
)

// Option configures coordinate parsing.
type Option func(*parser)

// WithDelimiter sets the field delimiter used when parsing. The delimiter is
// interpreted as a regular expression fragment; the default is ":".
func WithDelimiter(delim string) Option {
	return func(p *parser) {
		p.delim = delim
	}
}

type parser struct {
	delim string
}

func newParser(opts []Option) parser {
	p := parser{delim: ":"}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// FormatRADeg renders a right ascension in degrees as "HH:MM:SS.SS"
// (hours, minutes and seconds of time).
func FormatRADeg(raDeg float64) string {
	hours := raDeg / degPerHour

	hr := math.Floor(hours)
	hours = (hours - hr) * 60
	mn := math.Floor(hours)
	sec := (hours - mn) * 60

	return fmt.Sprintf("%2d:%02d:%5.2f", int(hr), int(mn), sec)
}

// FormatRARad renders a right ascension in radians as "HH:MM:SS.SS".
func FormatRARad(raRad float64) string {
	return FormatRADeg(raRad * degPerRad)
}

// FormatDecDeg renders a declination in degrees as "+DD:MM:SS.SS"
// (signed degrees, arcminutes and arcseconds).
func FormatDecDeg(decDeg float64) string {
	sgn := "+"
	if decDeg < 0 {
		sgn = "-"
	}
	dec := math.Abs(decDeg)

	degrees := math.Floor(dec)
	dec -= degrees
	min := math.Floor(dec * 60)
	dec -= min / 60
	sec := dec * 3600

	return fmt.Sprintf("%s%2d:%02d:%05.2f", sgn, int(degrees), int(min), sec)
}

// FormatDecRad renders a declination in radians as "+DD:MM:SS.SS".
func FormatDecRad(decRad float64) string {
	return FormatDecDeg(decRad * degPerRad)
}

// FormatRADecDeg renders an (RA, Dec) pair in degrees as a space-separated
// coordinate string.
func FormatRADecDeg(raDeg, decDeg float64) string {
	return FormatRADeg(raDeg) + " " + FormatDecDeg(decDeg)
}

// FormatRADecRad renders an (RA, Dec) pair in radians as a space-separated
// coordinate string.
func FormatRADecRad(raRad, decRad float64) string {
	return FormatRARad(raRad) + " " + FormatDecRad(decRad)
}

// ParseRADeg parses a sexagesimal right ascension ("HH:MM:SS.SS") and
// returns degrees. The whole string must match.
func ParseRADeg(s string, opts ...Option) (float64, error) {
	p := newParser(opts)

	re, err := regexp.Compile(`^\s*(\d+)` + p.delim + `(\d+)` + p.delim + `([\d.]+)\s*$`)
	if err != nil {
		return 0, fmt.Errorf("%w: bad delimiter %q: %w", ErrParse, p.delim, err)
	}
	m := re.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: %q is not a right ascension", ErrParse, s)
	}

	hours, mins, secs, err := parseFields(m)
	if err != nil {
		return 0, err
	}
	return (hours + mins/60 + secs/3600) * degPerHour, nil
}

// ParseRARad parses a sexagesimal right ascension and returns radians.
func ParseRARad(s string, opts ...Option) (float64, error) {
	deg, err := ParseRADeg(s, opts...)
	return deg / degPerRad, err
}

// ParseDecDeg parses a sexagesimal declination ("+DD:MM:SS.SS") and returns
// degrees. A leading minus sign is honored even for -0 degrees.
func ParseDecDeg(s string, opts ...Option) (float64, error) {
	p := newParser(opts)

	re, err := regexp.Compile(`(\d+)` + p.delim + `(\d+)` + p.delim + `([\d.]+)`)
	if err != nil {
		return 0, fmt.Errorf("%w: bad delimiter %q: %w", ErrParse, p.delim, err)
	}
	m := re.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: %q is not a declination", ErrParse, s)
	}

	degrees, mins, secs, err := parseFields(m)
	if err != nil {
		return 0, err
	}
	degrees += (secs/60 + mins) / 60

	// The sign is detected separately so "-00:30:00" parses negative.
	if strings.HasPrefix(strings.TrimSpace(s), "-") {
		degrees = -degrees
	}
	return degrees, nil
}

// ParseDecRad parses a sexagesimal declination and returns radians.
func ParseDecRad(s string, opts ...Option) (float64, error) {
	deg, err := ParseDecDeg(s, opts...)
	return deg / degPerRad, err
}

func parseFields(m []string) (first, mins, secs float64, err error) {
	if first, err = strconv.ParseFloat(m[1], 64); err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %q: %w", ErrParse, m[1], err)
	}
	if mins, err = strconv.ParseFloat(m[2], 64); err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %q: %w", ErrParse, m[2], err)
	}
	if secs, err = strconv.ParseFloat(m[3], 64); err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %q: %w", ErrParse, m[3], err)
	}
	return first, mins, secs, nil
}
