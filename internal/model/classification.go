package model

import (
	"fmt"
	"strings"
)

// Classification is the severity of a change set. Values are ordered:
// Fix < Feat < Major.
type Classification int

const (
	// Fix means no public API change.
	Fix Classification = iota + 1
	// Feat means an additive, non-breaking API change.
	Feat
	// Major means a removal or a breaking API change.
	Major
)

// String returns the upper-case name printed by the CLI.
func (c Classification) String() string {
	switch c {
	case Fix:
		return "FIX"
	case Feat:
		return "FEAT"
	case Major:
		return "MAJOR"
	default:
		return fmt.Sprintf("Classification(%d)", int(c))
	}
}

// Max returns the more severe of c and other. Major absorbs everything.
func (c Classification) Max(other Classification) Classification {
	if other > c {
		return other
	}

	return c
}

// ParseClassification parses a name as produced by String, case-insensitively.
func ParseClassification(s string) (Classification, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "FIX":
		return Fix, nil
	case "FEAT":
		return Feat, nil
	case "MAJOR":
		return Major, nil
	}

	return 0, fmt.Errorf("unknown classification %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (c Classification) MarshalText() ([]byte, error) {
	if c < Fix || c > Major {
		return nil, fmt.Errorf("invalid classification %d", int(c))
	}

	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Classification) UnmarshalText(text []byte) error {
	parsed, err := ParseClassification(string(text))
	if err != nil {
		return err
	}

	*c = parsed

	return nil
}
