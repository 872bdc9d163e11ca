package domain

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"

	m "github.com/commitkind/commitkind/internal/model"
)

// NextVersion suggests the release that follows current for a change of the
// given severity. The "v" prefix is optional and preserved. Prerelease and
// build suffixes are dropped. Before v1.0.0 a MAJOR change bumps the minor
// version, following the semver rule that anything may change in 0.x.
func NextVersion(current string, c m.Classification) (string, error) {
	prefixed := strings.TrimSpace(current)

	hadPrefix := strings.HasPrefix(prefixed, "v")
	if !hadPrefix {
		prefixed = "v" + prefixed
	}

	if !semver.IsValid(prefixed) {
		return "", fmt.Errorf("invalid semantic version %q", current)
	}

	major, minor, patch, err := versionParts(semver.Canonical(prefixed))
	if err != nil {
		return "", fmt.Errorf("parsing %q: %w", current, err)
	}

	switch c {
	case m.Major:
		if major == 0 {
			minor, patch = minor+1, 0
		} else {
			major, minor, patch = major+1, 0, 0
		}
	case m.Feat:
		minor, patch = minor+1, 0
	case m.Fix:
		patch++
	default:
		return "", fmt.Errorf("unknown classification %v", c)
	}

	next := fmt.Sprintf("%d.%d.%d", major, minor, patch)
	if hadPrefix {
		next = "v" + next
	}

	return next, nil
}

func versionParts(canonical string) (int, int, int, error) {
	core := strings.TrimPrefix(canonical, "v")
	if i := strings.IndexAny(core, "-+"); i >= 0 {
		core = core[:i]
	}

	fields := strings.Split(core, ".")
	if len(fields) != 3 {
		return 0, 0, 0, fmt.Errorf("expected major.minor.patch, got %q", core)
	}

	parts := make([]int, 3)
	for i, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return 0, 0, 0, err
		}

		parts[i] = n
	}

	return parts[0], parts[1], parts[2], nil
}
