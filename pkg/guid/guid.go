// Package guid derives the stable identifiers written into generated IDE
// project and solution files.
//
// Identifiers are name-based (version 5) UUIDs, so the same project
// description always yields the same ids and regenerating files produces no
// spurious diffs.
package guid

import (
	"strings"

	"github.com/arthur-debert/bkgen/pkg/errors"
	"github.com/google/uuid"
)

// Namespace selects one of the fixed seeds used for derivation.
type Namespace int

const (
	// Project scopes ids of individual projects.
	Project Namespace = iota
	// SolutionGroup scopes ids of solution folders.
	SolutionGroup
	// Internal scopes auxiliary ids such as filter identifiers.
	Internal
)

var seeds = [...]uuid.UUID{
	Project:       uuid.MustParse("D9BD5916-F055-4D77-8C69-9448E02BF433"),
	SolutionGroup: uuid.MustParse("2D0C29E0-512F-47BE-9AC4-F4CAE74AE16E"),
	Internal:      uuid.MustParse("BAA4019E-6D67-4EF1-B3CB-AE6CD82E4060"),
}

var names = [...]string{
	Project:       "project",
	SolutionGroup: "group",
	Internal:      "internal",
}

// Seed returns the namespace UUID.
func (ns Namespace) Seed() uuid.UUID {
	errors.Assert(ns >= 0 && int(ns) < len(seeds), "unknown guid namespace %d", int(ns))
	return seeds[ns]
}

func (ns Namespace) String() string {
	if ns < 0 || int(ns) >= len(names) {
		return "unknown"
	}
	return names[ns]
}

// ParseNamespace maps a namespace name ("project", "group", "internal") to
// its Namespace.
func ParseNamespace(name string) (Namespace, error) {
	for i, n := range names {
		if n == name {
			return Namespace(i), nil
		}
	}
	return 0, errors.Newf(errors.ErrInvalidInput, "unknown guid namespace %q", name).
		WithDetail("valid", names[:])
}

// Derive returns the identifier for data within scope (typically the
// project name), formatted as a braced uppercase GUID:
//
//	{8B3E7742-99D3-5197-8F87-FED04F8CBD6D}
func Derive(ns Namespace, scope, data string) string {
	id := uuid.NewSHA1(ns.Seed(), []byte(scope+"/"+data))
	return "{" + strings.ToUpper(id.String()) + "}"
}
