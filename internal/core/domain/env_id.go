package domain

import (
	"slices"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ProjectID derives a short, stable identifier for a project root.
// It keys per-project storage so that projects sharing environment names do not collide.
func ProjectID(root string) string {
	return strconv.FormatUint(xxhash.Sum64String(root), 36)
}

// DependencyHash creates a deterministic hash of a dependency list.
// Order and duplicates do not affect the result.
func DependencyHash(dependencies []string) string {
	deps := slices.Clone(dependencies)
	slices.Sort(deps)
	deps = slices.Compact(deps)

	digest := xxhash.New()
	for _, dep := range deps {
		_, _ = digest.WriteString(strings.TrimSpace(dep))
		_, _ = digest.WriteString("\n")
	}
	return strconv.FormatUint(digest.Sum64(), 16)
}
