package manifest

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CheckCompatibility reports an error if cliVersion does not satisfy the
// manifest's requires constraint. Manifests without a constraint and
// non-release CLI builds (e.g. "dev") always pass.
func CheckCompatibility(m *TemplateManifest, cliVersion string) error {
	if m == nil || strings.TrimSpace(m.Requires) == "" {
		return nil
	}

	constraint, err := semver.NewConstraint(m.Requires)
	if err != nil {
		return fmt.Errorf("template %q has an invalid requires constraint %q: %w", m.Name, m.Requires, err)
	}

	v, err := parseSemver(cliVersion)
	if err != nil {
		return nil
	}

	if ok, reasons := constraint.Validate(v); !ok {
		msgs := make([]string, len(reasons))
		for i, r := range reasons {
			msgs[i] = r.Error()
		}
		return fmt.Errorf("template %q requires inix %s, but this is %s (%s)",
			m.Name, m.Requires, v.String(), strings.Join(msgs, "; "))
	}
	return nil
}

// EnforcesRequires reports whether a CLI built as cliVersion checks
// template requires constraints. Only release versions do.
func EnforcesRequires(cliVersion string) bool {
	_, err := parseSemver(cliVersion)
	return err == nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
