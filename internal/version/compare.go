package version

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/rxtech-lab/tide/pkg/errors"
)

// CheckProfileCompatibility checks whether a profile written for
// profileVersion can run on engineVersion. Returns nil if compatible,
// an error with details if not.
//
// Compatibility rules:
//   - If either version is "main" (development build), the check is skipped
//   - An empty profile version means the profile does not pin an engine
//   - Major versions must match exactly
//   - Minor versions must match exactly
//   - Patch versions can differ (e.g., 1.2.0 runs profiles for 1.2.5)
func CheckProfileCompatibility(engineVersion, profileVersion string) error {
	engineVersion = strings.TrimPrefix(engineVersion, "v")
	profileVersion = strings.TrimPrefix(profileVersion, "v")

	if profileVersion == "" {
		return nil
	}

	if engineVersion == "main" || profileVersion == "main" {
		return nil
	}

	engineSemver, err := semver.NewVersion(engineVersion)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeProfileIncompatible, err, "invalid engine version %q", engineVersion)
	}

	profileSemver, err := semver.NewVersion(profileVersion)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeProfileIncompatible, err, "invalid profile version %q", profileVersion)
	}

	if engineSemver.Major() != profileSemver.Major() {
		return errors.Newf(errors.ErrCodeProfileIncompatible,
			"major version mismatch: engine is %d.x.x but profile requires %d.x.x",
			engineSemver.Major(), profileSemver.Major())
	}

	if engineSemver.Minor() != profileSemver.Minor() {
		return errors.Newf(errors.ErrCodeProfileIncompatible,
			"minor version mismatch: engine is %d.%d.x but profile requires %d.%d.x",
			engineSemver.Major(), engineSemver.Minor(),
			profileSemver.Major(), profileSemver.Minor())
	}

	// Patch versions can differ, so we're compatible
	return nil
}
