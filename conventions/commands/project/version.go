package project

import "strings"

// SnapshotSuffix marks an unreleased, mutable artifact version. The match is
// case-sensitive and exact: "1.0.0-SNAPSHOTX" is a release.
const SnapshotSuffix = "SNAPSHOT"

// IsSnapshot reports whether version denotes a snapshot build.
func IsSnapshot(version string) bool {
	return strings.HasSuffix(version, SnapshotSuffix)
}

// SelectPublishURL returns the repository URL that artifacts of the given
// version should be deployed to: snapshotURL for snapshot versions, releaseURL
// otherwise. Total over all inputs; no version format validation is performed.
func SelectPublishURL(version, releaseURL, snapshotURL string) string {
	if IsSnapshot(version) {
		return snapshotURL
	}
	return releaseURL
}
