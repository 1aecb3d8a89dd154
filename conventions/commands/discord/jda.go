// Package discord wires the JDA dependency set for projects that talk to the
// Discord API.
package discord

import (
	"github.com/Masterminds/semver/v3"
	"github.com/jfrog/jfrog-client-go/utils/errorutils"
)

const (
	jdaGroup    = "net.dv8tion"
	jdaArtifact = "JDA"

	// The opus natives are only needed for voice; bots built with these
	// conventions are text-only and exclude them to keep the jar small.
	opusGroup    = "club.minnced"
	opusArtifact = "opus-java"

	// JDA 4 targets a retired Discord API version.
	jdaFloor = "5.0.0-beta.1"
)

// Exclusion is a transitive dependency excluded from a notation.
type Exclusion struct {
	Group    string `json:"group"`
	Artifact string `json:"artifact"`
}

// Dependency is a build-configuration name, a Maven notation and the
// exclusions to apply to it.
type Dependency struct {
	Configuration string      `json:"configuration"`
	Notation      string      `json:"notation"`
	Exclusions    []Exclusion `json:"exclusions,omitempty"`
}

// Dependencies returns the dependency set for the given JDA version.
func Dependencies(jdaVersion string) ([]Dependency, error) {
	version, err := semver.NewVersion(jdaVersion)
	if err != nil {
		return nil, errorutils.CheckErrorf("invalid JDA version %q: %s", jdaVersion, err.Error())
	}
	if version.LessThan(semver.MustParse(jdaFloor)) {
		return nil, errorutils.CheckErrorf("JDA %s is older than the supported floor %s", jdaVersion, jdaFloor)
	}

	return []Dependency{
		{
			Configuration: "implementation",
			Notation:      jdaGroup + ":" + jdaArtifact + ":" + jdaVersion,
			Exclusions:    []Exclusion{{Group: opusGroup, Artifact: opusArtifact}},
		},
	}, nil
}
