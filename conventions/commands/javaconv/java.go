// Package javaconv emits the Java toolchain and compiler defaults these
// conventions apply to every JVM project.
package javaconv

import (
	"github.com/jfrog/jfrog-client-go/utils/errorutils"
	"golang.org/x/exp/slices"
)

// Modern mod loaders and JDA both require at least Java 17.
const minimumJavaVersion = 17

// Settings are the toolchain defaults for one target JVM version.
type Settings struct {
	Release      int      `json:"release"`
	Encoding     string   `json:"encoding"`
	CompilerArgs []string `json:"compilerArgs"`
	Javadoc      bool     `json:"javadoc"`
	Sources      bool     `json:"sources"`
}

// ToolchainSettings returns the defaults for the given target JVM version.
func ToolchainSettings(javaVersion int) (*Settings, error) {
	if javaVersion < minimumJavaVersion {
		return nil, errorutils.CheckErrorf("target Java version %d is below the supported minimum %d", javaVersion, minimumJavaVersion)
	}

	args := []string{"-parameters", "-Xlint:deprecation", "-Xlint:unchecked"}
	slices.Sort(args)
	return &Settings{
		Release:      javaVersion,
		Encoding:     "UTF-8",
		CompilerArgs: args,
		Javadoc:      true,
		Sources:      true,
	}, nil
}
