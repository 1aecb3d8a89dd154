package cli

import (
	pluginsCommon "github.com/jfrog/jfrog-cli-core/v2/plugins/common"
	"github.com/jfrog/jfrog-cli-core/v2/plugins/components"
)

const (
	// Convention commands keys
	Targets          = "targets"
	Discover         = "discover"
	Publish          = "publish"
	Pom              = "pom"
	Manifest         = "manifest"
	Deps             = "deps"
	Java             = "java"
	TestConfig       = "test-config"
	SetupCredentials = "setup-credentials"
)

const (
	// Flags keys
	format      = "format"
	targetsFlag = "targets"
	buildName   = "build-name"
	buildNumber = "build-number"
	dryRun      = "dry-run"
	output      = "output"

	mainClass  = "main-class"
	bundleJars = "bundle"

	minecraftVersion = "minecraft-version"
	loaderVersion    = "loader-version"
	apiVersion       = "api-version"
	javaVersion      = "java-version"
)

// Flag keys mapped to their corresponding components.Flag definition.
var flagsMap = map[string]components.Flag{
	format:      components.NewStringFlag(format, "Output format. Supported formats: 'table', 'json'.", func(f *components.StringFlag) { f.Mandatory = false }),
	targetsFlag: components.NewStringFlag(targetsFlag, "Semicolon-separated list of publication target names. All configured targets are selected when omitted.", func(f *components.StringFlag) { f.Mandatory = false }),
	buildName:   components.NewStringFlag(buildName, "Build name to record in the local build info.", func(f *components.StringFlag) { f.Mandatory = false }),
	buildNumber: components.NewStringFlag(buildNumber, "Build number to record in the local build info.", func(f *components.StringFlag) { f.Mandatory = false }),
	dryRun:      components.NewBoolFlag(dryRun, "Resolve and print the selected targets without deploying anything.", components.WithBoolDefaultValueFalse()),
	output:      components.NewStringFlag(output, "Output file path. If not provided, the file is written next to the project build script.", func(f *components.StringFlag) { f.Mandatory = false }),

	mainClass:  components.NewStringFlag(mainClass, "Fully qualified main class recorded in the jar manifest.", func(f *components.StringFlag) { f.Mandatory = false }),
	bundleJars: components.NewStringFlag(bundleJars, "Semicolon-separated list of third-party jars whose classes are bundled into the output jar.", func(f *components.StringFlag) { f.Mandatory = false }),

	minecraftVersion: components.NewStringFlag(minecraftVersion, "Target Minecraft version, for example 1.21.1.", func(f *components.StringFlag) { f.Mandatory = false }),
	loaderVersion:    components.NewStringFlag(loaderVersion, "Mod loader version, or the JDA version for the jda loader.", func(f *components.StringFlag) { f.Mandatory = false }),
	apiVersion:       components.NewStringFlag(apiVersion, "Fabric API version, must target the same Minecraft version.", func(f *components.StringFlag) { f.Mandatory = false }),
	javaVersion:      components.NewStringFlag(javaVersion, "Target JVM version. Defaults to the project's javaVersion property.", func(f *components.StringFlag) { f.Mandatory = false }),
}

var commandFlags = map[string][]string{
	Targets: {
		format,
		targetsFlag,
	},
	Discover: {},
	Publish: {
		targetsFlag,
		buildName,
		buildNumber,
		dryRun,
	},
	Pom: {
		output,
	},
	Manifest: {
		mainClass,
		bundleJars,
	},
	Deps: {
		minecraftVersion,
		loaderVersion,
		apiVersion,
	},
	Java: {
		javaVersion,
	},
	TestConfig:       {},
	SetupCredentials: {targetsFlag},
}

func GetCommandFlags(cmdKey string) []components.Flag {
	return pluginsCommon.GetCommandFlags(cmdKey, commandFlags, flagsMap)
}
