package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	depsDocs "github.com/craftpub/craftpub-cli/conventions/cli/docs/deps"
	discoverDocs "github.com/craftpub/craftpub-cli/conventions/cli/docs/discover"
	javaDocs "github.com/craftpub/craftpub-cli/conventions/cli/docs/java"
	manifestDocs "github.com/craftpub/craftpub-cli/conventions/cli/docs/manifest"
	pomDocs "github.com/craftpub/craftpub-cli/conventions/cli/docs/pom"
	publishDocs "github.com/craftpub/craftpub-cli/conventions/cli/docs/publish"
	setupCredentialsDocs "github.com/craftpub/craftpub-cli/conventions/cli/docs/setupcredentials"
	targetsDocs "github.com/craftpub/craftpub-cli/conventions/cli/docs/targets"
	testConfigDocs "github.com/craftpub/craftpub-cli/conventions/cli/docs/testconfig"
	"github.com/craftpub/craftpub-cli/conventions/commands/credentials"
	"github.com/craftpub/craftpub-cli/conventions/commands/discord"
	"github.com/craftpub/craftpub-cli/conventions/commands/javaconv"
	"github.com/craftpub/craftpub-cli/conventions/commands/manifest"
	"github.com/craftpub/craftpub-cli/conventions/commands/modloader"
	"github.com/craftpub/craftpub-cli/conventions/commands/pom"
	"github.com/craftpub/craftpub-cli/conventions/commands/project"
	"github.com/craftpub/craftpub-cli/conventions/commands/publish"
	"github.com/craftpub/craftpub-cli/conventions/commands/testconf"
	pluginsCommon "github.com/jfrog/jfrog-cli-core/v2/plugins/common"
	"github.com/jfrog/jfrog-cli-core/v2/plugins/components"
	"github.com/jfrog/jfrog-client-go/utils/errorutils"
	"github.com/jfrog/jfrog-client-go/utils/log"
	"golang.org/x/exp/slices"
)

func GetCommands() []components.Command {
	return []components.Command{
		{
			Name:        Targets,
			Flags:       GetCommandFlags(Targets),
			Description: targetsDocs.GetDescription(),
			Arguments:   targetsDocs.GetArguments(),
			Action:      resolveTargets,
		},
		{
			Name:        Discover,
			Flags:       GetCommandFlags(Discover),
			Description: discoverDocs.GetDescription(),
			Arguments:   discoverDocs.GetArguments(),
			Action:      discoverRepositories,
		},
		{
			Name:        Publish,
			Aliases:     []string{"p"},
			Flags:       GetCommandFlags(Publish),
			Description: publishDocs.GetDescription(),
			Arguments:   publishDocs.GetArguments(),
			Action:      publishProject,
		},
		{
			Name:        Pom,
			Flags:       GetCommandFlags(Pom),
			Description: pomDocs.GetDescription(),
			Arguments:   pomDocs.GetArguments(),
			Action:      generatePom,
		},
		{
			Name:        Manifest,
			Flags:       GetCommandFlags(Manifest),
			Description: manifestDocs.GetDescription(),
			Arguments:   manifestDocs.GetArguments(),
			Action:      stampManifest,
		},
		{
			Name:        Deps,
			Flags:       GetCommandFlags(Deps),
			Description: depsDocs.GetDescription(),
			Arguments:   depsDocs.GetArguments(),
			Action:      wireDependencies,
		},
		{
			Name:        Java,
			Flags:       GetCommandFlags(Java),
			Description: javaDocs.GetDescription(),
			Arguments:   javaDocs.GetArguments(),
			Action:      printJavaSettings,
		},
		{
			Name:        TestConfig,
			Aliases:     []string{"tc"},
			Flags:       GetCommandFlags(TestConfig),
			Description: testConfigDocs.GetDescription(),
			Arguments:   testConfigDocs.GetArguments(),
			Action:      printTestSettings,
		},
		{
			Name:        SetupCredentials,
			Flags:       GetCommandFlags(SetupCredentials),
			Description: setupCredentialsDocs.GetDescription(),
			Arguments:   setupCredentialsDocs.GetArguments(),
			Action:      setupCredentials,
		},
	}
}

func resolveTargets(ctx *components.Context) error {
	if err := validateCommonContext(ctx, 0); err != nil {
		return err
	}
	workingDir, err := os.Getwd()
	if err != nil {
		return errorutils.CheckError(err)
	}

	props := project.CollectProperties(workingDir)
	version, err := project.RequiredProperty(props, project.PropVersion)
	if err != nil {
		return err
	}

	cfg, err := publish.LoadConfig(workingDir)
	if err != nil {
		return err
	}
	resolved, err := cfg.ResolveTargets(version, splitList(ctx.GetStringFlagValue(targetsFlag)))
	if err != nil {
		return err
	}
	return publish.NewTargetsWriter(resolved, ctx.GetStringFlagValue(format)).Print()
}

func discoverRepositories(ctx *components.Context) error {
	if err := validateCommonContext(ctx, 0); err != nil {
		return err
	}
	workingDir, err := os.Getwd()
	if err != nil {
		return errorutils.CheckError(err)
	}

	urls, err := project.DiscoverRepositoryURLs(workingDir)
	if err != nil {
		return err
	}
	if len(urls) == 0 {
		log.Info("No repository URLs declared in the project's build scripts")
		return nil
	}
	for _, url := range urls {
		fmt.Println(url)
	}
	return nil
}

func publishProject(ctx *components.Context) error {
	if err := validateCommonContext(ctx, 0); err != nil {
		return err
	}
	workingDir, err := os.Getwd()
	if err != nil {
		return errorutils.CheckError(err)
	}

	return publish.NewPublishCommand().
		SetWorkingDir(workingDir).
		SetTargets(splitList(ctx.GetStringFlagValue(targetsFlag))).
		SetBuildName(ctx.GetStringFlagValue(buildName)).
		SetBuildNumber(ctx.GetStringFlagValue(buildNumber)).
		SetDryRun(ctx.GetBoolFlagValue(dryRun)).
		Run()
}

func generatePom(ctx *components.Context) error {
	if err := validateCommonContext(ctx, 0); err != nil {
		return err
	}
	workingDir, err := os.Getwd()
	if err != nil {
		return errorutils.CheckError(err)
	}

	props := project.CollectProperties(workingDir)
	group, err := project.RequiredProperty(props, project.PropGroup)
	if err != nil {
		return err
	}
	version, err := project.RequiredProperty(props, project.PropVersion)
	if err != nil {
		return err
	}
	artifact, err := project.RequiredProperty(props, project.PropArtifact)
	if err != nil {
		return err
	}

	outputPath := ctx.GetStringFlagValue(output)
	if outputPath == "" {
		outputPath = "pom.xml"
	}
	meta := pom.Metadata{
		GroupID:         group,
		ArtifactID:      artifact,
		Version:         version,
		Packaging:       "jar",
		Name:            artifact,
		Description:     props[project.PropDescription],
		LicenseName:     props[project.PropLicenseName],
		LicenseURL:      props[project.PropLicenseURL],
		DistributionURL: props[project.PropDistURL],
	}
	if err := pom.Write(outputPath, meta); err != nil {
		return err
	}
	log.Info("Generated", outputPath, "for", group+":"+artifact+":"+version)
	return nil
}

func stampManifest(ctx *components.Context) error {
	if err := validateCommonContext(ctx, 1); err != nil {
		return err
	}
	workingDir, err := os.Getwd()
	if err != nil {
		return errorutils.CheckError(err)
	}

	props := project.CollectProperties(workingDir)
	artifact, err := project.RequiredProperty(props, project.PropArtifact)
	if err != nil {
		return err
	}
	version, err := project.RequiredProperty(props, project.PropVersion)
	if err != nil {
		return err
	}

	jarPath := ctx.Arguments[0]
	opts := manifest.Options{
		MainClass:             ctx.GetStringFlagValue(mainClass),
		ImplementationTitle:   artifact,
		ImplementationVersion: version,
		ArchiveBaseName:       artifact,
		BundleJars:            splitList(ctx.GetStringFlagValue(bundleJars)),
	}
	if err := manifest.StampJar(jarPath, opts); err != nil {
		return err
	}
	log.Info("Stamped", jarPath)
	return nil
}

func wireDependencies(ctx *components.Context) error {
	if err := validateCommonContext(ctx, 1); err != nil {
		return err
	}

	framework := ctx.Arguments[0]
	if framework == "jda" {
		deps, err := discord.Dependencies(ctx.GetStringFlagValue(loaderVersion))
		if err != nil {
			return err
		}
		return printJSON(struct {
			Dependencies []discord.Dependency `json:"dependencies"`
		}{deps})
	}

	deps, repos, err := modloader.Dependencies(modloader.Request{
		Loader:           modloader.Loader(framework),
		MinecraftVersion: ctx.GetStringFlagValue(minecraftVersion),
		LoaderVersion:    ctx.GetStringFlagValue(loaderVersion),
		APIVersion:       ctx.GetStringFlagValue(apiVersion),
	})
	if err != nil {
		return err
	}
	return printJSON(struct {
		Repositories []modloader.Repository `json:"repositories"`
		Dependencies []modloader.Dependency `json:"dependencies"`
	}{repos, deps})
}

func printJavaSettings(ctx *components.Context) error {
	if err := validateCommonContext(ctx, 0); err != nil {
		return err
	}

	raw := ctx.GetStringFlagValue(javaVersion)
	if raw == "" {
		workingDir, err := os.Getwd()
		if err != nil {
			return errorutils.CheckError(err)
		}
		props := project.CollectProperties(workingDir)
		raw, err = project.RequiredProperty(props, project.PropJavaVersion)
		if err != nil {
			return err
		}
	}
	version, err := strconv.Atoi(raw)
	if err != nil {
		return errorutils.CheckErrorf("invalid Java version %q", raw)
	}

	settings, err := javaconv.ToolchainSettings(version)
	if err != nil {
		return err
	}
	return printJSON(settings)
}

func printTestSettings(ctx *components.Context) error {
	if err := validateCommonContext(ctx, 0); err != nil {
		return err
	}
	return printJSON(testconf.DefaultSettings())
}

func setupCredentials(ctx *components.Context) error {
	if err := validateCommonContext(ctx, 0); err != nil {
		return err
	}
	workingDir, err := os.Getwd()
	if err != nil {
		return errorutils.CheckError(err)
	}

	cfg, err := publish.LoadConfig(workingDir)
	if err != nil {
		return err
	}

	filter := splitList(ctx.GetStringFlagValue(targetsFlag))
	for _, name := range filter {
		if _, ok := cfg.Targets[name]; !ok {
			return errorutils.CheckErrorf("publication target %q is not configured", name)
		}
	}

	names := make([]string, 0, len(cfg.Targets))
	for name := range cfg.Targets {
		if len(filter) > 0 && !slices.Contains(filter, name) {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)

	targets := make([]publish.PublicationTarget, 0, len(names))
	for _, name := range names {
		targets = append(targets, publish.PublicationTarget{Name: name, RequiresAuth: cfg.Targets[name].RequiresAuth})
	}

	path, err := credentials.SetupTargets(targets)
	if err != nil {
		return err
	}
	log.Info("Seeded credential keys for", len(targets), "targets in", path)
	return nil
}

func validateCommonContext(ctx *components.Context, expectedArgs int) error {
	if show, err := pluginsCommon.ShowCmdHelpIfNeeded(ctx, ctx.Arguments); show || err != nil {
		return err
	}
	if len(ctx.Arguments) != expectedArgs {
		return pluginsCommon.WrongNumberOfArgumentsHandler(ctx)
	}
	return nil
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ";") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func printJSON(v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorutils.CheckError(err)
	}
	fmt.Println(string(jsonBytes))
	return nil
}
