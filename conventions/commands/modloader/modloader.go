// Package modloader wires the dependency notations and repositories a
// Minecraft mod project needs for its configured loader. Loader and API
// libraries are treated as opaque coordinates; nothing is resolved or
// downloaded here.
package modloader

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/jfrog/jfrog-client-go/utils/errorutils"
)

type Loader string

const (
	NeoForge Loader = "neoforge"
	Fabric   Loader = "fabric"
)

const (
	neoForgeGroup  = "net.neoforged"
	neoForgeRepo   = "https://maven.neoforged.net/releases"
	fabricGroup    = "net.fabricmc"
	fabricAPIGroup = "net.fabricmc.fabric-api"
	fabricRepo     = "https://maven.fabricmc.net/"
	mojangRepo     = "https://libraries.minecraft.net/"

	// Oldest fabric-loader with the current metadata format.
	fabricLoaderFloor = "0.14.0"
)

// Request describes the mod project's platform coordinates.
type Request struct {
	Loader           Loader
	MinecraftVersion string
	LoaderVersion    string
	// APIVersion is the fabric-api version; ignored for NeoForge.
	APIVersion string
}

// Dependency is a build-configuration name paired with a Maven notation.
type Dependency struct {
	Configuration string `json:"configuration"`
	Notation      string `json:"notation"`
}

type Repository struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Dependencies returns the dependency notations and repositories for the
// requested loader, after checking loader/platform compatibility.
func Dependencies(req Request) ([]Dependency, []Repository, error) {
	switch req.Loader {
	case NeoForge:
		return neoForgeDependencies(req)
	case Fabric:
		return fabricDependencies(req)
	default:
		return nil, nil, errorutils.CheckErrorf("unsupported mod loader %q (supported: %s, %s)", req.Loader, NeoForge, Fabric)
	}
}

// NeoForge versions track the Minecraft version they target: Minecraft 1.X.Y
// maps to NeoForge X.Y.*.
func neoForgeDependencies(req Request) ([]Dependency, []Repository, error) {
	mc, err := parseMinecraftVersion(req.MinecraftVersion)
	if err != nil {
		return nil, nil, err
	}
	loaderVersion, err := semver.NewVersion(req.LoaderVersion)
	if err != nil {
		return nil, nil, errorutils.CheckErrorf("invalid NeoForge version %q: %s", req.LoaderVersion, err.Error())
	}

	constraint, err := semver.NewConstraint(fmt.Sprintf("~%d.%d", mc.Minor(), mc.Patch()))
	if err != nil {
		return nil, nil, err
	}
	if !constraint.Check(loaderVersion) {
		return nil, nil, errorutils.CheckErrorf(
			"NeoForge %s does not target Minecraft %s (expected a %d.%d.* version)",
			req.LoaderVersion, req.MinecraftVersion, mc.Minor(), mc.Patch())
	}

	deps := []Dependency{
		{Configuration: "implementation", Notation: fmt.Sprintf("%s:neoforge:%s", neoForgeGroup, req.LoaderVersion)},
	}
	repos := []Repository{
		{Name: "NeoForged", URL: neoForgeRepo},
		{Name: "Mojang", URL: mojangRepo},
	}
	return deps, repos, nil
}

func fabricDependencies(req Request) ([]Dependency, []Repository, error) {
	if _, err := parseMinecraftVersion(req.MinecraftVersion); err != nil {
		return nil, nil, err
	}
	loaderVersion, err := semver.NewVersion(req.LoaderVersion)
	if err != nil {
		return nil, nil, errorutils.CheckErrorf("invalid fabric-loader version %q: %s", req.LoaderVersion, err.Error())
	}

	floor := semver.MustParse(fabricLoaderFloor)
	if loaderVersion.LessThan(floor) {
		return nil, nil, errorutils.CheckErrorf("fabric-loader %s is older than the supported floor %s", req.LoaderVersion, fabricLoaderFloor)
	}

	deps := []Dependency{
		{Configuration: "minecraft", Notation: "com.mojang:minecraft:" + req.MinecraftVersion},
		{Configuration: "modImplementation", Notation: fmt.Sprintf("%s:fabric-loader:%s", fabricGroup, req.LoaderVersion)},
	}
	if req.APIVersion != "" {
		if !strings.HasSuffix(req.APIVersion, "+"+req.MinecraftVersion) {
			return nil, nil, errorutils.CheckErrorf(
				"fabric-api %s does not target Minecraft %s (expected a +%s suffix)",
				req.APIVersion, req.MinecraftVersion, req.MinecraftVersion)
		}
		deps = append(deps, Dependency{
			Configuration: "modImplementation",
			Notation:      fmt.Sprintf("%s:fabric-api:%s", fabricAPIGroup, req.APIVersion),
		})
	}
	repos := []Repository{
		{Name: "FabricMC", URL: fabricRepo},
		{Name: "Mojang", URL: mojangRepo},
	}
	return deps, repos, nil
}

func parseMinecraftVersion(version string) (*semver.Version, error) {
	mc, err := semver.NewVersion(version)
	if err != nil {
		return nil, errorutils.CheckErrorf("invalid Minecraft version %q: %s", version, err.Error())
	}
	if mc.Major() != 1 {
		return nil, errorutils.CheckErrorf("unsupported Minecraft version %q", version)
	}
	return mc, nil
}
