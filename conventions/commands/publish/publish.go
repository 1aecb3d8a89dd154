package publish

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/craftpub/craftpub-cli/conventions/commands/pom"
	"github.com/craftpub/craftpub-cli/conventions/commands/project"
	"github.com/jfrog/build-info-go/entities"
	"github.com/jfrog/jfrog-client-go/utils/errorutils"
	"github.com/jfrog/jfrog-client-go/utils/log"
)

const gradleLibsDir = "build/libs"

// PublishCommand deploys a project's jar and generated POM to every selected
// publication target, choosing the release or snapshot URL per target from the
// project version.
type PublishCommand struct {
	workingDir   string
	targetFilter []string
	buildName    string
	buildNumber  string
	dryRun       bool
	deployer     *Deployer
}

func NewPublishCommand() *PublishCommand {
	return &PublishCommand{deployer: NewDeployer()}
}

func (pc *PublishCommand) SetWorkingDir(dir string) *PublishCommand {
	pc.workingDir = dir
	return pc
}

func (pc *PublishCommand) SetTargets(targets []string) *PublishCommand {
	pc.targetFilter = targets
	return pc
}

func (pc *PublishCommand) SetBuildName(name string) *PublishCommand {
	pc.buildName = name
	return pc
}

func (pc *PublishCommand) SetBuildNumber(number string) *PublishCommand {
	pc.buildNumber = number
	return pc
}

func (pc *PublishCommand) SetDryRun(dryRun bool) *PublishCommand {
	pc.dryRun = dryRun
	return pc
}

func (pc *PublishCommand) CommandName() string {
	return "conv_publish"
}

func (pc *PublishCommand) Run() error {
	props := project.CollectProperties(pc.workingDir)
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

	cfg, err := LoadConfig(pc.workingDir)
	if err != nil {
		return err
	}
	targets, err := cfg.ResolveTargets(version, pc.targetFilter)
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		return errorutils.CheckErrorf("no publication targets selected")
	}

	if pc.dryRun {
		log.Info("Dry run: no artifacts will be deployed")
		return NewTargetsWriter(targets, "table").Print()
	}

	jarName := fmt.Sprintf("%s-%s.jar", artifact, version)
	jarPath := filepath.Join(pc.workingDir, filepath.FromSlash(gradleLibsDir), jarName)
	if _, err := os.Stat(jarPath); err != nil {
		return errorutils.CheckErrorf("artifact %s was not found, run the build first", jarPath)
	}

	pomPath, err := pc.renderPom(props, group, artifact, version)
	if err != nil {
		return err
	}
	defer func() {
		_ = os.Remove(pomPath)
	}()

	pomName := fmt.Sprintf("%s-%s.pom", artifact, version)
	for _, target := range targets {
		creds, err := pc.targetCredentials(target)
		if err != nil {
			return err
		}

		log.Info("Publishing " + artifact + ":" + version + " to " + target.Name + " (" + target.EffectiveURL + ")")
		if err := pc.deployer.DeployFile(jarPath, target.EffectiveURL, MavenLayoutPath(group, artifact, version, jarName), creds); err != nil {
			return err
		}
		if err := pc.deployer.DeployFile(pomPath, target.EffectiveURL, MavenLayoutPath(group, artifact, version, pomName), creds); err != nil {
			return err
		}
	}

	if pc.buildName != "" && pc.buildNumber != "" {
		artifacts := []entities.Artifact{
			newArtifactEntry(jarPath, group, artifact, version, "jar"),
			newArtifactEntry(pomPath, group, artifact, version, "pom"),
		}
		moduleID := fmt.Sprintf("%s:%s:%s", group, artifact, version)
		if err := saveLocalBuildInfo(pc.buildName, pc.buildNumber, moduleID, artifacts); err != nil {
			log.Warn("Failed to save build info: " + err.Error())
		} else {
			log.Info("Build info saved locally for " + pc.buildName + "/" + pc.buildNumber)
		}
	}

	return nil
}

func (pc *PublishCommand) targetCredentials(target ResolvedTarget) (*Credentials, error) {
	creds, ok := target.CredentialsFromEnv()
	if target.RequiresAuth && !ok {
		return nil, errorutils.CheckErrorf(
			"target %q requires authentication: set %s%s%s and %s%s%s",
			target.Name,
			envCredPrefix, envKey(target.Name), envUsernameSufix,
			envCredPrefix, envKey(target.Name), envPasswordSufix)
	}
	if !ok {
		return nil, nil
	}
	return &creds, nil
}

func (pc *PublishCommand) renderPom(props map[string]string, group, artifact, version string) (string, error) {
	tmpFile, err := os.CreateTemp("", "craftpub-*.pom")
	if err != nil {
		return "", err
	}
	if err := tmpFile.Close(); err != nil {
		return "", err
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
	if err := pom.Write(tmpFile.Name(), meta); err != nil {
		_ = os.Remove(tmpFile.Name())
		return "", err
	}
	return tmpFile.Name(), nil
}
