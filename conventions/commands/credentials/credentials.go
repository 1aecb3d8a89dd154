// Package credentials seeds the Gradle user home properties file with the
// per-target credential keys publishing expects, so a developer machine only
// needs the values filled in.
package credentials

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/craftpub/craftpub-cli/conventions/commands/publish"
	buildinfogradle "github.com/jfrog/build-info-go/flexpack/gradle"
	"github.com/jfrog/jfrog-client-go/utils/errorutils"
	"github.com/jfrog/jfrog-client-go/utils/io/fileutils"
	"github.com/jfrog/jfrog-client-go/utils/log"
	"gopkg.in/ini.v1"
)

const gradlePropertiesFileName = "gradle.properties"

// SetupTargets writes a <name>Username / <name>Password key pair into the
// Gradle user home gradle.properties for each target. Keys that already exist
// keep their value. When the matching environment variables are set the new
// keys are seeded with them, otherwise left empty for the developer to fill.
func SetupTargets(targets []publish.PublicationTarget) (string, error) {
	path, err := gradlePropertiesPath()
	if err != nil {
		return "", err
	}

	props, err := loadOrCreateProperties(path)
	if err != nil {
		return "", err
	}

	for _, target := range targets {
		seedTarget(props, target)
	}

	if err := props.SaveTo(path); err != nil {
		return "", fmt.Errorf("failed to save %s: %w", path, err)
	}
	return path, os.Chmod(path, 0600)
}

func gradlePropertiesPath() (string, error) {
	if home := buildinfogradle.GetGradleUserHome(); home != "" {
		return filepath.Join(home, gradlePropertiesFileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errorutils.CheckErrorf("couldn't find user home directory: %s", err.Error())
	}
	return filepath.Join(home, ".gradle", gradlePropertiesFileName), nil
}

func loadOrCreateProperties(path string) (*ini.File, error) {
	exists, err := fileutils.IsFileExists(path, false)
	if err != nil {
		return nil, err
	}

	if exists {
		// Relaxed parsing: gradle.properties values may contain '#' and
		// Windows line endings.
		props, err := ini.LoadSources(ini.LoadOptions{
			Loose:               true,
			IgnoreInlineComment: true,
		}, path)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
		return props, nil
	}

	if err = os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	return ini.Empty(), nil
}

func seedTarget(props *ini.File, target publish.PublicationTarget) {
	section := props.Section(ini.DefaultSection)
	usernameKey := target.Name + "Username"
	passwordKey := target.Name + "Password"

	if section.HasKey(usernameKey) && section.HasKey(passwordKey) {
		log.Debug("Credential keys for target", target.Name, "already present, leaving them untouched")
		return
	}

	creds, _ := target.CredentialsFromEnv()
	if !section.HasKey(usernameKey) {
		section.Key(usernameKey).SetValue(creds.Username)
	}
	if !section.HasKey(passwordKey) {
		section.Key(passwordKey).SetValue(creds.Password)
	}
}
