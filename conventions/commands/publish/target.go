package publish

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/craftpub/craftpub-cli/conventions/commands/project"
	"github.com/jfrog/jfrog-client-go/utils/errorutils"
	"github.com/jfrog/jfrog-client-go/utils/io/fileutils"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

const (
	craftpubDir         = ".craftpub"
	configFileYml       = "craftpub.yml"
	configFileYaml      = "craftpub.yaml"
	envCredPrefix       = "CRAFTPUB_"
	envUsernameSufix    = "_USERNAME"
	envPasswordSufix    = "_PASSWORD"
	envReleaseURLSufix  = "_RELEASE_URL"
	envSnapshotURLSufix = "_SNAPSHOT_URL"
)

// PublicationTarget is a named remote Maven repository with distinct release
// and snapshot URLs. Exactly one of the two is the effective URL for any given
// build, chosen from the project version string.
type PublicationTarget struct {
	Name         string
	ReleaseURL   string
	SnapshotURL  string
	RequiresAuth bool
}

// EffectiveURL returns the URL artifacts of the given version deploy to.
func (t PublicationTarget) EffectiveURL(version string) string {
	return project.SelectPublishURL(version, t.ReleaseURL, t.SnapshotURL)
}

// Credentials is a username/password pair sourced from the build environment.
type Credentials struct {
	Username string
	Password string
}

// CredentialsFromEnv reads the CRAFTPUB_<NAME>_USERNAME / CRAFTPUB_<NAME>_PASSWORD
// pair for this target. The second return value reports whether both are set.
func (t PublicationTarget) CredentialsFromEnv() (Credentials, bool) {
	key := envKey(t.Name)
	creds := Credentials{
		Username: os.Getenv(envCredPrefix + key + envUsernameSufix),
		Password: os.Getenv(envCredPrefix + key + envPasswordSufix),
	}
	return creds, creds.Username != "" && creds.Password != ""
}

func envKey(name string) string {
	mapped := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r - ('a' - 'A')
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, name)
	return mapped
}

type TargetConfig struct {
	ReleaseURL   string `yaml:"releaseUrl"`
	SnapshotURL  string `yaml:"snapshotUrl"`
	RequiresAuth bool   `yaml:"requiresAuth"`
}

type Config struct {
	Targets map[string]TargetConfig `yaml:"targets"`
}

// LoadConfig locates and reads the craftpub configuration: first a .craftpub
// directory found walking up from workingDir (project-local conventions,
// committed with the repo), then workingDir itself, then the user home
// fallback. A missing configuration is an error; every publishing command
// needs at least one target.
func LoadConfig(workingDir string) (*Config, error) {
	if cfg := findUpstreamConfig(workingDir); cfg != nil {
		return cfg, nil
	}

	if cfg := readConfig(filepath.Join(workingDir, configFileYml)); cfg != nil {
		return cfg, nil
	}
	if cfg := readConfig(filepath.Join(workingDir, configFileYaml)); cfg != nil {
		return cfg, nil
	}

	if home, err := os.UserHomeDir(); err == nil && home != "" {
		if cfg := readConfig(filepath.Join(home, craftpubDir, configFileYml)); cfg != nil {
			return cfg, nil
		}
		if cfg := readConfig(filepath.Join(home, craftpubDir, configFileYaml)); cfg != nil {
			return cfg, nil
		}
	}

	return nil, errorutils.CheckErrorf("no craftpub configuration found: create %s with a 'targets' section", configFileYml)
}

func findUpstreamConfig(workingDir string) *Config {
	dir, err := filepath.Abs(workingDir)
	if err != nil {
		return nil
	}
	for {
		candidate := filepath.Join(dir, craftpubDir)
		if exists, err := fileutils.IsDirExists(candidate, false); err == nil && exists {
			if cfg := readConfig(filepath.Join(candidate, configFileYml)); cfg != nil {
				return cfg
			}
			if cfg := readConfig(filepath.Join(candidate, configFileYaml)); cfg != nil {
				return cfg
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil
		}
		dir = parent
	}
}

func readConfig(path string) *Config {
	if _, err := os.Stat(path); err != nil {
		return nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		_ = errorutils.CheckError(err)
		return nil
	}
	bindTargetEnv(v)

	cfg := new(Config)
	if err := v.Unmarshal(&cfg); err != nil {
		_ = errorutils.CheckError(err)
		return nil
	}
	if len(cfg.Targets) == 0 {
		return nil
	}
	return cfg
}

// bindTargetEnv lets CRAFTPUB_<NAME>_RELEASE_URL / CRAFTPUB_<NAME>_SNAPSHOT_URL
// environment variables override the file values of each configured target.
func bindTargetEnv(v *viper.Viper) {
	for name := range v.GetStringMap("targets") {
		envName := envCredPrefix + envKey(name)
		_ = v.BindEnv("targets."+name+".releaseurl", envName+envReleaseURLSufix)
		_ = v.BindEnv("targets."+name+".snapshoturl", envName+envSnapshotURLSufix)
	}
}

// ResolvedTarget pairs a target with the decision made for one concrete build.
type ResolvedTarget struct {
	PublicationTarget
	EffectiveURL  string `json:"effectiveUrl"`
	Snapshot      bool   `json:"snapshot"`
	Authenticated bool   `json:"authenticated"`
}

// ResolveTargets materializes the configured targets for the given version,
// each resolved independently, sorted by name for deterministic output. An
// empty filter selects all targets; an unknown name in the filter is an error.
func (c *Config) ResolveTargets(version string, filter []string) ([]ResolvedTarget, error) {
	for _, name := range filter {
		if _, ok := c.Targets[name]; !ok {
			return nil, errorutils.CheckErrorf("publication target %q is not configured", name)
		}
	}

	names := make([]string, 0, len(c.Targets))
	for name := range c.Targets {
		if len(filter) > 0 && !slices.Contains(filter, name) {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)

	resolved := make([]ResolvedTarget, 0, len(names))
	for _, name := range names {
		tc := c.Targets[name]
		target := PublicationTarget{
			Name:         name,
			ReleaseURL:   tc.ReleaseURL,
			SnapshotURL:  tc.SnapshotURL,
			RequiresAuth: tc.RequiresAuth,
		}
		_, authenticated := target.CredentialsFromEnv()
		resolved = append(resolved, ResolvedTarget{
			PublicationTarget: target,
			EffectiveURL:      target.EffectiveURL(version),
			Snapshot:          project.IsSnapshot(version),
			Authenticated:     authenticated,
		})
	}
	return resolved, nil
}
