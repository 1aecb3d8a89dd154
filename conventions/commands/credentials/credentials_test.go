package credentials

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/craftpub/craftpub-cli/conventions/commands/publish"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/ini.v1"
)

func TestSetupTargetsCreatesFile(t *testing.T) {
	gradleHome := t.TempDir()
	t.Setenv("GRADLE_USER_HOME", gradleHome)
	t.Setenv("CRAFTPUB_CENTRAL_USERNAME", "deployer")
	t.Setenv("CRAFTPUB_CENTRAL_PASSWORD", "secret")

	path, err := SetupTargets([]publish.PublicationTarget{
		{Name: "central", RequiresAuth: true},
		{Name: "internal"},
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(gradleHome, "gradle.properties"), path)

	props, err := ini.Load(path)
	require.NoError(t, err)
	section := props.Section(ini.DefaultSection)
	assert.Equal(t, "deployer", section.Key("centralUsername").String())
	assert.Equal(t, "secret", section.Key("centralPassword").String())
	assert.True(t, section.HasKey("internalUsername"))
	assert.Empty(t, section.Key("internalUsername").String())
	assert.True(t, section.HasKey("internalPassword"))

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	}
}

func TestSetupTargetsKeepsExistingValues(t *testing.T) {
	gradleHome := t.TempDir()
	t.Setenv("GRADLE_USER_HOME", gradleHome)
	t.Setenv("CRAFTPUB_CENTRAL_USERNAME", "fromEnv")
	t.Setenv("CRAFTPUB_CENTRAL_PASSWORD", "fromEnv")

	path := filepath.Join(gradleHome, "gradle.properties")
	existing := "centralUsername=handWritten\ncentralPassword=handWritten\norg.gradle.jvmargs=-Xmx2g\n"
	require.NoError(t, os.WriteFile(path, []byte(existing), 0600))

	_, err := SetupTargets([]publish.PublicationTarget{{Name: "central", RequiresAuth: true}})
	require.NoError(t, err)

	props, err := ini.Load(path)
	require.NoError(t, err)
	section := props.Section(ini.DefaultSection)
	assert.Equal(t, "handWritten", section.Key("centralUsername").String())
	assert.Equal(t, "handWritten", section.Key("centralPassword").String())
	assert.Equal(t, "-Xmx2g", section.Key("org.gradle.jvmargs").String())
}
