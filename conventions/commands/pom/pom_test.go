package pom

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullMetadata() Metadata {
	return Metadata{
		GroupID:         "org.craftpub.example",
		ArtifactID:      "example-mod",
		Version:         "1.0.0",
		Packaging:       "jar",
		Name:            "example-mod",
		Description:     "An example mod",
		LicenseName:     "MIT",
		LicenseURL:      "https://opensource.org/licenses/MIT",
		DistributionURL: "https://example.org/dist",
	}
}

func TestRender(t *testing.T) {
	content, err := Render(fullMetadata())
	require.NoError(t, err)

	pom := string(content)
	assert.Contains(t, pom, "<?xml")
	assert.Contains(t, pom, "<modelVersion>4.0.0</modelVersion>")
	assert.Contains(t, pom, "<groupId>org.craftpub.example</groupId>")
	assert.Contains(t, pom, "<artifactId>example-mod</artifactId>")
	assert.Contains(t, pom, "<version>1.0.0</version>")
	assert.Contains(t, pom, "<packaging>jar</packaging>")
	assert.Contains(t, pom, "<description>An example mod</description>")
	assert.Contains(t, pom, "<licenses>")
	assert.Contains(t, pom, "<name>MIT</name>")
	assert.Contains(t, pom, "<url>https://opensource.org/licenses/MIT</url>")
	assert.Contains(t, pom, "<url>https://example.org/dist</url>")
}

func TestRenderDeterministic(t *testing.T) {
	first, err := Render(fullMetadata())
	require.NoError(t, err)
	second, err := Render(fullMetadata())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRenderMinimal(t *testing.T) {
	meta := Metadata{GroupID: "org.example", ArtifactID: "lib", Version: "2.0.0-SNAPSHOT"}
	content, err := Render(meta)
	require.NoError(t, err)

	pom := string(content)
	assert.Contains(t, pom, "<version>2.0.0-SNAPSHOT</version>")
	assert.NotContains(t, pom, "<licenses")
	assert.NotContains(t, pom, "<description>")
}

func TestRenderIncompleteCoordinates(t *testing.T) {
	tests := []struct {
		name string
		meta Metadata
	}{
		{"Missing group", Metadata{ArtifactID: "lib", Version: "1.0.0"}},
		{"Missing artifact", Metadata{GroupID: "org.example", Version: "1.0.0"}},
		{"Missing version", Metadata{GroupID: "org.example", ArtifactID: "lib"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Render(tt.meta)
			assert.Error(t, err)
		})
	}
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pom.xml")
	require.NoError(t, Write(path, fullMetadata()))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "<artifactId>example-mod</artifactId>")
}
