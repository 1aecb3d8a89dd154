package discord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDependencies(t *testing.T) {
	t.Run("Stable release", func(t *testing.T) {
		deps, err := Dependencies("5.0.0")
		require.NoError(t, err)
		require.Len(t, deps, 1)
		assert.Equal(t, "implementation", deps[0].Configuration)
		assert.Equal(t, "net.dv8tion:JDA:5.0.0", deps[0].Notation)
		require.Len(t, deps[0].Exclusions, 1)
		assert.Equal(t, "club.minnced", deps[0].Exclusions[0].Group)
		assert.Equal(t, "opus-java", deps[0].Exclusions[0].Artifact)
	})

	t.Run("Beta release", func(t *testing.T) {
		deps, err := Dependencies("5.0.0-beta.24")
		require.NoError(t, err)
		assert.Equal(t, "net.dv8tion:JDA:5.0.0-beta.24", deps[0].Notation)
	})

	t.Run("Version below floor", func(t *testing.T) {
		_, err := Dependencies("4.4.0")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "floor")
	})

	t.Run("Invalid version", func(t *testing.T) {
		_, err := Dependencies("latest")
		assert.Error(t, err)
	})
}
