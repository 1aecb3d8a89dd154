package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiscoverRepositoryURLs(t *testing.T) {
	t.Run("Empty working directory should error", func(t *testing.T) {
		_, err := DiscoverRepositoryURLs("")
		assert.Error(t, err)
	})

	t.Run("Nonexistent working directory should error", func(t *testing.T) {
		_, err := DiscoverRepositoryURLs(filepath.Join(t.TempDir(), "missing"))
		assert.Error(t, err)
	})

	t.Run("Groovy publishing block", func(t *testing.T) {
		tmpDir := t.TempDir()
		content := `
			publishing {
				repositories {
					maven {
						url "https://repo.example.org/releases"
					}
					maven {
						url "https://repo.example.org/snapshots"
					}
				}
			}
		`
		err := os.WriteFile(filepath.Join(tmpDir, "build.gradle"), []byte(content), 0644)
		assert.NoError(t, err)

		urls, err := DiscoverRepositoryURLs(tmpDir)
		assert.NoError(t, err)
		assert.Equal(t, []string{
			"https://repo.example.org/releases",
			"https://repo.example.org/snapshots",
		}, urls)
	})

	t.Run("Kotlin DSL with uri wrapper", func(t *testing.T) {
		tmpDir := t.TempDir()
		content := `
			publishing {
				repositories {
					maven {
						url = uri("https://maven.example.org/mods")
					}
				}
			}
		`
		err := os.WriteFile(filepath.Join(tmpDir, "build.gradle.kts"), []byte(content), 0644)
		assert.NoError(t, err)

		urls, err := DiscoverRepositoryURLs(tmpDir)
		assert.NoError(t, err)
		assert.Equal(t, []string{"https://maven.example.org/mods"}, urls)
	})

	t.Run("Legacy uploadArchives block", func(t *testing.T) {
		tmpDir := t.TempDir()
		content := `
			uploadArchives {
				repositories {
					mavenDeployer {
						url "https://legacy.example.org/libs"
					}
				}
			}
		`
		err := os.WriteFile(filepath.Join(tmpDir, "build.gradle"), []byte(content), 0644)
		assert.NoError(t, err)

		urls, err := DiscoverRepositoryURLs(tmpDir)
		assert.NoError(t, err)
		assert.Equal(t, []string{"https://legacy.example.org/libs"}, urls)
	})

	t.Run("Settings dependencyResolutionManagement", func(t *testing.T) {
		tmpDir := t.TempDir()
		err := os.WriteFile(filepath.Join(tmpDir, "build.gradle"), []byte(""), 0644)
		assert.NoError(t, err)

		settings := `
			dependencyResolutionManagement {
				repositories {
					maven {
						url "https://maven.neoforged.net/releases"
					}
				}
			}
		`
		err = os.WriteFile(filepath.Join(tmpDir, "settings.gradle"), []byte(settings), 0644)
		assert.NoError(t, err)

		urls, err := DiscoverRepositoryURLs(tmpDir)
		assert.NoError(t, err)
		assert.Equal(t, []string{"https://maven.neoforged.net/releases"}, urls)
	})

	t.Run("Property placeholder resolution", func(t *testing.T) {
		tmpDir := t.TempDir()
		err := os.WriteFile(filepath.Join(tmpDir, "gradle.properties"), []byte("repoBase=https://repo.example.org\n"), 0644)
		assert.NoError(t, err)

		content := `
			publishing {
				repositories {
					maven {
						url "${repoBase}/releases"
					}
				}
			}
		`
		err = os.WriteFile(filepath.Join(tmpDir, "build.gradle"), []byte(content), 0644)
		assert.NoError(t, err)

		urls, err := DiscoverRepositoryURLs(tmpDir)
		assert.NoError(t, err)
		assert.Equal(t, []string{"https://repo.example.org/releases"}, urls)
	})

	t.Run("Commented out repositories are ignored", func(t *testing.T) {
		tmpDir := t.TempDir()
		content := `
			// publishing {
			//	repositories {
			//		maven { url "https://commented.example.org" }
			//	}
			// }
			publishing {
				repositories {
					maven {
						url "https://active.example.org/releases"
					}
				}
			}
		`
		err := os.WriteFile(filepath.Join(tmpDir, "build.gradle"), []byte(content), 0644)
		assert.NoError(t, err)

		urls, err := DiscoverRepositoryURLs(tmpDir)
		assert.NoError(t, err)
		assert.Equal(t, []string{"https://active.example.org/releases"}, urls)
	})

	t.Run("Applied local script", func(t *testing.T) {
		tmpDir := t.TempDir()
		applied := `
			publishing {
				repositories {
					maven {
						url "https://applied.example.org/releases"
					}
				}
			}
		`
		err := os.WriteFile(filepath.Join(tmpDir, "publish.gradle"), []byte(applied), 0644)
		assert.NoError(t, err)

		content := `apply from: "publish.gradle"` + "\n"
		err = os.WriteFile(filepath.Join(tmpDir, "build.gradle"), []byte(content), 0644)
		assert.NoError(t, err)

		urls, err := DiscoverRepositoryURLs(tmpDir)
		assert.NoError(t, err)
		assert.Equal(t, []string{"https://applied.example.org/releases"}, urls)
	})

	t.Run("Duplicate URLs reported once", func(t *testing.T) {
		tmpDir := t.TempDir()
		content := `
			publishing {
				repositories {
					maven { url "https://repo.example.org/releases" }
				}
			}
			uploadArchives {
				repositories {
					mavenDeployer { url "https://repo.example.org/releases" }
				}
			}
		`
		err := os.WriteFile(filepath.Join(tmpDir, "build.gradle"), []byte(content), 0644)
		assert.NoError(t, err)

		urls, err := DiscoverRepositoryURLs(tmpDir)
		assert.NoError(t, err)
		assert.Equal(t, []string{"https://repo.example.org/releases"}, urls)
	})
}

func TestExtractAllScriptBlocks(t *testing.T) {
	content := `
		publishing {
			repositories {
				maven { url "https://a.example.org" }
			}
		}
		publishing {
			repositories {
				maven { url "https://b.example.org" }
			}
		}
	`
	blocks := extractAllScriptBlocks(content, "publishing")
	assert.Len(t, blocks, 2)
	assert.Contains(t, blocks[0], "a.example.org")
	assert.Contains(t, blocks[1], "b.example.org")
}

func TestExtractBlockIgnoresStringsAndComments(t *testing.T) {
	content := `
		def s = "publishing { fake }"
		/* publishing { alsoFake } */
		publishing {
			repositories {
				maven { url "https://real.example.org" }
			}
		}
	`
	blocks := extractAllScriptBlocks(content, "publishing")
	assert.Len(t, blocks, 1)
	assert.Contains(t, blocks[0], "real.example.org")
}
