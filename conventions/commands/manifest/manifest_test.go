package manifest

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJar(t *testing.T, path string, entries map[string]string) {
	t.Helper()
	file, err := os.Create(path)
	require.NoError(t, err)
	writer := zip.NewWriter(file)
	for name, content := range entries {
		entry, err := writer.Create(name)
		require.NoError(t, err)
		_, err = entry.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	require.NoError(t, file.Close())
}

func readJar(t *testing.T, path string) map[string]string {
	t.Helper()
	reader, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, reader.Close())
	}()

	entries := make(map[string]string)
	for _, file := range reader.File {
		rc, err := file.Open()
		require.NoError(t, err)
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		entries[file.Name] = string(content)
	}
	return entries
}

func TestRender(t *testing.T) {
	content := string(Render(Options{
		MainClass:             "org.example.Main",
		ImplementationTitle:   "example-mod",
		ImplementationVersion: "1.0.0",
	}))

	assert.Contains(t, content, "Manifest-Version: 1.0\r\n")
	assert.Contains(t, content, "Main-Class: org.example.Main\r\n")
	assert.Contains(t, content, "Implementation-Title: example-mod\r\n")
	assert.Contains(t, content, "Implementation-Version: 1.0.0\r\n")
}

func TestRenderWithoutMainClass(t *testing.T) {
	content := string(Render(Options{ImplementationTitle: "lib"}))
	assert.NotContains(t, content, "Main-Class")
}

func TestStampJar(t *testing.T) {
	tmpDir := t.TempDir()
	jarPath := filepath.Join(tmpDir, "example-mod-1.0.0.jar")
	writeJar(t, jarPath, map[string]string{
		"META-INF/MANIFEST.MF":   "Manifest-Version: 1.0\r\n\r\n",
		"LICENSE":                "MIT License",
		"org/example/Main.class": "class-bytes",
	})

	err := StampJar(jarPath, Options{
		MainClass:             "org.example.Main",
		ImplementationTitle:   "example-mod",
		ImplementationVersion: "1.0.0",
		ArchiveBaseName:       "example-mod",
	})
	require.NoError(t, err)

	entries := readJar(t, jarPath)
	assert.Contains(t, entries["META-INF/MANIFEST.MF"], "Main-Class: org.example.Main")
	assert.Equal(t, "MIT License", entries["LICENSE_example-mod"])
	assert.NotContains(t, entries, "LICENSE")
	assert.Equal(t, "class-bytes", entries["org/example/Main.class"])
}

func TestStampJarMergesLicenseSpellings(t *testing.T) {
	tmpDir := t.TempDir()
	jarPath := filepath.Join(tmpDir, "example-mod-1.0.0.jar")
	writeJar(t, jarPath, map[string]string{
		"META-INF/MANIFEST.MF": "Manifest-Version: 1.0\r\n\r\n",
		"LICENSE":              "MIT License",
		"LICENSE.txt":          "MIT License (txt)",
	})

	require.NoError(t, StampJar(jarPath, Options{
		ImplementationTitle: "example-mod",
		ArchiveBaseName:     "example-mod",
	}))

	// Both spellings rename to the same entry; only the first may survive.
	reader, err := zip.OpenReader(jarPath)
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, reader.Close())
	}()
	renamed := 0
	for _, file := range reader.File {
		assert.False(t, isLicenseEntry(file.Name), "entry %s should have been renamed", file.Name)
		if file.Name == "LICENSE_example-mod" {
			renamed++
		}
	}
	assert.Equal(t, 1, renamed)
}

func TestStampJarWithBundledJars(t *testing.T) {
	tmpDir := t.TempDir()
	jarPath := filepath.Join(tmpDir, "example-mod-1.0.0.jar")
	writeJar(t, jarPath, map[string]string{
		"META-INF/MANIFEST.MF":   "Manifest-Version: 1.0\r\n\r\n",
		"org/example/Main.class": "main-class",
	})

	bundlePath := filepath.Join(tmpDir, "third-party.jar")
	writeJar(t, bundlePath, map[string]string{
		"META-INF/MANIFEST.MF":   "Manifest-Version: 1.0\r\n\r\n",
		"org/thirdparty/A.class": "a-class",
		"org/example/Main.class": "conflicting-class",
	})

	err := StampJar(jarPath, Options{
		ImplementationTitle: "example-mod",
		BundleJars:          []string{bundlePath},
	})
	require.NoError(t, err)

	entries := readJar(t, jarPath)
	assert.Equal(t, "a-class", entries["org/thirdparty/A.class"])
	// First writer wins on duplicate paths; bundled META-INF never carries over.
	assert.Equal(t, "main-class", entries["org/example/Main.class"])
	assert.NotContains(t, entries["META-INF/MANIFEST.MF"], "conflicting")
}

func TestStampJarMissingFile(t *testing.T) {
	err := StampJar(filepath.Join(t.TempDir(), "missing.jar"), Options{})
	assert.Error(t, err)
}

func TestStampJarMissingBundle(t *testing.T) {
	tmpDir := t.TempDir()
	jarPath := filepath.Join(tmpDir, "app.jar")
	writeJar(t, jarPath, map[string]string{"a.txt": "a"})

	err := StampJar(jarPath, Options{BundleJars: []string{filepath.Join(tmpDir, "missing.jar")}})
	assert.Error(t, err)
}
