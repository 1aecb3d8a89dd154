// Package manifest stamps jar archives with manifest attributes, renames the
// bundled license entry to avoid multi-module collisions and can merge
// third-party classes from nested jars into the output archive.
package manifest

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jfrog/jfrog-client-go/utils/errorutils"
	"github.com/jfrog/jfrog-client-go/utils/log"
)

const (
	manifestPath     = "META-INF/MANIFEST.MF"
	licenseEntryName = "LICENSE"
	metaInfPrefix    = "META-INF/"
)

// Options control how a jar is stamped.
type Options struct {
	MainClass             string
	ImplementationTitle   string
	ImplementationVersion string
	// ArchiveBaseName renames the LICENSE entry to LICENSE_<ArchiveBaseName>.
	ArchiveBaseName string
	// BundleJars are nested jars whose class entries are merged into the
	// output archive. Their META-INF content is never carried over.
	BundleJars []string
}

// Render produces the MANIFEST.MF content for the given options.
func Render(opts Options) []byte {
	var buf bytes.Buffer
	buf.WriteString("Manifest-Version: 1.0\r\n")
	if opts.MainClass != "" {
		buf.WriteString("Main-Class: " + opts.MainClass + "\r\n")
	}
	if opts.ImplementationTitle != "" {
		buf.WriteString("Implementation-Title: " + opts.ImplementationTitle + "\r\n")
	}
	if opts.ImplementationVersion != "" {
		buf.WriteString("Implementation-Version: " + opts.ImplementationVersion + "\r\n")
	}
	buf.WriteString("\r\n")
	return buf.Bytes()
}

// StampJar rewrites jarPath in place: replaces the manifest, renames the
// license entry and appends bundled jar entries. The original file is only
// replaced after the new archive is fully written.
func StampJar(jarPath string, opts Options) error {
	reader, err := zip.OpenReader(jarPath)
	if err != nil {
		return errorutils.CheckErrorf("failed to open jar %s: %s", jarPath, err.Error())
	}
	defer func() {
		_ = reader.Close()
	}()

	tmpFile, err := os.CreateTemp(filepath.Dir(jarPath), "craftpub-*.jar")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()
	writer := zip.NewWriter(tmpFile)

	cleanup := func() {
		_ = writer.Close()
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}

	written := map[string]bool{manifestPath: true}
	entry, err := writer.Create(manifestPath)
	if err != nil {
		cleanup()
		return err
	}
	if _, err := entry.Write(Render(opts)); err != nil {
		cleanup()
		return err
	}

	for _, file := range reader.File {
		name := file.Name
		if opts.ArchiveBaseName != "" && isLicenseEntry(name) {
			name = licenseEntryName + "_" + opts.ArchiveBaseName
		}
		// Checked after the rename so two license spellings cannot collapse
		// into duplicate entries.
		if written[name] {
			log.Debug("Skipping duplicate jar entry: " + name)
			continue
		}
		if err := copyZipEntry(writer, file, name); err != nil {
			cleanup()
			return err
		}
		written[name] = true
	}

	for _, bundleJar := range opts.BundleJars {
		if err := bundleEntries(writer, bundleJar, written); err != nil {
			cleanup()
			return err
		}
	}

	if err := writer.Close(); err != nil {
		cleanup()
		return err
	}
	if err := tmpFile.Close(); err != nil {
		cleanup()
		return err
	}
	if err := reader.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return os.Rename(tmpPath, jarPath)
}

func isLicenseEntry(name string) bool {
	return name == licenseEntryName || name == licenseEntryName+".txt" || name == licenseEntryName+".md"
}

func copyZipEntry(writer *zip.Writer, file *zip.File, name string) error {
	header := file.FileHeader
	header.Name = name
	target, err := writer.CreateHeader(&header)
	if err != nil {
		return err
	}
	if file.FileInfo().IsDir() {
		return nil
	}
	source, err := file.Open()
	if err != nil {
		return err
	}
	defer func() {
		_ = source.Close()
	}()
	_, err = io.Copy(target, source)
	return err
}

func bundleEntries(writer *zip.Writer, bundleJar string, written map[string]bool) error {
	reader, err := zip.OpenReader(bundleJar)
	if err != nil {
		return errorutils.CheckErrorf("failed to open bundled jar %s: %s", bundleJar, err.Error())
	}
	defer func() {
		_ = reader.Close()
	}()

	for _, file := range reader.File {
		if strings.HasPrefix(file.Name, metaInfPrefix) || file.FileInfo().IsDir() {
			continue
		}
		if written[file.Name] {
			log.Debug("Skipping duplicate bundled entry: " + file.Name)
			continue
		}
		if err := copyZipEntry(writer, file, file.Name); err != nil {
			return err
		}
		written[file.Name] = true
	}
	return nil
}
