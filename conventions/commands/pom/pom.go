// Package pom renders Maven POM files from project properties.
package pom

import (
	"encoding/xml"
	"os"

	"github.com/jfrog/jfrog-client-go/utils/errorutils"
)

const (
	modelVersion      = "4.0.0"
	pomNamespace      = "http://maven.apache.org/POM/4.0.0"
	schemaInstanceNS  = "http://www.w3.org/2001/XMLSchema-instance"
	pomSchemaLocation = "http://maven.apache.org/POM/4.0.0 http://maven.apache.org/xsd/maven-4.0.0.xsd"
)

// Metadata is the publication metadata a convention run provides.
type Metadata struct {
	GroupID         string
	ArtifactID      string
	Version         string
	Packaging       string
	Name            string
	Description     string
	URL             string
	LicenseName     string
	LicenseURL      string
	DistributionURL string
}

type pomLicense struct {
	Name string `xml:"name"`
	URL  string `xml:"url"`
}

// pomLicenses wraps the license list so a license-less POM omits the whole
// <licenses> element; a nil pointer marshals to nothing.
type pomLicenses struct {
	Licenses []pomLicense `xml:"license"`
}

type pomProject struct {
	XMLName        xml.Name     `xml:"project"`
	Xmlns          string       `xml:"xmlns,attr"`
	XmlnsXsi       string       `xml:"xmlns:xsi,attr"`
	SchemaLocation string       `xml:"xsi:schemaLocation,attr"`
	ModelVersion   string       `xml:"modelVersion"`
	GroupID        string       `xml:"groupId"`
	ArtifactID     string       `xml:"artifactId"`
	Version        string       `xml:"version"`
	Packaging      string       `xml:"packaging,omitempty"`
	Name           string       `xml:"name,omitempty"`
	Description    string       `xml:"description,omitempty"`
	URL            string       `xml:"url,omitempty"`
	Licenses       *pomLicenses `xml:"licenses,omitempty"`
}

// Render produces the pom.xml content for the given metadata. Output is
// deterministic for identical input.
func Render(meta Metadata) ([]byte, error) {
	if meta.GroupID == "" || meta.ArtifactID == "" || meta.Version == "" {
		return nil, errorutils.CheckErrorf(
			"incomplete Maven coordinates (groupId=%s, artifactId=%s, version=%s)",
			meta.GroupID, meta.ArtifactID, meta.Version)
	}

	project := pomProject{
		Xmlns:          pomNamespace,
		XmlnsXsi:       schemaInstanceNS,
		SchemaLocation: pomSchemaLocation,
		ModelVersion:   modelVersion,
		GroupID:        meta.GroupID,
		ArtifactID:     meta.ArtifactID,
		Version:        meta.Version,
		Packaging:      meta.Packaging,
		Name:           meta.Name,
		Description:    meta.Description,
		URL:            distributionOrProjectURL(meta),
	}
	if meta.LicenseName != "" || meta.LicenseURL != "" {
		project.Licenses = &pomLicenses{Licenses: []pomLicense{{Name: meta.LicenseName, URL: meta.LicenseURL}}}
	}

	body, err := xml.MarshalIndent(project, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), append(body, '\n')...), nil
}

// Write renders the POM and writes it to path.
func Write(path string, meta Metadata) error {
	content, err := Render(meta)
	if err != nil {
		return err
	}
	return os.WriteFile(path, content, 0644)
}

func distributionOrProjectURL(meta Metadata) string {
	if meta.DistributionURL != "" {
		return meta.DistributionURL
	}
	return meta.URL
}
