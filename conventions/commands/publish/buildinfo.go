package publish

import (
	"fmt"
	"path/filepath"

	"github.com/jfrog/build-info-go/build"
	"github.com/jfrog/build-info-go/entities"
	"github.com/jfrog/gofrog/crypto"
	"github.com/jfrog/jfrog-client-go/utils/log"
)

// newArtifactEntry creates a build-info artifact entry for a deployed file.
func newArtifactEntry(filePath, group, artifact, version, artifactType string) entities.Artifact {
	fileDetails, err := crypto.GetFileDetails(filePath, true)
	if err != nil {
		log.Debug("Failed to calculate checksums for " + filePath + ": " + err.Error())
		fileDetails = &crypto.FileDetails{}
	}

	fileName := filepath.Base(filePath)
	if artifactType == "pom" {
		fileName = fmt.Sprintf("%s-%s.pom", artifact, version)
	}

	return entities.Artifact{
		Name: fileName,
		Path: MavenLayoutPath(group, artifact, version, fileName),
		Type: artifactType,
		Checksum: entities.Checksum{
			Md5:    fileDetails.Checksum.Md5,
			Sha1:   fileDetails.Checksum.Sha1,
			Sha256: fileDetails.Checksum.Sha256,
		},
	}
}

// saveLocalBuildInfo records the deployed artifacts as local build info so the
// build can later be published with the standard build-publish flow.
func saveLocalBuildInfo(buildName, buildNumber, moduleID string, artifacts []entities.Artifact) error {
	service := build.NewBuildInfoService()

	buildInstance, err := service.GetOrCreateBuildWithProject(buildName, buildNumber, "")
	if err != nil {
		return fmt.Errorf("failed to create build: %w", err)
	}

	buildInfo := &entities.BuildInfo{
		Name:   buildName,
		Number: buildNumber,
		Modules: []entities.Module{{
			Id:        moduleID,
			Artifacts: artifacts,
		}},
	}
	return buildInstance.SaveBuildInfo(buildInfo)
}
