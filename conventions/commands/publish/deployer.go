package publish

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/jfrog/gofrog/crypto"
	"github.com/jfrog/jfrog-client-go/utils"
	"github.com/jfrog/jfrog-client-go/utils/log"
	"github.com/pkg/errors"
)

const deployRetries = 3

// Deployer uploads files to a Maven repository over HTTP with checksum headers.
type Deployer struct {
	client *retryablehttp.Client
}

func NewDeployer() *Deployer {
	client := retryablehttp.NewClient()
	client.RetryMax = deployRetries
	client.Logger = nil
	return &Deployer{client: client}
}

// MavenLayoutPath composes the repository path of an artifact file following
// the Maven repository layout: group dirs / artifact / version / file.
func MavenLayoutPath(group, artifact, version, fileName string) string {
	return fmt.Sprintf("%s/%s/%s/%s", strings.ReplaceAll(group, ".", "/"), artifact, version, fileName)
}

// DeployFile PUTs localPath to repoPath under baseURL. Credentials may be nil
// for targets that do not require authentication.
func (d *Deployer) DeployFile(localPath, baseURL, repoPath string, creds *Credentials) error {
	content, err := os.ReadFile(localPath)
	if err != nil {
		return errors.Wrapf(err, "failed to read artifact %s", localPath)
	}

	fileDetails, err := crypto.GetFileDetails(localPath, true)
	if err != nil {
		return errors.Wrapf(err, "failed to calculate checksums for %s", localPath)
	}

	url := utils.AddTrailingSlashIfNeeded(baseURL) + repoPath
	req, err := retryablehttp.NewRequest(http.MethodPut, url, content)
	if err != nil {
		return errors.Wrapf(err, "failed to create deploy request for %s", repoPath)
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	req.Header.Set("X-Checksum-Md5", fileDetails.Checksum.Md5)
	req.Header.Set("X-Checksum-Sha1", fileDetails.Checksum.Sha1)
	req.Header.Set("X-Checksum-Sha256", fileDetails.Checksum.Sha256)
	if creds != nil {
		req.SetBasicAuth(creds.Username, creds.Password)
	}

	log.Debug("Deploying " + localPath + " to " + url)
	resp, err := d.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "deploy of %s failed", repoPath)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("deploy of %s failed with status %s", repoPath, resp.Status)
	}
	return nil
}
