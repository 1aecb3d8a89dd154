/*
Package project collects Gradle project properties and parses build scripts to
recover the repositories a project is configured to publish to. Both Groovy DSL
(.gradle) and Kotlin DSL (.gradle.kts) files are supported.
*/
package project

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	buildinfogradle "github.com/jfrog/build-info-go/flexpack/gradle"
	"github.com/jfrog/jfrog-client-go/utils/errorutils"
	"github.com/jfrog/jfrog-client-go/utils/log"
)

var (
	// Matches apply(from = "script.gradle") in Kotlin DSL. Capture group 1: script path.
	applyFromKtsRe = regexp.MustCompile(`(?m)apply\s*\(\s*from\s*=\s*['"]([^'"]+)['"]`)

	// Matches 'apply from: "script.gradle"' in Groovy DSL. Capture group 1: script path.
	applyFromGroovyRe = regexp.MustCompile(`(?m)apply\s+from\s*:\s*['"]([^'"]+)['"]`)

	// Matches url = uri("http://...") / url("http://...") / url.set(uri("...")) in Kotlin DSL.
	urlKtsRe = regexp.MustCompile(`(?m)url(?:\.set)?\s*(?:\(\s*|\s*=\s*)(?:uri\s*\(\s*)?['"]([^'"]+)['"]`)

	// Matches url "http://..." and url = uri("http://...") in Groovy DSL.
	urlGroovyRe = regexp.MustCompile(`(?m)url\s*(?:[:=]?\s*|[:=]\s*uri\s*\(\s*)['"]([^'"]+)['"]`)
)

type blockExtractorState struct {
	inString       bool
	stringChar     byte
	inLineComment  bool
	inBlockComment bool
}

func (s *blockExtractorState) processChar(content string, i int) (int, bool) {
	char := content[i]

	if s.inLineComment {
		if char == '\n' {
			s.inLineComment = false
		}
		return i, true
	}

	if s.inBlockComment {
		if char == '*' && i+1 < len(content) && content[i+1] == '/' {
			s.inBlockComment = false
			return i + 1, true
		}
		return i, true
	}

	if s.inString {
		if char == s.stringChar {
			if !buildinfogradle.IsEscaped(content, i) {
				s.inString = false
			}
		}
		return i, true
	}

	switch char {
	case '/':
		if i+1 < len(content) {
			if content[i+1] == '/' {
				s.inLineComment = true
				return i + 1, true
			}
			if content[i+1] == '*' {
				s.inBlockComment = true
				return i + 1, true
			}
		}
	case '"', '\'':
		s.inString = true
		s.stringChar = char
		return i, true
	}

	return i, false
}

func extractAllScriptBlocks(content, keyword string) []string {
	var blocks []string
	idx := 0
	for {
		block, nextIdx := extractNextScriptBlock(content, keyword, idx)
		if nextIdx == -1 {
			break
		}
		if block != "" {
			blocks = append(blocks, block)
		}
		idx = nextIdx
	}
	return blocks
}

func extractNextScriptBlock(content, keyword string, startIndex int) (string, int) {
	state := &blockExtractorState{}
	keywordLen := len(keyword)
	mode := 0
	braceStartIdx := -1
	depth := 0

	// 0: search for keyword, 1: search for opening brace, 2: search for closing brace
	for i := startIndex; i < len(content); i++ {
		newIndex, processed := state.processChar(content, i)
		if processed {
			i = newIndex
			continue
		}

		char := content[i]
		switch mode {
		case 0:
			if char == keyword[0] {
				if i+keywordLen <= len(content) && content[i:i+keywordLen] == keyword {
					validStart := (i == 0) || buildinfogradle.IsDelimiter(content[i-1])
					validEnd := (i+keywordLen == len(content)) || buildinfogradle.IsDelimiter(content[i+keywordLen])

					if validStart && validEnd {
						mode = 1
						i += keywordLen - 1
					}
				}
			}
		case 1:
			switch char {
			case '{':
				mode = 2
				depth = 1
				braceStartIdx = i
			default:
				if !buildinfogradle.IsWhitespace(char) {
					mode = 0
				}
			}
		case 2:
			switch char {
			case '{':
				depth++
			case '}':
				depth--
				if depth == 0 {
					return content[braceStartIdx+1 : i], i + 1
				}
			}
		}
	}
	return "", -1
}

// findURLsInScript locates publishing { repositories { ... } }, legacy
// uploadArchives and dependencyResolutionManagement blocks and extracts the
// repository URLs declared in them. Covers: url = "..." , url "..." ,
// url = uri("...") , url.set(uri("...")).
func findURLsInScript(content []byte, isKts bool) [][][]byte {
	contentStr := string(content)
	var combinedRepos string

	collectRepos := func(parentKeyword string) {
		blocks := extractAllScriptBlocks(contentStr, parentKeyword)
		for _, block := range blocks {
			repoBlocks := extractAllScriptBlocks(block, blockRepositories)
			for _, repoBlock := range repoBlocks {
				combinedRepos += repoBlock + "\n"
			}
		}
	}

	collectRepos(blockPublishing)
	collectRepos(blockUploadArchives)
	collectRepos(blockDepResManagement)

	if combinedRepos == "" {
		return nil
	}
	var re *regexp.Regexp
	if isKts {
		re = urlKtsRe
	} else {
		re = urlGroovyRe
	}
	return re.FindAllSubmatch([]byte(combinedRepos), -1)
}

func collectAppliedScripts(content []byte, isKts bool, props map[string]string, currentScriptPath string) []string {
	var paths []string
	contentStr := string(content)

	var matches [][]string
	if isKts {
		matches = applyFromKtsRe.FindAllStringSubmatch(contentStr, -1)
	} else {
		matches = applyFromGroovyRe.FindAllStringSubmatch(contentStr, -1)
	}

	sanitizedScriptDir := ""
	if currentScriptPath != "" {
		sanitizedScriptPath, err := buildinfogradle.SanitizePath(currentScriptPath)
		if err == nil {
			sanitizedScriptDir = filepath.Dir(sanitizedScriptPath)
		}
	}

	for _, match := range matches {
		if len(match) > 1 {
			path := match[1]
			path = ResolveProperty(path, props)

			if strings.Contains(path, "://") {
				log.Debug("Skipping remote script: " + path)
				continue
			}

			if !filepath.IsAbs(path) && sanitizedScriptDir != "" {
				path = filepath.Join(sanitizedScriptDir, path)
			}

			sanitizedPath, err := buildinfogradle.SanitizePath(path)
			if err != nil {
				log.Debug("Skipping invalid script path: " + path)
				continue
			}

			paths = append(paths, sanitizedPath)
		}
	}
	return paths
}

// DiscoverRepositoryURLs parses the project's build and settings scripts
// (following local apply-from scripts one level deep) and returns the publish
// repository URLs they declare, with property placeholders resolved, in
// first-seen order without duplicates.
func DiscoverRepositoryURLs(workingDir string) ([]string, error) {
	sanitizedDir, err := buildinfogradle.SanitizePath(workingDir)
	if err != nil {
		return nil, errorutils.CheckErrorf("invalid working directory %q: %s", workingDir, err.Error())
	}
	if _, err := os.Stat(sanitizedDir); err != nil {
		return nil, errorutils.CheckErrorf("working directory %q is not accessible: %s", workingDir, err.Error())
	}

	props := CollectProperties(sanitizedDir)

	scripts := []string{
		filepath.Join(sanitizedDir, buildGradleFileName),
		filepath.Join(sanitizedDir, buildGradleKtsFileName),
		filepath.Join(sanitizedDir, settingsGradleFileName),
		filepath.Join(sanitizedDir, settingsGradleKtsName),
	}

	var urls []string
	seen := make(map[string]bool)
	addMatches := func(matches [][][]byte) {
		for _, match := range matches {
			if len(match) < 2 {
				continue
			}
			url := ResolveProperty(strings.TrimSpace(string(match[1])), props)
			if url == "" || seen[url] {
				continue
			}
			seen[url] = true
			urls = append(urls, url)
		}
	}

	for _, script := range scripts {
		content, err := os.ReadFile(script)
		if err != nil {
			continue
		}
		isKts := strings.HasSuffix(script, ".kts")

		// Properties declared in the script fill gaps for placeholder
		// resolution; collected file/env properties keep priority.
		scriptProps := extractPropertiesFromScript(string(content))
		for k, v := range scriptProps {
			if _, exists := props[k]; !exists {
				props[k] = v
			}
		}

		addMatches(findURLsInScript(content, isKts))

		for _, applied := range collectAppliedScripts(content, isKts, props, script) {
			appliedContent, err := os.ReadFile(applied)
			if err != nil {
				log.Debug("Skipping unreadable applied script: " + applied)
				continue
			}
			addMatches(findURLsInScript(appliedContent, strings.HasSuffix(applied, ".kts")))
		}
	}
	return urls, nil
}
