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
	// Matches "key=value" or "key: value" lines in a properties file.
	// Capture group 1: key, capture group 2: value.
	propertiesFileRe = regexp.MustCompile(`(?m)^\s*([^#=\s:]+)\s*[:=]\s*(.*)$`)

	// Matches quoted assignments inside an ext { ... } block, e.g. myProp = "value".
	extBlockRe = regexp.MustCompile(`(?m)^\s*([a-zA-Z_][a-zA-Z0-9_.]*)\s*=\s*['"]([^'"]+)['"]`)

	// Matches ext.myProp = "value" and project.ext.myProp = "value".
	extAssignmentRe = regexp.MustCompile(`(?m)^\s*(?:project\.)?ext\.([a-zA-Z_][a-zA-Z0-9_.]*)\s*=\s*['"]([^'"]+)['"]`)

	// Matches ${propName} placeholders.
	propPlaceHolderRe = regexp.MustCompile(`\$\{([^}]+)\}`)

	// Matches $propName references, dots allowed ($project.version).
	propVarRe = regexp.MustCompile(`\$([a-zA-Z_][a-zA-Z0-9_]*(?:\.[a-zA-Z_][a-zA-Z0-9_]*)*)`)
)

// CollectProperties gathers the effective project properties the way Gradle
// would, in increasing priority: GRADLE_USER_HOME gradle.properties, project
// gradle.properties, ORG_GRADLE_PROJECT_* environment variables, -P/-D command
// line arguments and GRADLE_OPTS/JAVA_OPTS.
func CollectProperties(workingDir string) map[string]string {
	props := make(map[string]string)
	merge := func(source map[string]string) {
		for k, v := range source {
			if v != "" {
				props[k] = v
			}
		}
	}

	if home := buildinfogradle.GetGradleUserHome(); home != "" {
		propsPath := filepath.Join(home, gradlePropertiesFileName)
		sanitizedPropsPath, err := buildinfogradle.SanitizeAndValidatePath(propsPath, home)
		if err == nil {
			merge(readPropertiesFile(sanitizedPropsPath))
		}
	}

	sanitizedWorkingDir, err := buildinfogradle.SanitizePath(workingDir)
	if err == nil {
		propsFile := filepath.Join(sanitizedWorkingDir, gradlePropertiesFileName)
		sanitizedPropsFile, err := buildinfogradle.SanitizeAndValidatePath(propsFile, sanitizedWorkingDir)
		if err == nil {
			if _, err := os.Stat(sanitizedPropsFile); err == nil {
				merge(readPropertiesFile(sanitizedPropsFile))
			}
		}
	}

	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envProjectPrefix) {
			parts := strings.SplitN(env, "=", 2)
			if len(parts) == 2 {
				key := strings.TrimSpace(parts[0][gradleEnvPrefixLen:])
				val := strings.TrimSpace(parts[1])
				if key != "" && val != "" {
					props[key] = val
				}
			}
		}
	}

	merge(parsePropertiesFromArgs(os.Args))

	if opts := os.Getenv(envGradleOpts); opts != "" {
		merge(parsePropertiesFromOpts(opts))
	}
	if opts := os.Getenv(envJavaOpts); opts != "" {
		merge(parsePropertiesFromOpts(opts))
	}
	return props
}

// RequiredProperty returns the value of key or a property-not-found error that
// aborts the configuration run, matching the host build tool's behavior.
func RequiredProperty(props map[string]string, key string) (string, error) {
	if v, ok := props[key]; ok && v != "" {
		return v, nil
	}
	return "", errorutils.CheckErrorf("required project property %q was not found", key)
}

func readPropertiesFile(path string) map[string]string {
	m := make(map[string]string)
	cleanPath, err := buildinfogradle.SanitizePath(path)
	if err != nil {
		return m
	}
	content, err := os.ReadFile(cleanPath)
	if err != nil {
		return m
	}

	matches := propertiesFileRe.FindAllSubmatch(content, -1)
	for _, match := range matches {
		if len(match) == 3 {
			key := strings.TrimSpace(string(match[1]))
			val := strings.TrimSpace(string(match[2]))
			val = removeQuotes(val)
			if key != "" && val != "" {
				m[key] = val
			}
		}
	}
	return m
}

func removeQuotes(val string) string {
	if len(val) >= 2 && ((val[0] == '"' && val[len(val)-1] == '"') || (val[0] == '\'' && val[len(val)-1] == '\'')) {
		return val[1 : len(val)-1]
	}
	return val
}

func parsePropertiesFromArgs(args []string) map[string]string {
	m := make(map[string]string)

	for _, arg := range args {
		arg = strings.TrimSpace(arg)
		if (strings.HasPrefix(arg, "-P") || strings.HasPrefix(arg, "-D")) && len(arg) > 2 {
			pair := arg[2:]
			parts := strings.SplitN(pair, "=", 2)
			if len(parts) == 2 {
				key := strings.TrimSpace(parts[0])
				val := strings.TrimSpace(parts[1])
				val = removeQuotes(val)
				if key != "" && val != "" {
					m[key] = val
				}
			}
		}
	}
	return m
}

func parsePropertiesFromOpts(opts string) map[string]string {
	args := splitArgsRespectingQuotes(opts)
	return parsePropertiesFromArgs(args)
}

// splitArgsRespectingQuotes splits a string on whitespace but preserves quoted substrings.
func splitArgsRespectingQuotes(s string) []string {
	var args []string
	var current strings.Builder
	inQuote := false
	var quoteChar byte

	for i := 0; i < len(s); i++ {
		c := s[i]
		if inQuote {
			current.WriteByte(c)
			if c == quoteChar {
				inQuote = false
			}
		} else {
			switch c {
			case ' ', '\t':
				if current.Len() > 0 {
					args = append(args, current.String())
					current.Reset()
				}
			case '"', '\'':
				inQuote = true
				quoteChar = c
				current.WriteByte(c)
			default:
				current.WriteByte(c)
			}
		}
	}

	if current.Len() > 0 {
		args = append(args, current.String())
	}
	return args
}

func extractPropertiesFromScript(contentStr string) map[string]string {
	props := make(map[string]string)
	extBlocks := extractAllScriptBlocks(contentStr, blockExt)
	for _, block := range extBlocks {
		matches := extBlockRe.FindAllStringSubmatch(block, -1)
		for _, match := range matches {
			if len(match) > 2 {
				props[strings.TrimSpace(match[1])] = match[2]
			}
		}
	}

	matches := extAssignmentRe.FindAllStringSubmatch(contentStr, -1)
	for _, match := range matches {
		if len(match) > 2 {
			props[strings.TrimSpace(match[1])] = match[2]
		}
	}
	return props
}

// ResolveProperty expands ${key} placeholders and $var references in val using
// props, recursively up to a bounded depth.
func ResolveProperty(val string, props map[string]string) string {
	if val == "" {
		return val
	}
	// Guard against circular property references.
	const maxDepth = 10
	var resolve func(s string, depth int) string
	resolve = func(s string, depth int) string {
		if depth > maxDepth {
			log.Debug("Max recursion depth reached in property resolution for: " + s)
			return s
		}

		result := propPlaceHolderRe.ReplaceAllStringFunc(s, func(match string) string {
			key := match[2 : len(match)-1]
			key = strings.TrimSpace(key)

			if key == "" {
				return match
			}

			switch {
			case strings.HasPrefix(key, "project."):
				key = key[8:]
			case strings.HasPrefix(key, "rootProject."):
				key = key[12:]
			}

			switch {
			case strings.HasPrefix(key, `findProperty("`) && strings.HasSuffix(key, `")`):
				key = key[14 : len(key)-2]
			case strings.HasPrefix(key, `findProperty('`) && strings.HasSuffix(key, `')`):
				key = key[14 : len(key)-2]
			}

			if strings.HasPrefix(key, "$") {
				return match
			}

			if v, ok := props[key]; ok && v != "" {
				if v == match {
					log.Debug("Circular property reference detected for: " + key)
					return match
				}
				return resolve(v, depth+1)
			}
			return match
		})

		result = propVarRe.ReplaceAllStringFunc(result, func(match string) string {
			fullKey := match[1:]

			if v, ok := props[fullKey]; ok && v != "" {
				if v == match {
					return match
				}
				return resolve(v, depth+1)
			}

			// Handles cases like "$host.com" where 'host' is the property.
			parts := strings.Split(fullKey, ".")
			for i := len(parts) - 1; i >= 1; i-- {
				prefix := strings.Join(parts[:i], ".")
				if v, ok := props[prefix]; ok && v != "" {
					if v == "$"+prefix {
						continue
					}
					suffix := "." + strings.Join(parts[i:], ".")
					return resolve(v, depth+1) + suffix
				}
			}
			return match
		})
		return result
	}
	return resolve(val, 0)
}
