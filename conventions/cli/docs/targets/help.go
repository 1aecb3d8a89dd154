package targets

import "github.com/jfrog/jfrog-cli-core/v2/plugins/components"

func GetDescription() string {
	return `Resolve the configured publication targets for the current project version.
                             Each target reports whether the release or the snapshot URL is in effect
                             and whether its credentials are present in the environment.`
}

func GetArguments() []components.Argument {
	return []components.Argument{}
}
