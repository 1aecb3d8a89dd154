package discover

import "github.com/jfrog/jfrog-cli-core/v2/plugins/components"

func GetDescription() string {
	return `Scan the project's build scripts for declared Maven repository URLs.
                             Settings scripts and locally applied scripts are followed as well.`
}

func GetArguments() []components.Argument {
	return []components.Argument{}
}
