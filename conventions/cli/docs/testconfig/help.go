package testconfig

import "github.com/jfrog/jfrog-cli-core/v2/plugins/components"

func GetDescription() string {
	return `Print the conventional test-task settings for this machine, including the fork count derived from the processor count.`
}

func GetArguments() []components.Argument {
	return []components.Argument{}
}
