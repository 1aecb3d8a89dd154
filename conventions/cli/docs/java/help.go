package java

import "github.com/jfrog/jfrog-cli-core/v2/plugins/components"

func GetDescription() string {
	return `Print the conventional Java toolchain and compiler settings for the project's target JVM version.`
}

func GetArguments() []components.Argument {
	return []components.Argument{}
}
