package pom

import "github.com/jfrog/jfrog-cli-core/v2/plugins/components"

func GetDescription() string {
	return `Generate the Maven POM for the current project from its Gradle properties.`
}

func GetArguments() []components.Argument {
	return []components.Argument{}
}
