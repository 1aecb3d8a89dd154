package setupcredentials

import "github.com/jfrog/jfrog-cli-core/v2/plugins/components"

func GetDescription() string {
	return `Seed the Gradle user home gradle.properties with the credential keys the
                             configured publication targets expect. Existing values are never overwritten.`
}

func GetArguments() []components.Argument {
	return []components.Argument{}
}
