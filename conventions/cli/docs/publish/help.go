package publish

import "github.com/jfrog/jfrog-cli-core/v2/plugins/components"

func GetDescription() string {
	return `Deploy the project jar and its generated POM to every selected publication target.
                             Versions ending with SNAPSHOT deploy to each target's snapshot URL, all
                             other versions deploy to the release URL. Credentials are read from the
                             CRAFTPUB_<TARGET>_USERNAME and CRAFTPUB_<TARGET>_PASSWORD environment variables.`
}

func GetArguments() []components.Argument {
	return []components.Argument{}
}
