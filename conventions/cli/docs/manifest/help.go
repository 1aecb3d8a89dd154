package manifest

import "github.com/jfrog/jfrog-cli-core/v2/plugins/components"

func GetDescription() string {
	return `Rewrite a built jar in place: stamp the conventional manifest attributes,
                             rename the license file to LICENSE_<archive base name>, and optionally
                             bundle the classes of third-party jars into it.`
}

func GetArguments() []components.Argument {
	return []components.Argument{
		{
			Name:        "jar path",
			Description: "Path to the jar produced by the build.",
		},
	}
}
