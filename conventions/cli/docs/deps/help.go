package deps

import "github.com/jfrog/jfrog-cli-core/v2/plugins/components"

func GetDescription() string {
	return `Compute the dependency notations and repositories for a framework.
                             Supported frameworks: 'neoforge', 'fabric' and 'jda'. Loader and
                             Minecraft versions are validated for compatibility before anything
                             is emitted.`
}

func GetArguments() []components.Argument {
	return []components.Argument{
		{
			Name:        "framework",
			Description: "The framework to wire: neoforge, fabric or jda.",
		},
	}
}
