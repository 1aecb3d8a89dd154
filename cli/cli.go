package cli

import (
	conventionsCLI "github.com/craftpub/craftpub-cli/conventions/cli"
	"github.com/jfrog/jfrog-cli-core/v2/plugins/components"
)

const (
	appName        = "craftpub"
	appVersion     = "v1.0.0"
	appDescription = "Publishing and build conventions for JVM mod and bot projects."
)

func GetCraftpubApp() components.App {
	return components.CreateApp(
		appName,
		appVersion,
		appDescription,
		conventionsCLI.GetCommands(),
	)
}
