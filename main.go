package main

import (
	"github.com/craftpub/craftpub-cli/cli"
	"github.com/jfrog/jfrog-cli-core/v2/plugins"
)

func main() {
	plugins.PluginMain(cli.GetCraftpubApp())
}
