package main

import (
	_ "embed"

	"github.com/n0rdy/mockdata/cmd"
	"github.com/n0rdy/mockdata/utils"
)

//go:embed docs/examples/config-valid.yaml
var configFileExampleContent []byte

//go:embed docs/openapi.yaml
var openApiSpecContent []byte

func main() {
	utils.InitEmbeds(configFileExampleContent, openApiSpecContent)
	cmd.Execute()
}
