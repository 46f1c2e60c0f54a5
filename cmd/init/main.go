package main

import (
	"os"

	"github.com/foliate-press/foliate/internal/adapters/cli"
	"github.com/foliate-press/foliate/internal/adapters/fs"
	"github.com/foliate-press/foliate/internal/usecase"
)

func main() {
	output := cli.NewOutput()

	if len(os.Args) < 2 {
		output.PrintHeader("Foliate Init")
		output.PrintError("Missing target directory argument")
		output.PrintStep("Usage: foliate-init <directory>")
		output.PrintStep("Example: foliate-init ./my-blog")
		os.Exit(1)
	}

	service := usecase.NewInitService(fs.NewOSFileSystem(), output)
	if err := service.InitSite(os.Args[1]); err != nil {
		output.PrintError("%v", err)
		os.Exit(1)
	}

	output.PrintDone("Site scaffolded. Run foliate-generate, then foliate-build.")
}
