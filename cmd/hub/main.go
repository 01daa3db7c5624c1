// Command hub is the Articles Hub terminal client.
package main

import (
	"os"

	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
