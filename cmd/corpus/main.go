package main

import (
	"github.com/custodia-labs/corpus-cli/internal/adapters/driving/cli"
)

func main() {
	cli.Execute()
}
