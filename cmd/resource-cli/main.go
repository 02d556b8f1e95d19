package main

import (
	"github.com/tansive/resourcesrv/internal/cli"
)

func main() {
	cli.Execute()
}
