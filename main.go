package main

import (
	"os"

	"github.com/sigmalogic/deviceprobe/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
