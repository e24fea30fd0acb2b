package main

import (
	"errors"
	"os"

	"github.com/schedkit/schedkit/internal/cli"
	"github.com/schedkit/schedkit/pkg/buildinfo"
)

func main() {
	cli.SetVersion(buildinfo.Version, buildinfo.Commit, buildinfo.Date)

	if err := cli.Execute(); err != nil {
		if errors.Is(err, cli.ErrInterrupted) {
			os.Exit(130) // standard shell convention for SIGINT
		}
		os.Exit(1)
	}
}
