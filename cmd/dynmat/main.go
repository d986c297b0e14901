// SPDX-License-Identifier: MIT

// Command dynmat evaluates vector and square-matrix arithmetic over
// whitespace-separated text.
//
//	printf '1 2 3\n4 5 6\n' | dynmat vector dot --size 3 --type int64
//	32
package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/dynmat/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		logrus.WithError(err).Error("dynmat failed")
		os.Exit(1)
	}
}
