// Package main prints the Base58 form of a private key.
package main

import (
	"os"

	"github.com/mkohlhaas/b58key/cli"
	"github.com/mkohlhaas/b58key/keyerror"
)

func main() {
	cmd := cli.New()
	keyerror.Handle(cmd.Run(os.Args[1:]))
}
