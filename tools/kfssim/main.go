// The kfssim tool runs the kfs kernel core against emulated hardware so that
// the console and keyboard paths can be exercised from a terminal.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(new(runCommand), "")
	subcommands.Register(new(decodeCommand), "")
	subcommands.Register(new(gdtCommand), "")

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
