// clan-sim replays clan mining campaigns from a topology file and a query
// stream. Subcommands live in cmd/.

package main

import (
	"github.com/clan-sim/clan-sim/cmd"
)

func main() {
	cmd.Execute()
}
