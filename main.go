// Command cobalt replays recorded engine sessions through the trace logger.
package main

import (
	"github.com/cobalt-sim/cobalt/cmd"
)

func main() {
	cmd.Execute()
}
