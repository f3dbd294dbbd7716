// Command escort schedules two agents on an undirected graph so that they
// reach their targets in the fewest rounds while staying more than D hops
// apart whenever B moves.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
