// Command samplestar runs the Sample-Star online pathfinder against a
// named problem loaded from a YAML pack, optionally streaming a per-step
// JSON visualization trace.
package main

import "log"

func main() {
	if err := Execute(); err != nil {
		log.Fatal(err)
	}
}
