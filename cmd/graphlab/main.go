// Command graphlab is the command-line front-end of the lab: generate
// random graphs, compute shortest paths, and benchmark the two engines
// against each other.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
