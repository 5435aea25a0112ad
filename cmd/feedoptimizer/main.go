// Command feedoptimizer runs the Feed Optimizer engine over stdin/stdout.
package main

import (
	"bufio"
	"log"
	"os"

	"github.com/nullptr-labs/feedtrie/internal/cli"
)

func main() {
	log.SetFlags(0)

	in := bufio.NewScanner(os.Stdin)
	in.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	out := bufio.NewWriter(os.Stdout)

	if err := cli.RunFeedOptimizer(in, out); err != nil {
		log.Fatal(err)
	}
}
