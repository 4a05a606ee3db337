// Command labelguard classifies operator text and asks for a correction
// whenever the model is not confident enough.
package main

import (
	"fmt"
	"os"

	"github.com/ppiankov/labelguard/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		if msg := cli.ErrorMessage(err); msg != "" {
			fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
		}
		os.Exit(1)
	}
}
