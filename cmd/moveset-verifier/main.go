// Command moveset-verifier reports the first illegal move in chess move files.
package main

import (
	"os"

	"github.com/park285/moveset-verifier/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
