// Command fixedgen generates the per-length instantiation of package fixed.
//
//	go run ./cmd/fixedgen gen --config fixedgen.yaml
//	go run ./cmd/fixedgen gen --max 64 --out lengths_gen.go
package main

import (
	"os"

	"github.com/katalvlaran/initwith/cmd/fixedgen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
