package main

import (
	"flag"
	"os"

	"github.com/midbel/elfit"
)

func main() {
	flag.Parse()
	for _, p := range flag.Args() {
		if err := elfit.Debug(p, os.Stdout); err != nil {
			os.Exit(1)
		}
	}
}
