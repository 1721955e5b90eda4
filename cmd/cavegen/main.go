// cavegen runs a tengo generation script and writes the resulting cave as a
// caveset file, or prints it to stdout when no output path is given.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/milk9111/boulders/cave"
	"github.com/milk9111/boulders/cave/bdcff"
	"github.com/milk9111/boulders/cave/generator"
)

func main() {
	out := flag.String("o", "", "output caveset file; stdout when empty")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: cavegen [-o out.bdcff] <script.tengo>\n")
		os.Exit(2)
	}

	src, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	c, err := generator.Run(src)
	if err != nil {
		log.Fatal(err)
	}

	data := bdcff.Encode(&cave.CaveSet{Name: c.Name, Caves: []*cave.Cave{c}})
	if *out == "" {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(*out, data, 0644); err != nil {
		log.Fatal(err)
	}
}
