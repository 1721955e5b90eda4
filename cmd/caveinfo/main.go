// caveinfo prints a summary of a caveset file and, optionally, an ASCII
// render of each cave using the palette runes.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/milk9111/boulders/cave"
	"github.com/milk9111/boulders/cave/bdcff"
	"github.com/milk9111/boulders/logger"
	"github.com/milk9111/boulders/palette"
)

func main() {
	render := flag.Bool("render", false, "render each cave as text")
	objects := flag.Bool("objects", false, "list each cave's object lines")
	palettePath := flag.String("palette", "", "palette file overriding the built-in runes")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: caveinfo [flags] <caveset.bdcff>\n")
		flag.PrintDefaults()
		os.Exit(2)
	}

	pal := palette.Default()
	if *palettePath != "" {
		p, err := palette.Load(*palettePath)
		if err != nil {
			log.Fatal(err)
		}
		pal = p
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	l := logger.Push()
	set, err := bdcff.Decode(data)
	logger.Pop()
	if err != nil {
		log.Fatal(err)
	}
	if !l.Empty() {
		fmt.Fprintf(os.Stderr, "%s\n", l)
	}

	if set.Name != "" {
		fmt.Printf("caveset: %s\n", set.Name)
	}
	fmt.Printf("caves: %d\n", len(set.Caves))

	for i, c := range set.Caves {
		fmt.Printf("\n[%d] %s  %dx%d  %d objects\n", i, c.Name, c.Width, c.Height, len(c.Objects))
		if *objects {
			for _, o := range c.Objects {
				fmt.Printf("    %s\n", o.Encode())
			}
		}
		if *render {
			fmt.Print(renderText(c, pal))
		}
	}
}

func renderText(c *cave.Cave, pal *palette.Palette) string {
	r := c.Render()
	var b strings.Builder
	for y := 0; y < r.Height(); y++ {
		for x := 0; x < r.Width(); x++ {
			b.WriteRune(pal.Entry(r.Get(cave.Coordinate{X: x, Y: y})).Rune)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
