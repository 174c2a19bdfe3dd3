// Command byteview-inspect reports a byte string's classification
// under this package's representation: whether it would be stored
// inline or in a heap payload region, its length, its cached prefix,
// and its refcount - the byte-string analogue of `car inspect`'s CAR
// structure report.
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/marvin-j97/byteview"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "byteview-inspect",
		Usage: "Reports how byteview would represent a byte string",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "full",
				Usage: "print the full payload as hex instead of just the prefix",
			},
		},
		Action: inspect,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func inspect(c *cli.Context) error {
	in := os.Stdin
	if c.Args().Len() >= 1 {
		f, err := os.Open(c.Args().First())
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	b, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("byteview-inspect: read input: %w", err)
	}

	v := byteview.New(b)
	defer v.Release()

	form := "long"
	if v.IsInline() {
		form = "inline"
	}

	fmt.Printf("length:   %d\n", v.Len())
	fmt.Printf("form:     %s\n", form)
	fmt.Printf("refcount: %d\n", v.RefCount())

	if c.Bool("full") {
		fmt.Printf("payload:  %s\n", hex.EncodeToString(v.Bytes()))
	} else {
		fmt.Printf("prefix:   %s\n", hex.EncodeToString(v.Prefix()))
	}

	return nil
}
