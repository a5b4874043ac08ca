package main

import (
	"fmt"
	"os"
	"path"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/fernlang/fern/lib"
)

func main() {
	app := &cli.App{
		Name:  "fernlex",
		Usage: "Tokenize fern source files",
		Commands: []*cli.Command{
			{
				Name:      "tokens",
				Usage:     "Tokenize one file and print its token stream",
				ArgsUsage: "[file]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "input-str",
						Aliases: []string{"s"},
						Usage:   "Tokenize a string instead of a file",
					},
				},
				Action: tokens,
			},
			{
				Name:      "check",
				Usage:     "Tokenize every source file in a directory and report per-file status",
				ArgsUsage: "[dir]",
				Action:    check,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		color.Red("%s", err)
		os.Exit(1)
	}
}

func tokens(c *cli.Context) error {
	src := c.String("input-str")
	if src == "" {
		if c.Args().Len() != 1 {
			return cli.Exit("expected a file argument or --input-str", 1)
		}
		bytes, err := os.ReadFile(c.Args().First())
		if err != nil {
			return err
		}
		src = string(bytes)
	}

	records, err := lib.Tokenize(src)
	if err != nil {
		return err
	}

	for _, rec := range records {
		fmt.Printf("%4d  %s\n", rec.Location.Line, rec.Token)
	}
	return nil
}

func check(c *cli.Context) error {
	dir := "."
	if c.Args().Len() > 0 {
		dir = c.Args().First()
	}

	names, err := lib.ListSourceFiles(dir)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return cli.Exit(fmt.Sprintf("no %s files in %s", lib.SourceExtension, dir), 1)
	}

	failed := 0
	for _, name := range names {
		_, err := lib.ReadSourceFromFile(path.Join(dir, name))
		if err != nil {
			failed++
			color.Red("%s: %s", name, err)
			continue
		}
		color.Green("%s: ok", name)
	}

	if failed > 0 {
		return cli.Exit(fmt.Sprintf("%d of %d files failed", failed, len(names)), 1)
	}
	return nil
}
