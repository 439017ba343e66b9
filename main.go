package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/carlmjohnson/versioninfo"

	"github.com/pdok/morton3d/config"
	"github.com/pdok/morton3d/format"
	"github.com/pdok/morton3d/lutgen"
	"github.com/pdok/morton3d/morton"
	"github.com/pdok/morton3d/processing"
	"github.com/pdok/morton3d/zsort"

	"github.com/iancoleman/strcase"
	"github.com/muesli/reflow/wordwrap"
	"github.com/urfave/cli/v2"
)

const CONFIG string = `config`
const STRATEGY string = `strategy`
const FORMAT string = `format`
const WORKERS string = `workers`
const AXIS string = `axis`
const OUTPUT string = `output`
const PACKAGE string = `package`

const descriptionWidth = 80

const description = `Converts 3D integer coordinates (x, y, z) to 64-bit Morton (Z-order) codes and back. ` +
	`Only the lowest 21 bits of every coordinate fit into a code, higher bits are dropped. ` +
	`Without arguments encode and decode read one record per line from stdin and write one result per line to stdout, in the same order.`

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

//nolint:funlen
func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "morton3d"
	app.Usage = "A Golang 3D Morton code encoder/decoder"
	app.Description = wordwrap.String(description, descriptionWidth)
	app.Version = versioninfo.Short()

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:     CONFIG,
			Aliases:  []string{"c"},
			Usage:    "Config file (.json, .yaml or .yml). Flags take precedence",
			Required: false,
			EnvVars:  []string{strcase.ToScreamingSnake(CONFIG)},
		},
		&cli.StringFlag{
			Name:     STRATEGY,
			Aliases:  []string{"s"},
			Usage:    "Decode implementation: lut, early-exit or compat (historical window offsets, lossy above 2^15)",
			Required: false,
			EnvVars:  []string{strcase.ToScreamingSnake(STRATEGY)},
		},
		&cli.StringFlag{
			Name:     FORMAT,
			Aliases:  []string{"f"},
			Usage:    "Output format: dec, hex, bin, json or cbor",
			Required: false,
			EnvVars:  []string{strcase.ToScreamingSnake(FORMAT)},
		},
		&cli.IntFlag{
			Name:     WORKERS,
			Aliases:  []string{"w"},
			Usage:    "Number of goroutines converting records in batch mode",
			Required: false,
			EnvVars:  []string{strcase.ToScreamingSnake(WORKERS)},
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:      "encode",
			Usage:     "Encode x y z into a Morton code",
			ArgsUsage: "[x y z]",
			Action: func(c *cli.Context) error {
				return convert(c, processing.Coords, format.Encoded)
			},
		},
		{
			Name:      "decode",
			Usage:     "Decode a Morton code into x y z",
			ArgsUsage: "[code]",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     AXIS,
					Aliases:  []string{"a"},
					Usage:    "Only decode this axis: x, y or z",
					Required: false,
					EnvVars:  []string{strcase.ToScreamingSnake(AXIS)},
				},
			},
			Action: func(c *cli.Context) error {
				return convert(c, processing.Codes, format.Decoded)
			},
		},
		{
			Name:  "sort",
			Usage: "Read x y z lines from stdin and write them in Z-order",
			Action: func(c *cli.Context) error {
				cfg, err := loadConfig(c)
				if err != nil {
					return err
				}
				return sortCoords(c.App.Reader, c.App.Writer, cfg)
			},
		},
		{
			Name:  "tables",
			Usage: "Generate the Go source of the lookup tables",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    OUTPUT,
					Aliases: []string{"o"},
					Usage:   "Target file, stdout when empty",
				},
				&cli.StringFlag{
					Name:  PACKAGE,
					Usage: "Package name of the generated file",
					Value: "morton",
				},
			},
			Action: func(c *cli.Context) error {
				return writeTables(c.App.Writer, c.String(OUTPUT), c.String(PACKAGE))
			},
		},
	}
	return app
}

// loadConfig reads the config file and applies the flags on top of it
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg, err := config.Load(c.String(CONFIG))
	if err != nil {
		return cfg, err
	}
	err = cfg.Override(config.Config{
		Strategy: c.String(STRATEGY),
		Format:   c.String(FORMAT),
		Axis:     c.String(AXIS),
		Workers:  c.Int(WORKERS),
	})
	if err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func convert(c *cli.Context, mode processing.Mode, direction format.Direction) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	codec, err := cfg.Codec()
	if err != nil {
		return err
	}
	axis, singleAxis, err := cfg.AxisFilter()
	if err != nil {
		return err
	}
	formatter, err := format.New(cfg.Format, format.Options{Direction: direction, SingleAxis: singleAxis, Axis: axis})
	if err != nil {
		return err
	}
	target := format.Target{Writer: c.App.Writer, Formatter: formatter}

	convertFunc := processing.Encoder(codec)
	if mode == processing.Codes {
		convertFunc = processing.Decoder(codec)
		if singleAxis {
			convertFunc, err = processing.AxisDecoder(codec, axis)
			if err != nil {
				return err
			}
		}
	}

	if c.Args().Present() {
		record, err := recordFromArgs(c.Args().Slice(), mode)
		if err != nil {
			return err
		}
		_, err = processing.Process(processing.SliceSource{record}, target, 1, 1, convertFunc)
		return err
	}
	source := &processing.LineSource{Reader: c.App.Reader, Mode: mode}
	_, err = processing.Process(source, target, cfg.Workers, cfg.BufferSize, convertFunc)
	if err != nil {
		return err
	}
	if source.Err != nil {
		return fmt.Errorf("error reading input: %w", source.Err)
	}
	return nil
}

func recordFromArgs(args []string, mode processing.Mode) (processing.Record, error) {
	record := processing.Record{Line: 1}
	switch mode {
	case processing.Codes:
		if len(args) != 1 {
			return record, fmt.Errorf("expected 1 code, got %d arguments", len(args))
		}
		code, err := processing.ParseCode(args[0])
		if err != nil {
			return record, err
		}
		record.Code = code
	default:
		coord, err := processing.ParseCoord(args)
		if err != nil {
			return record, err
		}
		record.Coord = coord
	}
	return record, nil
}

func sortCoords(r io.Reader, w io.Writer, cfg config.Config) error {
	codec, err := cfg.Codec()
	if err != nil {
		return err
	}
	source := &processing.LineSource{Reader: r, Mode: processing.Coords}
	records := make(chan processing.Record, cfg.BufferSize)
	go source.ReadRecords(records)
	var coords []morton.Coord
	for record := range records {
		coords = append(coords, record.Coord)
	}
	if source.Err != nil {
		return source.Err
	}
	log.Printf("  sorting %d coordinates", len(coords))

	sorted, codes := zsort.Sort(coords, codec)
	formatter, err := format.New(cfg.Format, format.Options{Direction: format.Decoded})
	if err != nil {
		return err
	}
	sortedRecords := make(processing.SliceSource, len(sorted))
	for i, coord := range sorted {
		sortedRecords[i] = processing.Record{Coord: coord, Code: codes[i]}
	}
	out := make(chan processing.Record, cfg.BufferSize)
	go sortedRecords.ReadRecords(out)
	return format.Target{Writer: w, Formatter: formatter}.WriteRecords(out)
}

func writeTables(stdout io.Writer, output, pkg string) error {
	if output == "" {
		return lutgen.Render(stdout, pkg, lutgen.Build())
	}
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	err = lutgen.Render(f, pkg, lutgen.Build())
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("error writing %s: %w", output, err)
	}
	log.Printf("wrote lookup tables to %s", output)
	return nil
}
