package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/sonnes/transmute/applyer"
	"github.com/sonnes/transmute/core"
	"github.com/sonnes/transmute/transform"
	"github.com/urfave/cli/v3"
)

func applyCmd() *cli.Command {
	return &cli.Command{
		Name:  "apply",
		Usage: "Transform a file or stdin with a pipeline",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "pipeline",
				Aliases: []string{"p"},
				Usage:   "Pipeline name from the config (defaults to the config's default)",
			},
			&cli.StringFlag{
				Name:  "type",
				Usage: "Ad-hoc applyer type instead of a pipeline (see tm list)",
			},
			&cli.StringFlag{
				Name:  "value",
				Usage: "Value parameter for --type",
			},
			&cli.StringFlag{
				Name:  "with",
				Usage: "Replacement parameter for --type=replace",
			},
			&cli.StringSliceFlag{
				Name:  "name",
				Usage: "Step names sharing the --type applyer (can be repeated, requires --type)",
			},
			&cli.StringFlag{
				Name:  "step",
				Usage: "Run a single step, by index or name",
			},
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Input file (reads stdin when unset or -)",
			},
			&cli.StringFlag{
				Name:  "stream",
				Usage: "Stream transformer: lines, markdown",
			},
			&cli.StringFlag{
				Name:  "o",
				Usage: "Output format: terminal, json, yaml, raw",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}

			ts, label, err := a.transformations(selection{
				Pipeline: cmd.String("pipeline"),
				Spec: applyer.Spec{
					Type:  cmd.String("type"),
					Value: cmd.String("value"),
					With:  cmd.String("with"),
				},
				Names: cmd.StringSlice("name"),
				Step:  cmd.String("step"),
			})
			if err != nil {
				return err
			}

			st, err := a.stream(cmd.String("stream"))
			if err != nil {
				return err
			}

			rnd, err := a.renderer(cmd.String("o"))
			if err != nil {
				return err
			}

			log.Debug("apply", "pipeline", label, "steps", ts.Len())

			file := cmd.String("file")
			start := time.Now()
			var out string
			if file == "" || file == "-" {
				file = "-"
				out, err = st.Transform(os.Stdin, ts)
			} else {
				out, err = transform.NewStreamFile(st).TransformFile(file, ts)
			}
			if err != nil {
				return err
			}

			res := core.NewResult(file, label, ts, out, time.Since(start))
			if err := rnd.Render(os.Stdout, res); err != nil {
				return fmt.Errorf("render: %w", err)
			}
			return nil
		},
	}
}
