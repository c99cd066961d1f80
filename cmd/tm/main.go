package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/sonnes/transmute/config"
	"github.com/urfave/cli/v3"
)

func main() {
	root := &cli.Command{
		Name:  "tm",
		Usage: "Run named string transformation pipelines over files and streams",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log",
				Usage: "Log level: debug, info, warn, error",
				Value: "error",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to the pipeline config file",
				Value:   config.DefaultPath,
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level, err := log.ParseLevel(cmd.String("log"))
			if err != nil {
				return ctx, err
			}
			log.SetLevel(level)
			return ctx, nil
		},
		Commands: []*cli.Command{
			applyCmd(),
			listCmd(),
			serveCmd(),
		},
	}

	if err := root.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
