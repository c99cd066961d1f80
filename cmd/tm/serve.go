package main

import (
	"context"
	"fmt"

	"github.com/sonnes/transmute/server"
	"github.com/urfave/cli/v3"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve configured pipelines over HTTP",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "port",
				Usage: "Port to listen on (defaults to server.port from the config)",
			},
			&cli.StringFlag{
				Name:  "stream",
				Usage: "Stream transformer for request bodies: lines, markdown",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}

			pipelines, err := a.cfg.BuildAll()
			if err != nil {
				return err
			}
			if len(pipelines) == 0 {
				return fmt.Errorf("no pipelines configured in %s", cmd.String("config"))
			}

			st, err := a.stream(cmd.String("stream"))
			if err != nil {
				return err
			}

			port := a.cfg.Server.Port
			if cmd.IsSet("port") {
				port = int(cmd.Int("port"))
			}

			srv := server.New(server.Config{Pipelines: pipelines, Stream: st})
			return srv.ListenAndServe(fmt.Sprintf(":%d", port))
		},
	}
}
