package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sonnes/transmute/applyer"
	"github.com/urfave/cli/v3"
)

func listCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List configured pipelines and available applyer types",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			return a.list(os.Stdout)
		},
	}
}

// list writes the pipelines (default marked with *) and applyer types to w.
func (a *app) list(w io.Writer) error {
	fmt.Fprintln(w, styleHeading.Render("Pipelines"))
	if len(a.cfg.Pipelines) == 0 {
		fmt.Fprintln(w, styleDim.Render("  none configured"))
	}
	for _, p := range a.cfg.Pipelines {
		ts, err := p.Build()
		if err != nil {
			return err
		}
		marker := " "
		if p.Name == a.cfg.Default {
			marker = "*"
		}
		var steps []string
		for t := range ts.All() {
			steps = append(steps, t.Name())
		}
		fmt.Fprintf(w, "%s %s  %s\n", marker, styleName.Render(p.Name), styleDim.Render(strings.Join(steps, " → ")))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, styleHeading.Render("Applyer types"))
	fmt.Fprintln(w, "  "+strings.Join(applyer.Types(), ", "))
	return nil
}
