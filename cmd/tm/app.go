package main

import (
	"fmt"
	"slices"

	"github.com/sonnes/transmute/applyer"
	"github.com/sonnes/transmute/config"
	"github.com/sonnes/transmute/core"
	"github.com/sonnes/transmute/render"
	jsonrender "github.com/sonnes/transmute/render/json"
	"github.com/sonnes/transmute/render/terminal"
	yamlrender "github.com/sonnes/transmute/render/yaml"
	"github.com/sonnes/transmute/transform"
	"github.com/sonnes/transmute/transform/lines"
	"github.com/sonnes/transmute/transform/markdown"
	"github.com/urfave/cli/v3"
)

// app holds the loaded config plus stream and renderer registries used by
// CLI commands.
type app struct {
	cfg       config.Config
	streams   map[string]func() transform.StreamTransformer
	renderers map[string]func() render.Renderer
}

func newApp(cfg config.Config) *app {
	return &app{
		cfg: cfg,
		streams: map[string]func() transform.StreamTransformer{
			"lines":    func() transform.StreamTransformer { return lines.New(lines.Config{CommentPrefix: "#"}) },
			"markdown": func() transform.StreamTransformer { return markdown.New() },
		},
		renderers: map[string]func() render.Renderer{
			"terminal": func() render.Renderer { return terminal.New() },
			"json":     func() render.Renderer { return &jsonrender.Renderer{Indent: true} },
			"yaml":     func() render.Renderer { return &yamlrender.Renderer{} },
			"raw":      func() render.Renderer { return render.Raw{} },
		},
	}
}

// loadApp reads the config named by the root --config flag.
func loadApp(cmd *cli.Command) (*app, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, err
	}
	return newApp(cfg), nil
}

// stream returns the named stream transformer. An empty name means the
// configured default.
func (a *app) stream(name string) (transform.StreamTransformer, error) {
	if name == "" {
		name = a.cfg.Stream
	}
	fn, ok := a.streams[name]
	if !ok {
		return nil, fmt.Errorf("unknown stream %q", name)
	}
	return fn(), nil
}

// renderer returns the named renderer. An empty name means the configured
// default.
func (a *app) renderer(name string) (render.Renderer, error) {
	if name == "" {
		name = a.cfg.Format
	}
	fn, ok := a.renderers[name]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q", name)
	}
	return fn(), nil
}

// selection is the set of flags that pick the transformations to run.
type selection struct {
	Pipeline string
	Spec     applyer.Spec
	Names    []string
	Step     string
}

// transformations resolves sel into a collection and a label for it. Either
// an ad-hoc applyer type or a config pipeline is used, never both.
func (a *app) transformations(sel selection) (core.Transformations, string, error) {
	var (
		ts    core.Transformations
		label string
	)

	switch {
	case sel.Spec.Type != "" && sel.Pipeline != "":
		return nil, "", fmt.Errorf("--type and --pipeline are mutually exclusive")
	case sel.Spec.Type == "" && len(sel.Names) > 0:
		return nil, "", fmt.Errorf("--name requires --type")
	case sel.Spec.Type != "":
		if slices.Contains(sel.Names, "") {
			return nil, "", fmt.Errorf("--name must not be empty")
		}
		ap, err := applyer.Build(sel.Spec)
		if err != nil {
			return nil, "", err
		}
		names := sel.Names
		if len(names) == 0 {
			names = []string{sel.Spec.Type}
		}
		ts, label = core.NewCompound(slices.Values(names), ap), sel.Spec.Type
	default:
		name := sel.Pipeline
		if name == "" {
			name = a.cfg.Default
		}
		if name == "" {
			return nil, "", fmt.Errorf("one of --pipeline or --type is required")
		}
		p, ok := a.cfg.Pipeline(name)
		if !ok {
			return nil, "", fmt.Errorf("unknown pipeline %q", name)
		}
		built, err := p.Build()
		if err != nil {
			return nil, "", err
		}
		ts, label = built, name
	}

	if sel.Step != "" {
		selected := core.Select(ts, sel.Step)
		if selected == nil {
			return nil, "", fmt.Errorf("step %q not found in %s", sel.Step, label)
		}
		ts = selected
	}
	return ts, label, nil
}
