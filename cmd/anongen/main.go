// Command anongen writes the anonN.go sources of package anoniter.
//
// It is run through go generate from the repository root:
//
//	//go:generate go run ./cmd/anongen --min 2 --max 8
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

type options struct {
	Min     int
	Max     int
	Dir     string
	Package string
	Check   bool
}

func (o options) validate() error {
	if o.Min < 2 {
		return errors.Errorf("--min must be at least 2, got %d", o.Min)
	}
	if o.Max < o.Min {
		return errors.Errorf("--max (%d) must not be below --min (%d)", o.Max, o.Min)
	}
	if o.Max > maxArity {
		return errors.Errorf("--max must be at most %d, got %d", maxArity, o.Max)
	}
	return nil
}

func generate(log *zap.Logger, opts options) error {
	if err := opts.validate(); err != nil {
		return err
	}

	wiz, err := NewWizard()
	if err != nil {
		return err
	}

	for n := opts.Min; n <= opts.Max; n++ {
		src, err := wiz.RenderArity(opts.Package, n)
		if err != nil {
			return err
		}

		path := filepath.Join(opts.Dir, fmt.Sprintf("anon%d.go", n))
		if err := os.WriteFile(path, src, 0644); err != nil {
			return errors.Wrapf(err, "writing %s", path)
		}
		log.Info("wrote arity", zap.Int("arity", n), zap.String("path", path))
	}

	if opts.Check {
		return typeCheck(log, opts.Dir)
	}
	return nil
}

func newApp(log *zap.Logger) *cli.App {
	app := cli.NewApp()
	app.Name = "anongen"
	app.Usage = "generate the IterN sum types of package anoniter"
	app.Flags = []cli.Flag{
		cli.IntFlag{Name: "min", Value: 2, Usage: "smallest arity to generate"},
		cli.IntFlag{Name: "max", Value: 8, Usage: "largest arity to generate"},
		cli.StringFlag{Name: "dir", Value: ".", Usage: "directory of the target package"},
		cli.StringFlag{Name: "package", Value: "anoniter", Usage: "name of the target package"},
		cli.BoolFlag{Name: "check", Usage: "type-check the target package after writing"},
	}
	app.Action = func(c *cli.Context) error {
		return generate(log, options{
			Min:     c.Int("min"),
			Max:     c.Int("max"),
			Dir:     c.String("dir"),
			Package: c.String("package"),
			Check:   c.Bool("check"),
		})
	}
	return app
}

func main() {
	log, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	err = newApp(log).Run(os.Args)
	if err != nil {
		log.Error("anongen failed", zap.Error(err))
	}
	_ = log.Sync()
	if err != nil {
		os.Exit(1)
	}
}
