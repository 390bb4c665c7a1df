package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/spf13/afero"
	"github.com/wavesplatform/boolexpr/pkg/expr"
	"github.com/wavesplatform/boolexpr/pkg/util/common"
	"go.uber.org/zap"
)

func main() {
	c := new(config)
	fs := c.flagSet()
	if err := c.parse(fs, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if c.help {
		fs.Usage()
		os.Exit(0)
	}
	logger, log := common.SetupLogger(c.logLevel())
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(afero.NewOsFs(), c, os.Stdout); err != nil {
		log.Errorf("Failed to evaluate: %v", err)
		_ = logger.Sync()
		os.Exit(2)
	}
}

func run(fs afero.Fs, c *config, out io.Writer) error {
	env, err := buildEnvironment(fs, c)
	if err != nil {
		return err
	}
	zap.S().Debugf("Environment of %d variables: %v", env.Len(), env.Names())
	selected, err := selectScenarios(c.scenario)
	if err != nil {
		return err
	}
	names := env.Names()
	for _, s := range selected {
		for _, v := range expr.Variables(s.node) {
			if !slices.Contains(names, v) {
				zap.S().Debugf("Variable '%s' of scenario '%s' is not assigned, using false", v, s.name)
			}
		}
		zap.S().Debugf("Scenario '%s' complexity: %s", s.name, expr.Estimate(s.node))
		start := time.Now()
		r := expr.Interpret(s.node, env)
		common.TimeTrack(start, s.name)
		if _, err := fmt.Fprintf(out, "%s: %s = %t\n", s.name, s.node, r); err != nil {
			return err
		}
	}
	return nil
}
