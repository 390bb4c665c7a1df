package main

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	flag "github.com/spf13/pflag"
)

type assignment struct {
	name  string
	value bool
}

func parseAssignment(s string) (assignment, error) {
	name, value, ok := strings.Cut(s, "=")
	if !ok {
		return assignment{}, errors.Errorf("invalid assignment '%s', expected NAME=VALUE", s)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return assignment{}, errors.Errorf("empty variable name in assignment '%s'", s)
	}
	v, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return assignment{}, errors.Wrapf(err, "invalid value of variable '%s'", name)
	}
	return assignment{name: name, value: v}, nil
}

type config struct {
	assignments []assignment
	envFile     string
	scenario    string
	shared      bool
	verbose     bool
	silent      bool
	help        bool

	flagSets []string
}

func (c *config) logLevel() string {
	switch {
	case c.silent:
		return "fatal"
	case c.verbose:
		return "debug"
	default:
		return "info"
	}
}

func (c *config) flagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("boolexpr", flag.ContinueOnError)
	fs.StringArrayVarP(&c.flagSets, "set", "s", nil,
		"Assign a variable, for example \"A=true\"; may be repeated, later assignments overwrite earlier ones")
	fs.StringVarP(&c.envFile, "env", "e", "",
		"Path to a JSON file with variable values, for example {\"A\": true}; applied before --set")
	fs.StringVarP(&c.scenario, "scenario", "x", scenarioAll,
		"Expression to evaluate: "+strings.Join(scenarioNames(), ", ")+" or "+scenarioAll)
	fs.BoolVar(&c.shared, "shared", false, "Evaluate against the process-wide shared environment")
	fs.BoolVar(&c.verbose, "verbose", false, "Logs additional information; incompatible with \"silent\"")
	fs.BoolVar(&c.silent, "silent", false, "Produce no log output; incompatible with \"verbose\"")
	fs.BoolVarP(&c.help, "help", "h", false, "Print usage information (this message) and quit")
	return fs
}

func (c *config) parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse command line")
	}
	if c.help {
		return nil
	}
	if c.verbose && c.silent {
		return errors.New("options \"verbose\" and \"silent\" are incompatible")
	}
	if fs.NArg() > 0 {
		return errors.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	c.assignments = make([]assignment, 0, len(c.flagSets))
	for _, s := range c.flagSets {
		a, err := parseAssignment(s)
		if err != nil {
			return err
		}
		c.assignments = append(c.assignments, a)
	}
	if _, err := selectScenarios(c.scenario); err != nil {
		return err
	}
	return nil
}
