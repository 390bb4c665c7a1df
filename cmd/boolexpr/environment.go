package main

import (
	"encoding/json"
	"sort"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/wavesplatform/boolexpr/pkg/expr"
)

// loadEnvironment assigns variables from the JSON object stored in the file. Keys are applied in sorted order.
func loadEnvironment(fs afero.Fs, fn string, env *expr.Environment) error {
	data, err := afero.ReadFile(fs, fn)
	if err != nil {
		return errors.Wrapf(err, "failed to read environment file '%s'", fn)
	}
	values := make(map[string]bool)
	if err := json.Unmarshal(data, &values); err != nil {
		return errors.Wrapf(err, "failed to decode environment file '%s'", fn)
	}
	names := make([]string, 0, len(values))
	for k := range values {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, n := range names {
		env.Assign(n, values[n])
	}
	return nil
}

func buildEnvironment(fs afero.Fs, c *config) (*expr.Environment, error) {
	env := expr.NewEnvironment()
	if c.shared {
		env = expr.SharedEnvironment()
	}
	if c.envFile != "" {
		if err := loadEnvironment(fs, c.envFile, env); err != nil {
			return nil, err
		}
	}
	for _, a := range c.assignments {
		env.Assign(a.name, a.value)
	}
	return env, nil
}
