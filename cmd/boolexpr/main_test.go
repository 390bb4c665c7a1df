package main

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wavesplatform/boolexpr/pkg/expr"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoadEnvironment(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "vars.json", []byte(`{"B": false, "A": true}`), 0644))
	require.NoError(t, afero.WriteFile(fs, "broken.json", []byte(`{"A": "yes"}`), 0644))

	env := expr.NewEnvironment()
	require.NoError(t, loadEnvironment(fs, "vars.json", env))
	assert.Equal(t, []string{"A", "B"}, env.Names())
	assert.True(t, env.Lookup("A"))
	assert.False(t, env.Lookup("B"))

	assert.Error(t, loadEnvironment(fs, "broken.json", expr.NewEnvironment()))
	assert.Error(t, loadEnvironment(fs, "missing.json", expr.NewEnvironment()))
}

func TestBuildEnvironmentAssignmentsOverrideFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "vars.json", []byte(`{"A": true, "C": true}`), 0644))
	c := &config{envFile: "vars.json", assignments: []assignment{{"A", false}, {"D", true}}}
	env, err := buildEnvironment(fs, c)
	require.NoError(t, err)
	assert.False(t, env.Lookup("A"))
	assert.True(t, env.Lookup("C"))
	assert.True(t, env.Lookup("D"))
	assert.NotSame(t, expr.SharedEnvironment(), env)
}

func TestBuildSharedEnvironment(t *testing.T) {
	c := &config{shared: true, assignments: []assignment{{"cmd-shared-test", true}}}
	env, err := buildEnvironment(afero.NewMemMapFs(), c)
	require.NoError(t, err)
	assert.Same(t, expr.SharedEnvironment(), env)
	assert.True(t, expr.SharedEnvironment().Lookup("cmd-shared-test"))
}

func TestRun(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	defer restore()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "vars.json", []byte(`{"A": true, "B": false, "C": true}`), 0644))
	for _, test := range []struct {
		cfg *config
		r   string
	}{
		{
			&config{envFile: "vars.json", scenario: scenarioAll},
			"mixed: ((A && B) || (C && !D)) = true\n" +
				"conjunction: ((A || B) && (C || D)) = true\n" +
				"double-negation: !!A = true\n",
		},
		{
			&config{scenario: "conjunction", assignments: []assignment{{"A", false}, {"B", false}, {"C", false}, {"D", false}}},
			"conjunction: ((A || B) && (C || D)) = false\n",
		},
		{
			&config{scenario: "mixed"},
			"mixed: ((A && B) || (C && !D)) = false\n",
		},
	} {
		out := new(bytes.Buffer)
		require.NoError(t, run(fs, test.cfg, out))
		assert.Equal(t, test.r, out.String())
	}
	assert.NotZero(t, logs.FilterMessageSnippet("is not assigned").Len())
	assert.NotZero(t, logs.FilterMessageSnippet("took").Len())
}

func TestRunErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	assert.Error(t, run(fs, &config{envFile: "missing.json", scenario: scenarioAll}, new(bytes.Buffer)))
	assert.Error(t, run(fs, &config{scenario: "unknown"}, new(bytes.Buffer)))
}
