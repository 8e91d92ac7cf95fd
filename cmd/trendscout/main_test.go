package main_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	main "github.com/avoronin/trendscout/cmd/trendscout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMain(t *testing.T) *main.Main {
	t.Helper()
	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "trendscout.db")
	return m
}

// Not parallel: the stub-mode test needs t.Setenv.
func TestMain_Run(t *testing.T) {
	t.Run("no arguments shows help and errors", func(t *testing.T) {
		m := newTestMain(t)
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), nil, stdout, stderr)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
	})

	t.Run("help flag succeeds", func(t *testing.T) {
		m := newTestMain(t)
		stdout := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"--help"}, stdout, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "trendscout")
	})

	t.Run("unknown command errors", func(t *testing.T) {
		m := newTestMain(t)

		err := m.Run(context.Background(), []string{"frobnicate"}, &bytes.Buffer{}, &bytes.Buffer{})
		assert.Error(t, err)
	})

	t.Run("unknown engine errors", func(t *testing.T) {
		m := newTestMain(t)

		err := m.Run(context.Background(), []string{"ask", "coffee", "--engine", "carrier-pigeon"}, &bytes.Buffer{}, &bytes.Buffer{})
		assert.Error(t, err)
	})

	t.Run("ask in stub mode refuses over an empty corpus", func(t *testing.T) {
		// No OPENROUTER_API_KEY in the test environment: the generator
		// runs in stub mode and the empty corpus triggers the refusal.
		t.Setenv("OPENROUTER_API_KEY", "")

		m := newTestMain(t)
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"ask", "coffee shop in Moscow"}, stdout, stderr)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), `"90_day_plan"`)
		assert.Contains(t, stdout.String(), "the corpus has no information")
	})

	t.Run("global flag before the subcommand still wires the command", func(t *testing.T) {
		t.Setenv("OPENROUTER_API_KEY", "")

		m := newTestMain(t)
		stdout := &bytes.Buffer{}

		err := m.Run(context.Background(),
			[]string{"--relaxed-evidence", "ask", "coffee shop in Moscow"}, stdout, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), `"90_day_plan"`)
	})
}
