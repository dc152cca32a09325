package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/poiesic/charfind/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"charfind"}, args...))
	return out.String(), err
}

func TestSearchCommand(t *testing.T) {
	dir := t.TempDir()

	t.Run("prints header and rows", func(t *testing.T) {
		out, err := runApp(t, "--db", dir, "search", "euro", "sign")
		require.NoError(t, err)
		assert.Contains(t, out, "matches")
		assert.Contains(t, out, "  20AC  €  EURO SIGN\n")
	})

	t.Run("code point query", func(t *testing.T) {
		out, err := runApp(t, "--db", dir, "search", "U+2026")
		require.NoError(t, err)
		assert.Contains(t, out, "1 match\n")
		assert.Contains(t, out, "HORIZONTAL ELLIPSIS")
	})

	t.Run("no matches", func(t *testing.T) {
		out, err := runApp(t, "--db", dir, "search", "zzzqqq")
		require.NoError(t, err)
		assert.Contains(t, out, "No matches found")
	})

	t.Run("query is required", func(t *testing.T) {
		_, err := runApp(t, "--db", dir, "search")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "query is required")
	})

	t.Run("exclusion only query finds nothing", func(t *testing.T) {
		out, err := runApp(t, "--db", dir, "search", "--", "-arrow")
		require.NoError(t, err)
		assert.Equal(t, "No matches found\n", out)
	})

	t.Run("conflicting modes", func(t *testing.T) {
		_, err := runApp(t, "--db", dir, "search", "--any", "--all", "arrow")
		require.Error(t, err)
	})
}

func TestAddAndHistoryCommands(t *testing.T) {
	dir := t.TempDir()

	_, err := runApp(t, "--db", dir, "search", "--any", "left", "arrow")
	require.NoError(t, err)

	out, err := runApp(t, "--db", dir, "add", "€", "U+2190", "0x41")
	require.NoError(t, err)
	assert.Contains(t, out, "added € U+20AC")
	assert.Contains(t, out, "added ← U+2190")

	out, err = runApp(t, "--db", dir, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "Match mode: any")
	assert.Contains(t, out, "A  left arrow")
	assert.Contains(t, out, "A  A U+0041")
	assert.Contains(t, out, "B  ← U+2190")
	assert.Contains(t, out, "C  € U+20AC")
}

func TestHistoryCommand_Empty(t *testing.T) {
	out, err := runApp(t, "--db", t.TempDir(), "history")
	require.NoError(t, err)
	assert.Contains(t, out, "Match mode: all")
	assert.Contains(t, out, "(none)")
}

func TestAddCommand_Invalid(t *testing.T) {
	tests := []string{"xyz", "U+110000", "U+0"}
	for _, arg := range tests {
		t.Run(arg, func(t *testing.T) {
			_, err := runApp(t, "--db", t.TempDir(), "add", arg)
			assert.ErrorIs(t, err, core.ErrInvalidChar)
		})
	}
}

func TestConfigFlag(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "charfind.toml")
	contents := "data_dir = \"" + filepath.ToSlash(filepath.Join(dir, "db")) + "\"\nmatch_mode = \"any\"\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))

	out, err := runApp(t, "--config", path, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "Match mode: any")

	_, err = os.Stat(filepath.Join(dir, "db"))
	assert.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("bogus = 1\n"), 0644))
	_, err = runApp(t, "--config", path, "history")
	assert.Error(t, err)
}

func TestParseChar(t *testing.T) {
	tests := []struct {
		arg  string
		want rune
	}{
		{"€", '€'},
		{"A", 'A'},
		{"1", '1'},
		{"20AC", '€'},
		{"U+20AC", '€'},
		{"u+1F600", 0x1F600},
		{"0x2190", '←'},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := parseChar(tt.arg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetupLogger(t *testing.T) {
	t.Run("valid log levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error", "DEBUG", "WaRn"} {
			t.Run(level, func(t *testing.T) {
				app := &cli.App{
					Name: "test",
					Flags: []cli.Flag{
						&cli.StringFlag{
							Name:  "log-level",
							Value: "warn",
						},
					},
					Before: setupLogger,
					Action: func(c *cli.Context) error {
						return nil
					},
				}

				err := app.Run([]string{"test", "--log-level", level})
				require.NoError(t, err)
			})
		}
	})

	t.Run("invalid log level returns error", func(t *testing.T) {
		_, err := runApp(t, "--log-level", "invalid", "history")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})

	t.Run("log-level flag has alias -l", func(t *testing.T) {
		app := newApp()
		var got string
		app.Commands = []*cli.Command{{
			Name: "probe",
			Action: func(c *cli.Context) error {
				got = c.String("log-level")
				return nil
			},
		}}

		err := app.Run([]string{"charfind", "-l", "debug", "probe"})
		require.NoError(t, err)
		assert.Equal(t, "debug", got)
	})
}
