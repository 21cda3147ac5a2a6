package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	assert := assert.New(t)
	cfg := Default()

	assert.False(cfg.Run.PrintAST)
	assert.True(cfg.Run.Warnings)
	assert.Equal("> ", cfg.REPL.Prompt)
	assert.Empty(cfg.REPL.History)
	assert.False(cfg.Debug)
}

func TestLoad(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		want    *Config
	}{
		{
			"vowel.toml",
			`debug = true

[run]
print_ast = true
warnings = false

[repl]
prompt = "vowel> "
history = "/tmp/vowel_history"
`,
			&Config{
				Run:   Run{PrintAST: true, Warnings: false},
				REPL:  REPL{Prompt: "vowel> ", History: "/tmp/vowel_history"},
				Debug: true,
			},
		},
		{
			"vowel.yaml",
			`run:
  warnings: false
repl:
  prompt: "~ "
`,
			&Config{
				Run:  Run{PrintAST: false, Warnings: false},
				REPL: REPL{Prompt: "~ "},
			},
		},
		{
			"partial.toml",
			"[run]\nprint_ast = true\n",
			&Config{
				Run:  Run{PrintAST: true, Warnings: true},
				REPL: REPL{Prompt: "> "},
			},
		},
		{"empty.yml", "", Default()},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), tc.name, tc.content)
			cfg, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, tc.want, cfg)
		})
	}
}

func TestLoadWithErrors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		err     string
	}{
		{"vowel.json", "{}", "unsupported file extension"},
		{"vowel.toml", "[run]\nunknown = 1\n", "parse"},
		{"vowel.toml", "[run\n", "parse"},
		{"vowel.yaml", "run:\n  unknown: 1\n", "parse"},
		{"vowel.yaml", "repl:\n  prompt: \"\"\n", "repl.prompt must not be empty"},
	}

	for _, tc := range testCases {
		path := writeFile(t, t.TempDir(), tc.name, tc.content)
		_, err := Load(path)
		if assert.Error(t, err, tc.content) {
			assert.Contains(t, err.Error(), tc.err, tc.content)
		}
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDiscover(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	cfg, err := Discover(dir)
	require.NoError(err)
	require.Equal(Default(), cfg)

	writeFile(t, dir, "vowel.yaml", "debug: true\n")
	cfg, err = Discover(dir)
	require.NoError(err)
	require.True(cfg.Debug)

	// the TOML file takes precedence
	writeFile(t, dir, "vowel.toml", "debug = false\n[repl]\nprompt = \"$ \"\n")
	cfg, err = Discover(dir)
	require.NoError(err)
	require.False(cfg.Debug)
	require.Equal("$ ", cfg.REPL.Prompt)
}
