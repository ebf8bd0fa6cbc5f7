package terminal

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ruslanmv/factoryai/internal/errdefs"
	"github.com/ruslanmv/factoryai/internal/orchestrator"
)

func TestFormatList(t *testing.T) {
	assert.Equal(t, "", FormatList(nil, "•"))
	assert.Equal(t, "• a\n• b", FormatList([]string{"a", "b"}, "•"))
	assert.Equal(t, "✗ Git is not installed", FormatList([]string{"Git is not installed"}, "✗"))
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		max      int
		suffix   string
		expected string
	}{
		{"fits", "hello", 10, "...", "hello"},
		{"exact", "hello", 5, "...", "hello"},
		{"long", "hello world", 8, "...", "hello..."},
		{"custom suffix", "abcdefghij", 6, "~", "abcde~"},
		{"suffix longer than limit", "abcdefghij", 2, "...", "ab"},
		{"multibyte", "ééééé", 4, "…", "ééé…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Truncate(tt.text, tt.max, tt.suffix))
		})
	}
}

func TestIsTerminal(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = r.Close()
		_ = w.Close()
	})

	stdin := os.Stdin
	os.Stdin = r
	t.Cleanup(func() { os.Stdin = stdin })

	assert.False(t, IsTerminal())
}

func TestWidth(t *testing.T) {
	t.Run("Should fall back to 80 columns for buffers", func(t *testing.T) {
		assert.Equal(t, 80, Width(&bytes.Buffer{}))
	})

	t.Run("Should fall back to 80 columns for regular files", func(t *testing.T) {
		f, err := os.CreateTemp(t.TempDir(), "out")
		require.NoError(t, err)
		defer f.Close()
		assert.Equal(t, 80, Width(f))
	})

	t.Run("Should give the path column what the other columns leave", func(t *testing.T) {
		assert.Equal(t, 32, pathWidth(80))
		assert.Equal(t, 152, pathWidth(200))
		assert.Equal(t, 20, pathWidth(10))
	})
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatTable, "table": FormatTable, "JSON": FormatJSON, "yaml": FormatYAML} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func sampleStatus() map[string]orchestrator.ComponentStatus {
	return map[string]orchestrator.ComponentStatus{
		"factory-app-ai": {
			ID: "factory-app-ai", Name: "Factory-App-AI", Enabled: true, Available: true,
			Path: "/work/src/platfom/Factory-App-AI", URL: "https://github.com/ruslanmv/Factory-App-AI",
			Revision: "0123456789abcdef0123456789abcdef01234567",
		},
		"factory-debug": {
			ID: "factory-debug", Name: "Factory-Debug", Enabled: false, Available: false,
			Path: "/work/src/platfom/Factory-Debug", URL: "https://github.com/ruslanmv/Factory-Debug",
		},
	}
}

func TestEncode(t *testing.T) {
	t.Run("Should encode JSON with snake_case keys", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, FormatJSON, orchestrator.ValidationReport{Errors: []string{}}))

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Contains(t, decoded, "git_installed")
		assert.Contains(t, decoded, "submodules_initialized")
	})

	t.Run("Should encode YAML", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, FormatYAML, sampleStatus()))

		var decoded map[string]orchestrator.ComponentStatus
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, sampleStatus(), decoded)
	})

	t.Run("Should refuse the table format", func(t *testing.T) {
		assert.Error(t, Encode(&bytes.Buffer{}, FormatTable, nil))
	})
}

func TestPrinter(t *testing.T) {
	t.Run("Should render the status table sorted by id", func(t *testing.T) {
		var buf bytes.Buffer
		NewPrinter(&buf).Status(sampleStatus())

		out := buf.String()
		assert.Contains(t, out, "FactoryAI Component Status")
		assert.Contains(t, out, "Factory-App-AI")
		assert.Contains(t, out, "01234567")
		assert.NotContains(t, out, "0123456789abcdef")
		assert.Less(t, strings.Index(out, "factory-app-ai"), strings.Index(out, "factory-debug"))
		assert.NotContains(t, out, "No components are initialized")
		assert.NotContains(t, out, "\x1b[", "buffers get no colour")
	})

	t.Run("Should size the path column to the terminal width", func(t *testing.T) {
		long := "/work/" + strings.Repeat("nested/", 10) + "Factory-App-AI"
		status := map[string]orchestrator.ComponentStatus{
			"factory-app-ai": {ID: "factory-app-ai", Name: "Factory-App-AI", Path: long},
		}

		var narrow bytes.Buffer
		NewPrinter(&narrow).StatusTable(status)
		assert.NotContains(t, narrow.String(), long)
		assert.Contains(t, narrow.String(), long[:pathWidth(80)-3]+"...")

		var wide bytes.Buffer
		p := NewPrinter(&wide)
		p.width = 200
		p.StatusTable(status)
		assert.Contains(t, wide.String(), long)
	})

	t.Run("Should hint at sync when nothing is ready", func(t *testing.T) {
		var buf bytes.Buffer
		status := sampleStatus()
		delete(status, "factory-app-ai")
		NewPrinter(&buf).Status(status)

		assert.Contains(t, buf.String(), "No components are initialized.")
		assert.Contains(t, buf.String(), "Run 'factoryai sync' or 'make sync' to initialize submodules.")
	})

	t.Run("Should list validation issues", func(t *testing.T) {
		var buf bytes.Buffer
		NewPrinter(&buf).Validation(orchestrator.ValidationReport{
			Components: sampleStatus(),
			Errors:     []string{"Git is not installed", "Not a git repository"},
		})

		out := buf.String()
		assert.Contains(t, out, "✗ Git installed: false")
		assert.Contains(t, out, "Factory-Debug (disabled)")
		assert.Contains(t, out, "Issues Found:")
		assert.Contains(t, out, "✗ Git is not installed\n✗ Not a git repository")
	})

	t.Run("Should confirm a valid installation", func(t *testing.T) {
		var buf bytes.Buffer
		NewPrinter(&buf).Validation(orchestrator.ValidationReport{
			Valid: true, GitInstalled: true, GitVersion: "2.43.0", IsGitRepo: true, SubmodulesInitialized: true,
			Components: sampleStatus(),
		})

		out := buf.String()
		assert.Contains(t, out, "✓ Git installed: true (2.43.0)")
		assert.Contains(t, out, "✓ Installation is valid and ready to use!")
	})

	t.Run("Should print info with component states", func(t *testing.T) {
		var buf bytes.Buffer
		NewPrinter(&buf).Info(orchestrator.Info{
			Version: "0.1.0", Platform: "linux/amd64", RootDir: "/work",
			SubmodulesDir: "/work/src/platfom", LogLevel: "INFO", Components: sampleStatus(),
		})

		out := buf.String()
		assert.Contains(t, out, "Version: 0.1.0")
		assert.Contains(t, out, "Submodules Directory: /work/src/platfom")
		assert.Contains(t, out, "  • Factory-App-AI: Available")
		assert.Contains(t, out, "  • Factory-Debug: Not Initialized")
	})

	t.Run("Should print errors with details", func(t *testing.T) {
		var buf bytes.Buffer
		NewPrinter(&buf).Error(errdefs.SubmoduleNotFound("factory-app-ai"))

		assert.Equal(t,
			"✗ Error: Submodule 'factory-app-ai' not found or not initialized.\n"+
				"Details: Run 'factoryai sync' or 'make sync' to initialize submodules.\n",
			buf.String())
	})
}
