package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruslanmv/factoryai/internal/errdefs"
)

func TestSerialize(t *testing.T) {
	t.Run("Should encode a missing log file as null", func(t *testing.T) {
		cfg := newTestConfig(t)

		data, err := json.Marshal(cfg)
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Contains(t, decoded, "log_file")
		assert.Nil(t, decoded["log_file"])
		assert.Equal(t, cfg.RootDir(), decoded["root_dir"])
		assert.Equal(t, "INFO", decoded["log_level"])

		components, ok := decoded["components"].(map[string]any)
		require.True(t, ok)
		assert.Len(t, components, 3)
		debug, ok := components[FactoryDebug].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, false, debug["enabled"])
		assert.Equal(t, "src/platfom/Factory-Debug", debug["path"])
	})
}

func TestDeserialize(t *testing.T) {
	t.Run("Should round trip a configuration with a null log file", func(t *testing.T) {
		cfg := newTestConfig(t)

		data, err := json.Marshal(cfg)
		require.NoError(t, err)
		got, err := Deserialize(data)
		require.NoError(t, err)

		assert.Equal(t, cfg, got)
	})

	t.Run("Should repopulate defaults for an empty component mapping", func(t *testing.T) {
		root := t.TempDir()
		data := []byte(`{"root_dir":"` + root + `","submodules_dir":"src/platfom","log_level":"INFO","log_file":null,"components":{}}`)

		got, err := Deserialize(data)
		require.NoError(t, err)

		want, err := New(root)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("Should apply defaults for optional keys", func(t *testing.T) {
		root := t.TempDir()
		got, err := Deserialize([]byte(`{"root_dir":"` + root + `","components":{"x":{"name":"X","path":"x","url":"u"}}}`))
		require.NoError(t, err)

		assert.Equal(t, "INFO", got.LogLevel())
		assert.Empty(t, got.LogFile())
		d, err := got.Descriptor("x")
		require.NoError(t, err)
		assert.True(t, d.Enabled)
	})

	t.Run("Should reject malformed input", func(t *testing.T) {
		testCases := []struct {
			name string
			data string
		}{
			{"invalid json", `{"root_dir":`},
			{"missing root_dir", `{"log_level":"INFO"}`},
			{"wrong type", `{"root_dir":42}`},
			{"component without url", `{"root_dir":"/r","components":{"x":{"name":"X","path":"x"}}}`},
			{"component without name", `{"root_dir":"/r","components":{"x":{"path":"x","url":"u"}}}`},
			{"null component", `{"root_dir":"/r","components":{"x":null}}`},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := Deserialize([]byte(tc.data))
				require.Error(t, err)
				assert.ErrorIs(t, err, errdefs.ErrInvalidConfiguration)
			})
		}
	})

	t.Run("Should tell an empty root_dir apart from a missing one", func(t *testing.T) {
		_, err := Deserialize([]byte(`{"root_dir":""}`))
		require.Error(t, err)
		assert.ErrorIs(t, err, errdefs.ErrInvalidConfiguration)
		assert.Equal(t, "invalid configuration: key 'root_dir' is empty", err.Error())

		_, err = Deserialize([]byte(`{"log_level":"INFO"}`))
		require.Error(t, err)
		assert.Equal(t, "invalid configuration: missing required key 'root_dir'", err.Error())
	})
}
