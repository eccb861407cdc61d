package presets_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/outbreak/presets"
)

func TestDefaultCatalog(t *testing.T) {
	cat := presets.Default()
	require.NotNil(t, cat)
	require.Same(t, cat, presets.Default())

	ds := cat.Diseases()
	require.Len(t, ds, 8)
	assert.Equal(t, presets.Disease{Name: "Measles (MMR)", R0: 15}, ds[0])
	assert.Equal(t, "Pneumococcal (PCV)", ds[len(ds)-1].Name)

	hib, err := cat.Disease("hib")
	require.NoError(t, err)
	assert.Equal(t, 1.3, hib.R0)

	polio, err := cat.Disease("  Polio (IPV) ")
	require.NoError(t, err)
	assert.Equal(t, 6.0, polio.R0)

	_, err = cat.Disease("smallpox")
	assert.ErrorIs(t, err, presets.ErrUnknownDisease)

	cs := cat.Coverages()
	require.Len(t, cs, 4)
	high, err := cat.Coverage("HIGH")
	require.NoError(t, err)
	assert.Equal(t, 0.90, high.Coverage)

	_, err = cat.Coverage("total")
	assert.ErrorIs(t, err, presets.ErrUnknownCoverage)

	ds[0].R0 = 99
	m, _ := cat.Disease("Measles (MMR)")
	assert.Equal(t, 15.0, m.R0, "Diseases must return a copy")
}

func TestLoad(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want error
	}{
		{"zero r0", "diseases:\n  - name: X\n    r0: 0\n", presets.ErrInvalidPreset},
		{"negative r0", "diseases:\n  - name: X\n    r0: -1\n", presets.ErrInvalidPreset},
		{"empty name", "diseases:\n  - name: ' '\n    r0: 2\n", presets.ErrInvalidPreset},
		{"coverage above one", "coverages:\n  - name: C\n    coverage: 1.5\n", presets.ErrInvalidPreset},
		{"duplicate disease", "diseases:\n  - name: A\n    r0: 2\n  - name: a\n    r0: 3\n", presets.ErrDuplicatePreset},
		{"duplicate coverage", "coverages:\n  - name: C\n    coverage: 0.1\n  - name: C\n    coverage: 0.2\n", presets.ErrDuplicatePreset},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := presets.Load(strings.NewReader(tc.yaml))
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := presets.Load(strings.NewReader("diseases:\n  - name: A\n    r0: 2\n    colour: red\n"))
	assert.Error(t, err, "unknown fields are rejected")

	cat, err := presets.Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, cat.Diseases())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("diseases:\n  - name: Mumps\n    r0: 5\n"), 0o600))

	cat, err := presets.LoadFile(path)
	require.NoError(t, err)
	d, err := cat.Disease("mumps")
	require.NoError(t, err)
	assert.Equal(t, 5.0, d.R0)

	_, err = presets.LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
