package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalog(t *testing.T) {
	seed, err := LoadCatalog("catalog.yaml")
	require.NoError(t, err)
	require.Len(t, seed.Vendors, 2)

	chai := seed.Vendors[0]
	assert.Equal(t, "vendor-chai", chai.ID)
	require.NotNil(t, chai.Rating)
	assert.InDelta(t, 4.6, *chai.Rating, 1e-9)
	assert.InDelta(t, 1500.0, chai.DeliveryRadius, 1e-9)
	require.Len(t, chai.Products, 2)
	assert.Equal(t, "cup", chai.Products[0].Unit)
	assert.Nil(t, chai.Products[0].Active)

	okra := seed.Vendors[1].Products[2]
	require.NotNil(t, okra.Active)
	assert.False(t, *okra.Active)
}

func TestLoadCatalog_RequiresVendorID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("vendors:\n  - name: Nameless\n"), 0o600))

	_, err := LoadCatalog(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no id")
}

func TestLoadCatalog_MissingFile(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
