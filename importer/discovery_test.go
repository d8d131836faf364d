package importer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"inventario/internal/domain/inventory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte{}, 0o644))
	return path
}

func TestDiscoverInputs(t *testing.T) {
	dir := t.TempDir()
	stihl := touch(t, dir, "conteo stihl mayo.xlsx")
	touch(t, dir, "stihl_zz.xlsx")
	suzuki := touch(t, dir, "Suzuki.csv")
	yamaha := touch(t, dir, "YAMAHA.xlsm")
	system := touch(t, dir, "Valoración inventario.xlsx")
	touch(t, dir, "~$YAMAHA.xlsx")
	touch(t, dir, ".hidden stihl.xlsx")
	touch(t, dir, "notas.txt")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "STIHL viejo"), 0o755))

	found, err := DiscoverInputs(dir, inventory.DefaultBrands, nil)
	require.NoError(t, err)

	assert.Equal(t, stihl, found.Brands["STIHL"])
	assert.Equal(t, suzuki, found.Brands["SUZUKI"])
	assert.Equal(t, yamaha, found.Brands["YAMAHA"])
	assert.Equal(t, system, found.System)
}

func TestDiscoverInputsMissingSources(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "STIHL.xlsx")

	_, err := DiscoverInputs(dir, inventory.DefaultBrands, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, inventory.ErrMissingInputFile))

	var missing *inventory.MissingInputError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{"SUZUKI", "YAMAHA", "VALORACION"}, missing.Sources)
}

func TestDiscoverInputsMissingDirectory(t *testing.T) {
	_, err := DiscoverInputs(filepath.Join(t.TempDir(), "absent"), inventory.DefaultBrands, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, inventory.ErrMissingInputFile))
}

func TestDiscoverInputsCustomMarkers(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "STIHL.xlsx")
	system := touch(t, dir, "export_erp.xlsx")

	found, err := DiscoverInputs(dir, []inventory.Origin{"STIHL"}, []string{"erp"})
	require.NoError(t, err)
	assert.Equal(t, system, found.System)
}
