package consolidation

import (
	"testing"

	"inventario/importer"
	"inventario/internal/domain/inventory"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mockAdapter мок адаптера источника
type mockAdapter struct {
	mock.Mock
}

func (m *mockAdapter) Read(path string) (*importer.AdapterResult, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*importer.AdapterResult), args.Error(1)
}

func (m *mockAdapter) Origin() inventory.Origin {
	return inventory.Origin(m.Called().String(0))
}

func TestConsolidatePreservesOrderAndScrubsBlanks(t *testing.T) {
	stihl := inventory.Table{
		{Reference: " R1 ", Description: "Motosierra", Quantity: 5, Origin: "STIHL", Location: "nan"},
		{Reference: "NaN", Description: "Cadena", Quantity: 1, Origin: "STIHL"},
	}
	system := inventory.Table{
		{Reference: "R1", Description: "Motosierra", Quantity: 3, Origin: inventory.SystemOrigin, Location: "Bodega 2", IdentifierCode: "nan"},
	}

	result := Consolidate(stihl, nil, system)
	require.Len(t, result, 3)

	assert.Equal(t, "R1", result[0].Reference)
	assert.Equal(t, "", result[0].Location)
	assert.Equal(t, "", result[1].Reference)
	assert.Equal(t, inventory.SystemOrigin, result[2].Origin)
	assert.Equal(t, "", result[2].IdentifierCode)
	assert.Equal(t, "Bodega 2", result[2].Location)

	// входные таблицы не меняются
	assert.Equal(t, " R1 ", stihl[0].Reference)
}

func TestConsolidateLosslessRowCount(t *testing.T) {
	gofakeit.Seed(7)
	origins := []inventory.Origin{"STIHL", "SUZUKI", "YAMAHA", inventory.SystemOrigin}

	for i := 0; i < 30; i++ {
		var outputs []inventory.Table
		expected := 0
		var order []string

		for _, origin := range origins {
			n := gofakeit.Number(0, 20)
			table := make(inventory.Table, 0, n)
			for j := 0; j < n; j++ {
				ref := gofakeit.Numerify("REF-#####")
				table = append(table, inventory.Row{
					Reference:   ref,
					Description: gofakeit.ProductName(),
					Quantity:    float64(gofakeit.Number(0, 50)),
					Origin:      origin,
				})
				order = append(order, ref)
			}
			expected += n
			outputs = append(outputs, table)
		}

		result := Consolidate(outputs...)
		require.Len(t, result, expected)
		for j, row := range result {
			require.Equal(t, order[j], row.Reference)
		}
	}
}

func TestConsolidatorBuild(t *testing.T) {
	brand := new(mockAdapter)
	brand.On("Read", "stihl.xlsx").Return(&importer.AdapterResult{
		Origin: "STIHL",
		Rows:   inventory.Table{{Reference: "R1", Quantity: 5, Origin: "STIHL"}},
	}, nil)

	system := new(mockAdapter)
	system.On("Read", "valoracion.xlsx").Return(&importer.AdapterResult{
		Origin:    inventory.SystemOrigin,
		Malformed: 2,
		Rows:      inventory.Table{{Reference: "R1", Quantity: 3, Origin: inventory.SystemOrigin}},
	}, nil)

	var seen []inventory.Origin
	table, err := NewConsolidator(
		Source{Adapter: brand, Path: "stihl.xlsx"},
		Source{Adapter: system, Path: "valoracion.xlsx"},
	).OnSource(func(r *importer.AdapterResult) {
		seen = append(seen, r.Origin)
	}).Build()

	require.NoError(t, err)
	assert.Len(t, table, 2)
	assert.Equal(t, []inventory.Origin{"STIHL", inventory.SystemOrigin}, seen)
	brand.AssertExpectations(t)
	system.AssertExpectations(t)
}

func TestConsolidatorBuildPropagatesAdapterError(t *testing.T) {
	adapterErr := &inventory.MissingColumnError{File: "suzuki.xlsx", Column: importer.FieldQuantity}

	failing := new(mockAdapter)
	failing.On("Read", "suzuki.xlsx").Return(nil, adapterErr)

	never := new(mockAdapter)

	_, err := NewConsolidator(
		Source{Adapter: failing, Path: "suzuki.xlsx"},
		Source{Adapter: never, Path: "yamaha.xlsx"},
	).Build()

	require.Error(t, err)
	assert.Same(t, adapterErr, err)
	never.AssertNotCalled(t, "Read", mock.Anything)
}

func TestConsolidatorBuildWithoutSources(t *testing.T) {
	_, err := NewConsolidator().Build()
	assert.Error(t, err)
}
