package physicalcount

import (
	"testing"

	"inventario/internal/domain/inventory"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEmitsPrimaryThenZeroRows(t *testing.T) {
	rows := []inventory.AnalysisRow{
		{Reference: "R1", Description: "Chain", ManualQuantity: 5, LocationBrand: "LocA", IdentifierCodes: "C1"},
	}

	export := Build(rows, DefaultOptions())
	require.Len(t, export, 3)

	assert.Equal(t, inventory.ExportRow{
		ProductCode:      "C1",
		Label:            "Chain (LocA)",
		FactoryReference: "R1",
		WarehouseCode:    DefaultPrimaryWarehouse,
		CountedQuantity:  5,
	}, export[0])
	assert.Equal(t, DefaultEcommerceWarehouse, export[1].WarehouseCode)
	assert.Equal(t, 0.0, export[1].CountedQuantity)
	assert.Equal(t, "", export[2].WarehouseCode)
	assert.Equal(t, 0.0, export[2].CountedQuantity)
}

func TestBuildFiltersAmbiguousCodes(t *testing.T) {
	rows := []inventory.AnalysisRow{
		{Reference: "R1", IdentifierCodes: ""},
		{Reference: "R2", IdentifierCodes: "10, 20"},
		{Reference: "R3", IdentifierCodes: "30", ManualQuantity: 1},
	}

	export := Build(rows, Options{PrimaryWarehouse: "3-Almacén"})
	require.Len(t, export, 1)
	assert.Equal(t, "R3", export[0].FactoryReference)
}

func TestBuildSortsByCodeStably(t *testing.T) {
	rows := []inventory.AnalysisRow{
		{Reference: "A", IdentifierCodes: "100", ManualQuantity: 1},
		{Reference: "B", IdentifierCodes: "20", ManualQuantity: 2},
		{Reference: "C", IdentifierCodes: "3", ManualQuantity: 3},
	}

	export := Build(rows, DefaultOptions())
	require.Len(t, export, 9)

	var codes []string
	for _, row := range export {
		codes = append(codes, row.ProductCode)
	}
	assert.Equal(t, []string{"3", "3", "3", "20", "20", "20", "100", "100", "100"}, codes)

	// внутри одного кода сохраняется порядок выпуска: основной склад, затем обнуления
	assert.Equal(t, []string{DefaultPrimaryWarehouse, DefaultEcommerceWarehouse, ""},
		[]string{export[0].WarehouseCode, export[1].WarehouseCode, export[2].WarehouseCode})
	assert.Equal(t, 3.0, export[0].CountedQuantity)
}

func TestBuildWithoutZeroWarehouses(t *testing.T) {
	rows := []inventory.AnalysisRow{{IdentifierCodes: "7", ManualQuantity: 2}}

	export := Build(rows, Options{})
	require.Len(t, export, 1)
	assert.Equal(t, DefaultPrimaryWarehouse, export[0].WarehouseCode)
}

func TestBuildNeverExportsMultiCodeRows(t *testing.T) {
	gofakeit.Seed(3)

	for i := 0; i < 30; i++ {
		n := gofakeit.Number(1, 20)
		rows := make([]inventory.AnalysisRow, 0, n)
		for j := 0; j < n; j++ {
			codes := ""
			switch gofakeit.Number(0, 2) {
			case 1:
				codes = gofakeit.Numerify("####")
			case 2:
				codes = gofakeit.Numerify("####, ####")
			}
			rows = append(rows, inventory.AnalysisRow{
				Reference:       gofakeit.Numerify("R-###"),
				IdentifierCodes: codes,
			})
		}

		for _, row := range Build(rows, DefaultOptions()) {
			require.NotEmpty(t, row.ProductCode)
			require.NotContains(t, row.ProductCode, ",")
		}
	}
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Chain", Label("Chain", "", ""))
	assert.Equal(t, "Chain (LocA)", Label("Chain", "LocA", "Bodega 2"))
	assert.Equal(t, "Chain (Bodega 2)", Label("Chain", " ", "Bodega 2"))
}

func TestCodeLess(t *testing.T) {
	assert.True(t, codeLess("9", "10"))
	assert.False(t, codeLess("10", "9"))
	assert.True(t, codeLess("10", "9A"))
	assert.False(t, codeLess("9A", "10"))
	assert.True(t, codeLess("A", "B"))
}
