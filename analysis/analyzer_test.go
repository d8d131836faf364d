package analysis

import (
	"testing"

	"inventario/internal/domain/inventory"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeMatchedReference(t *testing.T) {
	table := inventory.Table{
		{Reference: "R1", Description: "Chain", Quantity: 5, Origin: "STIHL", Location: "LocA"},
		{Reference: "R1", Description: "Chain", Quantity: 3, Origin: inventory.SystemOrigin, Location: "LocA", IdentifierCode: "C1"},
	}

	result := Analyze(table, nil)
	require.Len(t, result.Rows, 1)

	row := result.Rows[0]
	assert.Equal(t, "R1", row.Reference)
	assert.Equal(t, 5.0, row.ManualQuantity)
	assert.Equal(t, 3.0, row.SystemQuantity)
	assert.Equal(t, 2.0, row.Difference)
	assert.Equal(t, "LocA", row.LocationBrand)
	assert.Equal(t, "LocA", row.LocationSystem)
	assert.Equal(t, "C1", row.IdentifierCodes)
	assert.Equal(t, "SIIGO, STIHL", row.Origins)
	assert.Equal(t, "STIHL", row.Brand)
	assert.True(t, row.Keyed)
	assert.Equal(t, inventory.TagSurplus, Annotate(result.Rows)[0])
}

func TestAnalyzeUnkeyedRows(t *testing.T) {
	table := inventory.Table{
		{Reference: "", Description: "Sin referencia", Quantity: 7, Origin: "SUZUKI", Location: "B1"},
		{Reference: "nan", Description: "Casco (M)", Quantity: 4, Origin: inventory.SystemOrigin, IdentifierCode: "900"},
	}

	result := Analyze(table, nil)
	require.Len(t, result.Rows, 2)

	manual := result.Rows[0]
	assert.False(t, manual.Keyed)
	assert.Equal(t, 7.0, manual.Difference)
	assert.Equal(t, 7.0, manual.ManualQuantity)
	assert.Equal(t, "B1", manual.LocationBrand)
	assert.Equal(t, "SUZUKI", manual.Brand)

	system := result.Rows[1]
	assert.Equal(t, -4.0, system.Difference)
	assert.Equal(t, 4.0, system.SystemQuantity)
	assert.Equal(t, "900", system.IdentifierCodes)
	assert.Equal(t, "", system.Brand)
}

func TestAnalyzeGroupAggregation(t *testing.T) {
	table := inventory.Table{
		{Reference: "R2", Description: "", Quantity: 1, Origin: "YAMAHA", Location: "Z"},
		{Reference: " R2", Description: "Bujía", Quantity: 2, Origin: "STIHL", Location: "A"},
		{Reference: "R2", Description: "Bujía NGK", Quantity: 4, Origin: inventory.SystemOrigin, Location: "Bodega 1", IdentifierCode: "20"},
		{Reference: "R2", Description: "Bujía NGK", Quantity: 1, Origin: inventory.SystemOrigin, Location: "Bodega 1", IdentifierCode: "10"},
		{Reference: "R1", Description: "Filtro", Quantity: 0, Origin: "STIHL"},
	}

	result := Analyze(table, nil)
	require.Len(t, result.Rows, 2)

	// группы по возрастанию референции
	assert.Equal(t, "R1", result.Rows[0].Reference)
	assert.Equal(t, "", result.Rows[0].Brand)

	row := result.Rows[1]
	assert.Equal(t, "Bujía", row.Description)
	assert.Equal(t, 3.0, row.ManualQuantity)
	assert.Equal(t, 5.0, row.SystemQuantity)
	assert.Equal(t, -2.0, row.Difference)
	assert.Equal(t, "A, Z", row.LocationBrand)
	assert.Equal(t, "Bodega 1", row.LocationSystem)
	assert.Equal(t, "10, 20", row.IdentifierCodes)
	assert.Equal(t, "SIIGO, STIHL, YAMAHA", row.Origins)
	assert.Equal(t, inventory.MultipleBrandsLabel, row.Brand)
	assert.Equal(t, 2.0, row.BrandQuantities["STIHL"])
	assert.Equal(t, 1.0, row.BrandQuantities["YAMAHA"])
}

func TestAnalyzeDifferenceProperties(t *testing.T) {
	gofakeit.Seed(11)
	origins := []inventory.Origin{"STIHL", "SUZUKI", "YAMAHA", inventory.SystemOrigin}

	for i := 0; i < 40; i++ {
		n := gofakeit.Number(1, 40)
		table := make(inventory.Table, 0, n)
		for j := 0; j < n; j++ {
			ref := ""
			if gofakeit.Bool() {
				ref = gofakeit.RandomString([]string{"R1", "R2", "R3", "R4"})
			}
			table = append(table, inventory.Row{
				Reference: ref,
				Quantity:  float64(gofakeit.Number(1, 100)),
				Origin:    origins[gofakeit.Number(0, len(origins)-1)],
			})
		}

		result := Analyze(table, nil)
		for _, row := range result.Rows {
			if row.Keyed {
				require.Equal(t, row.ManualQuantity-row.SystemQuantity, row.Difference)
				continue
			}
			if row.Origins == string(inventory.SystemOrigin) {
				require.Less(t, row.Difference, 0.0)
			} else {
				require.Greater(t, row.Difference, 0.0)
			}
		}
	}
}

func TestSummarize(t *testing.T) {
	rows := []inventory.AnalysisRow{{Difference: 2}, {Difference: 0}, {Difference: -1}}

	stats := Summarize(rows)
	assert.Equal(t, inventory.SummaryStats{
		Total:            3,
		NonZero:          2,
		SystemOverstates: 1,
		ManualOverstates: 1,
		SumDifference:    1,
	}, stats)

	assert.Equal(t, []inventory.DifferenceTag{
		inventory.TagSurplus, inventory.TagNeutral, inventory.TagDeficit,
	}, Annotate(rows))
}

func TestAnalyzeEmptyTable(t *testing.T) {
	result := Analyze(nil, nil)
	assert.Empty(t, result.Rows)
	assert.Equal(t, 0, result.Summary.Total)
}
