package importer

import (
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"
)

func brandAliasSets() [][]string {
	return RequiredAliasSets(DefaultBrandFields())
}

func TestFindHeaderRow(t *testing.T) {
	rows := [][]string{
		{"INVENTARIO FISICO STIHL"},
		{"Fecha", "2024-05-01"},
		{" referencia ", "Descripción", "cantidad", "Ubicación"},
		{"R1", "Motosierra", "5", "A1"},
		{"REFERENCIA", "DESCRIPCION", "CANTIDAD"},
	}

	assert.Equal(t, 2, FindHeaderRow(rows, brandAliasSets()))
}

func TestFindHeaderRowRequiresEveryField(t *testing.T) {
	rows := [][]string{
		{"REFERENCIA", "DESCRIPCION"},
		{"REFERENCIA", "CANTIDAD"},
	}

	assert.Equal(t, HeaderNotFound, FindHeaderRow(rows, brandAliasSets()))
	assert.Equal(t, HeaderNotFound, FindHeaderRow(nil, brandAliasSets()))
}

func TestFindHeaderRowNormalizesDecomposedAccents(t *testing.T) {
	decomposed := norm.NFD.String("descripción")
	rows := [][]string{{"sku", decomposed, "qty"}}

	assert.Equal(t, 0, FindHeaderRow(rows, brandAliasSets()))
}

// Добавление нематчащих строк сверху сдвигает найденный индекс ровно на их число
func TestFindHeaderRowDecoyPrefixProperty(t *testing.T) {
	gofakeit.Seed(42)
	header := []string{"CODIGO", "PRODUCTO", "STOCK"}

	for i := 0; i < 50; i++ {
		decoys := gofakeit.Number(0, 6)
		var rows [][]string
		for d := 0; d < decoys; d++ {
			rows = append(rows, []string{
				fmt.Sprintf("x-%s", gofakeit.Word()),
				fmt.Sprintf("x-%s", gofakeit.Word()),
			})
		}
		rows = append(rows, header)
		rows = append(rows, []string{gofakeit.Numerify("R####"), gofakeit.Word(), "3"})
		rows = append(rows, header)

		require.Equal(t, decoys, FindHeaderRow(rows, brandAliasSets()), "decoys=%d", decoys)
	}
}

func TestMapColumns(t *testing.T) {
	columns := []string{"Part Number", "Nombre", "QTY", "Almacen", "Observaciones", ""}
	mapped := MapColumns(columns, DefaultBrandFields())

	assert.Equal(t, []string{FieldReference, FieldDescription, FieldQuantity, FieldLocation, "Observaciones", ""}, mapped)
}

func TestMapColumnsFirstFieldWinsPerColumn(t *testing.T) {
	// "CODIGO" - алиас и кода, и референции; в таблице системы код идет первым
	mapped := MapColumns([]string{"CODIGO", "REFERENCIA", "SALDO"}, DefaultSystemFields())

	assert.Equal(t, []string{FieldProductCode, FieldFactoryReference, FieldBalance}, mapped)
}

func TestMapColumnsDuplicateCanonicalLastWins(t *testing.T) {
	table := &Table{
		Columns: MapColumns([]string{"SKU", "DESCRIPCION", "QTY", "STOCK"}, DefaultBrandFields()),
		Rows:    [][]string{{"R1", "Cadena", "1", "9"}},
	}

	assert.Equal(t, 3, table.Index(FieldQuantity))
	assert.Equal(t, "9", Cell(table.Rows[0], table.Index(FieldQuantity)))
}

func TestSampleRows(t *testing.T) {
	rows := [][]string{{" a ", "b"}, {"c"}, {"d"}}

	sample := SampleRows(rows, 2)
	assert.Equal(t, [][]string{{"A", "B"}, {"C"}}, sample)
	assert.Len(t, SampleRows(rows, 10), 3)
}

func TestHeaderedTable(t *testing.T) {
	rows := [][]string{{"title"}, {"A", "B"}, {"1", "2"}, {"3"}}

	table := HeaderedTable(rows, 1)
	assert.Equal(t, []string{"A", "B"}, table.Columns)
	assert.Len(t, table.Rows, 2)
	assert.Equal(t, "", Cell(table.Rows[1], 1))

	empty := HeaderedTable(rows, HeaderNotFound)
	assert.Empty(t, empty.Columns)
}

func TestApplyOverrides(t *testing.T) {
	fields, err := ApplyOverrides(DefaultSystemFields(), map[string][]string{
		FieldBalance: {"EXISTENCIA FINAL"},
	})
	require.NoError(t, err)

	rows := [][]string{{"CODIGO", "REFERENCIA", "EXISTENCIA FINAL"}}
	assert.Equal(t, 0, FindHeaderRow(rows, RequiredAliasSets(fields)))

	// исходная таблица не меняется
	assert.Contains(t, DefaultSystemFields()[3].Aliases, "SALDO")

	_, err = ApplyOverrides(DefaultBrandFields(), map[string][]string{"PRECIO": {"PRECIO"}})
	assert.Error(t, err)

	_, err = ApplyOverrides(DefaultBrandFields(), map[string][]string{FieldReference: {}})
	assert.Error(t, err)
}
