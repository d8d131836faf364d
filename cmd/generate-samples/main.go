package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"inventario/internal/config"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/xuri/excelize/v2"
)

// product позиция, общая для файла марки и выгрузки
type product struct {
	code        string
	reference   string
	description string
	location    string
	counted     int
	balance     int
}

func main() {
	dir := flag.String("dir", "inputs", "каталог для сгенерированных файлов")
	perBrand := flag.Int("n", 50, "позиций на марку")
	seed := flag.Int64("seed", 0, "seed генератора")
	flag.Parse()

	gofakeit.Seed(*seed)

	if err := os.MkdirAll(*dir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	systemRows := [][]interface{}{
		{"VALORACIÓN DE INVENTARIO"},
		{fmt.Sprintf("Fecha de corte: %s", gofakeit.Date().Format("2006-01-02"))},
		{},
		{"Código producto", "Nombre producto", "Referencia fábrica", "Saldo cantidades"},
	}

	nextCode := 1000
	for _, brand := range config.GetDefaults().Brands {
		fmt.Printf("Generating %s: %d records...\n", brand, *perBrand)

		brandRows := [][]interface{}{
			{fmt.Sprintf("INVENTARIO FÍSICO %s", brand)},
			{"Responsable", gofakeit.Name()},
			{"Referencia", "Descripción", "Cantidad", "Ubicación"},
		}

		for i := 0; i < *perBrand; i++ {
			p := generateProduct(brand, &nextCode)

			// часть позиций есть только в одном из источников
			switch {
			case i%10 == 0:
				brandRows = append(brandRows, []interface{}{p.reference, p.description, p.counted, p.location})
			case i%10 == 1:
				systemRows = append(systemRows, systemRow(p))
			default:
				brandRows = append(brandRows, []interface{}{p.reference, p.description, p.counted, p.location})
				systemRows = append(systemRows, systemRow(p))
			}
		}

		path := filepath.Join(*dir, fmt.Sprintf("INVENTARIO_%s.xlsx", brand))
		if err := writeSheet(path, "Conteo", brandRows); err != nil {
			log.Fatalf("Failed to write %s: %v", path, err)
		}
		fmt.Printf("  ✓ %s\n", path)
	}

	path := filepath.Join(*dir, "VALORACION_INVENTARIO.xlsx")
	if err := writeSheet(path, "Valoracion", systemRows); err != nil {
		log.Fatalf("Failed to write %s: %v", path, err)
	}
	fmt.Printf("  ✓ %s\n", path)
}

func generateProduct(brand string, nextCode *int) product {
	*nextCode++
	counted := gofakeit.Number(0, 40)
	balance := counted
	// примерно треть позиций расходится с учетом
	if gofakeit.Number(1, 3) == 1 {
		balance += gofakeit.Number(-5, 5)
		if balance < 0 {
			balance = 0
		}
	}

	return product{
		code:        fmt.Sprintf("%d", *nextCode),
		reference:   strings.ToUpper(gofakeit.Numerify(gofakeit.Lexify("??-####"))),
		description: fmt.Sprintf("%s %s %s", gofakeit.ProductName(), brand, gofakeit.Color()),
		location:    fmt.Sprintf("%s-%d", gofakeit.RandomString([]string{"A", "B", "C", "D"}), gofakeit.Number(1, 20)),
		counted:     counted,
		balance:     balance,
	}
}

func systemRow(p product) []interface{} {
	name := p.description
	if gofakeit.Bool() {
		name = fmt.Sprintf("%s (Bodega %d)", name, gofakeit.Number(1, 3))
	}
	return []interface{}{p.code, name, p.reference, p.balance}
}

func writeSheet(path, sheet string, rows [][]interface{}) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return err
	}
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}
