package importer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"inventario/internal/domain/inventory"
)

// supportedExtensions расширения входных файлов
var supportedExtensions = map[string]bool{
	".xlsx": true,
	".xlsm": true,
	".csv":  true,
}

// DefaultSystemMarkers подстроки имени файла выгрузки учетной системы
var DefaultSystemMarkers = []string{"VALORACION", "VALORACIÓN"}

// InputFiles найденные входные файлы
type InputFiles struct {
	Brands map[inventory.Origin]string
	System string
}

// DiscoverInputs ищет в dir по одному файлу на марку и файл выгрузки.
// Имя сопоставляется без учета регистра по вхождению подстроки; при нескольких
// кандидатах берется первый по алфавиту.
func DiscoverInputs(dir string, brands []inventory.Origin, systemMarkers []string) (*InputFiles, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("input directory %s: %w", dir, errors.Join(inventory.ErrMissingInputFile, err))
	}

	if len(systemMarkers) == 0 {
		systemMarkers = DefaultSystemMarkers
	}

	found := &InputFiles{Brands: make(map[inventory.Origin]string, len(brands))}

	// os.ReadDir возвращает записи отсортированными по имени
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, "~$") || strings.HasPrefix(name, ".") {
			continue
		}
		ext := strings.ToLower(filepath.Ext(name))
		if !supportedExtensions[ext] {
			continue
		}

		stem := NormalizeHeader(strings.TrimSuffix(name, filepath.Ext(name)))
		path := filepath.Join(dir, name)

		if brand, ok := matchBrand(stem, brands); ok {
			if _, taken := found.Brands[brand]; !taken {
				found.Brands[brand] = path
			}
			continue
		}
		if found.System == "" && containsAny(stem, systemMarkers) {
			found.System = path
		}
	}

	var missing []string
	for _, brand := range brands {
		if _, ok := found.Brands[brand]; !ok {
			missing = append(missing, string(brand))
		}
	}
	if found.System == "" {
		missing = append(missing, NormalizeHeader(systemMarkers[0]))
	}
	if len(missing) > 0 {
		return nil, &inventory.MissingInputError{Dir: dir, Sources: missing}
	}

	return found, nil
}

func matchBrand(stem string, brands []inventory.Origin) (inventory.Origin, bool) {
	for _, brand := range brands {
		if strings.Contains(stem, NormalizeHeader(string(brand))) {
			return brand, true
		}
	}
	return "", false
}

// containsAny проверяет, содержит ли строка любую из подстрок
func containsAny(s string, substrings []string) bool {
	for _, substr := range substrings {
		if strings.Contains(s, NormalizeHeader(substr)) {
			return true
		}
	}
	return false
}
