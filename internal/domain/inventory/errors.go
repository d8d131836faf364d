package inventory

import (
	"errors"
	"fmt"
	"strings"
)

// Domain-specific errors для сверки запасов
var (
	ErrMissingInputFile      = errors.New("missing input file")
	ErrMissingHeaderRow      = errors.New("header row not found")
	ErrMissingRequiredColumn = errors.New("missing required column")
	ErrOutputWrite           = errors.New("output write failure")
)

// MissingInputError не найдены файлы для части источников
type MissingInputError struct {
	Dir     string
	Sources []string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("input files not found in %s for: %s", e.Dir, strings.Join(e.Sources, ", "))
}

func (e *MissingInputError) Unwrap() error { return ErrMissingInputFile }

// HeaderNotFoundError ни одна строка листа не содержит обязательных заголовков
type HeaderNotFoundError struct {
	File   string
	Fields []string
	Sample [][]string // первые строки листа для диагностики
}

func (e *HeaderNotFoundError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: no row contains the required headers (%s)", e.File, strings.Join(e.Fields, ", "))
	if len(e.Sample) > 0 {
		b.WriteString("; first rows:")
		for i, row := range e.Sample {
			fmt.Fprintf(&b, "\n  %d: %s", i+1, strings.Join(row, " | "))
		}
	}
	return b.String()
}

func (e *HeaderNotFoundError) Unwrap() error { return ErrMissingHeaderRow }

// MissingColumnError заголовок найден, но обязательное поле не сопоставлено
type MissingColumnError struct {
	File      string
	Column    string
	Available []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%s: required column %q not found (available: %s)",
		e.File, e.Column, strings.Join(e.Available, ", "))
}

func (e *MissingColumnError) Unwrap() error { return ErrMissingRequiredColumn }

// OutputWriteError не удалось записать выходной файл
type OutputWriteError struct {
	Path string
	Err  error
}

func (e *OutputWriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *OutputWriteError) Unwrap() []error { return []error{ErrOutputWrite, e.Err} }

// IsInputError ошибка вызвана входными данными и требует исправления оператором
func IsInputError(err error) bool {
	return errors.Is(err, ErrMissingInputFile) ||
		errors.Is(err, ErrMissingHeaderRow) ||
		errors.Is(err, ErrMissingRequiredColumn)
}
