// Package units переводит размеры вида "12.5 MB" из статистики Solr в байты.
package units

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrUnknownUnit означает, что формат данных Solr изменился несовместимо.
	ErrUnknownUnit = errors.New("unknown unit")
	// ErrInvalidQuantity возвращается, если строка не имеет вид "<число> <единица>".
	ErrInvalidQuantity = errors.New("invalid quantity")
)

// shifts - сдвиг в битах для каждой поддерживаемой единицы.
var shifts = map[string]uint{
	"KB": 10,
	"MB": 20,
	"GB": 30,
}

// ToBytes преобразует "<число> <единица>" в количество байт.
// Дробная часть байта отбрасывается (округление к нулю).
func ToBytes(text string) (int64, error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidQuantity, text)
	}

	shift, ok := shifts[fields[1]]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, fields[1])
	}

	value, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidQuantity, text)
	}

	// целые значения сдвигаем напрямую, чтобы не терять точность на больших числах
	if n, err := strconv.ParseInt(fields[0], 10, 64); err == nil {
		return n << shift, nil
	}

	return int64(math.Trunc(value * float64(uint64(1)<<shift))), nil
}
