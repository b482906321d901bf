package navigator

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/25x8/munin-solr/internal/catalogue"
	"github.com/25x8/munin-solr/internal/units"
)

// ErrInvalidValue - текст stat не является числом.
var ErrInvalidValue = errors.New("invalid value")

// Unknown - значение, которым Munin обозначает отсутствующие данные.
const Unknown = "U"

// Sample - извлеченный текст вместе с определением метрики. Живет только
// в пределах одного вызова.
type Sample struct {
	Definition catalogue.Definition
	Text       string
}

// Value возвращает значение в виде, пригодном для строки "<id>.value".
// Размеры переводятся в байты, NaN и бесконечности становятся Unknown.
func (s Sample) Value() (string, error) {
	if s.Definition.IsByteSized() {
		n, err := units.ToBytes(s.Text)
		if err != nil {
			return "", fmt.Errorf("%s: %w", s.Definition.ID, err)
		}
		return strconv.FormatInt(n, 10), nil
	}

	v, err := strconv.ParseFloat(s.Text, 64)
	if err != nil {
		return "", fmt.Errorf("%w: %s = %q", ErrInvalidValue, s.Definition.ID, s.Text)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Unknown, nil
	}
	return strconv.FormatFloat(v, 'f', -1, 64), nil
}
