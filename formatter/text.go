package formatter

import (
	"math"
	"strconv"
)

// Precision is the number of significant digits of formatted numbers
const Precision = 6

// Number formats v with six significant digits, dropping trailing zeros:
// 4000 -> "4000", 1.3612359 -> "1.36124", 1e6 -> "1e+06".
func Number(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'g', Precision, 64)
}
