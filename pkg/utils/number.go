package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const microsPerUnit = 1_000_000

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// MicrosToCurrency converte micros (1/1.000.000 da moeda) para o valor monetário
func MicrosToCurrency(micros int64) float64 {
	return RoundWithTwoDecimalPlace(float64(micros) / microsPerUnit)
}

func CurrencyToMicros(value float64) int64 {
	return int64(math.Round(value * microsPerUnit))
}

// ParseCurrency aceita valores como "1234.5", "$1,234.50" ou "1 234.50"
func ParseCurrency(value string) (float64, error) {
	cleaned := strings.TrimSpace(value)
	cleaned = strings.TrimLeft(cleaned, "$€£R ")
	cleaned = strings.NewReplacer(",", "", " ", "").Replace(cleaned)

	if cleaned == "" {
		return 0, fmt.Errorf("empty currency value")
	}

	parsed, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid currency value %q: %w", value, err)
	}

	return parsed, nil
}
