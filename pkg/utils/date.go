package utils

import (
	"strings"
	"time"
)

var sheetDateLayouts = []string{
	time.DateOnly,
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"20060102",
}

// NormalizeDate devolve a data no formato YYYY-MM-DD quando algum layout conhecido reconhece o valor;
// caso contrário devolve o valor original sem espaços
func NormalizeDate(value string) string {
	trimmed := strings.TrimSpace(value)
	for _, layout := range sheetDateLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed.Format(time.DateOnly)
		}
	}
	return trimmed
}
