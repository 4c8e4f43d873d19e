package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "2025-03-01", want: "2025-03-01"},
		{input: " 2025/03/01 ", want: "2025-03-01"},
		{input: "03/01/2025", want: "2025-03-01"},
		{input: "3/1/2025", want: "2025-03-01"},
		{input: "20250301", want: "2025-03-01"},
		{input: "amanhã", want: "amanhã"},
		{input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDate(tt.input))
		})
	}
}
