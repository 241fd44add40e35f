package payments

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinorUnits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		price float64
		want  int64
	}{
		// prices whose float64 representation sits just below the
		// exact cent value must still convert to the full amount
		{price: 19.99, want: 1999},
		{price: 0.29, want: 29},
		{price: 4.2, want: 420},
		{price: 10, want: 1000},
		{price: 0, want: 0},
		{price: 10.555, want: 1055},
		{price: 0.5, want: 50},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MinorUnits(tt.price), "price %v", tt.price)
	}
}
