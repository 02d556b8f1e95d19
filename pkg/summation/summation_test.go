package summation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSum(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{-5, 0},
		{0, 0},
		{1, 1},
		{2, 3},
		{5, 15},
		{100, 5050},
		{1000, 500500},
	}
	funcs := map[string]func(int) int{
		"closed form": SumClosedForm,
		"recursive":   SumRecursive,
		"iterative":   SumIterative,
	}
	for name, fn := range funcs {
		for _, tt := range tests {
			assert.Equal(t, tt.want, fn(tt.n), "%s(%d)", name, tt.n)
		}
	}
}
