package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int32
	}{
		{"empty", "", 0},
		{"single byte", "a", 97},
		{"short name", "id", 3355},
		{"collision pair Aa", "Aa", 2112},
		{"collision pair BB", "BB", 2112},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Name(tt.in))
		})
	}
}

func TestName_CollisionPairAgrees(t *testing.T) {
	assert.Equal(t, Name("Aa"), Name("BB"))
	assert.NotEqual(t, "Aa", "BB")
}

func TestName_Deterministic(t *testing.T) {
	assert.Equal(t, Name("repeatable"), Name("repeatable"))
}
