package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPRNGService_SameSeedSameSequence(t *testing.T) {
	a := NewPRNGService(7)
	b := NewPRNGService(7)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Color(), b.Color())
	}
	assert.Equal(t, int64(7), a.Seed())
}

func TestPRNGService_ZeroSeedUsesClock(t *testing.T) {
	s := NewPRNGService(0)
	assert.NotZero(t, s.Seed())
	assert.Equal(t, uint8(255), s.Color().A)
}
