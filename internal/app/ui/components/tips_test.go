package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_RandomTip(t *testing.T) {
	for range 20 {
		assert.Contains(t, Tips, RandomTip())
	}
}
