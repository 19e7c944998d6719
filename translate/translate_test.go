package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	Use()
	assert.Equal("~~ ACC = 7", From("~~ %v = %v", "ACC", 7))
	assert.Equal("M(3) read before written", From("M(%v) read before written", 3))
}

func TestUse(t *testing.T) {
	assert := assert.New(t)

	defer Use()

	Use("de-DE", "en-US")
	assert.Equal("line 4", From("line %d", 4))
}
