package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefines(t *testing.T) {
	assert := assert.New(t)

	d := defines{}
	assert.NoError(d.Set("SIZE=4"))
	assert.NoError(d.Set("EXPR=a=b"))
	assert.Equal("4", d["SIZE"])
	assert.Equal("a=b", d["EXPR"])

	assert.Error(d.Set("SIZE"))
	assert.Error(d.Set("=4"))

	assert.Equal("SIZE=4", defines{"SIZE": "4"}.String())
	assert.Equal("", defines{}.String())
}
