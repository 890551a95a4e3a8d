package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeref(t *testing.T) {
	deref := templateFuncs()["deref"].(func(*float64) string)

	v := 1.25
	assert.Equal(t, "1.25", deref(&v))
	assert.Equal(t, "n/a", deref(nil))
}
