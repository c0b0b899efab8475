package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringVal(t *testing.T) {
	val := NewStringVal("initial")
	assert.NoError(t, val.setValue("updated"))
	assert.Equal(t, "updated", val.Value())
	assert.Error(t, val.setValue(100))
}

func TestIntVal(t *testing.T) {
	val := NewIntVal(0)
	assert.NoError(t, val.setValue(42))
	assert.Equal(t, 42, val.Value())

	assert.NoError(t, val.setValue(float64(43)))
	assert.Equal(t, 43, val.Value())

	assert.NoError(t, val.setValue("44"))
	assert.Equal(t, 44, val.Value())

	assert.Error(t, val.setValue("not-an-int"))
}

func TestBoolVal(t *testing.T) {
	val := NewBoolVal(false)
	assert.NoError(t, val.setValue(true))
	assert.Equal(t, true, val.Value())

	assert.NoError(t, val.setValue("false"))
	assert.Equal(t, false, val.Value())

	assert.Error(t, val.setValue("not-a-bool"))
}
