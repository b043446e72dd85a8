//nolint:testpackage // White-box tests require access to unexported identifiers in this package.
package designator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func push(e *Entry, digits ...int) string {
	key := e.Key()
	for _, d := range digits {
		key = e.PushDigit(d)
	}
	return key
}

func TestEntry_StartsAllPlaceholders(t *testing.T) {
	e := New(4)
	assert.Equal(t, "----", e.String())
	assert.Empty(t, e.Key())
}

func TestEntry_LeadingZerosCollapse(t *testing.T) {
	e := New(4)
	key := push(e, 0, 0, 7)
	assert.Equal(t, "7", key)
	assert.Equal(t, "---7", e.String())
}

func TestEntry_InteriorZeroSurvives(t *testing.T) {
	e := New(4)
	key := push(e, 0, 7, 0)
	assert.Equal(t, "70", key)
	assert.Equal(t, "--70", e.String())
}

func TestEntry_SingleLeadingZeroResets(t *testing.T) {
	e := New(4)
	push(e, 7)
	assert.Equal(t, "---7", e.String())

	// A zero shifting into the leading slot wipes the buffer back toward
	// placeholders once the nonzero digit falls off.
	push(e, 0, 0, 0, 0)
	assert.Equal(t, "----", e.String())
	assert.Empty(t, e.Key())
}

func TestEntry_ShiftDropsOldestDigit(t *testing.T) {
	e := New(4)
	key := push(e, 1, 2, 3, 4, 5)
	assert.Equal(t, "2345", key)
	assert.Equal(t, "2345", e.String())
}

func TestEntry_IgnoresOutOfRangeInput(t *testing.T) {
	e := New(3)
	push(e, 4, 2)
	assert.Equal(t, "42", e.PushDigit(11))
	assert.Equal(t, "-42", e.String())
}

func TestEntry_ResetChangesWidth(t *testing.T) {
	e := New(4)
	push(e, 9, 9)
	e.Reset(3)
	assert.Equal(t, "---", e.String())
	assert.Empty(t, e.Key())
	assert.Equal(t, 3, e.Width())
}

func TestEntry_SetKeyRightAligns(t *testing.T) {
	e := New(4)
	e.SetKey(42)
	assert.Equal(t, "--42", e.String())
	assert.Equal(t, "42", e.Key())
}

func TestEntry_SetKeyWiderThanBuffer(t *testing.T) {
	e := New(3)
	e.SetKey(7000)
	assert.Equal(t, "7000", e.String())
	assert.Equal(t, "7000", e.Key())
}

func TestEntry_TypingContinuesAfterAdoption(t *testing.T) {
	e := New(4)
	e.SetKey(42)
	key := e.PushDigit(1)
	assert.Equal(t, "421", key)
	assert.Equal(t, "-421", e.String())
}
