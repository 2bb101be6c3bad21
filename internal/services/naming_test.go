package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "lower case word", input: "ham", expected: "Ham"},
		{name: "upper case word", input: "HAM", expected: "Ham"},
		{name: "surrounding whitespace", input: "  pineapple \t", expected: "Pineapple"},
		{name: "every word", input: "chorizo de bilbao", expected: "Chorizo De Bilbao"},
		{name: "mixed case words", input: "kESONG pUTI", expected: "Kesong Puti"},
		{name: "inner whitespace kept", input: "all  meat", expected: "All  Meat"},
		{name: "hyphen is not a word boundary", input: "sun-dried tomato", expected: "Sun-dried Tomato"},
		{name: "non ascii", input: "ÉPINARDS frais", expected: "Épinards Frais"},
		{name: "blank", input: "   ", expected: ""},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeName(tt.input))
		})
	}
}

func TestNormalizeNameIsIdempotent(t *testing.T) {
	inputs := []string{"ham", " Hawaiian DELIGHT ", "chorizo de bilbao", "ÉPINARDS", "x", ""}
	for _, input := range inputs {
		once := NormalizeName(input)
		assert.Equal(t, once, NormalizeName(once), "input %q", input)
	}
}

func TestUniqueIDs(t *testing.T) {
	assert.Equal(t, []uint{3, 1, 2}, uniqueIDs([]uint{3, 1, 3, 2, 1}))
	assert.Empty(t, uniqueIDs(nil))
}

func TestInvalidReferenceError(t *testing.T) {
	err := &InvalidReferenceError{IDs: []uint{7, 999}}
	assert.Equal(t, "invalid topping IDs: 7, 999", err.Error())
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestConflictError(t *testing.T) {
	err := &ConflictError{Entity: "topping", Field: "name", Value: "Ham"}
	assert.Equal(t, "a topping with the name 'Ham' already exists", err.Error())
	assert.ErrorIs(t, err, ErrConflict)
}
