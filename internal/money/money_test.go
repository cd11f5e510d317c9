package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseInput(t *testing.T) {
	assert.EqualValues(t, 4500, ParseInput("4500"))
	assert.EqualValues(t, 4500, ParseInput("R$ 45,00"))
	assert.EqualValues(t, 500, ParseInput("500"))
	assert.EqualValues(t, 0, ParseInput(""))
	assert.EqualValues(t, 0, ParseInput("abc"))
	assert.EqualValues(t, 0, ParseInput("0"))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "R$ 5,00", Format(500))
	assert.Equal(t, "R$ 45,00", Format(4500))
	assert.Equal(t, "R$ 52,00", Format(5200))
	assert.Equal(t, "R$ 84,50", Format(8450))
	assert.Equal(t, "R$ 1.240,50", Format(124050))
	assert.Equal(t, "R$ 0,05", Format(5))
	assert.Equal(t, "R$ 0,00", Format(0))
	assert.Equal(t, "R$ 1.000.000,99", Format(100000099))
}

func TestFormatInput(t *testing.T) {
	assert.Equal(t, "R$ 5,00", FormatInput("500"))
	assert.Equal(t, "", FormatInput("0"))
	assert.Equal(t, "", FormatInput(""))
	assert.Equal(t, "R$ 45,00", FormatInput("R$ 45,00"))
}
