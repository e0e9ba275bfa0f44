package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText_LineEndings(t *testing.T) {
	result := NormalizeText("Line 1\r\nLine 2\rLine 3")
	assert.Equal(t, "Line 1\nLine 2\nLine 3", result)
}

func TestNormalizeText_TrailingWhitespace(t *testing.T) {
	result := NormalizeText("Name  \t\nTitle")
	assert.Equal(t, "Name\nTitle", result)
}

func TestNormalizeText_CollapsesBlankLineRuns(t *testing.T) {
	result := NormalizeText("Section A\n\n\n\n\nSection B")
	assert.Equal(t, "Section A\n\nSection B", result)
}

func TestNormalizeText_PreservesSingleBlankLine(t *testing.T) {
	result := NormalizeText("Section A\n\nSection B")
	assert.Equal(t, "Section A\n\nSection B", result)
}

func TestNormalizeText_Empty(t *testing.T) {
	assert.Empty(t, NormalizeText(""))
	assert.Empty(t, NormalizeText("  \n \t \n"))
}

func TestNormalizeText_Deterministic(t *testing.T) {
	input := "A  \r\n\r\n\r\n\r\nB"
	assert.Equal(t, NormalizeText(input), NormalizeText(input))
}
