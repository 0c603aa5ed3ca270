package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func resetFlags() {
	flagJSON = false
	flagNoLexeme = false
	flagNoLiteral = false
}

func TestScanSource_Text(t *testing.T) {
	resetFlags()
	var buf bytes.Buffer

	err := scanSource(&buf, "let x := 42;", "demo.alan")
	assert.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "== demo.alan ==")
	assert.Contains(t, out, "LET")
	assert.Contains(t, out, `lexeme="x"`)
	assert.Contains(t, out, "ASSIGN")
	assert.Contains(t, out, "literal=42")
	assert.Contains(t, out, "SEMICOLON")
}

func TestScanSource_JSON(t *testing.T) {
	resetFlags()
	flagJSON = true
	defer resetFlags()

	var buf bytes.Buffer
	err := scanSource(&buf, "print 7", "demo.alan")
	assert.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)

	var first outToken
	assert.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "PRINT", first.Type)
	assert.Equal(t, "demo.alan", first.File)
	assert.Equal(t, 1, first.Line)

	var second outToken
	assert.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, "INTEGER", second.Type)
	assert.Equal(t, float64(7), second.Literal)
}

func TestScanSource_OverflowRendersSnippet(t *testing.T) {
	resetFlags()
	var buf bytes.Buffer

	err := scanSource(&buf, "let n := 2147483648;", "big.alan")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "LEXICAL ERROR in big.alan at 1:10:")
	assert.Contains(t, err.Error(), "^")
}
