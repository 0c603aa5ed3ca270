package alanlang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupName(t *testing.T) {
	reserved := map[string]TokenType{
		"and":   AND,
		"array": ARRAY,
		"if":    IF,
		"let":   LET,
		"not":   NOT,
		"or":    OR,
		"print": PRINT,
		"while": WHILE,
	}
	for spelling, want := range reserved {
		assert.Equal(t, want, LookupName(spelling), "spelling %q", spelling)
	}

	assert.Equal(t, NAME, LookupName("If"), "keyword lookup is exact-case")
	assert.Equal(t, NAME, LookupName("WHILE"))
	assert.Equal(t, NAME, LookupName("x"))
	assert.Equal(t, NAME, LookupName("printx"))
	assert.Equal(t, NAME, LookupName(""))

	// The BOOLEAN variant is reserved; no spelling maps to it.
	assert.Equal(t, NAME, LookupName("true"))
	assert.Equal(t, NAME, LookupName("false"))
}

func TestTokenTypeString(t *testing.T) {
	assert.Equal(t, "ASSIGN", ASSIGN.String())
	assert.Equal(t, "EQUAL_SIGN", EQUAL_SIGN.String())
	assert.Equal(t, "INVALID", INVALID.String())
	assert.Equal(t, "NAME", NAME.String())
	assert.Equal(t, "UNKNOWN", TokenType(-1).String())

	// Every declared type has a distinct name.
	seen := map[string]TokenType{}
	for tt := INVALID; tt <= NE; tt++ {
		name := tt.String()
		assert.NotEqual(t, "UNKNOWN", name, "type %d has no name", tt)
		if prev, dup := seen[name]; dup {
			t.Fatalf("name %q used by both %d and %d", name, prev, tt)
		}
		seen[name] = tt
	}
}
