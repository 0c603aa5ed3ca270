package alanlang

// TokenType represents the kind of token.
type TokenType int

const (
	// Special
	INVALID TokenType = iota

	// Values
	BOOLEAN
	INTEGER
	NAME

	// Keywords
	AND
	ARRAY
	IF
	LET
	NOT
	OR
	PRINT
	WHILE

	// Symbols
	ASTERISK
	BRACE_LEFT
	BRACE_RIGHT
	BRACKET_LEFT
	BRACKET_RIGHT
	COLON
	DOT
	EQUAL_SIGN
	MINUS
	PAREN_LEFT
	PAREN_RIGHT
	PLUS
	SEMICOLON
	SLASH

	// Operators
	ASSIGN
	EQ
	GE
	GT
	LE
	LT
	NE
)

// Token is a lexical token with optional literal value.
type Token struct {
	Type    TokenType
	Lexeme  string      // raw text slice
	Literal interface{} // parsed value: int32 for INTEGER, string for NAME, bool for BOOLEAN
	Line    int         // 1-based
	Col     int         // 0-based column of the token's first character
}

// keywords maps reserved spellings to their token type. Lookup is
// exact-case: "If" is a NAME, "if" is a keyword. Never mutated after
// initialization, so it is safe to share across concurrent lexers.
// Note: BOOLEAN has no spelling here; no input currently produces it.
var keywords = map[string]TokenType{
	"and":   AND,
	"array": ARRAY,
	"if":    IF,
	"let":   LET,
	"not":   NOT,
	"or":    OR,
	"print": PRINT,
	"while": WHILE,
}

// LookupName returns the keyword token type for an identifier spelling,
// or NAME when it is not reserved.
func LookupName(ident string) TokenType {
	if tt, ok := keywords[ident]; ok {
		return tt
	}
	return NAME
}

var tokenTypeNames = map[TokenType]string{
	INVALID:       "INVALID",
	BOOLEAN:       "BOOLEAN",
	INTEGER:       "INTEGER",
	NAME:          "NAME",
	AND:           "AND",
	ARRAY:         "ARRAY",
	IF:            "IF",
	LET:           "LET",
	NOT:           "NOT",
	OR:            "OR",
	PRINT:         "PRINT",
	WHILE:         "WHILE",
	ASTERISK:      "ASTERISK",
	BRACE_LEFT:    "BRACE_LEFT",
	BRACE_RIGHT:   "BRACE_RIGHT",
	BRACKET_LEFT:  "BRACKET_LEFT",
	BRACKET_RIGHT: "BRACKET_RIGHT",
	COLON:         "COLON",
	DOT:           "DOT",
	EQUAL_SIGN:    "EQUAL_SIGN",
	MINUS:         "MINUS",
	PAREN_LEFT:    "PAREN_LEFT",
	PAREN_RIGHT:   "PAREN_RIGHT",
	PLUS:          "PLUS",
	SEMICOLON:     "SEMICOLON",
	SLASH:         "SLASH",
	ASSIGN:        "ASSIGN",
	EQ:            "EQ",
	GE:            "GE",
	GT:            "GT",
	LE:            "LE",
	LT:            "LT",
	NE:            "NE",
}

// String returns the token type's name, e.g. "ASSIGN".
func (tt TokenType) String() string {
	if s, ok := tokenTypeNames[tt]; ok {
		return s
	}
	return "UNKNOWN"
}
