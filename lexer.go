package alanlang

import (
	"io"
	"strconv"
	"unicode/utf8"
)

// Lexer scans Alan source text into tokens. It is a forward-only,
// single-pass producer: each call to Next consumes a maximal slice of
// the input and yields exactly one token. A Lexer must not be shared
// between goroutines; the keyword table may be.
type Lexer struct {
	src   string
	start int // start index of current token
	cur   int // current index
	line  int // 1-based
	col   int // 0-based column within line

	// precise token start position
	tokStartLine int
	tokStartCol  int
}

// NewLexer creates a new lexer for the given source.
func NewLexer(src string) *Lexer {
	return &Lexer{
		src:  src,
		line: 1,
		col:  0,
	}
}

func (l *Lexer) isAtEnd() bool { return l.cur >= len(l.src) }

func (l *Lexer) peek() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	return l.src[l.cur], true
}

func (l *Lexer) advance() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	ch := l.src[l.cur]
	l.cur++
	if ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
	return ch, true
}

func (l *Lexer) skipWhitespace() {
	for !l.isAtEnd() {
		ch, _ := l.peek()
		switch ch {
		case ' ', '\t', '\r', '\n':
			l.advance()
			l.start = l.cur
		default:
			return
		}
	}
}

func (l *Lexer) makeToken(tt TokenType, lit interface{}) Token {
	tok := Token{
		Type:    tt,
		Lexeme:  l.src[l.start:l.cur],
		Literal: lit,
		Line:    l.tokStartLine,
		Col:     l.tokStartCol,
	}
	l.start = l.cur
	return tok
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isAlpha(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }
func isAlphaNum(b byte) bool {
	return (b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9') ||
		b == '_'
}

// scanInteger parses a maximal digit run as a 32-bit signed integer.
// The first digit has already been consumed by the caller.
func (l *Lexer) scanInteger() (Token, error) {
	for {
		b, ok := l.peek()
		if !ok || !isDigit(b) {
			break
		}
		l.advance()
	}
	lex := l.src[l.start:l.cur]
	v, err := strconv.ParseInt(lex, 10, 32)
	if err != nil {
		// A maximal digit run can only fail ParseInt by exceeding the range.
		l.start = l.cur
		return Token{}, &LexError{
			Line:   l.tokStartLine,
			Col:    l.tokStartCol,
			Lexeme: lex,
			Msg:    "integer literal out of 32-bit range",
		}
	}
	return l.makeToken(INTEGER, int32(v)), nil
}

// scanName parses a maximal [A-Za-z][A-Za-z0-9_]* run and resolves it
// against the keyword table. The first letter has already been consumed.
func (l *Lexer) scanName() Token {
	for {
		b, ok := l.peek()
		if !ok || !isAlphaNum(b) {
			break
		}
		l.advance()
	}
	lex := l.src[l.start:l.cur]
	if tt := LookupName(lex); tt != NAME {
		return l.makeToken(tt, nil)
	}
	return l.makeToken(NAME, lex)
}

// scanInvalid consumes the remainder of the rune whose first byte has
// already been consumed and yields an INVALID token. The bad character
// is always consumed, so scanning never loops on unrecognized input.
func (l *Lexer) scanInvalid(first byte) Token {
	if first >= utf8.RuneSelf {
		_, size := utf8.DecodeRuneInString(l.src[l.start:])
		for l.cur < l.start+size {
			l.advance()
		}
	}
	return l.makeToken(INVALID, nil)
}

// Next returns the next token, or io.EOF once the input (including any
// trailing whitespace) is exhausted. An unrecognized character is
// reported in-stream as an INVALID token; the only error besides io.EOF
// is a *LexError for an integer literal that overflows 32 bits.
func (l *Lexer) Next() (Token, error) {
	l.skipWhitespace()
	l.tokStartLine = l.line
	l.tokStartCol = l.col
	l.start = l.cur

	if l.isAtEnd() {
		return Token{}, io.EOF
	}

	ch, _ := l.advance()

	switch ch {
	case '*':
		return l.makeToken(ASTERISK, nil), nil
	case '{':
		return l.makeToken(BRACE_LEFT, nil), nil
	case '}':
		return l.makeToken(BRACE_RIGHT, nil), nil
	case '[':
		return l.makeToken(BRACKET_LEFT, nil), nil
	case ']':
		return l.makeToken(BRACKET_RIGHT, nil), nil
	case '.':
		return l.makeToken(DOT, nil), nil
	case '-':
		return l.makeToken(MINUS, nil), nil
	case '(':
		return l.makeToken(PAREN_LEFT, nil), nil
	case ')':
		return l.makeToken(PAREN_RIGHT, nil), nil
	case '+':
		return l.makeToken(PLUS, nil), nil
	case ';':
		return l.makeToken(SEMICOLON, nil), nil
	case '/':
		return l.makeToken(SLASH, nil), nil
	case ':':
		if b, ok := l.peek(); ok && b == '=' {
			l.advance()
			return l.makeToken(ASSIGN, nil), nil
		}
		return l.makeToken(COLON, nil), nil
	case '=':
		if b, ok := l.peek(); ok && b == '=' {
			l.advance()
			return l.makeToken(EQ, nil), nil
		}
		return l.makeToken(EQUAL_SIGN, nil), nil
	case '>':
		if b, ok := l.peek(); ok && b == '=' {
			l.advance()
			return l.makeToken(GE, nil), nil
		}
		return l.makeToken(GT, nil), nil
	case '<':
		if b, ok := l.peek(); ok {
			switch b {
			case '=':
				l.advance()
				return l.makeToken(LE, nil), nil
			case '>':
				l.advance()
				return l.makeToken(NE, nil), nil
			}
		}
		return l.makeToken(LT, nil), nil
	}

	if isDigit(ch) {
		return l.scanInteger()
	}
	if isAlpha(ch) {
		return l.scanName(), nil
	}

	return l.scanInvalid(ch), nil
}

// Scan tokenizes the entire remaining source. It stops at the first
// lexical error; INVALID tokens are not errors and appear in the result.
func (l *Lexer) Scan() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := l.Next()
		if err == io.EOF {
			return tokens, nil
		}
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
}
