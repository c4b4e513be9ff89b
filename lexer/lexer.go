/*
File    : pakhi-bhasha/lexer/lexer.go
Author  : Shafin098
Contact : shafin098@users.noreply.github.com
*/

// Package lexer turns Pakhi source text into a flat token stream (spec.md
// §4.1). Grounded on akashmaji946-go-mix/lexer/lexer.go's character-at-a-
// time scanning structure, but rebuilt over []rune instead of raw bytes —
// Uttam-Mahata-bhasa/lexer/lexer.go shows the same rune-based shape — since
// byte-at-a-time scanning would split multi-byte Bengali codepoints.
package lexer

import (
	"unicode"

	"github.com/Shafin098/pakhi-bhasha/digits"
	"github.com/Shafin098/pakhi-bhasha/perr"
	"github.com/Shafin098/pakhi-bhasha/token"
)

// Lexer scans one module's source text.
type Lexer struct {
	input        []rune
	position     int
	readPosition int
	ch           rune
	line         int
	column       int
}

// New returns a Lexer positioned before the first rune of src.
func New(src string) *Lexer {
	l := &Lexer{input: []rune(src), line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	l.column++
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// skipComment consumes a `# ... #` comment, l.ch already on the opening '#'.
// Returns an error if input ends before a closing '#' is found.
func (l *Lexer) skipComment(line, col int) error {
	l.readChar() // past opening '#'
	for l.ch != '#' {
		if l.ch == 0 {
			return perr.At(perr.LexError, line, col, "unterminated comment")
		}
		l.readChar()
	}
	l.readChar() // past closing '#'
	return nil
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

// isIdentPart additionally allows combining marks (Bengali vowel signs,
// virama, nukta), digits (either alphabet) and the hyphen, which spec.md
// §4.1 makes part of the identifier rather than a subtraction operator
// whenever it's embedded in an identifier-eligible run.
func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsMark(r) || digits.IsDigit(r) || r == '-'
}

// NextToken scans and returns the single next token in the input, advancing
// the lexer past it.
//
// Whitespace and `# ... #` comments are skipped before scanning begins, in a
// loop rather than a single check, since a comment may be immediately
// followed by more whitespace and then another comment. The token's own
// Line/Column are captured only after that skipping settles, so a token
// always reports the position of its own first rune, not of whatever
// whitespace or comment preceded it.
//
// Dispatch to readString/readNumber/readIdentifier/readOperator is by a
// single rune of lookahead (l.ch): a leading digit always starts a number,
// a leading letter or underscore always starts an identifier or keyword,
// and everything else falls to the operator/punctuator table.
//
// Returns:
//   - token.Token: the scanned token. Its Type is token.EOF once the input
//     is exhausted, and every later call also returns EOF.
//   - error: a *perr.Error with Kind LexError on any scan failure —
//     an unterminated string or comment, an unknown escape sequence, or an
//     unrecognized character. Callers must stop lexing on a non-nil error;
//     the lexer's internal position is not guaranteed to be recoverable
//     past the failure point.
func (l *Lexer) NextToken() (token.Token, error) {
	l.skipWhitespace()
	for l.ch == '#' {
		line, col := l.line, l.column
		if err := l.skipComment(line, col); err != nil {
			return token.Token{}, err
		}
		l.skipWhitespace()
	}

	line, col := l.line, l.column

	switch {
	case l.ch == 0:
		return token.Token{Type: token.EOF, Line: line, Column: col}, nil
	case l.ch == '"':
		return l.readString(line, col)
	case digits.IsDigit(l.ch):
		return l.readNumber(line, col), nil
	case isIdentStart(l.ch):
		return l.readIdentifier(line, col), nil
	}

	tok, err := l.readOperator(line, col)
	return tok, err
}

func (l *Lexer) simple(t token.Type, lit string, line, col int) token.Token {
	l.readChar()
	return token.Token{Type: t, Literal: lit, Line: line, Column: col}
}

func (l *Lexer) readOperator(line, col int) (token.Token, error) {
	ch := l.ch
	switch ch {
	case '{':
		return l.simple(token.LBRACE, "{", line, col), nil
	case '}':
		return l.simple(token.RBRACE, "}", line, col), nil
	case '(':
		return l.simple(token.LPAREN, "(", line, col), nil
	case ')':
		return l.simple(token.RPAREN, ")", line, col), nil
	case '[':
		return l.simple(token.LBRACKET, "[", line, col), nil
	case ']':
		return l.simple(token.RBRACKET, "]", line, col), nil
	case ',':
		return l.simple(token.COMMA, ",", line, col), nil
	case ';':
		return l.simple(token.SEMI, ";", line, col), nil
	case '+':
		return l.simple(token.PLUS, "+", line, col), nil
	case '*':
		return l.simple(token.STAR, "*", line, col), nil
	case '/':
		return l.simple(token.SLASH, "/", line, col), nil
	case '%':
		return l.simple(token.PERCENT, "%", line, col), nil
	case '@':
		return l.simple(token.AT, "@", line, col), nil
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			return l.simple(token.EQ, "==", line, col), nil
		}
		return l.simple(token.ASSIGN, "=", line, col), nil
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			return l.simple(token.NEQ, "!=", line, col), nil
		}
		return l.simple(token.NOT, "!", line, col), nil
	case '<':
		if l.peekChar() == '=' {
			l.readChar()
			return l.simple(token.LE, "<=", line, col), nil
		}
		return l.simple(token.LT, "<", line, col), nil
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			return l.simple(token.GE, ">=", line, col), nil
		}
		return l.simple(token.GT, ">", line, col), nil
	case '&':
		if l.peekChar() == '&' {
			l.readChar()
			return l.simple(token.AND, "&&", line, col), nil
		}
	case '|':
		if l.peekChar() == '|' {
			l.readChar()
			return l.simple(token.OR, "||", line, col), nil
		}
	case '-':
		if l.peekChar() == '>' {
			l.readChar()
			return l.simple(token.ARROW, "->", line, col), nil
		}
		return l.simple(token.MINUS, "-", line, col), nil
	}
	l.readChar()
	return token.Token{}, perr.At(perr.LexError, line, col, "unrecognized character %q", ch)
}

func (l *Lexer) readIdentifier(line, col int) token.Token {
	start := l.position
	for isIdentPart(l.ch) {
		l.readChar()
	}
	lit := string(l.input[start:l.position])
	return token.Token{Type: token.LookupIdent(lit), Literal: lit, Line: line, Column: col}
}

func (l *Lexer) readNumber(line, col int) token.Token {
	start := l.position
	for digits.IsDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && digits.IsDigit(l.peekChar()) {
		l.readChar()
		for digits.IsDigit(l.ch) {
			l.readChar()
		}
	}
	lit := string(l.input[start:l.position])
	return token.Token{Type: token.NUMBER, Literal: lit, Line: line, Column: col}
}

// readString scans a double-quoted literal, recognizing only the escapes
// spec.md §9 settles on: \" \\ \n \t. Any other backslash sequence is a
// LexError rather than being retained verbatim.
func (l *Lexer) readString(line, col int) (token.Token, error) {
	l.readChar() // past opening quote
	var out []rune
	for l.ch != '"' {
		if l.ch == 0 {
			return token.Token{}, perr.At(perr.LexError, line, col, "unterminated string")
		}
		if l.ch == '\\' {
			switch l.peekChar() {
			case '"':
				out = append(out, '"')
				l.readChar()
			case '\\':
				out = append(out, '\\')
				l.readChar()
			case 'n':
				out = append(out, '\n')
				l.readChar()
			case 't':
				out = append(out, '\t')
				l.readChar()
			default:
				return token.Token{}, perr.At(perr.LexError, line, col, "unknown escape sequence \\%c", l.peekChar())
			}
			l.readChar()
			continue
		}
		out = append(out, l.ch)
		l.readChar()
	}
	l.readChar() // past closing quote
	return token.Token{Type: token.STRING, Literal: string(out), Line: line, Column: col}, nil
}
