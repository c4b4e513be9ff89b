package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shafin098/pakhi-bhasha/perr"
	"github.com/Shafin098/pakhi-bhasha/token"
)

func allTokens(t *testing.T, src string) []token.Token {
	t.Helper()
	l := New(src)
	var toks []token.Token
	for {
		tok, err := l.NextToken()
		require.NoError(t, err)
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			return toks
		}
	}
}

func TestNextTokenCoreStatement(t *testing.T) {
	toks := allTokens(t, `নাম মাস = ১; দেখাও মাস;`)
	want := []token.Type{
		token.NAAM, token.IDENTIFIER, token.ASSIGN, token.NUMBER, token.SEMI,
		token.DEKHAO, token.IDENTIFIER, token.SEMI, token.EOF,
	}
	got := make([]token.Type, len(toks))
	for i, tk := range toks {
		got[i] = tk.Type
	}
	assert.Equal(t, want, got)
}

func TestNumberAcceptsBengaliAndAsciiDigits(t *testing.T) {
	toks := allTokens(t, `১২৩ 456 ১২.৫`)
	require.Len(t, toks, 4)
	assert.Equal(t, "১২৩", toks[0].Literal)
	assert.Equal(t, "456", toks[1].Literal)
	assert.Equal(t, "১২.৫", toks[2].Literal)
}

func TestHyphenIsPartOfIdentifier(t *testing.T) {
	toks := allTokens(t, `_লিস্ট-পুশ`)
	require.Len(t, toks, 2)
	assert.Equal(t, token.IDENTIFIER, toks[0].Type)
	assert.Equal(t, "_লিস্ট-পুশ", toks[0].Literal)
}

func TestStringEscapes(t *testing.T) {
	toks := allTokens(t, `"ক\nখ\t\"গ\\"`)
	require.Len(t, toks, 2)
	assert.Equal(t, "ক\nখ\t\"গ\\", toks[0].Literal)
}

func TestUnknownStringEscapeErrors(t *testing.T) {
	l := New(`"খারাপ\z"`)
	_, err := l.NextToken()
	require.Error(t, err)
	var perrErr *perr.Error
	require.ErrorAs(t, err, &perrErr)
	assert.Equal(t, perr.LexError, perrErr.Kind)
}

func TestComment(t *testing.T) {
	toks := allTokens(t, "নাম # এটি একটি মন্তব্য # ক = ১;")
	want := []token.Type{token.NAAM, token.IDENTIFIER, token.ASSIGN, token.NUMBER, token.SEMI, token.EOF}
	got := make([]token.Type, len(toks))
	for i, tk := range toks {
		got[i] = tk.Type
	}
	assert.Equal(t, want, got)
}

func TestUnterminatedCommentErrors(t *testing.T) {
	l := New("# চিরকাল")
	_, err := l.NextToken()
	assert.Error(t, err)
}

func TestUnterminatedStringErrors(t *testing.T) {
	l := New(`"অসমাপ্ত`)
	_, err := l.NextToken()
	assert.Error(t, err)
}

func TestOperatorsAndPunctuators(t *testing.T) {
	toks := allTokens(t, `{ } ( ) [ ] , ; = + - * / % == != < <= > >= && || ! @ ->`)
	want := []token.Type{
		token.LBRACE, token.RBRACE, token.LPAREN, token.RPAREN, token.LBRACKET, token.RBRACKET,
		token.COMMA, token.SEMI, token.ASSIGN, token.PLUS, token.MINUS, token.STAR, token.SLASH,
		token.PERCENT, token.EQ, token.NEQ, token.LT, token.LE, token.GT, token.GE, token.AND,
		token.OR, token.NOT, token.AT, token.ARROW, token.EOF,
	}
	got := make([]token.Type, len(toks))
	for i, tk := range toks {
		got[i] = tk.Type
	}
	assert.Equal(t, want, got)
}

func TestKeywords(t *testing.T) {
	src := `নাম দেখাও যদি অথবা লুপ আবার থামাও ফাং ফেরত মডিউল সত্য মিথ্যা শূন্য`
	toks := allTokens(t, src)
	want := []token.Type{
		token.NAAM, token.DEKHAO, token.JODI, token.OTHOBA, token.LOOP, token.ABAR,
		token.THAMAO, token.FUNG, token.FERT, token.MODULE, token.SHOTTO, token.MITHYA,
		token.SHUNNO, token.EOF,
	}
	got := make([]token.Type, len(toks))
	for i, tk := range toks {
		got[i] = tk.Type
	}
	assert.Equal(t, want, got)
}

func TestIllegalCharacter(t *testing.T) {
	l := New("ক ? খ")
	_, err := l.NextToken()
	require.NoError(t, err)
	_, err = l.NextToken()
	assert.Error(t, err)
}

func TestPositionTracking(t *testing.T) {
	l := New("ক\nখ")
	tok1, err := l.NextToken()
	require.NoError(t, err)
	assert.Equal(t, 1, tok1.Line)

	tok2, err := l.NextToken()
	require.NoError(t, err)
	assert.Equal(t, 2, tok2.Line)
}
