package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shafin098/pakhi-bhasha/ast"
	"github.com/Shafin098/pakhi-bhasha/lexer"
)

func parseProgram(t *testing.T, src string) *ast.Program {
	t.Helper()
	p, err := New(lexer.New(src))
	require.NoError(t, err)
	prog, err := p.ParseProgram()
	require.NoError(t, err)
	return prog
}

func TestParseVarStatement(t *testing.T) {
	prog := parseProgram(t, `নাম মাস = ১;`)
	require.Len(t, prog.Statements, 1)
	stmt, ok := prog.Statements[0].(*ast.VarStatement)
	require.True(t, ok)
	assert.Equal(t, "মাস", stmt.Name.Value)
	num, ok := stmt.Value.(*ast.NumberLiteral)
	require.True(t, ok)
	assert.Equal(t, float64(1), num.Value)
}

func TestParsePrintAndListLiteral(t *testing.T) {
	prog := parseProgram(t, `নাম স = [১,২,৩]; দেখাও স;`)
	require.Len(t, prog.Statements, 2)
	varStmt := prog.Statements[0].(*ast.VarStatement)
	list := varStmt.Value.(*ast.ListLiteral)
	assert.Len(t, list.Elements, 3)
}

func TestParseIfElse(t *testing.T) {
	prog := parseProgram(t, `যদি ১ == ১ { দেখাও "হ্যাঁ"; } অথবা { দেখাও "না"; }`)
	require.Len(t, prog.Statements, 1)
	ifStmt := prog.Statements[0].(*ast.IfStatement)
	cond := ifStmt.Condition.(*ast.InfixExpression)
	assert.Equal(t, "==", cond.Operator)
	require.NotNil(t, ifStmt.Alternative)
	assert.Len(t, ifStmt.Consequence.Statements, 1)
	assert.Len(t, ifStmt.Alternative.Statements, 1)
}

func TestParseFunctionDeclarationAndCall(t *testing.T) {
	prog := parseProgram(t, `ফাং যোগ(ক, খ) { ফেরত ক + খ; } ফেরত; দেখাও যোগ(২, ৩);`)
	require.Len(t, prog.Statements, 2)
	fn := prog.Statements[0].(*ast.FunctionStatement)
	assert.Equal(t, "যোগ", fn.Name.Value)
	require.Len(t, fn.Parameters, 2)
	assert.Equal(t, "ক", fn.Parameters[0].Value)

	printStmt := prog.Statements[1].(*ast.PrintStatement)
	call := printStmt.Value.(*ast.CallExpression)
	assert.Equal(t, "যোগ", call.Function.(*ast.Identifier).Value)
	assert.Len(t, call.Arguments, 2)
}

func TestParseRecordLiteralAndIndexAssignment(t *testing.T) {
	prog := parseProgram(t, `নাম ত = @{"ক"->১}; ত["খ"] = ২; দেখাও ত["খ"];`)
	require.Len(t, prog.Statements, 3)
	rec := prog.Statements[0].(*ast.VarStatement).Value.(*ast.RecordLiteral)
	require.Len(t, rec.Pairs, 1)

	assign := prog.Statements[1].(*ast.AssignStatement)
	idx := assign.Target.(*ast.IndexExpression)
	assert.Equal(t, "ত", idx.Left.(*ast.Identifier).Value)
}

func TestParseLoopAndBreak(t *testing.T) {
	prog := parseProgram(t, `লুপ { থামাও; } আবার;`)
	loop := prog.Statements[0].(*ast.LoopStatement)
	require.Len(t, loop.Body.Statements, 1)
	_, ok := loop.Body.Statements[0].(*ast.BreakStatement)
	assert.True(t, ok)
}

func TestParseModuleStatement(t *testing.T) {
	prog := parseProgram(t, `মডিউল গণিত = "./math.pakhi";`)
	stmt := prog.Statements[0].(*ast.ModuleStatement)
	assert.Equal(t, "গণিত", stmt.Name.Value)
	assert.Equal(t, "./math.pakhi", stmt.Path)
}

func TestParseModuleMemberAccessVsDivision(t *testing.T) {
	prog := parseProgram(t, `দেখাও গণিত/পাই; দেখাও ক/২;`)
	access := prog.Statements[0].(*ast.PrintStatement).Value.(*ast.ModuleAccess)
	assert.Equal(t, "গণিত", access.Base.Value)
	assert.Equal(t, "পাই", access.Member.Value)

	div := prog.Statements[1].(*ast.PrintStatement).Value.(*ast.InfixExpression)
	assert.Equal(t, "/", div.Operator)
}

func TestParsePrecedence(t *testing.T) {
	prog := parseProgram(t, `দেখাও ১ + ২ * ৩ == ৭ && সত্য;`)
	expr := prog.Statements[0].(*ast.PrintStatement).Value
	assert.Equal(t, "(((১ + (২ * ৩)) == ৭) && সত্য)", expr.String())
}

func TestParseBareReturn(t *testing.T) {
	prog := parseProgram(t, `ফাং খালি() { ফেরত; } ফেরত;`)
	fn := prog.Statements[0].(*ast.FunctionStatement)
	ret := fn.Body.Statements[0].(*ast.ReturnStatement)
	assert.Nil(t, ret.Value)
}

func TestParseErrorOnMismatchedBrace(t *testing.T) {
	p, err := New(lexer.New(`যদি ১ { দেখাও ১;`))
	require.NoError(t, err)
	_, err = p.ParseProgram()
	assert.Error(t, err)
}

func TestParseErrorOnMissingSemicolon(t *testing.T) {
	p, err := New(lexer.New(`নাম ক = ১`))
	require.NoError(t, err)
	_, err = p.ParseProgram()
	assert.Error(t, err)
}
