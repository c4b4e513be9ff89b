package eval

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shafin098/pakhi-bhasha/host"
	"github.com/Shafin098/pakhi-bhasha/perr"
)

func run(t *testing.T, h *host.MemoryHost, path string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	e := New(h)
	e.Writer = &buf
	err := e.RunFile(path)
	return buf.String(), err
}

func oneFile(src string) *host.MemoryHost {
	h := host.NewMemoryHost()
	h.Files["/main.pakhi"] = src
	return h
}

func TestScenarioPrintNumber(t *testing.T) {
	out, err := run(t, oneFile(`নাম মাস = ১; দেখাও মাস;`), "/main.pakhi")
	require.NoError(t, err)
	assert.Equal(t, "১\n", out)
}

func TestScenarioListPush(t *testing.T) {
	out, err := run(t, oneFile(`নাম স = [১,২,৩]; _লিস্ট-পুশ(স, ৪); দেখাও স;`), "/main.pakhi")
	require.NoError(t, err)
	assert.Equal(t, "[১, ২, ৩, ৪]\n", out)
}

func TestScenarioIfElse(t *testing.T) {
	out, err := run(t, oneFile(`যদি ১ == ১ { দেখাও "হ্যাঁ"; } অথবা { দেখাও "না"; }`), "/main.pakhi")
	require.NoError(t, err)
	assert.Equal(t, "হ্যাঁ\n", out)
}

func TestScenarioFunctionCall(t *testing.T) {
	src := `ফাং যোগ(ক, খ) { ফেরত ক + খ; } ফেরত; দেখাও যোগ(২, ৩);`
	out, err := run(t, oneFile(src), "/main.pakhi")
	require.NoError(t, err)
	assert.Equal(t, "৫\n", out)
}

func TestScenarioLoopSum(t *testing.T) {
	src := `
নাম ফলাফল = ০;
নাম ই = ১;
লুপ {
  যদি ই > ৫ { থামাও; }
  ফলাফল = ফলাফল + ই;
  ই = ই + ১;
} আবার;
দেখাও ফলাফল;
`
	out, err := run(t, oneFile(src), "/main.pakhi")
	require.NoError(t, err)
	assert.Equal(t, "১৫\n", out)
}

func TestScenarioRecordIndexAssign(t *testing.T) {
	src := `নাম ত = @{"ক"->১}; ত["খ"] = ২; দেখাও ত["খ"];`
	out, err := run(t, oneFile(src), "/main.pakhi")
	require.NoError(t, err)
	assert.Equal(t, "২\n", out)
}

func TestLoopTerminatesAfterOneIterationWithBareBreak(t *testing.T) {
	src := `
নাম গ = ০;
লুপ {
  গ = গ + ১;
  থামাও;
} আবার;
দেখাও গ;
`
	out, err := run(t, oneFile(src), "/main.pakhi")
	require.NoError(t, err)
	assert.Equal(t, "১\n", out)
}

func TestClosureCapturesDefiningEnvironmentByReference(t *testing.T) {
	src := `
ফাং বানাও() {
  নাম গ = ০;
  ফাং বাড়াও() {
    গ = গ + ১;
    ফেরত গ;
  } ফেরত;
  ফেরত বাড়াও;
} ফেরত;
নাম বাড়ানো = বানাও();
দেখাও বাড়ানো();
দেখাও বাড়ানো();
`
	out, err := run(t, oneFile(src), "/main.pakhi")
	require.NoError(t, err)
	assert.Equal(t, "১\n২\n", out)
}

func TestModuleImportAndIdempotence(t *testing.T) {
	h := host.NewMemoryHost()
	h.Files["/lib.pakhi"] = `নাম মান = ১০; দেখাও "লোড হয়েছে";`
	h.Files["/main.pakhi"] = `
মডিউল ক = "lib.pakhi";
মডিউল খ = "lib.pakhi";
দেখাও ক/মান;
দেখাও খ/মান;
`
	out, err := run(t, h, "/main.pakhi")
	require.NoError(t, err)
	// side effect from lib.pakhi's দেখাও runs exactly once, despite two imports
	assert.Equal(t, "লোড হয়েছে\n১০\n১০\n", out)
}

func TestModuleCycleDetectionNamesBothFiles(t *testing.T) {
	h := host.NewMemoryHost()
	h.Files["/a.pakhi"] = `মডিউল খ = "b.pakhi";`
	h.Files["/b.pakhi"] = `মডিউল ক = "a.pakhi";`
	_, err := run(t, h, "/a.pakhi")
	require.Error(t, err)
	perrErr, ok := err.(*perr.Error)
	require.True(t, ok)
	assert.Equal(t, perr.ResolveError, perrErr.Kind)
	assert.Contains(t, perrErr.Message, "a.pakhi")
	assert.Contains(t, perrErr.Message, "b.pakhi")
}

func TestDivisionVsModuleAccessDispatch(t *testing.T) {
	src := `নাম ক = ১০; নাম খ = ২; দেখাও ক/খ;`
	out, err := run(t, oneFile(src), "/main.pakhi")
	require.NoError(t, err)
	assert.Equal(t, "৫\n", out)
}

func TestDivisionByZeroErrors(t *testing.T) {
	_, err := run(t, oneFile(`নাম ক = ১; নাম খ = ০; দেখাও ক/খ;`), "/main.pakhi")
	require.Error(t, err)
	assert.Equal(t, perr.ArithmeticError, err.(*perr.Error).Kind)
}

func TestUsingModuleNameAsValueErrors(t *testing.T) {
	h := host.NewMemoryHost()
	h.Files["/lib.pakhi"] = `নাম মান = ১;`
	h.Files["/main.pakhi"] = `মডিউল ক = "lib.pakhi"; দেখাও ক;`
	_, err := run(t, h, "/main.pakhi")
	require.Error(t, err)
	assert.Equal(t, perr.TypeError, err.(*perr.Error).Kind)
}

func TestRedeclarationInSameScopeErrors(t *testing.T) {
	_, err := run(t, oneFile(`নাম ক = ১; নাম ক = ২;`), "/main.pakhi")
	require.Error(t, err)
	assert.Equal(t, perr.NameError, err.(*perr.Error).Kind)
}

func TestAssignToUnboundNameErrors(t *testing.T) {
	_, err := run(t, oneFile(`ক = ১;`), "/main.pakhi")
	require.Error(t, err)
	assert.Equal(t, perr.NameError, err.(*perr.Error).Kind)
}

func TestBreakOutsideLoopErrors(t *testing.T) {
	_, err := run(t, oneFile(`থামাও;`), "/main.pakhi")
	require.Error(t, err)
	assert.Equal(t, perr.BreakOutsideLoop, err.(*perr.Error).Kind)
}

func TestReturnOutsideFunctionErrors(t *testing.T) {
	_, err := run(t, oneFile(`ফেরত ১;`), "/main.pakhi")
	require.Error(t, err)
	assert.Equal(t, perr.ReturnOutsideFunction, err.(*perr.Error).Kind)
}

func TestEqualityNeverErrorsAcrossKinds(t *testing.T) {
	out, err := run(t, oneFile(`দেখাও ১ == "১";`), "/main.pakhi")
	require.NoError(t, err)
	assert.Equal(t, "মিথ্যা\n", out)
}

func TestFunctionHoistingAllowsForwardReference(t *testing.T) {
	src := `
ফাং ক() { ফেরত খ(); } ফেরত;
ফাং খ() { ফেরত ৭; } ফেরত;
দেখাও ক();
`
	out, err := run(t, oneFile(src), "/main.pakhi")
	require.NoError(t, err)
	assert.Equal(t, "৭\n", out)
}

func TestBareReturnYieldsNull(t *testing.T) {
	src := `
ফাং ক() { ফেরত; } ফেরত;
দেখাও ক();
`
	out, err := run(t, oneFile(src), "/main.pakhi")
	require.NoError(t, err)
	assert.Equal(t, "শূন্য\n", out)
}
