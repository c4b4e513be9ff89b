package builtin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shafin098/pakhi-bhasha/env"
	"github.com/Shafin098/pakhi-bhasha/host"
	"github.com/Shafin098/pakhi-bhasha/perr"
	"github.com/Shafin098/pakhi-bhasha/value"
)

func newEnv(h host.Host) *env.Environment {
	e := env.New(nil)
	Install(e, h, "/project")
	return e
}

func call(t *testing.T, e *env.Environment, name string, args ...value.Value) (value.Value, error) {
	t.Helper()
	v, ok := e.LookUp(name)
	require.True(t, ok, "builtin %q not installed", name)
	b, ok := v.(*value.Builtin)
	require.True(t, ok, "%q is not a builtin", name)
	return b.Fn(args)
}

func TestConversionBuiltins(t *testing.T) {
	e := newEnv(host.NewMemoryHost())

	s, err := call(t, e, "_স্ট্রিং", &value.Number{Value: 42})
	require.NoError(t, err)
	assert.Equal(t, "৪২", s.String())

	n, err := call(t, e, "_সংখ্যা", &value.String{Value: "১২"})
	require.NoError(t, err)
	assert.Equal(t, float64(12), n.(*value.Number).Value)

	_, err = call(t, e, "_সংখ্যা", &value.String{Value: "abc"})
	require.Error(t, err)
	assert.Equal(t, perr.TypeError, err.(*perr.Error).Kind)
}

func TestListBuiltins(t *testing.T) {
	e := newEnv(host.NewMemoryHost())
	list := &value.List{Items: []value.Value{&value.Number{Value: 1}, &value.Number{Value: 2}}}

	_, err := call(t, e, "_লিস্ট-পুশ", list, &value.Number{Value: 3})
	require.NoError(t, err)
	assert.Len(t, list.Items, 3)

	ln, err := call(t, e, "_লিস্ট-লেন", list)
	require.NoError(t, err)
	assert.Equal(t, float64(3), ln.(*value.Number).Value)

	popped, err := call(t, e, "_লিস্ট-পপ", list)
	require.NoError(t, err)
	assert.Equal(t, float64(3), popped.(*value.Number).Value)
	assert.Len(t, list.Items, 2)

	_, err = call(t, e, "_লিস্ট-পপ", &value.List{})
	require.Error(t, err)
	assert.Equal(t, perr.IndexError, err.(*perr.Error).Kind)
}

func TestStringBuiltins(t *testing.T) {
	e := newEnv(host.NewMemoryHost())

	parts, err := call(t, e, "_স্ট্রিং-স্প্লিট", &value.String{Value: "a,b,c"}, &value.String{Value: ","})
	require.NoError(t, err)
	list := parts.(*value.List)
	require.Len(t, list.Items, 3)
	assert.Equal(t, "b", list.Items[1].(*value.String).Value)

	joined, err := call(t, e, "_স্ট্রিং-জয়েন", list, &value.String{Value: "-"})
	require.NoError(t, err)
	assert.Equal(t, "a-b-c", joined.(*value.String).Value)
}

func TestReflectBuiltin(t *testing.T) {
	e := newEnv(host.NewMemoryHost())

	kind, err := call(t, e, "_টাইপ", &value.List{})
	require.NoError(t, err)
	assert.Equal(t, "_লিস্ট", kind.(*value.String).Value)

	kind, err = call(t, e, "_টাইপ", value.Nil)
	require.NoError(t, err)
	assert.Equal(t, "_শূন্য", kind.(*value.String).Value)
}

func TestControlBuiltinRaisesUserError(t *testing.T) {
	e := newEnv(host.NewMemoryHost())

	_, err := call(t, e, "_এরর", &value.String{Value: "কিছু ভুল হয়েছে"})
	require.Error(t, err)
	perrErr := err.(*perr.Error)
	assert.Equal(t, perr.UserError, perrErr.Kind)
	assert.Equal(t, "কিছু ভুল হয়েছে", perrErr.Message)
}

func TestIOBuiltinsRoundTripThroughMemoryHost(t *testing.T) {
	h := host.NewMemoryHost()
	e := newEnv(h)

	_, err := call(t, e, "_রাইট-ফাইল", &value.String{Value: "/project/out.txt"}, &value.String{Value: "হ্যালো"})
	require.NoError(t, err)

	content, err := call(t, e, "_রিড-ফাইল", &value.String{Value: "/project/out.txt"})
	require.NoError(t, err)
	assert.Equal(t, "হ্যালো", content.(*value.String).Value)

	kind, err := call(t, e, "_ফাইল-নাকি-ডাইরেক্টরি", &value.String{Value: "/project/out.txt"})
	require.NoError(t, err)
	assert.Equal(t, string(host.File), kind.(*value.String).Value)

	names, err := call(t, e, "_রিড-ডাইরেক্টরি", &value.String{Value: "/project"})
	require.NoError(t, err)
	nameList := names.(*value.List)
	require.Len(t, nameList.Items, 1)
	assert.Equal(t, "out.txt", nameList.Items[0].(*value.String).Value)

	_, err = call(t, e, "_ডিলিট-ফাইল", &value.String{Value: "/project/out.txt"})
	require.NoError(t, err)

	_, err = call(t, e, "_রিড-ফাইল", &value.String{Value: "/project/out.txt"})
	require.Error(t, err)
	assert.Equal(t, perr.IOError, err.(*perr.Error).Kind)
}

func TestIOBuiltinReadLine(t *testing.T) {
	h := host.NewMemoryHost()
	h.Lines = []string{"প্রথম লাইন"}
	e := newEnv(h)

	line, err := call(t, e, "_রিড-লাইন")
	require.NoError(t, err)
	assert.Equal(t, "প্রথম লাইন", line.(*value.String).Value)

	_, err = call(t, e, "_রিড-লাইন")
	require.Error(t, err)
	assert.Equal(t, perr.IOError, err.(*perr.Error).Kind)
}

func TestDirectoryAndPlatformConstants(t *testing.T) {
	h := host.NewMemoryHost()
	h.Plat = "linux"
	e := newEnv(h)

	dir, ok := e.LookUp("_ডাইরেক্টরি")
	require.True(t, ok)
	assert.Equal(t, "/project", dir.(*value.String).Value)

	plat, ok := e.LookUp("_প্ল্যাটফর্ম")
	require.True(t, ok)
	assert.Equal(t, "linux", plat.(*value.String).Value)
}
