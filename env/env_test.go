package env

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Shafin098/pakhi-bhasha/value"
)

func TestLookUpWalksParentChain(t *testing.T) {
	root := New(nil)
	root.Declare("ক", &value.Number{Value: 1})

	child := New(root)
	v, ok := child.LookUp("ক")
	assert.True(t, ok)
	assert.Equal(t, &value.Number{Value: 1}, v)

	_, ok = child.LookUp("খ")
	assert.False(t, ok)
}

func TestDeclareShadowsInChildWithoutTouchingParent(t *testing.T) {
	root := New(nil)
	root.Declare("ক", &value.Number{Value: 1})

	child := New(root)
	child.Declare("ক", &value.Number{Value: 2})

	v, _ := child.LookUp("ক")
	assert.Equal(t, &value.Number{Value: 2}, v)

	v, _ = root.LookUp("ক")
	assert.Equal(t, &value.Number{Value: 1}, v)
}

func TestDeclareReportsRedeclaration(t *testing.T) {
	e := New(nil)
	assert.False(t, e.Declare("ক", &value.Number{Value: 1}))
	assert.True(t, e.Declare("ক", &value.Number{Value: 2}))
}

func TestAssignUpdatesDefiningFrame(t *testing.T) {
	root := New(nil)
	root.Declare("ক", &value.Number{Value: 1})
	child := New(root)

	ok := child.Assign("ক", &value.Number{Value: 99})
	assert.True(t, ok)

	v, _ := root.LookUp("ক")
	assert.Equal(t, &value.Number{Value: 99}, v)

	_, stillInChild := child.vars["ক"]
	assert.False(t, stillInChild)
}

func TestAssignToUnboundNameFails(t *testing.T) {
	e := New(nil)
	assert.False(t, e.Assign("অজানা", value.Nil))
}

func TestClosureCapturesEnvironmentByReference(t *testing.T) {
	outer := New(nil)
	outer.Declare("গণনা", &value.Number{Value: 0})

	captured := outer // a closure holds this *Environment directly, no Copy()
	outer.Assign("গণনা", &value.Number{Value: 1})

	v, _ := captured.LookUp("গণনা")
	assert.Equal(t, &value.Number{Value: 1}, v)
}
