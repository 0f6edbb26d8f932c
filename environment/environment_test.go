package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ashgrove/weave/value"
)

func TestEnvironment_SetAndGetInSameScope(t *testing.T) {
	e := NewRoot()
	e.Set("x", value.Int{V: 1})
	v, ok := e.Get("x")
	assert.True(t, ok)
	assert.Equal(t, value.Int{V: 1}, v)
}

func TestEnvironment_GetMissingNameFails(t *testing.T) {
	e := NewRoot()
	_, ok := e.Get("missing")
	assert.False(t, ok)
}

func TestEnvironment_ChildSeesOuterBindings(t *testing.T) {
	root := NewRoot()
	root.Set("x", value.Int{V: 1})
	child := NewChild(root)
	v, ok := child.Get("x")
	assert.True(t, ok)
	assert.Equal(t, value.Int{V: 1}, v)
}

func TestEnvironment_SetInChildNeverWritesOuter(t *testing.T) {
	root := NewRoot()
	child := NewChild(root)
	child.Set("x", value.Int{V: 1})

	_, ok := root.Get("x")
	assert.False(t, ok, "assignment inserts into the innermost scope, never the outer chain")

	v, ok := child.Get("x")
	assert.True(t, ok)
	assert.Equal(t, value.Int{V: 1}, v)
}

func TestEnvironment_ChildShadowsOuterBinding(t *testing.T) {
	root := NewRoot()
	root.Set("x", value.Int{V: 1})
	child := NewChild(root)
	child.Set("x", value.Int{V: 2})

	v, _ := child.Get("x")
	assert.Equal(t, value.Int{V: 2}, v)
	v, _ = root.Get("x")
	assert.Equal(t, value.Int{V: 1}, v)
}

func TestEnvironment_DropRemovesOnlyFromOwnScope(t *testing.T) {
	root := NewRoot()
	root.Set("x", value.Int{V: 1})
	child := NewChild(root)

	assert.False(t, child.Drop("x"), "x lives in root, not child")
	_, ok := root.Get("x")
	assert.True(t, ok)

	assert.True(t, root.Drop("x"))
	_, ok = root.Get("x")
	assert.False(t, ok)
}

func TestEnvironment_MutationAfterClosureCaptureIsVisible(t *testing.T) {
	// A Function captures its defining *Environment by pointer, so a later
	// mutation through one reference is visible through another — this is
	// what lets closures observe outer-scope state updated after creation.
	root := NewRoot()
	captured := root
	root.Set("counter", value.Int{V: 0})

	root.Set("counter", value.Int{V: 1})

	v, ok := captured.Get("counter")
	assert.True(t, ok)
	assert.Equal(t, value.Int{V: 1}, v)
}
