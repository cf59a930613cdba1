//go:build js
// +build js

package global

import (
	"syscall/js"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNamespace(t *testing.T) {
	assert.True(t, Namespace().Equal(js.Global().Get(Name)))
	assert.Equal(t, js.TypeObject, Namespace().Type())
}

func TestSetGet(t *testing.T) {
	t.Cleanup(func() { Set("answer", js.Undefined()) })

	assert.True(t, Get("answer").IsUndefined())
	Set("answer", 41)
	assert.Equal(t, 41, Get("answer").Int())
	assert.Equal(t, 41, js.Global().Get(Name).Get("answer").Int())

	SetDefault("answer", 1)
	assert.Equal(t, 41, Get("answer").Int())

	Set("answer", js.Undefined())
	SetDefault("answer", 42)
	assert.Equal(t, 42, Get("answer").Int())
}

func TestEnsure(t *testing.T) {
	newObject := func() js.Value { return js.Global().Get("Object").New() }

	t.Run("missing", func(t *testing.T) {
		host := newObject()
		ns := ensure(host, "ns")
		assert.Equal(t, js.TypeObject, ns.Type())
		assert.True(t, host.Get("ns").Equal(ns))
	})

	t.Run("existing object kept", func(t *testing.T) {
		host := newObject()
		existing := newObject()
		existing.Set("keep", true)
		host.Set("ns", existing)

		ns := ensure(host, "ns")
		assert.True(t, ns.Equal(existing))
		assert.True(t, ns.Get("keep").Bool())
	})

	t.Run("non-object replaced", func(t *testing.T) {
		host := newObject()
		host.Set("ns", 7)
		ns := ensure(host, "ns")
		assert.Equal(t, js.TypeObject, ns.Type())
		assert.True(t, host.Get("ns").Equal(ns))
	})
}
