package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddPrefix(t *testing.T) {
	t.Run("literals", func(t *testing.T) {
		got := AddPrefix("@", Strings("echo hi", "echo bye"))
		assert.Equal(t, Strings("@echo hi", "@echo bye"), got)
	})

	t.Run("does not mutate input", func(t *testing.T) {
		in := Strings("make")
		_ = AddPrefix("@", in)
		assert.Equal(t, Strings("make"), in)
	})

	t.Run("reference items are wrapped", func(t *testing.T) {
		got := AddPrefix("@", ListOf(Ref("lib", "cmd")))
		assert.Equal(t, ListOf(Concat{Items: []Value{Lit("@"), Ref("lib", "cmd")}}), got)
	})

	t.Run("nested lists are spliced", func(t *testing.T) {
		got := AddPrefix("@", ListOf(Lit("echo start"), Strings("echo a", "echo b"), ListOf(ListOf(Ref("lib", "cmd")))))
		assert.Equal(t, ListOf(
			Lit("@echo start"),
			Lit("@echo a"),
			Lit("@echo b"),
			Concat{Items: []Value{Lit("@"), Ref("lib", "cmd")}},
		), got)
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, AddPrefix("@", ListOf()).Items)
	})
}

func TestHasReferences(t *testing.T) {
	assert.False(t, HasReferences(Lit("x")))
	assert.False(t, HasReferences(Strings("a", "b")))
	assert.True(t, HasReferences(Ref("a", "b")))
	assert.True(t, HasReferences(ListOf(Lit("a"), ListOf(Ref("a", "b")))))
	assert.True(t, HasReferences(Concat{Items: []Value{Ref("a", "b")}}))
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "${demo.commands}", Ref("demo", "commands").String())
	assert.Equal(t, "[a, true]", ListOf(Lit("a"), BoolOf(true)).String())
}
