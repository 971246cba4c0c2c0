package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/arthur-debert/bkgen/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestItem is a simple type for testing
type TestItem struct {
	ID   int
	Name string
}

func TestRegister(t *testing.T) {
	reg := New[TestItem]("item")

	t.Run("register valid item", func(t *testing.T) {
		require.NoError(t, reg.Register("item1", TestItem{ID: 1, Name: "test"}))
		assert.Equal(t, 1, reg.Count())
	})

	t.Run("register with empty name", func(t *testing.T) {
		err := reg.Register("", TestItem{ID: 2})
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
		assert.Contains(t, err.Error(), "item name cannot be empty")
	})

	t.Run("register duplicate", func(t *testing.T) {
		err := reg.Register("item1", TestItem{ID: 3})
		assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
		assert.Equal(t, 1, reg.Count())
	})
}

func TestGet(t *testing.T) {
	reg := New[TestItem]("target type")
	item := TestItem{ID: 1, Name: "test"}
	require.NoError(t, reg.Register("action", item))

	got, err := reg.Get("action")
	require.NoError(t, err)
	assert.Equal(t, item, got)

	_, err = reg.Get("exe")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	assert.Contains(t, err.Error(), "target type 'exe' not found")
	assert.Equal(t, []string{"action"}, errors.GetErrorDetails(err)["known"])
}

func TestListAndEach(t *testing.T) {
	reg := New[int]("number")
	for i, name := range []string{"charlie", "alpha", "bravo"} {
		require.NoError(t, reg.Register(name, i))
	}

	assert.Equal(t, []string{"alpha", "bravo", "charlie"}, reg.List())
	assert.True(t, reg.Has("alpha"))
	assert.False(t, reg.Has("delta"))

	var visited []string
	require.NoError(t, reg.Each(func(name string, _ int) error {
		visited = append(visited, name)
		return nil
	}))
	assert.Equal(t, []string{"alpha", "bravo", "charlie"}, visited)

	stop := fmt.Errorf("stop")
	visited = nil
	err := reg.Each(func(name string, _ int) error {
		visited = append(visited, name)
		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []string{"alpha"}, visited)
}

func TestConcurrency(t *testing.T) {
	reg := New[int]("number")
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = reg.Register(fmt.Sprintf("n%d", i), i)
			_ = reg.List()
			_, _ = reg.Get("n0")
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, reg.Count())
}

func TestMustRegister(t *testing.T) {
	reg := New[string]("thing")

	assert.NotPanics(t, func() { MustRegister(reg, "a", "x") })
	assert.Panics(t, func() { MustRegister(reg, "a", "y") })
}

func TestWithFunctions(t *testing.T) {
	reg := New[func(int) int]("func")
	MustRegister(reg, "double", func(x int) int { return x * 2 })

	f, err := reg.Get("double")
	require.NoError(t, err)
	assert.Equal(t, 10, f(5))
}
