package orderedmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderedMap(t *testing.T) {
	t.Run("basic operations", func(t *testing.T) {
		om := NewOrderedMap[string, int]()

		om.Set("one", 1)
		om.Set("two", 2)
		om.Set("three", 3)

		val, exists := om.Get("two")
		assert.True(t, exists)
		assert.Equal(t, 2, val)

		om.Set("two", 22)
		val, exists = om.Get("two")
		assert.True(t, exists)
		assert.Equal(t, 22, val)
		assert.Equal(t, []string{"one", "two", "three"}, om.Keys(), "overwrite keeps position")

		val, exists = om.Get("four")
		assert.False(t, exists)
		assert.Equal(t, 0, val)
		assert.False(t, om.Has("four"))
	})

	t.Run("deletion", func(t *testing.T) {
		om := NewOrderedMap[string, int]()
		om.Set("one", 1)
		om.Set("two", 2)
		om.Set("three", 3)

		om.Delete("one")
		assert.False(t, om.Has("one"))

		om.Delete("non-existent")

		val, exists := om.Get("three")
		assert.True(t, exists)
		assert.Equal(t, 3, val)
		assert.Equal(t, []string{"two", "three"}, om.Keys())
		assert.Equal(t, 2, om.Count())
	})

	t.Run("iteration order", func(t *testing.T) {
		om := NewOrderedMap[string, int]()
		om.Set("c", 3)
		om.Set("a", 1)
		om.Set("b", 2)

		var keys []string
		var vals []int
		for k, v := range om.All() {
			keys = append(keys, k)
			vals = append(vals, v)
		}
		assert.Equal(t, []string{"c", "a", "b"}, keys)
		assert.Equal(t, []int{3, 1, 2}, vals)
	})

	t.Run("early break", func(t *testing.T) {
		om := NewOrderedMap[int, int]()
		for i := 0; i < 10; i++ {
			om.Set(i, i*i)
		}
		seen := 0
		for k := range om.All() {
			if k == 3 {
				break
			}
			seen++
		}
		assert.Equal(t, 3, seen)
	})
}
