package sparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrixSetAndGet(t *testing.T) {
	M := NewIntMatrix(10, 10, -1)
	if M.Value(2, 3) != -1 {
		t.Errorf("expected empty position to return null value, got %d", M.Value(2, 3))
	}
	M.Set(2, 3, 4711)
	if v := M.Value(2, 3); v != 4711 {
		t.Errorf("expected M(2,3) = 4711, is %d", v)
	}
	M.Add(2, 3, 123)
	M.Add(2, 3, 123)
	assert.Equal(t, []int32{4711, 123}, M.Values(2, 3))
	assert.Equal(t, 2, M.Count(2, 3))
	assert.Equal(t, 1, M.ValueCount())
	M.Set(2, 3, 7)
	assert.Equal(t, []int32{7}, M.Values(2, 3))
}

func TestMatrixOrder(t *testing.T) {
	M := NewIntMatrix(3, 3, DefaultNullValue)
	M.Add(2, 2, 1)
	M.Add(0, 1, 2)
	M.Add(1, 0, 3)
	M.Add(0, 0, 4)
	var order [][2]int
	M.Each(func(i, j int, values []int32) {
		order = append(order, [2]int{i, j})
	})
	assert.Equal(t, [][2]int{{0, 0}, {0, 1}, {1, 0}, {2, 2}}, order)
	if M.Values(1, 1) != nil {
		t.Errorf("expected no values at (1,1)")
	}
	assert.Equal(t, int32(DefaultNullValue), M.Value(1, 1))
}

func TestMatrixBounds(t *testing.T) {
	M := NewIntMatrix(2, 2, -1)
	assert.Panics(t, func() { M.Add(2, 0, 1) })
	assert.Panics(t, func() { M.Value(0, -1) })
}
