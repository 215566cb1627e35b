package queue

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEntry struct {
	ID   int
	Name string
}

func TestQueue_PushPopOrder(t *testing.T) {
	q := New[testEntry]()
	require.True(t, q.Empty())

	q.Push(testEntry{ID: 1, Name: "first"})
	q.Push(testEntry{ID: 2}, testEntry{ID: 3})
	assert.Equal(t, 3, q.Len())

	assert.Equal(t, testEntry{ID: 1, Name: "first"}, q.Pop())
	assert.Equal(t, 2, q.Pop().ID)
	assert.Equal(t, 3, q.Pop().ID)
	assert.True(t, q.Empty())
}

func TestQueue_PopEmptyReturnsZeroValue(t *testing.T) {
	q := New[testEntry]()
	assert.Equal(t, testEntry{}, q.Pop())
}

func TestQueue_Clear(t *testing.T) {
	q := New[int]()
	q.Push(1, 2, 3)

	q.Clear()

	assert.True(t, q.Empty())
	assert.Equal(t, 0, q.Len())
}

func TestQueue_GetAndEmpty(t *testing.T) {
	q := New[int]()
	q.Push(1, 2, 3)

	got := q.GetAndEmpty()

	assert.Equal(t, []int{1, 2, 3}, got)
	assert.True(t, q.Empty())
	assert.Empty(t, q.GetAndEmpty())
}

func TestQueue_ConcurrentPush(t *testing.T) {
	q := New[int]()
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			q.Push(n)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 100, q.Len())
}

func TestQueue_ConcurrentGetAndEmpty(t *testing.T) {
	q := New[int]()
	for i := 0; i < 100; i++ {
		q.Push(i)
	}

	var wg sync.WaitGroup
	results := make(chan []int, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- q.GetAndEmpty()
		}()
	}
	wg.Wait()
	close(results)

	total := 0
	for r := range results {
		total += len(r)
	}
	assert.Equal(t, 100, total, "drains must not lose or duplicate items")
}
