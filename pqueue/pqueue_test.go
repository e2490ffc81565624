package pqueue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BogdanFloris/CLRS-Library/pqueue"
)

func TestPopTask_MinOrder(t *testing.T) {
	q := pqueue.New[string]()
	q.AddTask("b", 20)
	q.AddTask("a", 10)
	q.AddTask("c", 30)

	var got []string
	for !q.Empty() {
		item, err := q.PopTask()
		require.NoError(t, err)
		got = append(got, item)
	}
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestPopTask_Empty(t *testing.T) {
	q := pqueue.New[string]()
	_, err := q.PopTask()
	assert.ErrorIs(t, err, pqueue.ErrEmptyQueue)
}

func TestAddTask_DecreaseKey(t *testing.T) {
	q := pqueue.New[string]()
	q.AddTask("slow", 100)
	q.AddTask("fast", 10)

	// Decrease "slow" below "fast": it must surface first.
	q.AddTask("slow", 1)
	assert.Equal(t, 2, q.Len(), "update must not insert a duplicate entry")

	item, err := q.PopTask()
	require.NoError(t, err)
	assert.Equal(t, "slow", item)
}

func TestAddTask_IncreaseKey(t *testing.T) {
	q := pqueue.New[string]()
	q.AddTask("x", 1)
	q.AddTask("y", 2)

	q.AddTask("x", 50)
	item, err := q.PopTask()
	require.NoError(t, err)
	assert.Equal(t, "y", item)
}

func TestContains(t *testing.T) {
	q := pqueue.New[string]()
	q.AddTask("a", 1)
	assert.True(t, q.Contains("a"))
	assert.False(t, q.Contains("b"))

	_, err := q.PopTask()
	require.NoError(t, err)
	assert.False(t, q.Contains("a"), "popped items leave the position index")
}

func TestLenAndEmpty(t *testing.T) {
	q := pqueue.New[int]()
	assert.True(t, q.Empty())
	q.AddTask(1, 5)
	q.AddTask(2, 3)
	q.AddTask(1, 4) // update, not insert
	assert.Equal(t, 2, q.Len())
	assert.False(t, q.Empty())
}

func TestInterleavedUpdates(t *testing.T) {
	q := pqueue.New[string]()
	for i, id := range []string{"a", "b", "c", "d", "e"} {
		q.AddTask(id, int64(10*(i+1)))
	}
	q.AddTask("e", 5)  // decrease to the front
	q.AddTask("a", 99) // increase to the back

	var got []string
	for !q.Empty() {
		item, err := q.PopTask()
		require.NoError(t, err)
		got = append(got, item)
	}
	assert.Equal(t, []string{"e", "b", "c", "d", "a"}, got)
}
