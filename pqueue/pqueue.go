// Package pqueue implements the mutable min-priority queue used by
// Dijkstra: a binary heap with a position index, so updating an existing
// item's priority (decrease- or increase-key) restores heap order in place
// instead of re-inserting the item.
package pqueue

import (
	"container/heap"
	"errors"
)

// ErrEmptyQueue is returned by PopTask on an empty queue.
var ErrEmptyQueue = errors.New("pqueue: pop from an empty priority queue")

// MutablePriorityQueue is a min-priority queue keyed by int64 priorities
// that supports in-place priority updates. Each item has at most one live
// entry at any time; AddTask on a present item re-sifts it via heap.Fix
// rather than pushing a duplicate.
//
// Not safe for concurrent use.
type MutablePriorityQueue[T comparable] struct {
	h entryHeap[T]
}

// New returns an empty MutablePriorityQueue.
func New[T comparable]() *MutablePriorityQueue[T] {
	return &MutablePriorityQueue[T]{
		h: entryHeap[T]{pos: make(map[T]*entry[T])},
	}
}

// AddTask inserts item with the given priority, or updates the priority of
// an already-present item and restores heap order in place.
// Complexity: O(log n).
func (q *MutablePriorityQueue[T]) AddTask(item T, priority int64) {
	if e, ok := q.h.pos[item]; ok {
		e.priority = priority
		heap.Fix(&q.h, e.index)

		return
	}
	heap.Push(&q.h, &entry[T]{value: item, priority: priority})
}

// PopTask removes and returns the minimum-priority item.
// Returns ErrEmptyQueue when the queue is empty.
// Complexity: O(log n).
func (q *MutablePriorityQueue[T]) PopTask() (T, error) {
	if q.h.Len() == 0 {
		var zero T

		return zero, ErrEmptyQueue
	}
	e := heap.Pop(&q.h).(*entry[T])

	return e.value, nil
}

// Empty reports whether the queue holds no items.
func (q *MutablePriorityQueue[T]) Empty() bool { return q.h.Len() == 0 }

// Len returns the number of items in the queue.
func (q *MutablePriorityQueue[T]) Len() int { return q.h.Len() }

// Contains reports whether item currently has a live entry in the queue.
func (q *MutablePriorityQueue[T]) Contains(item T) bool {
	_, ok := q.h.pos[item]

	return ok
}

// entry is one heap slot: the stored item, its priority, and its current
// index inside the heap slice (maintained by Swap for heap.Fix).
type entry[T comparable] struct {
	value    T
	priority int64
	index    int
}

// entryHeap is the container/heap implementation backing the queue.
// pos maps each item to its entry so AddTask can find it in O(1).
type entryHeap[T comparable] struct {
	entries []*entry[T]
	pos     map[T]*entry[T]
}

func (h entryHeap[T]) Len() int { return len(h.entries) }

func (h entryHeap[T]) Less(i, j int) bool {
	return h.entries[i].priority < h.entries[j].priority
}

func (h entryHeap[T]) Swap(i, j int) {
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
	h.entries[i].index = i
	h.entries[j].index = j
}

// Push appends x; called by heap.Push, x must be *entry[T].
func (h *entryHeap[T]) Push(x any) {
	e := x.(*entry[T])
	e.index = len(h.entries)
	h.entries = append(h.entries, e)
	h.pos[e.value] = e
}

// Pop removes and returns the last element; called by heap.Pop after the
// minimum has been swapped to the end.
func (h *entryHeap[T]) Pop() any {
	old := h.entries
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	h.entries = old[:n-1]
	delete(h.pos, e.value)

	return e
}
