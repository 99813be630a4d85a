package queue

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSliceQueue(t *testing.T) {
	require := require.New(t)

	q := NewSliceQueue[int](4)
	require.True(q.IsEmpty())
	require.Equal(0, q.Length())

	_, ok := q.Dequeue()
	require.False(ok)
	_, ok = q.Peek()
	require.False(ok)

	q.Enqueue(1)
	q.Enqueue(2)
	q.Enqueue(3)
	require.False(q.IsEmpty())
	require.Equal(3, q.Length())

	head, ok := q.Peek()
	require.True(ok)
	require.Equal(1, head)
	require.Equal(3, q.Length())

	item, ok := q.Dequeue()
	require.True(ok)
	require.Equal(1, item)
	item, ok = q.Dequeue()
	require.True(ok)
	require.Equal(2, item)
	require.Equal(1, q.Length())

	q.Reset()
	require.True(q.IsEmpty())
	_, ok = q.Dequeue()
	require.False(ok)

	q.Enqueue(4)
	item, ok = q.Dequeue()
	require.True(ok)
	require.Equal(4, item)
}
