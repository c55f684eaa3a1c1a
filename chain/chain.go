// Package chain provides a minimal singly linked list and the two-pointer
// operations classically performed on one.
package chain

import (
	"errors"
	"fmt"
)

// ErrPositionOutOfRange is returned when an end-relative position does not
// land inside the list.
var ErrPositionOutOfRange = errors.New("chain: position out of range")

// Node is a singly linked list node.
type Node struct {
	Val  int
	Next *Node
}

// FromSlice builds a list from vals in order and returns its head, or nil
// for an empty slice.
func FromSlice(vals []int) *Node {
	dummy := &Node{}
	tail := dummy
	for _, v := range vals {
		tail.Next = &Node{Val: v}
		tail = tail.Next
	}
	return dummy.Next
}

// Slice collects the list's values into a fresh slice. A nil head yields nil.
func (n *Node) Slice() []int {
	var vals []int
	for cur := n; cur != nil; cur = cur.Next {
		vals = append(vals, cur.Val)
	}
	return vals
}

// Len returns the number of nodes reachable from n.
func (n *Node) Len() int {
	count := 0
	for cur := n; cur != nil; cur = cur.Next {
		count++
	}
	return count
}

// RemoveFromEnd unlinks the nth node counted from the end (n=1 removes the
// tail) and returns the possibly-new head. The list is relinked in place;
// only the removed node is detached, no values are copied.
//
// A dummy head plus two cursors, offset by n+1 steps and advanced in
// lockstep, finds the predecessor of the doomed node in one pass.
//
// Returns ErrPositionOutOfRange when n < 1 or n exceeds the list length.
//
// Complexity: O(L) time, O(1) memory.
func RemoveFromEnd(head *Node, n int) (*Node, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n = %d, want n >= 1", ErrPositionOutOfRange, n)
	}

	dummy := &Node{Next: head}
	fast := dummy
	for i := 0; i < n+1; i++ {
		if fast == nil {
			return nil, fmt.Errorf("%w: n = %d exceeds list length %d", ErrPositionOutOfRange, n, head.Len())
		}
		fast = fast.Next
	}

	slow := dummy
	for fast != nil {
		fast = fast.Next
		slow = slow.Next
	}
	slow.Next = slow.Next.Next

	return dummy.Next, nil
}
