// SPDX-License-Identifier: MIT
// Package: lvfractal/instancer
//
// stack.go - owned, slice-backed LIFO used instead of native recursion.

package instancer

type nodeStack struct {
	items []node
}

func newNodeStack(capacity int) *nodeStack {
	return &nodeStack{items: make([]node, 0, capacity)}
}

func (s *nodeStack) push(n node) {
	s.items = append(s.items, n)
}

func (s *nodeStack) pop() (node, bool) {
	if len(s.items) == 0 {
		return node{}, false
	}
	last := len(s.items) - 1
	n := s.items[last]
	s.items = s.items[:last]
	return n, true
}

func (s *nodeStack) len() int {
	return len(s.items)
}
