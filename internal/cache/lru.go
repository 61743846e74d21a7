// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cache

// lruNode is a node in a doubly-linked recency list.
// The node stores its key so eviction can delete the map entry in O(1).
type lruNode[K comparable, V any] struct {
	key   K
	value V
	prev  *lruNode[K, V]
	next  *lruNode[K, V]
}

// lruList orders cached glyphs by recency.
// The head is the most recently used, tail is least recently used.
type lruList[K comparable, V any] struct {
	head *lruNode[K, V]
	tail *lruNode[K, V]
	len  int
}

// pushFront inserts a detached node as the most recently used.
func (l *lruList[K, V]) pushFront(node *lruNode[K, V]) {
	node.prev = nil
	node.next = l.head
	if l.head != nil {
		l.head.prev = node
	}
	l.head = node
	if l.tail == nil {
		l.tail = node
	}
	l.len++
}

// moveToFront marks an attached node as the most recently used.
func (l *lruList[K, V]) moveToFront(node *lruNode[K, V]) {
	if node == l.head {
		return
	}
	l.unlink(node)
	l.pushFront(node)
}

// removeOldest detaches and returns the least recently used node.
// Returns nil if the list is empty.
func (l *lruList[K, V]) removeOldest() *lruNode[K, V] {
	node := l.tail
	if node != nil {
		l.unlink(node)
	}
	return node
}

// unlink detaches a node and clears its links.
func (l *lruList[K, V]) unlink(node *lruNode[K, V]) {
	if node.prev != nil {
		node.prev.next = node.next
	} else {
		l.head = node.next
	}

	if node.next != nil {
		node.next.prev = node.prev
	} else {
		l.tail = node.prev
	}

	node.prev = nil
	node.next = nil
	l.len--
}
