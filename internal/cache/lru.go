package cache

// node is an element of the recency list.
type node[K comparable, V any] struct {
	key        K
	value      V
	prev, next *node[K, V]
}

// recency is a doubly-linked list ordered from most recently used (front)
// to least recently used (back). It is not synchronized.
type recency[K comparable, V any] struct {
	front, back *node[K, V]
}

func (l *recency[K, V]) pushFront(n *node[K, V]) {
	n.prev, n.next = nil, l.front
	if l.front != nil {
		l.front.prev = n
	}
	l.front = n
	if l.back == nil {
		l.back = n
	}
}

func (l *recency[K, V]) unlink(n *node[K, V]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.front = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.back = n.prev
	}
	n.prev, n.next = nil, nil
}

func (l *recency[K, V]) touch(n *node[K, V]) {
	if l.front == n {
		return
	}
	l.unlink(n)
	l.pushFront(n)
}

// popBack removes and returns the least recently used node, or nil.
func (l *recency[K, V]) popBack() *node[K, V] {
	n := l.back
	if n != nil {
		l.unlink(n)
	}
	return n
}
