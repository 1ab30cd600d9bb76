package dllist

// Ниже средства для порчи внутреннего состояния списка в тестах.

func (l *List[T]) CorruptSize(size int) {
	l.size = size
}

func (l *List[T]) CorruptHead(index uint32) {
	l.head = index
}

func (l *List[T]) CorruptNext(n Node, index uint32) {
	l.nodes[n.index].next = index
}

func (l *List[T]) CorruptPrev(n Node, index uint32) {
	l.nodes[n.index].prev = index
}

// CorruptRelease освобождает ячейку узла не выцепляя его из цепочки.
func (l *List[T]) CorruptRelease(n Node) {
	l.nodes[n.index].live = false
}

func (l *List[T]) Slots() int {
	return len(l.nodes)
}
