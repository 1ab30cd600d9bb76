package dllist

import (
	"golang.org/x/exp/constraints"

	"github.com/sirkon/chklist/internal/listerr"
)

// Compare сравнение упорядоченных значений для FindByValue.
func Compare[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// PushFront добавление нового значения в начало списка с возвратом созданного узла.
func (l *List[T]) PushFront(v T) Node {
	const op = "PushFront"
	l.verify(op)

	index := l.alloc(op, v)
	if l.size == 0 {
		l.head = index
		l.tail = index
	} else {
		l.linkBefore(l.head, index)
	}
	l.size++

	l.verify(op)
	return l.mustHandle(index)
}

// PushBack добавление нового значения в конец списка с возвратом созданного узла.
func (l *List[T]) PushBack(v T) Node {
	const op = "PushBack"
	l.verify(op)

	index := l.pushBack(op, v)

	l.verify(op)
	return l.mustHandle(index)
}

// PopFront извлечение первого элемента списка. Извлечение из пустого списка фатально.
func (l *List[T]) PopFront() T {
	const op = "PopFront"
	l.verify(op)
	if l.size == 0 {
		l.fail(op, listerr.New(listerr.CodeEmptyList))
	}

	v := l.remove(l.head)

	l.verify(op)
	return v
}

// PopBack извлечение последнего элемента списка. Извлечение из пустого списка фатально.
func (l *List[T]) PopBack() T {
	const op = "PopBack"
	l.verify(op)
	if l.size == 0 {
		l.fail(op, listerr.New(listerr.CodeEmptyList))
	}

	v := l.remove(l.tail)

	l.verify(op)
	return v
}

// FindByIndex поиск узла по его позиции. Проход начинается с ближайшего конца.
func (l *List[T]) FindByIndex(index int) (Node, bool) {
	const op = "FindByIndex"
	l.verify(op)

	if !l.inRange(index) {
		l.verify(op)
		return Node{}, false
	}
	found := l.locate(index)

	l.verify(op)
	return l.mustHandle(found), true
}

// FindByValue поиск первого с головы узла, значение которого равно данному
// с точки зрения cmp. Отсутствие функции сравнения означает отсутствие результата.
func (l *List[T]) FindByValue(v T, cmp func(a, b T) int) (Node, bool) {
	const op = "FindByValue"
	l.verify(op)

	if cmp == nil {
		l.verify(op)
		return Node{}, false
	}

	found := nilIndex
	for cur := l.head; cur != nilIndex; cur = l.nodes[cur].next {
		if cmp(l.nodes[cur].value, v) == 0 {
			found = cur
			break
		}
	}

	l.verify(op)
	return l.handle(found)
}

// Delete удаление узла на данной позиции. Возвращает false если позиции нет в списке.
func (l *List[T]) Delete(index int) bool {
	const op = "Delete"
	l.verify(op)

	if !l.inRange(index) {
		l.verify(op)
		return false
	}
	l.remove(l.locate(index))

	l.verify(op)
	return true
}

// InsertBefore вставка значения перед узлом на данной позиции.
func (l *List[T]) InsertBefore(v T, index int) (Node, bool) {
	const op = "InsertBefore"
	l.verify(op)

	if !l.inRange(index) {
		l.verify(op)
		return Node{}, false
	}
	at := l.locate(index)
	created := l.alloc(op, v)
	l.linkBefore(at, created)
	l.size++

	l.verify(op)
	return l.mustHandle(created), true
}

// InsertAfter вставка значения после узла на данной позиции.
func (l *List[T]) InsertAfter(v T, index int) (Node, bool) {
	const op = "InsertAfter"
	l.verify(op)

	if !l.inRange(index) {
		l.verify(op)
		return Node{}, false
	}
	at := l.locate(index)
	created := l.alloc(op, v)
	l.linkAfter(at, created)
	l.size++

	l.verify(op)
	return l.mustHandle(created), true
}

// Set замена значения в узле на данной позиции.
func (l *List[T]) Set(v T, index int) (Node, bool) {
	const op = "Set"
	l.verify(op)

	if !l.inRange(index) {
		l.verify(op)
		return Node{}, false
	}
	at := l.locate(index)
	l.nodes[at].value = v

	l.verify(op)
	return l.mustHandle(at), true
}

func (l *List[T]) pushBack(op string, v T) uint32 {
	index := l.alloc(op, v)
	if l.size == 0 {
		l.head = index
		l.tail = index
	} else {
		l.linkAfter(l.tail, index)
	}
	l.size++

	return index
}

func (l *List[T]) inRange(index int) bool {
	return index >= 0 && index < l.size
}

// locate поиск ячейки узла на данной позиции, позиция должна быть в пределах списка.
func (l *List[T]) locate(index int) uint32 {
	if index < l.size/2 {
		cur := l.head
		for i := 0; i < index; i++ {
			cur = l.nodes[cur].next
		}
		return cur
	}

	cur := l.tail
	for i := l.size - 1; i > index; i-- {
		cur = l.nodes[cur].prev
	}
	return cur
}

// linkBefore вставка узла index перед узлом at.
func (l *List[T]) linkBefore(at, index uint32) {
	prev := l.nodes[at].prev
	l.nodes[index].prev = prev
	l.nodes[index].next = at
	l.nodes[at].prev = index

	if prev == nilIndex {
		l.head = index
	} else {
		l.nodes[prev].next = index
	}
}

// linkAfter вставка узла index после узла at.
func (l *List[T]) linkAfter(at, index uint32) {
	next := l.nodes[at].next
	l.nodes[index].next = next
	l.nodes[index].prev = at
	l.nodes[at].next = index

	if next == nilIndex {
		l.tail = index
	} else {
		l.nodes[next].prev = index
	}
}

// remove выцепление узла из цепочки с освобождением его ячейки.
func (l *List[T]) remove(index uint32) T {
	s := &l.nodes[index]
	prev, next := s.prev, s.next

	if prev == nilIndex {
		l.head = next
	} else {
		l.nodes[prev].next = next
	}

	if next == nilIndex {
		l.tail = prev
	} else {
		l.nodes[next].prev = prev
	}

	v := s.value
	l.release(index)
	l.size--

	return v
}

func (l *List[T]) mustHandle(index uint32) Node {
	n, _ := l.handle(index)
	return n
}
