package dllist

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/sirkon/chklist/internal/listerr"
)

// Snapshot диагностический слепок списка.
type Snapshot struct {
	Name    string
	ID      uint64
	UUID    uuid.UUID
	Size    int
	Head    uint32
	Tail    uint32
	Verdict listerr.Code

	// Nodes сначала узлы в порядке прохода от головы, затем живые узлы
	// хранилища до которых проход не дошёл.
	Nodes []SnapshotNode
}

// SnapshotNode узел в диагностическом слепке.
type SnapshotNode struct {
	Index uint32
	Value string
	Next  uint32
	Prev  uint32
	Live  bool

	// Reached узел достигнут проходом от головы.
	Reached bool
}

// Snapshot построение диагностического слепка. Работает и на повреждённом
// списке: проход ограничен размером хранилища и не заходит за его пределы.
func (l *List[T]) Snapshot() Snapshot {
	res := Snapshot{
		Name:    l.name,
		ID:      l.id,
		UUID:    l.uid,
		Size:    l.size,
		Head:    l.head,
		Tail:    l.tail,
		Verdict: l.Check(),
	}

	visited := make([]bool, len(l.nodes))
	cur := l.head
	for steps := 0; steps < len(l.nodes); steps++ {
		if cur == nilIndex || int(cur) >= len(l.nodes) || visited[cur] {
			break
		}
		visited[cur] = true

		res.Nodes = append(res.Nodes, l.snapshotNode(cur, true))
		cur = l.nodes[cur].next
	}

	for i := 1; i < len(l.nodes); i++ {
		if visited[i] || !l.nodes[i].live {
			continue
		}

		res.Nodes = append(res.Nodes, l.snapshotNode(uint32(i), false))
	}

	return res
}

func (l *List[T]) snapshotNode(index uint32, reached bool) SnapshotNode {
	s := &l.nodes[index]
	n := SnapshotNode{
		Index:   index,
		Next:    s.next,
		Prev:    s.prev,
		Live:    s.live,
		Reached: reached,
	}
	if s.live {
		n.Value = fmt.Sprint(s.value)
	}

	return n
}
