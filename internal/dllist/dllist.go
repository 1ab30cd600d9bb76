package dllist

import (
	"math"

	"fortio.org/safecast"
	"github.com/google/uuid"
	"github.com/sirkon/errors"

	"github.com/sirkon/chklist/internal/listerr"
	"github.com/sirkon/chklist/internal/listid"
)

// New конструктор пустого двусвязного списка.
func New[T any](name string, opts ...Option) *List[T] {
	s := defaultSettings()
	for _, opt := range opts {
		opt.apply(&s)
	}

	return &List[T]{
		name:     name,
		id:       listid.Next(),
		uid:      uuid.New(),
		nodes:    make([]slot[T], 1),
		settings: s,
	}
}

// FromValues конструктор списка содержащего данные значения в том же порядке.
func FromValues[T any](name string, values []T, opts ...Option) *List[T] {
	l := New[T](name, opts...)
	for _, v := range values {
		l.PushBack(v)
	}

	return l
}

// List двусвязный список с самопроверкой.
// Каждая операция, читающая или меняющая структуру списка, проверяет
// его целостность до и после выполнения. Нарушение целостности фатально:
// возбуждается паника со значением *listerr.Fatal.
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
type List[T any] struct {
	name string
	id   uint64
	uid  uuid.UUID

	nodes []slot[T]
	free  []uint32
	head  uint32
	tail  uint32
	size  int

	destructed bool

	settings
}

// Name имя списка.
func (l *List[T]) Name() string {
	return l.name
}

// ID идентификатор списка в рамках процесса.
func (l *List[T]) ID() uint64 {
	return l.id
}

// UUID уникальный токен экземпляра списка.
func (l *List[T]) UUID() uuid.UUID {
	return l.uid
}

// Len количество элементов в списке.
func (l *List[T]) Len() int {
	return l.size
}

// Head получение первого элемента списка. Для nil списка фатально.
func (l *List[T]) Head() (Node, bool) {
	if l == nil {
		l.fail("Head", listerr.New(listerr.CodeNullListPtr))
	}

	return l.handle(l.head)
}

// Tail получение последнего элемента списка. Для nil списка фатально.
func (l *List[T]) Tail() (Node, bool) {
	if l == nil {
		l.fail("Tail", listerr.New(listerr.CodeNullListPtr))
	}

	return l.handle(l.tail)
}

// Value возврат значения лежащего в узле.
func (l *List[T]) Value(n Node) (T, bool) {
	s := l.slot(n)
	if s == nil {
		var zero T
		return zero, false
	}

	return s.value, true
}

// Next следующий узел.
func (l *List[T]) Next(n Node) (Node, bool) {
	s := l.slot(n)
	if s == nil {
		return Node{}, false
	}

	return l.handle(s.next)
}

// Prev предыдущий узел.
func (l *List[T]) Prev(n Node) (Node, bool) {
	s := l.slot(n)
	if s == nil {
		return Node{}, false
	}

	return l.handle(s.prev)
}

// Copy создание нового списка с копиями значений данного.
// Узлы нового списка не разделяются с исходным.
func (l *List[T]) Copy(name string) *List[T] {
	const op = "Copy"
	l.verify(op)

	res := &List[T]{
		name:     name,
		id:       listid.Next(),
		uid:      uuid.New(),
		nodes:    make([]slot[T], 1, l.size+1),
		settings: l.settings,
	}
	for cur := l.head; cur != nilIndex; cur = l.nodes[cur].next {
		res.pushBack(op, l.nodes[cur].value)
	}

	res.verify(op)
	l.verify(op)
	return res
}

// Clean удаление всех элементов списка. Список остаётся пригодным для работы.
func (l *List[T]) Clean() {
	const op = "Clean"
	l.verify(op)

	l.releaseAll()

	l.verify(op)
}

// Destroy уничтожение списка: освобождаются все узлы, идентификатор
// выводится из обращения. Повторное уничтожение фатально.
func (l *List[T]) Destroy() {
	const op = "Destroy"
	if l != nil && l.destructed {
		l.fail(op, listerr.New(listerr.CodeDestructorRepeated))
	}
	l.verify(op)

	l.releaseAll()
	if !listid.Retire(l.id) {
		l.fail(op, listerr.New(listerr.CodeDestructorRepeated, "list id is already retired"))
	}

	l.nodes = l.nodes[:1:1]
	l.free = nil
	l.destructed = true
}

// Values значения списка от головы к хвосту.
func (l *List[T]) Values() []T {
	const op = "Values"
	l.verify(op)

	res := make([]T, 0, l.size)
	for cur := l.head; cur != nilIndex; cur = l.nodes[cur].next {
		res = append(res, l.nodes[cur].value)
	}

	l.verify(op)
	return res
}

// Dump передача диагностического слепка списка получателю дампов.
func (l *List[T]) Dump(name string) error {
	if l == nil {
		return errors.New("dump nil list")
	}
	if l.dumper == nil {
		return errors.New("no dumper set for the list").Str("list-name", l.name)
	}

	if err := l.dumper.Dump(name, l.Snapshot()); err != nil {
		return errors.Wrap(err, "dump list").Str("list-name", l.name).Str("dump-name", name)
	}

	return nil
}

// Write сохранение значений списка.
func (l *List[T]) Write(name string) error {
	values := l.Values()
	if l.persister == nil {
		return errors.New("no persister set for the list").Str("list-name", l.name)
	}

	vals := make([]any, len(values))
	for i, v := range values {
		vals[i] = v
	}
	if err := l.persister.Persist(name, vals); err != nil {
		return errors.Wrap(err, "persist list values").Str("list-name", l.name).Str("base-name", name)
	}

	return nil
}

func (l *List[T]) handle(index uint32) (Node, bool) {
	if index == nilIndex || int(index) >= len(l.nodes) {
		return Node{}, false
	}

	s := &l.nodes[index]
	if !s.live {
		return Node{}, false
	}

	return Node{
		index: index,
		gen:   s.gen,
	}, true
}

// slot ячейка живого узла данной ручки, nil если ручка устарела.
func (l *List[T]) slot(n Node) *slot[T] {
	if l == nil || l.destructed || n.index == nilIndex || int(n.index) >= len(l.nodes) {
		return nil
	}

	s := &l.nodes[n.index]
	if !s.live || s.gen != n.gen {
		return nil
	}

	return s
}

// alloc выделение ячейки под новый узел.
func (l *List[T]) alloc(op string, v T) uint32 {
	if k := len(l.free); k > 0 {
		index := l.free[k-1]
		l.free = l.free[:k-1]
		l.nodes[index].fill(v)
		return index
	}

	index, err := safecast.Conv[uint32](len(l.nodes))
	if err != nil || index == math.MaxUint32 {
		l.fail(op, listerr.New(listerr.CodeNoMemory, "node storage is exhausted"))
	}

	l.nodes = append(l.nodes, slot[T]{})
	l.nodes[index].fill(v)
	return index
}

func (l *List[T]) release(index uint32) {
	l.nodes[index].cleanup()
	l.free = append(l.free, index)
}

func (l *List[T]) releaseAll() {
	cur := l.head
	for cur != nilIndex {
		next := l.nodes[cur].next
		l.release(cur)
		cur = next
	}

	l.head = nilIndex
	l.tail = nilIndex
	l.size = 0
}
