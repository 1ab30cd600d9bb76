package dllist

// Node ручка узла списка. Ручка остаётся безопасной после удаления
// узла: поколение в ней перестаёт совпадать с поколением ячейки и
// обращения через неё возвращают признак отсутствия узла.
type Node struct {
	index uint32
	gen   uint32
}

// Index позиция узла в хранилище. Используется в диагностике.
func (n Node) Index() uint32 {
	return n.index
}

// IsZero проверка, что ручка пустая.
func (n Node) IsZero() bool {
	return n.index == nilIndex
}

// nilIndex отсутствующая ссылка. Нулевая ячейка хранилища зарезервирована
// и никогда не становится живой.
const nilIndex uint32 = 0

// slot ячейка хранилища узлов.
type slot[T any] struct {
	prev uint32
	next uint32

	// gen увеличивается при каждом освобождении ячейки.
	gen uint32

	// live признак наличия в ячейке значения.
	live  bool
	value T
}

func (s *slot[T]) fill(v T) {
	s.prev = nilIndex
	s.next = nilIndex
	s.live = true
	s.value = v
}

func (s *slot[T]) cleanup() {
	var zero T
	s.prev = nilIndex
	s.next = nilIndex
	s.live = false
	s.value = zero
	s.gen++
}
