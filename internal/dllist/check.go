package dllist

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/sirkon/chklist/internal/listerr"
)

// Check проверка целостности списка. Возвращает listerr.CodeOK если
// нарушений не найдено, иначе код первого найденного нарушения.
func (l *List[T]) Check() listerr.Code {
	if err := l.validate(); err != nil {
		return err.Code
	}

	return listerr.CodeOK
}

// Verify то же самое что и Check, но с описанием места нарушения.
// Возвращает nil для целостного списка и *listerr.Error иначе.
func (l *List[T]) Verify() error {
	if err := l.validate(); err != nil {
		return err
	}

	return nil
}

// validate проверки идут в таком порядке:
//
//  1. Список существует, создан конструктором и ещё не уничтожен.
//  2. Пустой список не имеет головы и хвоста, непустой имеет оба.
//  3. У головы нет предыдущего узла, у хвоста нет следующего.
//  4. Проход от головы ровно через size узлов заканчивается на хвосте,
//     при этом у каждого узла next→prev указывает на него самого.
//  5. Проход от хвоста ровно через size узлов заканчивается на голове,
//     при этом у каждого узла prev→next указывает на него самого.
//
// Каждый посещённый узел должен лежать в пределах хранилища и быть живым.
func (l *List[T]) validate() *listerr.Error {
	if l == nil {
		return listerr.New(listerr.CodeNullListPtr)
	}
	if l.nodes == nil || l.id == 0 {
		return listerr.New(listerr.CodeNotConstructed)
	}
	if l.destructed {
		return listerr.New(listerr.CodeDestructed)
	}

	if l.size < 0 {
		return listerr.New(listerr.CodeWrongSize, fmt.Sprintf("negative size %d", l.size))
	}

	if l.size == 0 {
		if l.head != nilIndex || l.tail != nilIndex {
			return listerr.New(
				listerr.CodeWrongSize,
				fmt.Sprintf("empty list has head %d and tail %d", l.head, l.tail),
			)
		}

		return nil
	}

	if l.head == nilIndex || l.tail == nilIndex {
		return listerr.New(
			listerr.CodeWrongSize,
			fmt.Sprintf("list of size %d has head %d and tail %d", l.size, l.head, l.tail),
		)
	}

	if code := l.slotFault(l.head); code != listerr.CodeOK {
		return slotError(code, l.head, len(l.nodes), "head")
	}
	if code := l.slotFault(l.tail); code != listerr.CodeOK {
		return slotError(code, l.tail, len(l.nodes), "tail")
	}

	if prev := l.nodes[l.head].prev; prev != nilIndex {
		return listerr.New(
			listerr.CodeWrongPrevNode,
			fmt.Sprintf("head %d has previous node %d", l.head, prev),
		)
	}
	if next := l.nodes[l.tail].next; next != nilIndex {
		return listerr.New(
			listerr.CodeWrongNextNode,
			fmt.Sprintf("tail %d has next node %d", l.tail, next),
		)
	}

	if err := l.walkForward(); err != nil {
		return err
	}

	return l.walkBackward()
}

func (l *List[T]) walkForward() *listerr.Error {
	cur := l.head
	for pos := 0; ; pos++ {
		if pos == l.size-1 {
			if cur != l.tail {
				return listerr.New(
					listerr.CodeWrongSize,
					fmt.Sprintf("forward walk of %d nodes ended at %d instead of tail %d", l.size, cur, l.tail),
				)
			}

			return nil
		}

		next := l.nodes[cur].next
		if next == nilIndex {
			return listerr.New(
				listerr.CodeWrongSize,
				fmt.Sprintf("forward walk ended after %d nodes, size is %d", pos+1, l.size),
			)
		}
		if code := l.slotFault(next); code != listerr.CodeOK {
			return slotError(code, next, len(l.nodes), fmt.Sprintf("next of %d at position %d", cur, pos))
		}

		if back := l.nodes[next].prev; back != cur {
			// Если обратная ссылка соседа согласована с каким-то другим узлом,
			// то неверна прямая ссылка текущего.
			code := listerr.CodeWrongPrevNode
			if l.liveIndex(back) && l.nodes[back].next == next {
				code = listerr.CodeWrongNextNode
			}

			return listerr.New(
				code,
				fmt.Sprintf("node %d at position %d: next %d points back to %d", cur, pos, next, back),
			)
		}

		cur = next
	}
}

func (l *List[T]) walkBackward() *listerr.Error {
	cur := l.tail
	for pos := l.size - 1; ; pos-- {
		if pos == 0 {
			if cur != l.head {
				return listerr.New(
					listerr.CodeWrongSize,
					fmt.Sprintf("backward walk of %d nodes ended at %d instead of head %d", l.size, cur, l.head),
				)
			}

			return nil
		}

		prev := l.nodes[cur].prev
		if prev == nilIndex {
			return listerr.New(
				listerr.CodeWrongSize,
				fmt.Sprintf("backward walk ended after %d nodes, size is %d", l.size-pos, l.size),
			)
		}
		if code := l.slotFault(prev); code != listerr.CodeOK {
			return slotError(code, prev, len(l.nodes), fmt.Sprintf("prev of %d at position %d", cur, pos))
		}

		if fwd := l.nodes[prev].next; fwd != cur {
			code := listerr.CodeWrongNextNode
			if l.liveIndex(fwd) && l.nodes[fwd].prev == prev {
				code = listerr.CodeWrongPrevNode
			}

			return listerr.New(
				code,
				fmt.Sprintf("node %d at position %d: prev %d points forward to %d", cur, pos, prev, fwd),
			)
		}

		cur = prev
	}
}

func (l *List[T]) slotFault(index uint32) listerr.Code {
	if index == nilIndex || int(index) >= len(l.nodes) {
		return listerr.CodeMemAccessViolation
	}
	if !l.nodes[index].live {
		return listerr.CodeInputDataPoison
	}

	return listerr.CodeOK
}

func slotError(code listerr.Code, index uint32, total int, what string) *listerr.Error {
	if code == listerr.CodeMemAccessViolation {
		return listerr.New(code, fmt.Sprintf("%s refers to slot %d out of %d", what, index, total))
	}

	return listerr.New(code, fmt.Sprintf("%s refers to released slot %d", what, index))
}

func (l *List[T]) liveIndex(index uint32) bool {
	return index != nilIndex && int(index) < len(l.nodes) && l.nodes[index].live
}

// verify проверка целостности на границе операции op.
func (l *List[T]) verify(op string) {
	err := l.validate()
	if err == nil {
		return
	}

	if l != nil && l.nodes != nil && l.dumper != nil {
		if dumpErr := l.dumper.Dump(l.dumpName, l.Snapshot()); dumpErr != nil {
			l.raise(op, err, dumpErr)
		}
	}

	l.raise(op, err, nil)
}

// fail фатальное завершение операции op с данной ошибкой.
func (l *List[T]) fail(op string, err *listerr.Error) {
	l.raise(op, err, nil)
}

func (l *List[T]) raise(op string, err *listerr.Error, dumpErr error) {
	f := &listerr.Fatal{
		Code:      err.Code,
		Operation: op,
		Cause:     err,
		DumpError: dumpErr,
	}
	f.File, f.Line, f.Function = callerLocation()

	if l != nil {
		f.ListName = l.name
		f.ListID = l.id
		f.ListUUID = l.uid
	}

	panic(f)
}

// callerLocation место вызова публичного метода списка.
func callerLocation() (file string, line int, function string) {
	var pcs [32]uintptr
	n := runtime.Callers(3, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if !strings.Contains(frame.Function, listMethodMarker) {
			return frame.File, frame.Line, frame.Function
		}
		if !more {
			return frame.File, frame.Line, frame.Function
		}
	}
}

const listMethodMarker = "/internal/dllist.(*List["
