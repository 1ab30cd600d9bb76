// Package listid реестр идентификаторов списков на уровне процесса.
// Идентификаторы выдаются монотонно начиная с 1 и никогда не переиспользуются.
package listid

import "sync"

var registry = newRegistry()

// Next выдаёт новый идентификатор.
func Next() uint64 {
	return registry.next()
}

// Retire выводит идентификатор из обращения. Возвращает false, если
// идентификатор уже был выведен или никогда не выдавался.
func Retire(id uint64) bool {
	return registry.retire(id)
}

// Retired проверка, что идентификатор уже выведен из обращения.
func Retired(id uint64) bool {
	return registry.retired(id)
}

// Last последний выданный идентификатор.
func Last() uint64 {
	registry.lock.Lock()
	defer registry.lock.Unlock()

	return registry.last
}

type idRegistry struct {
	lock  sync.Mutex
	last  uint64
	spent map[uint64]struct{}
}

func newRegistry() *idRegistry {
	return &idRegistry{
		spent: map[uint64]struct{}{},
	}
}

func (r *idRegistry) next() uint64 {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.last++
	return r.last
}

func (r *idRegistry) retire(id uint64) bool {
	r.lock.Lock()
	defer r.lock.Unlock()

	if id == 0 || id > r.last {
		return false
	}

	if _, ok := r.spent[id]; ok {
		return false
	}

	r.spent[id] = struct{}{}
	return true
}

func (r *idRegistry) retired(id uint64) bool {
	r.lock.Lock()
	defer r.lock.Unlock()

	_, ok := r.spent[id]
	return ok
}
