// Package bufmng переиспользуемый буфер для вычитки кадров.
package bufmng

// New конструктор буфера с данной начальной вместимостью.
func New(capacity int) *BufferManager {
	return &BufferManager{
		buf: make([]byte, 0, capacity),
	}
}

// BufferManager управление буфером. Выданный слайс действителен до следующего вызова Get.
type BufferManager struct {
	buf    []byte
	grows  int
	maxLen int
}

// Get выдать буфер нужного размера
func (b *BufferManager) Get(n int) []byte {
	if n > b.maxLen {
		b.maxLen = n
	}
	if cap(b.buf) >= n {
		return b.buf[:n]
	}

	b.buf = make([]byte, n)
	b.grows++
	return b.buf
}

// Grows количество перевыделений памяти под буфер.
func (b *BufferManager) Grows() int {
	return b.grows
}

// MaxLen наибольшая запрошенная длина.
func (b *BufferManager) MaxLen() int {
	return b.maxLen
}
