package catalog

import "sync/atomic"

// Store хранит текущий снимок каталога и позволяет атомарно подменять его
// при перезагрузке. Читатели никогда не видят каталог в процессе замены,
// поэтому блокировки на поиске не нужны.
type Store struct {
	cur atomic.Pointer[Catalog]
}

// NewStore создаёт хранилище с начальным снимком каталога.
func NewStore(c *Catalog) *Store {
	s := &Store{}
	s.cur.Store(c)
	return s
}

// Current возвращает текущий снимок каталога.
func (s *Store) Current() *Catalog {
	return s.cur.Load()
}

// Swap атомарно заменяет снимок каталога новым.
func (s *Store) Swap(c *Catalog) {
	s.cur.Store(c)
}
