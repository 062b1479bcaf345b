package entity

import "github.com/samber/lo"

type Reader struct {
	name     string
	borrowed map[BookKey]struct{}
	order    []BookKey
}

func NewReader(name string) *Reader {
	return &Reader{
		name:     name,
		borrowed: make(map[BookKey]struct{}),
	}
}

func (r *Reader) Name() string {
	return r.name
}

// Borrow takes the book if it is available. The result reports whether the loan happened.
func (r *Reader) Borrow(book *Book) bool {
	if !book.available {
		return false
	}

	book.available = false
	r.hold(book.Key())
	return true
}

// Return gives the book back if this reader holds it.
func (r *Reader) Return(book *Book) bool {
	key := book.Key()
	if !r.Holds(key) {
		return false
	}

	book.available = true
	delete(r.borrowed, key)
	r.order = lo.Without(r.order, key)
	return true
}

func (r *Reader) Holds(key BookKey) bool {
	_, ok := r.borrowed[key]
	return ok
}

// Borrowed returns the keys of held books in loan order.
func (r *Reader) Borrowed() []BookKey {
	return append([]BookKey(nil), r.order...)
}

func (r *Reader) hold(key BookKey) {
	if r.Holds(key) {
		return
	}
	r.borrowed[key] = struct{}{}
	r.order = append(r.order, key)
}

// RestoreLoan records a persisted loan. Unlike Borrow it ignores the book's
// current availability, which may be stale in the loaded file.
func RestoreLoan(reader *Reader, book *Book) {
	book.available = false
	reader.hold(book.Key())
}
