package entity

// BookKey identifies a book. Two books are the same book iff their keys are equal.
type BookKey struct {
	Title  string
	Author string
}

type Book struct {
	title     string
	author    string
	available bool
}

func NewBook(title, author string) *Book {
	return RestoreBook(title, author, true)
}

// RestoreBook creates a book with persisted availability.
func RestoreBook(title, author string, available bool) *Book {
	return &Book{
		title:     title,
		author:    author,
		available: available,
	}
}

func (b *Book) Title() string {
	return b.title
}

func (b *Book) Author() string {
	return b.author
}

func (b *Book) Key() BookKey {
	return BookKey{Title: b.title, Author: b.author}
}

func (b *Book) Available() bool {
	return b.available
}

// Equal reports whether both books share the same identity. Availability is ignored.
func (b *Book) Equal(other *Book) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.Key() == other.Key()
}
