package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReader_Borrow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		available   bool
		wantOK      bool
		wantHolding bool
	}{
		{name: "available book",
			available:   true,
			wantOK:      true,
			wantHolding: true},

		{name: "already borrowed book",
			available:   false,
			wantOK:      false,
			wantHolding: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			book := RestoreBook("Effective Java", "Joshua Bloch", test.available)
			reader := NewReader("Petro Petrenko")

			require.Equal(t, test.wantOK, reader.Borrow(book))
			require.False(t, book.Available())
			require.Equal(t, test.wantHolding, reader.Holds(book.Key()))
		})
	}
}

func TestReader_SecondBorrowerIsRejected(t *testing.T) {
	t.Parallel()

	book := NewBook("Effective Java", "Joshua Bloch")
	first := NewReader("Petro Petrenko")
	second := NewReader("Vasyl Petrenko")

	require.True(t, first.Borrow(book))
	require.False(t, second.Borrow(book))
	require.True(t, first.Holds(book.Key()))
	require.False(t, second.Holds(book.Key()))
	require.False(t, book.Available())
}

func TestReader_Return(t *testing.T) {
	t.Parallel()

	t.Run("held book", func(t *testing.T) {
		t.Parallel()

		book := NewBook("Effective Java", "Joshua Bloch")
		reader := NewReader("Petro Petrenko")
		require.True(t, reader.Borrow(book))

		require.True(t, reader.Return(book))
		require.True(t, book.Available())
		require.Empty(t, reader.Borrowed())
	})

	t.Run("book held by somebody else", func(t *testing.T) {
		t.Parallel()

		book := NewBook("Effective Java", "Joshua Bloch")
		owner := NewReader("Petro Petrenko")
		other := NewReader("Vasyl Petrenko")
		require.True(t, owner.Borrow(book))

		require.False(t, other.Return(book))
		require.False(t, book.Available())
		require.True(t, owner.Holds(book.Key()))
	})

	t.Run("equal book instance", func(t *testing.T) {
		t.Parallel()

		book := NewBook("Effective Java", "Joshua Bloch")
		reader := NewReader("Petro Petrenko")
		require.True(t, reader.Borrow(book))

		twin := RestoreBook("Effective Java", "Joshua Bloch", false)
		require.True(t, reader.Return(twin))
		require.True(t, twin.Available())
		require.False(t, reader.Holds(book.Key()))
	})
}

func TestReader_BorrowedKeepsLoanOrder(t *testing.T) {
	t.Parallel()

	reader := NewReader("Anton Antonenko")
	books := []*Book{
		NewBook("Z Book", "Author A"),
		NewBook("A Book", "Author Z"),
		NewBook("M Book", "Author M"),
	}
	for _, b := range books {
		require.True(t, reader.Borrow(b))
	}
	require.True(t, reader.Return(books[1]))

	require.Equal(t, []BookKey{books[0].Key(), books[2].Key()}, reader.Borrowed())
}

func TestRestoreLoan(t *testing.T) {
	t.Parallel()

	book := RestoreBook("Effective Java", "Joshua Bloch", false)
	reader := NewReader("Petro Petrenko")

	RestoreLoan(reader, book)
	RestoreLoan(reader, book)

	require.False(t, book.Available())
	require.Equal(t, []BookKey{book.Key()}, reader.Borrowed())
	require.True(t, reader.Return(book))
	require.True(t, book.Available())
}
