package flyweight

import (
	"fmt"
	"io"
)

// BookType is the shared, intrinsic state.
type BookType struct {
	Type        string
	Distributor string
}

// BookFactory caches BookTypes by type name.
type BookFactory struct {
	types map[string]*BookType
}

// NewBookFactory returns an empty cache.
func NewBookFactory() *BookFactory {
	return &BookFactory{types: map[string]*BookType{}}
}

// BookType returns the cached BookType for typ, creating it on first use.
//
// The distributor of the first request wins; later requests for the same
// type get the cached value unchanged.
func (f *BookFactory) BookType(typ, distributor string) *BookType {
	if bt, ok := f.types[typ]; ok {
		return bt
	}
	bt := &BookType{Type: typ, Distributor: distributor}
	f.types[typ] = bt
	return bt
}

// Len returns the number of distinct cached types.
func (f *BookFactory) Len() int { return len(f.types) }

// Book is the extrinsic state plus a pointer to the shared type.
type Book struct {
	Name  string
	Price int
	Type  *BookType
}

// Store is a list of books.
type Store struct {
	books []Book
}

// AddBook appends a book whose type comes from factory.
func (s *Store) AddBook(factory *BookFactory, name string, price int, typ, distributor string) {
	s.books = append(s.books, Book{
		Name:  name,
		Price: price,
		Type:  factory.BookType(typ, distributor),
	})
}

// Books returns the stored books in insertion order.
func (s *Store) Books() []Book { return s.books }

// Display prints one line per book.
func (s *Store) Display(w io.Writer) {
	for _, b := range s.books {
		_, _ = fmt.Fprintf(w, "%s %d %s %s\n", b.Name, b.Price, b.Type.Type, b.Type.Distributor)
	}
}
