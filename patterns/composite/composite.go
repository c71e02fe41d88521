package composite

import (
	"fmt"
	"io"
)

// Component is a node in the tree.
type Component interface {
	Search(w io.Writer, keyword string)
}

// File is a leaf.
type File struct {
	Name string
}

// Search implements Component.
func (f File) Search(w io.Writer, keyword string) {
	_, _ = fmt.Fprintf(w, "Searching for %s in file %s\n", keyword, f.Name)
}

// Folder holds child components in insertion order.
type Folder struct {
	Name     string
	children []Component
}

// NewFolder returns an empty folder.
func NewFolder(name string) *Folder { return &Folder{Name: name} }

// Add appends c and returns the folder for chaining.
func (f *Folder) Add(c Component) *Folder {
	f.children = append(f.children, c)
	return f
}

// Search reports the folder, then searches every child depth-first.
func (f *Folder) Search(w io.Writer, keyword string) {
	_, _ = fmt.Fprintf(w, "Searching recursively for keyword %s in folder %s\n", keyword, f.Name)
	for _, c := range f.children {
		c.Search(w, keyword)
	}
}

// Len returns the number of direct children.
func (f *Folder) Len() int { return len(f.children) }
