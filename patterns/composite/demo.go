package composite

import (
	"io"

	"github.com/sghaida/gopatterns/internal/transcript"
)

// Demo nests folder1 inside folder2 and searches from the top.
func Demo(w io.Writer) error {
	out := transcript.New(w)

	folder1 := NewFolder("folder1").Add(File{Name: "file1"})
	folder2 := NewFolder("folder2").
		Add(File{Name: "file2"}).
		Add(File{Name: "file3"}).
		Add(folder1)

	folder2.Search(out, "rose")

	return out.Err()
}
