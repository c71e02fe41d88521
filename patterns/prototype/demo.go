package prototype

import (
	"io"

	"github.com/sghaida/gopatterns/internal/transcript"
)

// Demo clones a Human, changes the original, then copies a whole team at once.
func Demo(w io.Writer) error {
	out := transcript.New(w)

	original := &Human{Name: "Chethan", Age: 21, Hobbies: []string{"chess"}}
	clone := original.Clone()

	original.Age = 22
	original.Hobbies[0] = "go"

	out.Printf("original: %s %d %v\n", original.Name, original.Age, original.Hobbies)
	out.Printf("clone:    %s %d %v\n", clone.Name, clone.Age, clone.Hobbies)

	team := []*Human{original, {Name: "Asha", Age: 30, Hobbies: []string{"rust"}}}
	copies := CloneAll(team)
	copies[1].Hobbies[0] = "zig"

	out.Printf("team:     %s %v, %s %v\n", team[0].Name, team[0].Hobbies, team[1].Name, team[1].Hobbies)
	out.Printf("copies:   %s %v, %s %v\n", copies[0].Name, copies[0].Hobbies, copies[1].Name, copies[1].Hobbies)

	return out.Err()
}
