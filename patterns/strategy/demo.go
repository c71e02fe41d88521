package strategy

import (
	"io"

	"github.com/sghaida/gopatterns/internal/transcript"
)

// Demo drives a sports, a passenger and an off-road vehicle, then filters a
// list with two strategies.
func Demo(w io.Writer) error {
	out := transcript.New(w)

	for _, v := range []*Vehicle{
		NewSportsVehicle(),
		NewPassengerVehicle(),
		NewOffRoadVehicle(),
	} {
		v.Drive(out)
	}

	values := Values{-1, 3, 2, 4, -5}
	values.Filter(RemoveNegative{})
	out.Printf("without negatives: %v\n", []int(values))
	values.Filter(RemoveOdd{})
	out.Printf("without odds: %v\n", []int(values))

	return out.Err()
}
