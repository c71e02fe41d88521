package strategy

import (
	"io"

	"github.com/sghaida/gopatterns/internal/transcript"
)

// Messages written by the drive strategies.
const (
	SpecialDriveMessage = "Special drive logic"
	NormalDriveMessage  = "Normal drive logic"
)

// DriveStrategy is the interchangeable driving behavior.
type DriveStrategy interface {
	Drive(w io.Writer)
}

// SpecialDrive is shared by sports and off-road vehicles.
type SpecialDrive struct{}

// Drive implements DriveStrategy.
func (SpecialDrive) Drive(w io.Writer) { transcript.Line(w, SpecialDriveMessage) }

// NormalDrive is the everyday behavior.
type NormalDrive struct{}

// Drive implements DriveStrategy.
func (NormalDrive) Drive(w io.Writer) { transcript.Line(w, NormalDriveMessage) }

// Vehicle is the strategy context. The strategy is bound at construction and never changes.
type Vehicle struct {
	strategy DriveStrategy
}

// NewVehicle binds s to a new Vehicle. s must not be nil.
func NewVehicle(s DriveStrategy) *Vehicle { return &Vehicle{strategy: s} }

func NewSportsVehicle() *Vehicle    { return NewVehicle(SpecialDrive{}) }
func NewOffRoadVehicle() *Vehicle   { return NewVehicle(SpecialDrive{}) }
func NewPassengerVehicle() *Vehicle { return NewVehicle(NormalDrive{}) }

// Drive delegates to the bound strategy.
func (v *Vehicle) Drive(w io.Writer) { v.strategy.Drive(w) }
