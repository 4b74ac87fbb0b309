package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID            string
	EmployeeCode  *string
	FullName      string
	Position      Position
	BranchID      string
	MonthlySalary decimal.Decimal
	RatePerDay    decimal.Decimal
	RatePerHour   decimal.Decimal
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined fields
	BranchName *string
}

type Position string

const (
	PositionResidentVet         Position = "resident_vet"
	PositionJuniorVet           Position = "junior_vet"
	PositionGroomer             Position = "groomer"
	PositionGroomerVetAssistant Position = "groomer_vet_assistant"
	PositionVetAssistant        Position = "vet_assistant"
	PositionVetNurse            Position = "vet_nurse"
	PositionClinicSecretary     Position = "clinic_secretary"
	PositionStaff               Position = "staff"
)

// AllPositions lists every valid position key in display order.
var AllPositions = []Position{
	PositionResidentVet,
	PositionJuniorVet,
	PositionGroomer,
	PositionGroomerVetAssistant,
	PositionVetAssistant,
	PositionVetNurse,
	PositionClinicSecretary,
	PositionStaff,
}

var positionDisplayNames = map[Position]string{
	PositionResidentVet:         "Resident Veterinarian",
	PositionJuniorVet:           "Junior Veterinarian",
	PositionGroomer:             "Groomer",
	PositionGroomerVetAssistant: "Groomer / Vet Assistant",
	PositionVetAssistant:        "Veterinary Assistant",
	PositionVetNurse:            "Veterinary Nurse",
	PositionClinicSecretary:     "Clinic Secretary",
	PositionStaff:               "Staff",
}

func (p Position) IsValid() bool {
	_, ok := positionDisplayNames[p]
	return ok
}

func (p Position) DisplayName() string {
	if name, ok := positionDisplayNames[p]; ok {
		return name
	}
	return string(p)
}

// IsBranchDependent reports whether the position derives its daily rate
// from the branch working schedule instead of the statutory 313 factor.
func (p Position) IsBranchDependent() bool {
	return p == PositionResidentVet
}
