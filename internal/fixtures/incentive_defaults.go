package fixtures

import (
	"github.com/primovet/vetpay-backend-go/internal/domain/employee"
	"github.com/primovet/vetpay-backend-go/internal/domain/incentive"
	"github.com/shopspring/decimal"
)

// ==========================================
// POSITION GROUPS
// ==========================================

func positions(keys ...employee.Position) []string {
	out := make([]string, 0, len(keys))
	for _, key := range keys {
		out = append(out, string(key))
	}
	return out
}

var (
	vetPositions = positions(
		employee.PositionResidentVet,
		employee.PositionJuniorVet,
	)
	supportPositions = positions(
		employee.PositionVetAssistant,
		employee.PositionVetNurse,
		employee.PositionGroomerVetAssistant,
		employee.PositionClinicSecretary,
		employee.PositionStaff,
	)
	groomingPositions = positions(
		employee.PositionGroomer,
		employee.PositionGroomerVetAssistant,
	)
	nursingPositions = positions(
		employee.PositionVetNurse,
		employee.PositionVetAssistant,
	)
)

// ==========================================
// DEFAULT INCENTIVE CONFIGS
// ==========================================

// GetDefaultIncentiveConfigs returns the compiled-in incentive type table.
// A persisted override row for the same type code takes precedence; these
// defaults apply everywhere else.
func GetDefaultIncentiveConfigs() []incentive.IncentiveConfig {
	return []incentive.IncentiveConfig{
		// Individual lab and clinical incentives, earned per employee
		{
			TypeCode:           "CBC",
			DisplayName:        "Complete Blood Count",
			Rate:               decimal.NewFromInt(50),
			FormulaType:        incentive.FormulaTypeCountMultiply,
			ReceivingPositions: vetPositions,
			SortOrder:          10,
			IsActive:           true,
		},
		{
			TypeCode:           "BLOOD_CHEM",
			DisplayName:        "Blood Chemistry",
			Rate:               decimal.NewFromInt(75),
			FormulaType:        incentive.FormulaTypeCountMultiply,
			ReceivingPositions: vetPositions,
			SortOrder:          20,
			IsActive:           true,
		},
		{
			TypeCode:    "MICROSCOPY",
			DisplayName: "Microscopy",
			Rate:        decimal.NewFromInt(25),
			FormulaType: incentive.FormulaTypeCountMultiply,
			ReceivingPositions: positions(
				employee.PositionResidentVet,
				employee.PositionJuniorVet,
				employee.PositionVetAssistant,
			),
			SortOrder: 30,
			IsActive:  true,
		},
		{
			TypeCode:           "ULTRASOUND",
			DisplayName:        "Ultrasound",
			Rate:               decimal.NewFromInt(100),
			FormulaType:        incentive.FormulaTypeCountMultiply,
			ReceivingPositions: positions(employee.PositionResidentVet),
			SortOrder:          40,
			IsActive:           true,
		},
		{
			TypeCode:    "SURGERY_ASSIST",
			DisplayName: "Surgery Assist",
			Rate:        decimal.NewFromInt(150),
			FormulaType: incentive.FormulaTypeCountMultiply,
			ReceivingPositions: positions(
				employee.PositionResidentVet,
				employee.PositionJuniorVet,
				employee.PositionVetNurse,
			),
			SortOrder: 50,
			IsActive:  true,
		},
		{
			TypeCode:           "VACCINATION",
			DisplayName:        "Vaccination",
			Rate:               decimal.NewFromInt(10),
			FormulaType:        incentive.FormulaTypeCountMultiply,
			ReceivingPositions: vetPositions,
			SortOrder:          60,
			IsActive:           true,
		},
		{
			TypeCode:           "PROF_FEE",
			DisplayName:        "Professional Fee Share",
			Rate:               decimal.RequireFromString("0.10"),
			FormulaType:        incentive.FormulaTypePercent,
			ReceivingPositions: vetPositions,
			SortOrder:          70,
			IsActive:           true,
		},

		// Shared incentives fed by the branch-wide daily sheet. The
		// confinement family divides among all vet sub-grades but pays
		// resident veterinarians only.
		{
			TypeCode:           "CONFINEMENT_VET",
			DisplayName:        "Confinement (Veterinarians)",
			Rate:               decimal.NewFromInt(55),
			FormulaType:        incentive.FormulaTypeCountMultiply,
			ReceivingPositions: positions(employee.PositionResidentVet),
			DivisionPositions:  vetPositions,
			IsShared:           true,
			PoolInCalculator:   true,
			SortOrder:          80,
			IsActive:           true,
		},
		{
			TypeCode:           "CONFINEMENT_STAFF",
			DisplayName:        "Confinement (Support Staff)",
			Rate:               decimal.NewFromInt(20),
			FormulaType:        incentive.FormulaTypeCountMultiply,
			ReceivingPositions: supportPositions,
			IsShared:           true,
			PoolInCalculator:   true,
			SortOrder:          90,
			IsActive:           true,
		},

		// Grooming and nursing pool through sheet distribution but pay
		// unpooled when entered through the per-employee calculator.
		{
			TypeCode:           "GROOMING",
			DisplayName:        "Grooming",
			Rate:               decimal.NewFromInt(40),
			FormulaType:        incentive.FormulaTypeCountMultiply,
			ReceivingPositions: groomingPositions,
			IsShared:           true,
			SortOrder:          100,
			IsActive:           true,
		},
		{
			TypeCode:           "NURSING",
			DisplayName:        "Nursing Care",
			Rate:               decimal.NewFromInt(30),
			FormulaType:        incentive.FormulaTypeCountMultiply,
			ReceivingPositions: nursingPositions,
			IsShared:           true,
			SortOrder:          110,
			IsActive:           true,
		},
		{
			TypeCode:           "HOME_SERVICE",
			DisplayName:        "Home Service Fee Share",
			Rate:               decimal.RequireFromString("0.05"),
			FormulaType:        incentive.FormulaTypePercent,
			ReceivingPositions: vetPositions,
			IsShared:           true,
			SortOrder:          120,
			IsActive:           true,
		},
	}
}

// GetDefaultIncentiveConfig looks up one default by type code.
func GetDefaultIncentiveConfig(typeCode string) (incentive.IncentiveConfig, bool) {
	for _, config := range GetDefaultIncentiveConfigs() {
		if config.TypeCode == typeCode {
			return config, true
		}
	}
	return incentive.IncentiveConfig{}, false
}

// ==========================================
// DISTRIBUTION TOPOLOGY
// ==========================================

// GetDefaultDistributionRules returns the source-to-derived fan-out of
// sheet distribution. Rates, formulas, and position sets come from the
// derived type's effective config at run time.
func GetDefaultDistributionRules() []incentive.DistributionRule {
	return []incentive.DistributionRule{
		{SourceType: "CONFINEMENT", DerivedType: "CONFINEMENT_VET"},
		{SourceType: "CONFINEMENT", DerivedType: "CONFINEMENT_STAFF"},
		{SourceType: "GROOMING", DerivedType: "GROOMING"},
		{SourceType: "NURSING", DerivedType: "NURSING"},
		{SourceType: "HOME_SERVICE", DerivedType: "HOME_SERVICE"},
	}
}

// GetSheetSourceTypes returns the distinct source type codes a daily
// sheet accepts, in rule order.
func GetSheetSourceTypes() []string {
	seen := make(map[string]bool)
	var out []string
	for _, rule := range GetDefaultDistributionRules() {
		if !seen[rule.SourceType] {
			seen[rule.SourceType] = true
			out = append(out, rule.SourceType)
		}
	}
	return out
}
