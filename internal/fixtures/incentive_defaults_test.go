package fixtures

import (
	"testing"

	"github.com/primovet/vetpay-backend-go/internal/domain/employee"
	"github.com/primovet/vetpay-backend-go/internal/domain/incentive"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDefaultIncentiveConfigs_Integrity(t *testing.T) {
	configs := GetDefaultIncentiveConfigs()
	require.NotEmpty(t, configs)

	seen := make(map[string]bool)
	for _, config := range configs {
		assert.False(t, seen[config.TypeCode], "duplicate type code %s", config.TypeCode)
		seen[config.TypeCode] = true

		assert.True(t, config.FormulaType.IsValid(), "%s has invalid formula type", config.TypeCode)
		assert.False(t, config.Rate.IsNegative(), "%s has negative rate", config.TypeCode)
		assert.NotEmpty(t, config.ReceivingPositions, "%s has no receiving positions", config.TypeCode)
		assert.True(t, config.IsActive, "%s should default to active", config.TypeCode)

		for _, key := range config.ReceivingPositions {
			assert.True(t, employee.Position(key).IsValid(), "%s receiving position %s unknown", config.TypeCode, key)
		}
		for _, key := range config.DivisionPositions {
			assert.True(t, employee.Position(key).IsValid(), "%s division position %s unknown", config.TypeCode, key)
		}

		// Only shared types participate in calculator pooling
		if config.PoolInCalculator {
			assert.True(t, config.IsShared, "%s pools in calculator but is not shared", config.TypeCode)
		}
	}
}

func TestGetDefaultIncentiveConfig_CBC(t *testing.T) {
	config, ok := GetDefaultIncentiveConfig("CBC")
	require.True(t, ok)

	assert.Equal(t, incentive.FormulaTypeCountMultiply, config.FormulaType)
	assert.True(t, config.Rate.Equal(decimal.NewFromInt(50)))
	assert.False(t, config.IsShared)
	assert.False(t, config.PoolInCalculator)
}

func TestGetDefaultIncentiveConfig_ConfinementVet(t *testing.T) {
	config, ok := GetDefaultIncentiveConfig("CONFINEMENT_VET")
	require.True(t, ok)

	assert.True(t, config.Rate.Equal(decimal.NewFromInt(55)))
	assert.True(t, config.IsShared)
	assert.True(t, config.PoolInCalculator)

	// Resident vets receive; all vet sub-grades divide
	assert.Equal(t, []string{string(employee.PositionResidentVet)}, config.ReceivingPositions)
	assert.Equal(t, []string{
		string(employee.PositionResidentVet),
		string(employee.PositionJuniorVet),
	}, config.EffectiveDivisionPositions())
}

func TestGetDefaultIncentiveConfig_GroomingUnpooledInCalculator(t *testing.T) {
	for _, code := range []string{"GROOMING", "NURSING"} {
		config, ok := GetDefaultIncentiveConfig(code)
		require.True(t, ok, code)

		assert.True(t, config.IsShared, "%s distributes through the sheet", code)
		assert.False(t, config.PoolInCalculator, "%s must not divide on calculator entry", code)
	}
}

func TestGetDefaultDistributionRules_DerivedTypesHaveConfigs(t *testing.T) {
	for _, rule := range GetDefaultDistributionRules() {
		config, ok := GetDefaultIncentiveConfig(rule.DerivedType)
		require.True(t, ok, "derived type %s has no default config", rule.DerivedType)
		assert.True(t, config.IsShared, "derived type %s must be shared", rule.DerivedType)
	}
}

func TestGetSheetSourceTypes(t *testing.T) {
	sources := GetSheetSourceTypes()

	assert.Equal(t, []string{"CONFINEMENT", "GROOMING", "NURSING", "HOME_SERVICE"}, sources)
}
