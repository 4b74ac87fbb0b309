package branch

import (
	"time"

	"github.com/shopspring/decimal"
)

// Branch - Clinic branch with its own working schedule. WorkingDaysPerMonth
// and WorkingHoursPerDay drive the daily/hourly rates of branch-dependent
// positions.
type Branch struct {
	ID                  string
	Name                string
	Address             *string
	WorkingDaysPerMonth int
	WorkingHoursPerDay  decimal.Decimal
	IsActive            bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
