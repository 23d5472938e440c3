package engine

import "github.com/AlexSec-DEV/BlackKeyv2/utils"

const (
	// LockDays is the fixed investment term.
	LockDays = 30
	// XPPerInvestment is credited to the owner on every investment creation.
	XPPerInvestment = 18
	// XPPerLevel is the fixed leveling threshold; overflow carries over.
	XPPerLevel = 100
	// MinWithdrawal is the smallest withdrawal request accepted, in currency units.
	MinWithdrawal = 10.0
)

// DailyReturn computes the fixed per-day accrual for a principal at the
// given tier rate. Kept at 6 decimal places so TotalReturn reproduces the
// exact whole-period payout after the 30-day term.
func DailyReturn(principal, interestRate float64) float64 {
	return utils.RoundFloat(principal*interestRate/100/LockDays, 6)
}

// TotalReturn is the amount credited back at settlement: principal plus the
// full term's accrual, rounded to currency precision.
func TotalReturn(principal, dailyReturn float64) float64 {
	return utils.RoundFloat(principal+dailyReturn*LockDays, 2)
}

// ResolveLevel applies earned XP against the fixed per-level threshold,
// rolling overflow into level increments. Large gains may advance several
// levels in one call; the returned xp is always < XPPerLevel.
func ResolveLevel(level, xp uint) (uint, uint) {
	for xp >= XPPerLevel {
		xp -= XPPerLevel
		level++
	}
	return level, xp
}
