package engine

import (
	"errors"
	"log"
	"time"

	"github.com/AlexSec-DEV/BlackKeyv2/models"
	"github.com/AlexSec-DEV/BlackKeyv2/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LedgerSnapshot is the owner's balance/progression state after an engine
// operation, taken inside the same transaction that produced it.
type LedgerSnapshot struct {
	Balance float64 `json:"balance"`
	XP      uint    `json:"xp"`
	Level   uint    `json:"level"`
}

// CreateInvestment validates the request against the tier catalog and the
// user's balance, then atomically debits the balance, credits XP and
// persists the new ACTIVE investment. The balance check runs again under a
// row lock so two concurrent creations cannot both spend the same funds.
func CreateInvestment(db *gorm.DB, userID uint, tierType string, amount float64) (*models.Investment, *LedgerSnapshot, error) {
	if amount <= 0 {
		return nil, nil, ErrValidation
	}

	var tier models.PackageSettings
	if err := db.Where("type = ?", tierType).First(&tier).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrInvalidTier
		}
		return nil, nil, err
	}
	if amount < tier.MinAmount || amount > tier.MaxAmount {
		return nil, nil, ErrAmountOutOfRange
	}

	now := time.Now()
	inv := models.Investment{
		UserID:       userID,
		Type:         tier.Type,
		Amount:       amount,
		InterestRate: tier.InterestRate,
		DailyReturn:  DailyReturn(amount, tier.InterestRate),
		StartDate:    now,
		EndDate:      now.Add(LockDays * 24 * time.Hour),
		Status:       models.InvestmentStatusActive,
	}

	var snap LedgerSnapshot
	err := db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if user.Balance < amount {
			return ErrInsufficientBalance
		}

		newBalance := utils.RoundFloat(user.Balance-amount, 2)
		newLevel, newXP := ResolveLevel(user.Level, user.XP+XPPerInvestment)

		updates := map[string]interface{}{
			"balance": newBalance,
			"xp":      newXP,
			"level":   newLevel,
		}
		if err := tx.Model(&user).Updates(updates).Error; err != nil {
			return err
		}
		if err := tx.Create(&inv).Error; err != nil {
			return err
		}

		snap = LedgerSnapshot{Balance: newBalance, XP: newXP, Level: newLevel}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	log.Printf("[engine] investment created id=%d user=%d type=%s amount=%.2f daily=%.6f", inv.ID, userID, inv.Type, amount, inv.DailyReturn)
	return &inv, &snap, nil
}

// Settle credits principal plus the full term's accrual back to the owner
// and removes the investment. Calling it on a non-matured or already-settled
// investment is a no-op, not an error.
//
// At-most-once: the DELETE is conditional on the row still being ACTIVE and
// runs in the same transaction as the balance credit. When a concurrent
// caller got there first, zero rows match and the credit never happens.
func Settle(db *gorm.DB, inv *models.Investment) (bool, float64, error) {
	if inv.Status != models.InvestmentStatusActive || time.Now().Before(inv.EndDate) {
		return false, 0, nil
	}

	total := TotalReturn(inv.Amount, inv.DailyReturn)
	settled := false
	err := db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND status = ?", inv.ID, models.InvestmentStatusActive).Delete(&models.Investment{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Already handled by a concurrent caller.
			return nil
		}
		if err := tx.Model(&models.User{}).Where("id = ?", inv.UserID).
			UpdateColumn("balance", gorm.Expr("balance + ?", total)).Error; err != nil {
			return err
		}
		settled = true
		return nil
	})
	if err != nil {
		return false, 0, err
	}
	if !settled {
		return false, 0, nil
	}

	log.Printf("[engine] investment settled id=%d user=%d amount=%.2f credit=%.2f", inv.ID, inv.UserID, inv.Amount, total)
	return true, total, nil
}

// SettleUserMatured settles every matured investment of one user. Invoked
// on each read of the user's active investments, so a page load completes
// anything the scheduler has not reached yet. A failure on one investment
// does not block the rest.
func SettleUserMatured(db *gorm.DB, userID uint) (int, error) {
	return settleMatured(db.Where("user_id = ?", userID))
}

// SettleAllMatured is the scheduler sweep: settles matured investments
// across all users.
func SettleAllMatured(db *gorm.DB) (int, error) {
	return settleMatured(db)
}

func settleMatured(q *gorm.DB) (int, error) {
	var due []models.Investment
	if err := q.Where("status = ? AND end_date <= ?", models.InvestmentStatusActive, time.Now()).
		Find(&due).Error; err != nil {
		return 0, err
	}

	settled := 0
	for i := range due {
		ok, _, err := Settle(q.Session(&gorm.Session{NewDB: true}), &due[i])
		if err != nil {
			log.Printf("[engine] settle failed id=%d user=%d: %v", due[i].ID, due[i].UserID, err)
			continue
		}
		if ok {
			settled++
		}
	}
	return settled, nil
}
