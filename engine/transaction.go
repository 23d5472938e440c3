package engine

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/AlexSec-DEV/BlackKeyv2/models"
	"github.com/AlexSec-DEV/BlackKeyv2/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	DecisionApprove = "approve"
	DecisionReject  = "reject"
)

func validPaymentMethod(m string) bool {
	switch m {
	case "CREDIT_CARD", "M10", "CRYPTO":
		return true
	}
	return false
}

// withdrawalDestination reports whether the detail payload carries the
// destination the payment method needs. A withdrawal without one could be
// approved with nowhere to send the funds.
func withdrawalDestination(method string, d models.TransactionDetails) bool {
	switch method {
	case "CREDIT_CARD":
		return strings.TrimSpace(d.CardNumber) != ""
	case "M10":
		return strings.TrimSpace(d.M10AccountNumber) != ""
	case "CRYPTO":
		return strings.TrimSpace(d.CryptoAddress) != ""
	}
	return false
}

// RequestDeposit records a pending deposit. The balance is untouched until
// an admin approves the receipt.
func RequestDeposit(db *gorm.DB, userID uint, amount float64, paymentMethod, receiptURL string) (*models.Transaction, error) {
	if amount <= 0 || !validPaymentMethod(paymentMethod) {
		return nil, ErrValidation
	}
	if strings.TrimSpace(receiptURL) == "" {
		return nil, ErrValidation
	}

	trx := models.Transaction{
		UserID:        userID,
		Type:          models.TransactionTypeDeposit,
		Amount:        utils.RoundFloat(amount, 2),
		PaymentMethod: paymentMethod,
		Status:        models.TransactionStatusPending,
		ReceiptURL:    &receiptURL,
	}
	if err := db.Create(&trx).Error; err != nil {
		return nil, err
	}
	return &trx, nil
}

// RequestWithdrawal records a pending withdrawal. The balance check here is
// advisory (for immediate user feedback); Resolve re-checks under a row lock
// at approval time since the balance may have moved in between.
func RequestWithdrawal(db *gorm.DB, userID uint, amount float64, paymentMethod string, details models.TransactionDetails) (*models.Transaction, error) {
	if !validPaymentMethod(paymentMethod) {
		return nil, ErrValidation
	}
	if amount < MinWithdrawal {
		return nil, ErrValidation
	}
	if !withdrawalDestination(paymentMethod, details) {
		return nil, ErrValidation
	}

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if user.Balance < amount {
		return nil, ErrInsufficientBalance
	}

	trx := models.Transaction{
		UserID:        userID,
		Type:          models.TransactionTypeWithdrawal,
		Amount:        utils.RoundFloat(amount, 2),
		PaymentMethod: paymentMethod,
		Status:        models.TransactionStatusPending,
		Details:       details,
	}
	if err := db.Create(&trx).Error; err != nil {
		return nil, err
	}
	return &trx, nil
}

// Resolve moves a pending transaction to APPROVED or REJECTED exactly once.
// The balance mutation (credit for deposits, debit for withdrawals) commits
// in the same transaction as the status change, so a retried resolve can
// never credit twice: the second attempt sees a non-PENDING row.
func Resolve(db *gorm.DB, transactionID uint, decision string, adminID uint) (*models.Transaction, error) {
	decision = strings.ToLower(strings.TrimSpace(decision))
	if decision != DecisionApprove && decision != DecisionReject {
		return nil, ErrValidation
	}

	var trx models.Transaction
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&trx, transactionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if trx.Status != models.TransactionStatusPending {
			return ErrAlreadyProcessed
		}

		if decision == DecisionApprove {
			switch trx.Type {
			case models.TransactionTypeDeposit:
				if err := tx.Model(&models.User{}).Where("id = ?", trx.UserID).
					UpdateColumn("balance", gorm.Expr("balance + ?", trx.Amount)).Error; err != nil {
					return err
				}
			case models.TransactionTypeWithdrawal:
				var user models.User
				if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, trx.UserID).Error; err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return ErrNotFound
					}
					return err
				}
				if user.Balance < trx.Amount {
					return ErrInsufficientBalance
				}
				newBalance := utils.RoundFloat(user.Balance-trx.Amount, 2)
				if err := tx.Model(&user).Update("balance", newBalance).Error; err != nil {
					return err
				}
			}
			trx.Status = models.TransactionStatusApproved
		} else {
			trx.Status = models.TransactionStatusRejected
		}

		now := time.Now()
		trx.ProcessedAt = &now
		trx.ProcessedBy = &adminID
		return tx.Save(&trx).Error
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[engine] transaction resolved id=%d type=%s status=%s admin=%d", trx.ID, trx.Type, trx.Status, adminID)
	return &trx, nil
}
