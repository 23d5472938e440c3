package engine

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexSec-DEV/BlackKeyv2/models"
)

func TestRequestDepositValidation(t *testing.T) {
	// every case fails before any storage access
	cases := []struct {
		name    string
		amount  float64
		method  string
		receipt string
	}{
		{"zero amount", 0, "CRYPTO", "https://cdn.example/receipts/1.png"},
		{"negative amount", -5, "M10", "https://cdn.example/receipts/1.png"},
		{"unknown method", 50, "PAYPAL", "https://cdn.example/receipts/1.png"},
		{"missing receipt", 50, "CRYPTO", "  "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := RequestDeposit(nil, 1, tc.amount, tc.method, tc.receipt)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestRequestWithdrawalValidation(t *testing.T) {
	full := models.TransactionDetails{
		CardNumber:       "4111111111111111",
		M10AccountNumber: "994501234567",
		CryptoAddress:    "bc1qexample",
	}
	cases := []struct {
		name    string
		amount  float64
		method  string
		details models.TransactionDetails
	}{
		{"unknown method", 50, "PAYPAL", full},
		{"below minimum", MinWithdrawal - 0.01, "CRYPTO", full},
		{"crypto without address", 50, "CRYPTO", models.TransactionDetails{CardNumber: "4111111111111111"}},
		{"m10 without account", 50, "M10", models.TransactionDetails{CryptoAddress: "bc1qexample"}},
		{"card without number", 50, "CREDIT_CARD", models.TransactionDetails{M10AccountNumber: "994501234567"}},
		{"whitespace destination", 50, "CRYPTO", models.TransactionDetails{CryptoAddress: "   "}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := RequestWithdrawal(nil, 1, tc.amount, tc.method, tc.details)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestResolveRejectsUnknownDecision(t *testing.T) {
	_, err := Resolve(nil, 1, "maybe", 9)
	assert.ErrorIs(t, err, ErrValidation)
}

func pendingDepositRows(id, userID uint, amount float64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "type", "amount", "payment_method", "status"}).
		AddRow(id, userID, models.TransactionTypeDeposit, amount, "CRYPTO", models.TransactionStatusPending)
}

func TestResolveApproveDepositCredits(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `transactions` .*FOR UPDATE").
		WillReturnRows(pendingDepositRows(21, 3, 25))
	mock.ExpectExec("UPDATE `users` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `transactions` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	trx, err := Resolve(db, 21, DecisionApprove, 9)
	require.NoError(t, err)
	assert.Equal(t, models.TransactionStatusApproved, trx.Status)
	require.NotNil(t, trx.ProcessedBy)
	assert.Equal(t, uint(9), *trx.ProcessedBy)
	assert.NotNil(t, trx.ProcessedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveSecondAttemptIsRejected(t *testing.T) {
	db, mock := newMockDB(t)

	// the row already left PENDING: no balance mutation may follow
	rows := sqlmock.NewRows([]string{"id", "user_id", "type", "amount", "payment_method", "status"}).
		AddRow(21, 3, models.TransactionTypeDeposit, 25.0, "CRYPTO", models.TransactionStatusApproved)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `transactions` .*FOR UPDATE").
		WillReturnRows(rows)
	mock.ExpectRollback()

	_, err := Resolve(db, 21, DecisionApprove, 9)
	assert.ErrorIs(t, err, ErrAlreadyProcessed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveApproveWithdrawalInsufficientBalance(t *testing.T) {
	db, mock := newMockDB(t)

	rows := sqlmock.NewRows([]string{"id", "user_id", "type", "amount", "payment_method", "status"}).
		AddRow(22, 3, models.TransactionTypeWithdrawal, 500.0, "CRYPTO", models.TransactionStatusPending)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `transactions` .*FOR UPDATE").
		WillReturnRows(rows)
	mock.ExpectQuery("SELECT .* FROM `users` .*FOR UPDATE").
		WillReturnRows(userRows(3, 100, 1, 0))
	// balance no longer covers the amount: everything rolls back
	mock.ExpectRollback()

	_, err := Resolve(db, 22, DecisionApprove, 9)
	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assert.NoError(t, mock.ExpectationsWereMet())
}
