package engine

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/AlexSec-DEV/BlackKeyv2/models"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	db, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return db, mock
}

func silverTierRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "type", "interest_rate", "min_amount", "max_amount"}).
		AddRow(1, "SILVER", 7.0, 5.0, 100.0)
}

func userRows(id uint, balance float64, level, xp uint) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "balance", "level", "xp"}).
		AddRow(id, balance, level, xp)
}

func TestCreateInvestmentUnknownTier(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT .* FROM `package_settings`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, _, err := CreateInvestment(db, 3, "BRONZE", 50)
	assert.ErrorIs(t, err, ErrInvalidTier)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateInvestmentRangeBoundaries(t *testing.T) {
	cases := []struct {
		name   string
		amount float64
		reject bool
	}{
		{"below minimum", 4.99, true},
		{"above maximum", 100.01, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			mock.ExpectQuery("SELECT .* FROM `package_settings`").
				WillReturnRows(silverTierRows())

			_, _, err := CreateInvestment(db, 3, "SILVER", tc.amount)
			assert.ErrorIs(t, err, ErrAmountOutOfRange)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCreateInvestmentAcceptsTierBounds(t *testing.T) {
	// min and max are inclusive
	for _, amount := range []float64{5, 100} {
		db, mock := newMockDB(t)
		mock.ExpectQuery("SELECT .* FROM `package_settings`").
			WillReturnRows(silverTierRows())
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT .* FROM `users` .*FOR UPDATE").
			WillReturnRows(userRows(3, 500, 1, 0))
		mock.ExpectExec("UPDATE `users` SET").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO `investments`").
			WillReturnResult(sqlmock.NewResult(11, 1))
		mock.ExpectCommit()

		inv, snap, err := CreateInvestment(db, 3, "SILVER", amount)
		require.NoError(t, err, "amount=%v", amount)
		assert.Equal(t, amount, inv.Amount)
		assert.Equal(t, models.InvestmentStatusActive, inv.Status)
		assert.InDelta(t, 500-amount, snap.Balance, 0.001)
		assert.Equal(t, uint(XPPerInvestment), snap.XP)
		assert.Equal(t, uint(1), snap.Level)
		assert.NoError(t, mock.ExpectationsWereMet())
	}
}

func TestCreateInvestmentInsufficientBalanceRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT .* FROM `package_settings`").
		WillReturnRows(silverTierRows())
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `users` .*FOR UPDATE").
		WillReturnRows(userRows(3, 3, 1, 0))
	// no UPDATE, no INSERT: the whole transaction rolls back
	mock.ExpectRollback()

	_, snap, err := CreateInvestment(db, 3, "SILVER", 5)
	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Nil(t, snap)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettleNoOpBeforeMaturity(t *testing.T) {
	db, mock := newMockDB(t)
	inv := &models.Investment{
		ID:          7,
		UserID:      3,
		Amount:      100,
		DailyReturn: DailyReturn(100, 7),
		EndDate:     time.Now().Add(time.Hour),
		Status:      models.InvestmentStatusActive,
	}

	ok, credit, err := Settle(db, inv)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, credit)
	// nothing touched the database
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettleNoOpOnCompletedStatus(t *testing.T) {
	db, mock := newMockDB(t)
	inv := &models.Investment{
		ID:          7,
		UserID:      3,
		Amount:      100,
		DailyReturn: DailyReturn(100, 7),
		EndDate:     time.Now().Add(-time.Hour),
		Status:      models.InvestmentStatusCompleted,
	}

	ok, _, err := Settle(db, inv)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettleCreditsPrincipalPlusAccrual(t *testing.T) {
	db, mock := newMockDB(t)
	inv := &models.Investment{
		ID:          7,
		UserID:      3,
		Amount:      100,
		DailyReturn: DailyReturn(100, 7),
		EndDate:     time.Now().Add(-time.Hour),
		Status:      models.InvestmentStatusActive,
	}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `investments`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `users` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	ok, credit, err := Settle(db, inv)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.InDelta(t, 107.00, credit, 0.001)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettleAtMostOnceWhenConcurrentCallerWon(t *testing.T) {
	db, mock := newMockDB(t)
	inv := &models.Investment{
		ID:          7,
		UserID:      3,
		Amount:      100,
		DailyReturn: DailyReturn(100, 7),
		EndDate:     time.Now().Add(-time.Hour),
		Status:      models.InvestmentStatusActive,
	}

	// the conditional delete matches zero rows: someone settled it already,
	// so the balance credit must never run
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `investments`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	ok, credit, err := Settle(db, inv)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, credit)
	assert.NoError(t, mock.ExpectationsWereMet())
}
