package admins

import (
	"net/http"

	"github.com/AlexSec-DEV/BlackKeyv2/database"
	"github.com/AlexSec-DEV/BlackKeyv2/middleware"
	"github.com/AlexSec-DEV/BlackKeyv2/models"
	"github.com/AlexSec-DEV/BlackKeyv2/utils"
)

// PlatformStatsHandler returns real aggregates for the admin dashboard.
func PlatformStatsHandler(w http.ResponseWriter, r *http.Request) {
	db := database.DB

	var totalUsers, blockedUsers, activeInvestments, pendingDeposits, pendingWithdrawals int64
	db.Model(&models.User{}).Count(&totalUsers)
	db.Model(&models.User{}).Where("is_blocked = ?", true).Count(&blockedUsers)
	db.Model(&models.Investment{}).Where("status = ?", models.InvestmentStatusActive).Count(&activeInvestments)
	db.Model(&models.Transaction{}).Where("type = ? AND status = ?", models.TransactionTypeDeposit, models.TransactionStatusPending).Count(&pendingDeposits)
	db.Model(&models.Transaction{}).Where("type = ? AND status = ?", models.TransactionTypeWithdrawal, models.TransactionStatusPending).Count(&pendingWithdrawals)

	var totalInvested, totalBalance float64
	db.Model(&models.Investment{}).Where("status = ?", models.InvestmentStatusActive).
		Select("COALESCE(SUM(amount),0)").Scan(&totalInvested)
	db.Model(&models.User{}).Select("COALESCE(SUM(balance),0)").Scan(&totalBalance)

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "OK",
		Data: map[string]interface{}{
			"totalUsers":         totalUsers,
			"blockedUsers":       blockedUsers,
			"activeInvestments":  activeInvestments,
			"totalInvested":      utils.RoundFloat(totalInvested, 2),
			"totalBalance":       utils.RoundFloat(totalBalance, 2),
			"pendingDeposits":    pendingDeposits,
			"pendingWithdrawals": pendingWithdrawals,
		},
	})
}

// GetFakeStatsHandler returns the editable landing-page counters.
func GetFakeStatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := models.GetFakeStats(database.DB)
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "OK", Data: stats})
}

type UpdateFakeStatsRequest struct {
	TotalUsers      *int64   `json:"totalUsers"`
	ActiveUsers     *int64   `json:"activeUsers"`
	TotalInvestment *float64 `json:"totalInvestment"`
	TotalPayout     *float64 `json:"totalPayout"`
}

// UpdateFakeStatsHandler updates the landing-page counters. Only provided
// fields change.
func UpdateFakeStatsHandler(w http.ResponseWriter, r *http.Request) {
	var req UpdateFakeStatsRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	db := database.DB
	stats, err := models.GetFakeStats(db)
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	updates := map[string]interface{}{}
	if req.TotalUsers != nil && *req.TotalUsers >= 0 {
		updates["total_users"] = *req.TotalUsers
	}
	if req.ActiveUsers != nil && *req.ActiveUsers >= 0 {
		updates["active_users"] = *req.ActiveUsers
	}
	if req.TotalInvestment != nil && *req.TotalInvestment >= 0 {
		updates["total_investment"] = *req.TotalInvestment
	}
	if req.TotalPayout != nil && *req.TotalPayout >= 0 {
		updates["total_payout"] = *req.TotalPayout
	}
	if len(updates) == 0 {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Nothing to update"})
		return
	}

	if err := db.Model(stats).Updates(updates).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Stats updated", Data: stats})
}
