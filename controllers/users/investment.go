package users

import (
	"errors"
	"net/http"
	"strings"

	"github.com/AlexSec-DEV/BlackKeyv2/database"
	"github.com/AlexSec-DEV/BlackKeyv2/engine"
	"github.com/AlexSec-DEV/BlackKeyv2/middleware"
	"github.com/AlexSec-DEV/BlackKeyv2/models"
	"github.com/AlexSec-DEV/BlackKeyv2/utils"
)

type CreateInvestmentRequest struct {
	Type   string  `json:"type" validate:"required"`
	Amount float64 `json:"amount"`
}

// CreateInvestmentHandler opens a new investment from the user's balance.
func CreateInvestmentHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	var req CreateInvestmentRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	inv, snap, err := engine.CreateInvestment(database.DB, userID, strings.ToUpper(strings.TrimSpace(req.Type)), req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrValidation):
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Amount must be greater than zero"})
		case errors.Is(err, engine.ErrInvalidTier):
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Unknown investment package"})
		case errors.Is(err, engine.ErrAmountOutOfRange):
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Amount is outside the package limits"})
		case errors.Is(err, engine.ErrInsufficientBalance):
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Insufficient balance"})
		case errors.Is(err, engine.ErrNotFound):
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "User not found"})
		default:
			utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		}
		return
	}

	utils.WriteJSON(w, http.StatusCreated, utils.APIResponse{
		Success: true,
		Message: "Investment created",
		Data: map[string]interface{}{
			"investment": inv,
			"balance":    snap.Balance,
			"xp":         snap.XP,
			"level":      snap.Level,
		},
	})
}

// MyInvestmentsHandler lists the user's active investments. Matured ones are
// settled first so the response never shows an expired investment as active.
func MyInvestmentsHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	db := database.DB
	if _, err := engine.SettleUserMatured(db, userID); err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	var investments []models.Investment
	if err := db.Where("user_id = ? AND status = ?", userID, models.InvestmentStatusActive).
		Order("end_date ASC").Find(&investments).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "User not found"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "OK",
		Data: map[string]interface{}{
			"investments": investments,
			"balance":     user.Balance,
			"xp":          user.XP,
			"level":       user.Level,
		},
	})
}

// PackagesHandler returns the tier catalog in display order.
func PackagesHandler(w http.ResponseWriter, r *http.Request) {
	var packages []models.PackageSettings
	if err := database.DB.Find(&packages).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	ordered := make([]models.PackageSettings, 0, len(packages))
	for _, t := range models.PackageTypes {
		for _, p := range packages {
			if p.Type == t {
				ordered = append(ordered, p)
				break
			}
		}
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "OK", Data: ordered})
}
