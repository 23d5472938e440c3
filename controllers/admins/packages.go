package admins

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/AlexSec-DEV/BlackKeyv2/database"
	"github.com/AlexSec-DEV/BlackKeyv2/middleware"
	"github.com/AlexSec-DEV/BlackKeyv2/models"
	"github.com/AlexSec-DEV/BlackKeyv2/utils"
)

// ListPackagesHandler returns every tier with its current rate and limits.
func ListPackagesHandler(w http.ResponseWriter, r *http.Request) {
	var packages []models.PackageSettings
	if err := database.DB.Find(&packages).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "OK", Data: packages})
}

// GetPackageHandler returns a single tier by type.
func GetPackageHandler(w http.ResponseWriter, r *http.Request) {
	tierType := strings.ToUpper(strings.TrimSpace(mux.Vars(r)["type"]))
	if !models.IsValidPackageType(tierType) {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Unknown package type"})
		return
	}

	var pkg models.PackageSettings
	if err := database.DB.Where("type = ?", tierType).First(&pkg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Package not found"})
			return
		}
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "OK", Data: pkg})
}

type UpdatePackageRequest struct {
	InterestRate *float64 `json:"interestRate"`
	MinAmount    *float64 `json:"minAmount"`
	MaxAmount    *float64 `json:"maxAmount"`
}

// UpdatePackageHandler edits one tier. Changes only affect investments
// created afterwards; running investments keep their original rate.
func UpdatePackageHandler(w http.ResponseWriter, r *http.Request) {
	tierType := strings.ToUpper(strings.TrimSpace(mux.Vars(r)["type"]))
	if !models.IsValidPackageType(tierType) {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Unknown package type"})
		return
	}

	var req UpdatePackageRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	db := database.DB
	var pkg models.PackageSettings
	if err := db.Where("type = ?", tierType).First(&pkg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Package not found"})
			return
		}
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	rate := pkg.InterestRate
	min := pkg.MinAmount
	max := pkg.MaxAmount
	if req.InterestRate != nil {
		rate = *req.InterestRate
	}
	if req.MinAmount != nil {
		min = *req.MinAmount
	}
	if req.MaxAmount != nil {
		max = *req.MaxAmount
	}

	if rate < 0 || rate > 100 {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Interest rate must be between 0 and 100"})
		return
	}
	if min <= 0 || max < min {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Amount limits must satisfy 0 < min <= max"})
		return
	}

	updates := map[string]interface{}{
		"interest_rate": rate,
		"min_amount":    min,
		"max_amount":    max,
	}
	if err := db.Model(&pkg).Updates(updates).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Package updated", Data: pkg})
}
