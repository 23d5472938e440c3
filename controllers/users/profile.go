package users

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/AlexSec-DEV/BlackKeyv2/database"
	"github.com/AlexSec-DEV/BlackKeyv2/engine"
	"github.com/AlexSec-DEV/BlackKeyv2/middleware"
	"github.com/AlexSec-DEV/BlackKeyv2/models"
	"github.com/AlexSec-DEV/BlackKeyv2/utils"
)

// ProfileHandler returns the authenticated user's profile together with
// aggregate investment figures for the dashboard header.
func ProfileHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	db := database.DB
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "User not found"})
		return
	}

	var totalInvested float64
	db.Model(&models.Investment{}).
		Where("user_id = ? AND status = ?", userID, models.InvestmentStatusActive).
		Select("COALESCE(SUM(amount),0)").Scan(&totalInvested)

	var activeCount int64
	db.Model(&models.Investment{}).
		Where("user_id = ? AND status = ?", userID, models.InvestmentStatusActive).
		Count(&activeCount)

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "OK",
		Data: map[string]interface{}{
			"user":              user,
			"totalInvested":     utils.RoundFloat(totalInvested, 2),
			"activeInvestments": activeCount,
			"nextLevelXp":       engine.XPPerLevel,
		},
	})
}

type UpdateProfileRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	PhoneNumber     string `json:"phoneNumber"`
	Country         string `json:"country"`
	BirthDate       string `json:"birthDate"` // YYYY-MM-DD
}

// UpdateProfileHandler changes contact fields and, when a new password is
// supplied, verifies the current one before replacing the hash.
func UpdateProfileHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	var req UpdateProfileRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	if req.NewPassword != "" && len(req.NewPassword) < 6 {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "New password must be at least 6 characters"})
		return
	}

	var birthDate *time.Time
	if s := strings.TrimSpace(req.BirthDate); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Birth date must be YYYY-MM-DD"})
			return
		}
		birthDate = &parsed
	}

	db := database.DB
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "User not found"})
		return
	}

	updates := map[string]interface{}{}
	if req.NewPassword != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Current password is incorrect"})
			return
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
			return
		}
		updates["password"] = string(hashed)
	}
	if v := strings.TrimSpace(req.PhoneNumber); v != "" {
		updates["phone_number"] = v
	}
	if v := strings.TrimSpace(req.Country); v != "" {
		updates["country"] = v
	}
	if birthDate != nil {
		updates["birth_date"] = *birthDate
	}

	if len(updates) == 0 {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Nothing to update"})
		return
	}

	if err := db.Model(&user).Updates(updates).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Profile updated", Data: user})
}

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// UploadProfileImageHandler accepts a multipart image, stores it in object
// storage and points the profile at the new URL.
func UploadProfileImageHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	if err := r.ParseMultipartForm(8 << 20); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid multipart form"})
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Image file is required"})
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Only JPEG, PNG or WebP images are accepted"})
		return
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "User not found"})
		return
	}

	name := fmt.Sprintf("u%d%s", userID, strings.ToLower(filepath.Ext(header.Filename)))
	url, err := utils.UploadImage(r.Context(), "profiles", name, file, contentType)
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to store image"})
		return
	}

	if err := database.DB.Model(&user).Update("profile_image", url).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to update profile"})
		return
	}

	// best-effort cleanup of the replaced image
	if key := utils.ObjectKeyFromURL(user.ProfileImage); key != "" {
		_ = utils.DeleteImage(r.Context(), key)
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Profile image updated",
		Data:    map[string]interface{}{"profileImage": url},
	})
}
