package admins

import (
	"net/http"
	"strings"

	"github.com/AlexSec-DEV/BlackKeyv2/database"
	"github.com/AlexSec-DEV/BlackKeyv2/middleware"
	"github.com/AlexSec-DEV/BlackKeyv2/models"
	"github.com/AlexSec-DEV/BlackKeyv2/utils"

	"gorm.io/gorm"
)

// ListPaymentInfoHandler returns every payment destination, active or not.
func ListPaymentInfoHandler(w http.ResponseWriter, r *http.Request) {
	var infos []models.PaymentInfo
	if err := database.DB.Order("updated_at DESC").Find(&infos).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "OK", Data: infos})
}

type UpsertPaymentInfoRequest struct {
	Type           string `json:"type" validate:"required"`
	CardNumber     string `json:"cardNumber"`
	CardHolderName string `json:"cardHolderName"`
	CardBank       string `json:"cardBank"`
	M10PhoneNumber string `json:"m10PhoneNumber"`
	CryptoAddress  string `json:"cryptoAddress"`
	CryptoCurrency string `json:"cryptoCurrency"`
}

// UpsertPaymentInfoHandler replaces the active destination for one payment
// method: the previous row is deactivated and a fresh one inserted, so the
// history of past destinations is kept.
func UpsertPaymentInfoHandler(w http.ResponseWriter, r *http.Request) {
	var req UpsertPaymentInfoRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	infoType := strings.ToUpper(strings.TrimSpace(req.Type))
	switch infoType {
	case "CREDIT_CARD", "M10", "CRYPTO":
	default:
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Unknown payment type"})
		return
	}

	info := models.PaymentInfo{
		Type:           infoType,
		CardNumber:     strings.TrimSpace(req.CardNumber),
		CardHolderName: strings.TrimSpace(req.CardHolderName),
		CardBank:       strings.TrimSpace(req.CardBank),
		M10PhoneNumber: strings.TrimSpace(req.M10PhoneNumber),
		CryptoAddress:  strings.TrimSpace(req.CryptoAddress),
		CryptoCurrency: strings.TrimSpace(req.CryptoCurrency),
		IsActive:       true,
	}
	if info.CryptoCurrency == "" {
		info.CryptoCurrency = "BTC"
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.PaymentInfo{}).
			Where("type = ? AND is_active = ?", infoType, true).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Create(&info).Error
	})
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	utils.WriteJSON(w, http.StatusCreated, utils.APIResponse{Success: true, Message: "Payment info updated", Data: info})
}
