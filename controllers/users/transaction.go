package users

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/AlexSec-DEV/BlackKeyv2/database"
	"github.com/AlexSec-DEV/BlackKeyv2/engine"
	"github.com/AlexSec-DEV/BlackKeyv2/middleware"
	"github.com/AlexSec-DEV/BlackKeyv2/models"
	"github.com/AlexSec-DEV/BlackKeyv2/utils"
)

// DepositHandler accepts a multipart deposit request: amount, payment method
// and the payment receipt image. The transaction stays PENDING until an
// admin reviews the receipt.
func DepositHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	if err := r.ParseMultipartForm(8 << 20); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid multipart form"})
		return
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(r.FormValue("amount")), 64)
	if err != nil || amount <= 0 {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Amount must be greater than zero"})
		return
	}
	paymentMethod := strings.ToUpper(strings.TrimSpace(r.FormValue("paymentMethod")))

	file, header, err := r.FormFile("receipt")
	if err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Receipt image is required"})
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Only JPEG, PNG or WebP images are accepted"})
		return
	}

	name := fmt.Sprintf("u%d%s", userID, strings.ToLower(filepath.Ext(header.Filename)))
	receiptURL, err := utils.UploadImage(r.Context(), "receipts", name, file, contentType)
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Failed to store receipt"})
		return
	}

	trx, err := engine.RequestDeposit(database.DB, userID, amount, paymentMethod, receiptURL)
	if err != nil {
		if errors.Is(err, engine.ErrValidation) {
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid deposit request"})
			return
		}
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	utils.WriteJSON(w, http.StatusCreated, utils.APIResponse{
		Success: true,
		Message: "Deposit submitted, awaiting approval",
		Data:    trx,
	})
}

type WithdrawRequest struct {
	Amount        float64                   `json:"amount"`
	PaymentMethod string                    `json:"paymentMethod" validate:"required"`
	Details       models.TransactionDetails `json:"transactionDetails"`
}

// WithdrawHandler records a pending withdrawal request.
func WithdrawHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	var req WithdrawRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	trx, err := engine.RequestWithdrawal(database.DB, userID, req.Amount, strings.ToUpper(strings.TrimSpace(req.PaymentMethod)), req.Details)
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrValidation):
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{
				Success: false,
				Message: fmt.Sprintf("Withdrawal needs a destination for the chosen method and an amount of at least %.0f", engine.MinWithdrawal),
			})
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
		Message: "Withdrawal submitted, awaiting approval",
		Data:    trx,
	})
}

// TransactionHistoryHandler lists the user's deposits and withdrawals,
// newest first.
func TransactionHistoryHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	q := database.DB.Where("user_id = ?", userID)
	if t := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("type"))); t == models.TransactionTypeDeposit || t == models.TransactionTypeWithdrawal {
		q = q.Where("type = ?", t)
	}

	var transactions []models.Transaction
	if err := q.Order("created_at DESC").Limit(100).Find(&transactions).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "OK", Data: transactions})
}
