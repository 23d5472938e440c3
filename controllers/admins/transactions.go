package admins

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/AlexSec-DEV/BlackKeyv2/database"
	"github.com/AlexSec-DEV/BlackKeyv2/engine"
	"github.com/AlexSec-DEV/BlackKeyv2/middleware"
	"github.com/AlexSec-DEV/BlackKeyv2/models"
	"github.com/AlexSec-DEV/BlackKeyv2/utils"
)

func listTransactions(w http.ResponseWriter, r *http.Request, trxType string) {
	q := database.DB.Model(&models.Transaction{}).Where("type = ?", trxType)

	if status := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("status"))); status != "" {
		q = q.Where("status = ?", status)
	} else {
		q = q.Where("status = ?", models.TransactionStatusPending)
	}

	var transactions []models.Transaction
	if err := q.Preload("User").Order("created_at ASC").Find(&transactions).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "OK", Data: transactions})
}

// ListDepositsHandler lists deposit requests, pending ones by default.
func ListDepositsHandler(w http.ResponseWriter, r *http.Request) {
	listTransactions(w, r, models.TransactionTypeDeposit)
}

// ListWithdrawalsHandler lists withdrawal requests, pending ones by default.
func ListWithdrawalsHandler(w http.ResponseWriter, r *http.Request) {
	listTransactions(w, r, models.TransactionTypeWithdrawal)
}

type ResolveRequest struct {
	Decision string `json:"decision" validate:"required"`
	Note     string `json:"note"`
}

// ResolveTransactionHandler approves or rejects a pending transaction. The
// balance movement and the status flip commit together, so a duplicate call
// lands on a non-pending row and is rejected.
func ResolveTransactionHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid transaction id"})
		return
	}

	var req ResolveRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	adminID, _ := utils.GetUserID(r)

	trx, err := engine.Resolve(database.DB, uint(id), req.Decision, adminID)
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrValidation):
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Decision must be approve or reject"})
		case errors.Is(err, engine.ErrNotFound):
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Transaction not found"})
		case errors.Is(err, engine.ErrAlreadyProcessed):
			utils.WriteJSON(w, http.StatusConflict, utils.APIResponse{Success: false, Message: "Transaction already processed"})
		case errors.Is(err, engine.ErrInsufficientBalance):
			utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "User balance no longer covers this withdrawal"})
		default:
			utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		}
		return
	}

	if note := strings.TrimSpace(req.Note); note != "" {
		_ = database.DB.Model(&models.Transaction{}).Where("id = ?", trx.ID).Update("note", note).Error
		trx.Note = &note
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Transaction " + strings.ToLower(trx.Status), Data: trx})
}
