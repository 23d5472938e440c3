package models

import "time"

const (
	TransactionTypeDeposit    = "DEPOSIT"
	TransactionTypeWithdrawal = "WITHDRAWAL"

	TransactionStatusPending  = "PENDING"
	TransactionStatusApproved = "APPROVED"
	TransactionStatusRejected = "REJECTED"
)

// TransactionDetails carries the withdrawal destination submitted by the
// user. Only the fields matching the payment method are filled.
type TransactionDetails struct {
	BankName         string `gorm:"size:100" json:"bankName,omitempty"`
	AccountHolder    string `gorm:"size:100" json:"accountHolder,omitempty"`
	CardNumber       string `gorm:"size:30" json:"cardNumber,omitempty"`
	M10AccountNumber string `gorm:"size:30" json:"m10AccountNumber,omitempty"`
	CryptoAddress    string `gorm:"size:120" json:"cryptoAddress,omitempty"`
	CryptoNetwork    string `gorm:"size:30" json:"cryptoNetwork,omitempty"`
}

type Transaction struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	UserID        uint    `gorm:"not null;index" json:"user_id"`
	User          *User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Type          string  `gorm:"type:enum('DEPOSIT','WITHDRAWAL');not null" json:"type"`
	Amount        float64 `gorm:"type:decimal(15,2);not null" json:"amount"`
	PaymentMethod string  `gorm:"type:enum('CREDIT_CARD','M10','CRYPTO');not null" json:"paymentMethod"`
	Status        string  `gorm:"type:enum('PENDING','APPROVED','REJECTED');not null;default:'PENDING';index" json:"status"`
	// Opaque reference to the uploaded receipt image. Required for deposits.
	ReceiptURL *string            `gorm:"type:text" json:"receiptUrl,omitempty"`
	Details    TransactionDetails `gorm:"embedded;embeddedPrefix:detail_" json:"transactionDetails"`
	Note       *string            `gorm:"type:text" json:"note,omitempty"`
	// Set exactly once when the transaction leaves PENDING.
	ProcessedAt *time.Time `json:"processedAt,omitempty"`
	ProcessedBy *uint      `json:"processedBy,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"-"`
}

func (Transaction) TableName() string {
	return "transactions"
}
