package models

import "time"

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

type Payment struct {
	ID        uint          `json:"id" gorm:"primarykey"`
	OrderNo   string        `json:"order_no" gorm:"uniqueIndex;not null"`
	UserID    uint          `json:"user_id" gorm:"not null;index"`
	AdID      *uint         `json:"ad_id" gorm:"index"`
	Amount    float64       `json:"amount" gorm:"not null"`
	Currency  string        `json:"currency" gorm:"default:'USD'"`
	Method    string        `json:"method"`
	Status    PaymentStatus `json:"status" gorm:"default:'pending'"`
	PaidAt    *time.Time    `json:"paid_at"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

type InvoiceStatus string

const (
	InvoiceStatusDraft  InvoiceStatus = "draft"
	InvoiceStatusIssued InvoiceStatus = "issued"
	InvoiceStatusVoided InvoiceStatus = "voided"
)

type Invoice struct {
	ID        uint          `json:"id" gorm:"primarykey"`
	PaymentID uint          `json:"payment_id" gorm:"not null;index"`
	Payment   *Payment      `json:"payment,omitempty" gorm:"foreignKey:PaymentID"`
	InvoiceNo string        `json:"invoice_no" gorm:"uniqueIndex;not null"`
	Title     string        `json:"title"`
	TaxID     string        `json:"tax_id"`
	Amount    float64       `json:"amount" gorm:"not null"`
	Status    InvoiceStatus `json:"status" gorm:"default:'draft'"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
