package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/metacode0602/open-mcp-sub000/models"
	"github.com/metacode0602/open-mcp-sub000/repositories"
)

type PaymentService interface {
	CreatePayment(req models.CreatePaymentRequest) (*models.Payment, error)
	GetPayment(id uint) (*models.Payment, error)
	SearchPayments(params models.PaymentSearchParams) ([]models.Payment, int64, error)
	MarkPaid(id uint) (*models.Payment, error)
	DeletePayment(id uint) error
	IssueInvoice(paymentID uint, title, taxID string) (*models.Invoice, error)
	GetInvoice(id uint) (*models.Invoice, error)
}

type paymentService struct {
	paymentRepo repositories.PaymentRepository
}

func NewPaymentService(paymentRepo repositories.PaymentRepository) PaymentService {
	return &paymentService{paymentRepo: paymentRepo}
}

func (s *paymentService) CreatePayment(req models.CreatePaymentRequest) (*models.Payment, error) {
	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	payment := &models.Payment{
		OrderNo:  uuid.NewString(),
		UserID:   req.UserID,
		AdID:     req.AdID,
		Amount:   req.Amount,
		Currency: currency,
		Method:   req.Method,
		Status:   models.PaymentStatusPending,
	}
	if err := s.paymentRepo.Create(payment); err != nil {
		return nil, translateDBError(err, "payment not found", "order number already exists")
	}
	return payment, nil
}

func (s *paymentService) GetPayment(id uint) (*models.Payment, error) {
	payment, err := s.paymentRepo.GetByID(id)
	if err != nil {
		return nil, translateDBError(err, "payment not found", "")
	}
	return payment, nil
}

func (s *paymentService) SearchPayments(params models.PaymentSearchParams) ([]models.Payment, int64, error) {
	params.Normalize()
	return s.paymentRepo.Search(params)
}

func (s *paymentService) MarkPaid(id uint) (*models.Payment, error) {
	payment, err := s.paymentRepo.GetByID(id)
	if err != nil {
		return nil, translateDBError(err, "payment not found", "")
	}
	if payment.Status != models.PaymentStatusPending {
		return nil, models.ErrorConflict{Message: fmt.Sprintf("payment is %s, not pending", payment.Status)}
	}

	now := time.Now()
	payment.Status = models.PaymentStatusPaid
	payment.PaidAt = &now

	if err := s.paymentRepo.Update(payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *paymentService) DeletePayment(id uint) error {
	if _, err := s.paymentRepo.GetByID(id); err != nil {
		return translateDBError(err, "payment not found", "")
	}
	return s.paymentRepo.Delete(id)
}

func (s *paymentService) IssueInvoice(paymentID uint, title, taxID string) (*models.Invoice, error) {
	payment, err := s.paymentRepo.GetByID(paymentID)
	if err != nil {
		return nil, translateDBError(err, "payment not found", "")
	}
	if payment.Status != models.PaymentStatusPaid {
		return nil, models.ErrorConflict{Message: "invoices can only be issued for paid orders"}
	}

	invoice := &models.Invoice{
		PaymentID: payment.ID,
		InvoiceNo: fmt.Sprintf("INV-%s", uuid.NewString()),
		Title:     title,
		TaxID:     taxID,
		Amount:    payment.Amount,
		Status:    models.InvoiceStatusIssued,
	}
	if err := s.paymentRepo.CreateInvoice(invoice); err != nil {
		return nil, translateDBError(err, "invoice not found", "invoice number already exists")
	}
	return invoice, nil
}

func (s *paymentService) GetInvoice(id uint) (*models.Invoice, error) {
	invoice, err := s.paymentRepo.GetInvoiceByID(id)
	if err != nil {
		return nil, translateDBError(err, "invoice not found", "")
	}
	return invoice, nil
}
