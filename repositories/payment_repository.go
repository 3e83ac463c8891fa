package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/metacode0602/open-mcp-sub000/models"
)

type PaymentRepository interface {
	Create(payment *models.Payment) error
	Update(payment *models.Payment) error
	GetByID(id uint) (*models.Payment, error)
	GetByOrderNo(orderNo string) (*models.Payment, error)
	Search(params models.PaymentSearchParams) ([]models.Payment, int64, error)
	Delete(id uint) error
	CreateInvoice(invoice *models.Invoice) error
	GetInvoiceByID(id uint) (*models.Invoice, error)
	GetInvoicesByPayment(paymentID uint) ([]models.Invoice, error)
	UpdateInvoice(invoice *models.Invoice) error
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(payment *models.Payment) error {
	return r.db.Create(payment).Error
}

func (r *paymentRepository) Update(payment *models.Payment) error {
	return r.db.Save(payment).Error
}

func (r *paymentRepository) GetByID(id uint) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.First(&payment, id).Error
	return &payment, err
}

func (r *paymentRepository) GetByOrderNo(orderNo string) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.Where("order_no = ?", orderNo).First(&payment).Error
	return &payment, err
}

var paymentSortColumns = map[string]bool{
	"created_at": true,
	"paid_at":    true,
	"amount":     true,
}

func (r *paymentRepository) Search(params models.PaymentSearchParams) ([]models.Payment, int64, error) {
	var payments []models.Payment
	var total int64

	query := r.db.Model(&models.Payment{})
	if params.Query != "" {
		query = query.Where("order_no LIKE ?", "%"+params.Query+"%")
	}
	if params.UserID > 0 {
		query = query.Where("user_id = ?", params.UserID)
	}
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := params.SortBy
	if !paymentSortColumns[sortBy] {
		sortBy = "created_at"
	}
	err := query.Order(fmt.Sprintf("%s %s", sortBy, params.SortOrder)).
		Offset(params.Offset()).Limit(params.Limit).
		Find(&payments).Error
	return payments, total, err
}

func (r *paymentRepository) Delete(id uint) error {
	return r.db.Delete(&models.Payment{}, id).Error
}

func (r *paymentRepository) CreateInvoice(invoice *models.Invoice) error {
	return r.db.Create(invoice).Error
}

func (r *paymentRepository) GetInvoiceByID(id uint) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.Preload("Payment").First(&invoice, id).Error
	return &invoice, err
}

func (r *paymentRepository) GetInvoicesByPayment(paymentID uint) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := r.db.Where("payment_id = ?", paymentID).Find(&invoices).Error
	return invoices, err
}

func (r *paymentRepository) UpdateInvoice(invoice *models.Invoice) error {
	return r.db.Save(invoice).Error
}
