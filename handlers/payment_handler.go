package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/metacode0602/open-mcp-sub000/helper"
	"github.com/metacode0602/open-mcp-sub000/models"
	"github.com/metacode0602/open-mcp-sub000/services"
)

type PaymentHandler struct {
	paymentService services.PaymentService
	Helper         *helper.HTTPHelper
}

func NewPaymentHandler(paymentService services.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService, Helper: &helper.HTTPHelper{}}
}

func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req models.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	payment, err := h.paymentService.CreatePayment(req)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Payment created", payment)
}

func (h *PaymentHandler) GetPayment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid payment ID", h.Helper.EmptyJsonMap())
		return
	}

	payment, err := h.paymentService.GetPayment(id)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", payment)
}

func (h *PaymentHandler) SearchPayments(c *gin.Context) {
	var params models.PaymentSearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}
	params.Normalize()

	payments, total, err := h.paymentService.SearchPayments(params)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccessWithPaging(c, "Success", payments, models.NewPagination(total, params.Page, params.Limit))
}

func (h *PaymentHandler) MarkPaid(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid payment ID", h.Helper.EmptyJsonMap())
		return
	}

	payment, err := h.paymentService.MarkPaid(id)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Payment marked as paid", payment)
}

func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid payment ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.paymentService.DeletePayment(id); err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Payment deleted", h.Helper.EmptyJsonMap())
}

type issueInvoiceRequest struct {
	Title string `json:"title" binding:"required"`
	TaxID string `json:"tax_id"`
}

func (h *PaymentHandler) IssueInvoice(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid payment ID", h.Helper.EmptyJsonMap())
		return
	}

	var req issueInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	invoice, err := h.paymentService.IssueInvoice(id, req.Title, req.TaxID)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Invoice issued", invoice)
}

func (h *PaymentHandler) GetInvoice(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid invoice ID", h.Helper.EmptyJsonMap())
		return
	}

	invoice, err := h.paymentService.GetInvoice(id)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", invoice)
}
