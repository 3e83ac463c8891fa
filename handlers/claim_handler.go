package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/metacode0602/open-mcp-sub000/helper"
	"github.com/metacode0602/open-mcp-sub000/models"
	"github.com/metacode0602/open-mcp-sub000/services"
)

type ClaimHandler struct {
	claimService services.ClaimService
	Helper       *helper.HTTPHelper
}

func NewClaimHandler(claimService services.ClaimService) *ClaimHandler {
	return &ClaimHandler{claimService: claimService, Helper: &helper.HTTPHelper{}}
}

func (h *ClaimHandler) CreateClaim(c *gin.Context) {
	var req models.CreateClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	claim, err := h.claimService.CreateClaim(req, currentUserID(c))
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Claim submitted", claim)
}

// GetMyClaims lists the calling user's claims only.
func (h *ClaimHandler) GetMyClaims(c *gin.Context) {
	var params models.ClaimSearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}
	params.Normalize()
	params.UserID = currentUserID(c)

	claims, total, err := h.claimService.SearchClaims(params)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccessWithPaging(c, "Success", claims, models.NewPagination(total, params.Page, params.Limit))
}

func (h *ClaimHandler) SearchClaims(c *gin.Context) {
	var params models.ClaimSearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}
	params.Normalize()

	claims, total, err := h.claimService.SearchClaims(params)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccessWithPaging(c, "Success", claims, models.NewPagination(total, params.Page, params.Limit))
}

func (h *ClaimHandler) GetClaim(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid claim ID", h.Helper.EmptyJsonMap())
		return
	}

	claim, err := h.claimService.GetClaim(id)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", claim)
}

func (h *ClaimHandler) ReviewClaim(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid claim ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	claim, err := h.claimService.ReviewClaim(id, req, currentUserID(c))
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Claim reviewed", claim)
}

func (h *ClaimHandler) DeleteClaim(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid claim ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.claimService.DeleteClaim(id); err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Claim deleted", h.Helper.EmptyJsonMap())
}
