package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/metacode0602/open-mcp-sub000/helper"
	"github.com/metacode0602/open-mcp-sub000/models"
	"github.com/metacode0602/open-mcp-sub000/services"
)

type AdHandler struct {
	adService services.AdService
	Helper    *helper.HTTPHelper
}

func NewAdHandler(adService services.AdService) *AdHandler {
	return &AdHandler{adService: adService, Helper: &helper.HTTPHelper{}}
}

func (h *AdHandler) CreateAd(c *gin.Context) {
	var req models.CreateAdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	ad, err := h.adService.CreateAd(req)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Ad created", ad)
}

func (h *AdHandler) UpdateAd(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid ad ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.CreateAdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	ad, err := h.adService.UpdateAd(id, req)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Ad updated", ad)
}

func (h *AdHandler) GetAd(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid ad ID", h.Helper.EmptyJsonMap())
		return
	}

	ad, err := h.adService.GetAd(id)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", ad)
}

func (h *AdHandler) SearchAds(c *gin.Context) {
	var params models.AdSearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}
	params.Normalize()

	ads, total, err := h.adService.SearchAds(params)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccessWithPaging(c, "Success", ads, models.NewPagination(total, params.Page, params.Limit))
}

func (h *AdHandler) DeleteAd(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid ad ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.adService.DeleteAd(id); err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Ad deleted", h.Helper.EmptyJsonMap())
}
