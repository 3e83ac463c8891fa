package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/metacode0602/open-mcp-sub000/helper"
	"github.com/metacode0602/open-mcp-sub000/models"
	"github.com/metacode0602/open-mcp-sub000/services"
)

type AppHandler struct {
	appService services.AppService
	Helper     *helper.HTTPHelper
}

func NewAppHandler(appService services.AppService) *AppHandler {
	return &AppHandler{appService: appService, Helper: &helper.HTTPHelper{}}
}

// CreateApp is the admin path; listings go straight online.
func (h *AppHandler) CreateApp(c *gin.Context) {
	var req models.CreateAppRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	app, err := h.appService.CreateApp(req, models.AppSourceAdmin)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "App created", app)
}

// SubmitApp is the user path; listings start pending review.
func (h *AppHandler) SubmitApp(c *gin.Context) {
	var req models.CreateAppRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	app, err := h.appService.CreateApp(req, models.AppSourceSubmission)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "App submitted for review", app)
}

func (h *AppHandler) UpdateApp(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid app ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.UpdateAppRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	app, err := h.appService.UpdateApp(id, req)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "App updated", app)
}

func (h *AppHandler) GetApp(c *gin.Context) {
	h.getApp(c, false)
}

func (h *AppHandler) GetPublicApp(c *gin.Context) {
	h.getApp(c, true)
}

func (h *AppHandler) getApp(c *gin.Context, publicOnly bool) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid app ID", h.Helper.EmptyJsonMap())
		return
	}

	app, err := h.appService.GetApp(id, publicOnly)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", app)
}

func (h *AppHandler) SearchApps(c *gin.Context) {
	h.searchApps(c, false)
}

func (h *AppHandler) SearchPublicApps(c *gin.Context) {
	h.searchApps(c, true)
}

func (h *AppHandler) searchApps(c *gin.Context, publicOnly bool) {
	var params models.AppSearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}
	params.Normalize()

	apps, total, err := h.appService.SearchApps(params, publicOnly)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccessWithPaging(c, "Success", apps, models.NewPagination(total, params.Page, params.Limit))
}

func (h *AppHandler) DeleteApp(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid app ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.appService.DeleteApp(id); err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "App deleted", h.Helper.EmptyJsonMap())
}
