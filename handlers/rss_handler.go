package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/metacode0602/open-mcp-sub000/helper"
	"github.com/metacode0602/open-mcp-sub000/models"
	"github.com/metacode0602/open-mcp-sub000/services"
)

type RssHandler struct {
	rssService services.RssService
	Helper     *helper.HTTPHelper
}

func NewRssHandler(rssService services.RssService) *RssHandler {
	return &RssHandler{rssService: rssService, Helper: &helper.HTTPHelper{}}
}

func (h *RssHandler) CreateItem(c *gin.Context) {
	var item models.RssItem
	if err := c.ShouldBindJSON(&item); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	created, err := h.rssService.CreateItem(&item)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Rss item created", created)
}

func (h *RssHandler) GetItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid rss item ID", h.Helper.EmptyJsonMap())
		return
	}

	item, err := h.rssService.GetItem(id)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", item)
}

func (h *RssHandler) SearchItems(c *gin.Context) {
	var params models.SearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}
	params.Normalize()

	items, total, err := h.rssService.SearchItems(params)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccessWithPaging(c, "Success", items, models.NewPagination(total, params.Page, params.Limit))
}

func (h *RssHandler) DeleteItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid rss item ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.rssService.DeleteItem(id); err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Rss item deleted", h.Helper.EmptyJsonMap())
}
