package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/metacode0602/open-mcp-sub000/helper"
	"github.com/metacode0602/open-mcp-sub000/models"
	"github.com/metacode0602/open-mcp-sub000/services"
)

type SuggestionHandler struct {
	suggestionService services.SuggestionService
	Helper            *helper.HTTPHelper
}

func NewSuggestionHandler(suggestionService services.SuggestionService) *SuggestionHandler {
	return &SuggestionHandler{suggestionService: suggestionService, Helper: &helper.HTTPHelper{}}
}

func (h *SuggestionHandler) CreateSuggestion(c *gin.Context) {
	var req models.CreateSuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	suggestion, err := h.suggestionService.CreateSuggestion(req, currentUserID(c))
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Suggestion submitted", suggestion)
}

func (h *SuggestionHandler) GetMySuggestions(c *gin.Context) {
	var params models.SuggestionSearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}
	params.Normalize()
	params.UserID = currentUserID(c)

	suggestions, total, err := h.suggestionService.SearchSuggestions(params)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccessWithPaging(c, "Success", suggestions, models.NewPagination(total, params.Page, params.Limit))
}

func (h *SuggestionHandler) SearchSuggestions(c *gin.Context) {
	var params models.SuggestionSearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}
	params.Normalize()

	suggestions, total, err := h.suggestionService.SearchSuggestions(params)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccessWithPaging(c, "Success", suggestions, models.NewPagination(total, params.Page, params.Limit))
}

func (h *SuggestionHandler) ReviewSuggestion(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid suggestion ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	suggestion, err := h.suggestionService.ReviewSuggestion(id, req)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Suggestion reviewed", suggestion)
}

func (h *SuggestionHandler) DeleteSuggestion(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid suggestion ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.suggestionService.DeleteSuggestion(id); err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Suggestion deleted", h.Helper.EmptyJsonMap())
}
