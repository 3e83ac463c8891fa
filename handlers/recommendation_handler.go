package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/metacode0602/open-mcp-sub000/helper"
	"github.com/metacode0602/open-mcp-sub000/models"
	"github.com/metacode0602/open-mcp-sub000/services"
)

type RecommendationHandler struct {
	recommendationService services.RecommendationService
	Helper                *helper.HTTPHelper
}

func NewRecommendationHandler(recommendationService services.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recommendationService: recommendationService, Helper: &helper.HTTPHelper{}}
}

func (h *RecommendationHandler) CreateRecommendation(c *gin.Context) {
	var rec models.Recommendation
	if err := c.ShouldBindJSON(&rec); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	created, err := h.recommendationService.CreateRecommendation(&rec)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Recommendation created", created)
}

func (h *RecommendationHandler) GetRecommendations(c *gin.Context) {
	if position := c.Query("position"); position != "" {
		recs, err := h.recommendationService.GetByPosition(position)
		if err != nil {
			h.Helper.SendDomainError(c, err)
			return
		}
		h.Helper.SendSuccess(c, "Success", recs)
		return
	}

	recs, err := h.recommendationService.GetAllRecommendations()
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", recs)
}

func (h *RecommendationHandler) DeleteRecommendation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid recommendation ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.recommendationService.DeleteRecommendation(id); err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Recommendation deleted", h.Helper.EmptyJsonMap())
}
