package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/metacode0602/open-mcp-sub000/helper"
	"github.com/metacode0602/open-mcp-sub000/models"
	"github.com/metacode0602/open-mcp-sub000/services"
)

type RankingHandler struct {
	rankingService services.RankingService
	trendService   services.TrendService
	Helper         *helper.HTTPHelper
}

func NewRankingHandler(rankingService services.RankingService, trendService services.TrendService) *RankingHandler {
	return &RankingHandler{
		rankingService: rankingService,
		trendService:   trendService,
		Helper:         &helper.HTTPHelper{},
	}
}

func (h *RankingHandler) CreateRanking(c *gin.Context) {
	var req models.CreateRankingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	ranking, err := h.rankingService.CreateRanking(req)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Ranking created", ranking)
}

// CreateGithubRank triggers the submission aggregator for an explicit batch.
func (h *RankingHandler) CreateGithubRank(c *gin.Context) {
	var req models.CreateSubmissionRankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	apps, err := h.rankingService.CreateGithubSubmissionRank(req.Submissions, req.Type)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Ranking generated", apps)
}

func (h *RankingHandler) GetRanking(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid ranking ID", h.Helper.EmptyJsonMap())
		return
	}

	ranking, err := h.rankingService.GetRanking(id)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", ranking)
}

func (h *RankingHandler) SearchRankings(c *gin.Context) {
	var params models.RankingSearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}
	params.Normalize()

	rankings, total, err := h.rankingService.SearchRankings(params)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccessWithPaging(c, "Success", rankings, models.NewPagination(total, params.Page, params.Limit))
}

func (h *RankingHandler) DeleteRanking(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid ranking ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.rankingService.DeleteRanking(id); err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Ranking deleted", h.Helper.EmptyJsonMap())
}

func (h *RankingHandler) GetRankingRecords(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid ranking ID", h.Helper.EmptyJsonMap())
		return
	}

	records, err := h.rankingService.GetRankingRecords(id)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", records)
}

func (h *RankingHandler) GetProjectTrends(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid repo ID", h.Helper.EmptyJsonMap())
		return
	}

	trends, err := h.trendService.GetProjectTrends(id)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", trends)
}
