package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/metacode0602/open-mcp-sub000/helper"
	"github.com/metacode0602/open-mcp-sub000/models"
	"github.com/metacode0602/open-mcp-sub000/services"
)

type RepoHandler struct {
	repoService services.RepoService
	Helper      *helper.HTTPHelper
}

func NewRepoHandler(repoService services.RepoService) *RepoHandler {
	return &RepoHandler{repoService: repoService, Helper: &helper.HTTPHelper{}}
}

func (h *RepoHandler) CreateRepo(c *gin.Context) {
	var req models.CreateRepoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	repo, err := h.repoService.CreateRepo(req)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Repo tracked", repo)
}

func (h *RepoHandler) GetRepo(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid repo ID", h.Helper.EmptyJsonMap())
		return
	}

	repo, err := h.repoService.GetRepo(id)
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", repo)
}

func (h *RepoHandler) GetRepos(c *gin.Context) {
	repos, err := h.repoService.GetAllRepos()
	if err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", repos)
}

func (h *RepoHandler) DeleteRepo(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid repo ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.repoService.DeleteRepo(id); err != nil {
		h.Helper.SendDomainError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Repo untracked", h.Helper.EmptyJsonMap())
}
