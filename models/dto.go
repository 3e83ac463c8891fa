package models

import "math"

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// SearchParams is the common slice of every list endpoint: free-text query,
// page window and one sort column.
type SearchParams struct {
	Query     string `form:"query"`
	Page      int    `form:"page,default=1"`
	Limit     int    `form:"limit,default=10"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
}

func (p *SearchParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 10
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.SortOrder != "asc" && p.SortOrder != "desc" {
		p.SortOrder = "desc"
	}
}

func (p *SearchParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Pagination is the envelope returned alongside every search result page.
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

func NewPagination(total int64, page, limit int) Pagination {
	return Pagination{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}
}

type AppSearchParams struct {
	SearchParams
	Type          AppType       `form:"type"`
	Status        AppStatus     `form:"status"`
	PublishStatus PublishStatus `form:"publish_status"`
	CategoryID    uint          `form:"category_id"`
	TagID         uint          `form:"tag_id"`
}

type RankingSearchParams struct {
	SearchParams
	Source    RankingSource `form:"source"`
	Type      RankingType   `form:"type"`
	PeriodKey string        `form:"period_key"`
}

type ClaimSearchParams struct {
	SearchParams
	AppID  uint        `form:"app_id"`
	UserID uint        `form:"user_id"`
	Status ClaimStatus `form:"status"`
}

type SuggestionSearchParams struct {
	SearchParams
	UserID uint             `form:"user_id"`
	Status SuggestionStatus `form:"status"`
}

type AdSearchParams struct {
	SearchParams
	Type   AdType   `form:"type"`
	Status AdStatus `form:"status"`
}

type PaymentSearchParams struct {
	SearchParams
	UserID uint          `form:"user_id"`
	Status PaymentStatus `form:"status"`
}

type CreateAppRequest struct {
	Name        string   `json:"name" binding:"required,min=1,max=255"`
	Type        AppType  `json:"type" binding:"required,oneof=client server application"`
	Description string   `json:"description"`
	Website     string   `json:"website"`
	Github      string   `json:"github"`
	Icon        string   `json:"icon"`
	CategoryID  *uint    `json:"category_id"`
	Tags        []string `json:"tags"`
}

type UpdateAppRequest struct {
	Name          *string        `json:"name"`
	Description   *string        `json:"description"`
	Website       *string        `json:"website"`
	Github        *string        `json:"github"`
	Icon          *string        `json:"icon"`
	Status        *AppStatus     `json:"status"`
	PublishStatus *PublishStatus `json:"publish_status"`
	CategoryID    *uint          `json:"category_id"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Slug        string `json:"slug" binding:"required,min=1,max=100"`
	Description string `json:"description"`
	Sort        int    `json:"sort"`
}

type CreateTagRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Slug        string `json:"slug" binding:"required,min=1,max=100"`
	Description string `json:"description"`
}

type CreateAdRequest struct {
	Title     string  `json:"title" binding:"required"`
	Type      AdType  `json:"type" binding:"required,oneof=banner listing"`
	ImageURL  string  `json:"image_url"`
	TargetURL string  `json:"target_url"`
	Price     float64 `json:"price"`
	StartsAt  string  `json:"starts_at"`
	EndsAt    string  `json:"ends_at"`
}

type CreateClaimRequest struct {
	AppID    uint   `json:"app_id" binding:"required"`
	ProofURL string `json:"proof_url" binding:"required,url"`
}

type ReviewRequest struct {
	Approve bool   `json:"approve"`
	Reason  string `json:"reason"`
}

type CreateSuggestionRequest struct {
	AppID   *uint          `json:"app_id"`
	Type    SuggestionType `json:"type" binding:"omitempty,oneof=feature correction other"`
	Title   string         `json:"title" binding:"required,min=1,max=255"`
	Content string         `json:"content" binding:"required"`
}

type CreatePaymentRequest struct {
	UserID   uint    `json:"user_id" binding:"required"`
	AdID     *uint   `json:"ad_id"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Currency string  `json:"currency"`
	Method   string  `json:"method"`
}

type CreateRepoRequest struct {
	FullName string `json:"full_name" binding:"required"`
	AppID    *uint  `json:"app_id"`
}

type CreateRankingRequest struct {
	Name      string        `json:"name" binding:"required,min=1,max=255"`
	Source    RankingSource `json:"source" binding:"required,oneof=github openmcp producthunt"`
	Type      RankingType   `json:"type" binding:"required,oneof=daily weekly monthly yearly"`
	PeriodKey string        `json:"period_key"`
}

// RankSubmission is one row of aggregator input: an external listing with its
// current star count. Submission order determines rank.
type RankSubmission struct {
	Name        string  `json:"name" binding:"required"`
	Type        AppType `json:"type"`
	Description string  `json:"description"`
	Website     string  `json:"website"`
	Github      string  `json:"github"`
	Stars       int     `json:"stars"`
}

type CreateSubmissionRankRequest struct {
	Type        RankingType      `json:"type" binding:"required,oneof=daily weekly monthly yearly"`
	Submissions []RankSubmission `json:"submissions" binding:"required,min=1,dive"`
}
