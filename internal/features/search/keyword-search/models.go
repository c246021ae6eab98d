package keywordsearch

import (
	"college-portal/internal/common/logger"
	"college-portal/internal/models"
)

// Result type filters.
const (
	TypeAll         = "all"
	TypeApplication = string(models.ResultApplication)
	TypeVideo       = string(models.ResultVideo)
	TypeDocument    = string(models.ResultDocument)
)

// Sort orders.
const (
	SortRelevance = "relevance"
	SortName      = "name"
	SortDate      = "date"
)

type Query struct {
	Text   string `json:"q"`
	Type   string `json:"type"`
	SortBy string `json:"sort"`
}

type ServiceDependencies struct {
	Logger    logger.Logger
	Videos    []models.CatalogItem
	Documents []models.CatalogItem
}
