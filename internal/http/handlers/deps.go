package handlers

import (
	"timebank/internal/services"
)

type Deps struct {
	PageHandler    *PageHandler
	ListingHandler *ListingHandler
	PricingHandler *PricingHandler
}

func NewDeps(catalog *services.CatalogService) *Deps {
	return &Deps{
		PageHandler:    &PageHandler{Catalog: catalog},
		ListingHandler: &ListingHandler{Catalog: catalog},
		PricingHandler: &PricingHandler{Catalog: catalog},
	}
}
