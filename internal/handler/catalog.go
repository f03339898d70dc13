package handler

import (
	"net/http"

	"github.com/osse101/GielinorRush_Go/internal/buff"
	"github.com/osse101/GielinorRush_Go/internal/objective"
)

// HandleGetObjectiveCatalog lists every content entry that can become an objective
// @Summary Objective catalog
// @Description Bosses, raids, skills, minigames, items and clue tiers with their defaults
// @Tags catalog
// @Produce json
// @Success 200 {array} objective.Entry
// @Router /api/v1/catalog/objectives [get]
func HandleGetObjectiveCatalog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, objective.Catalog())
	}
}

// HandleGetBuffCatalog lists every buff type
// @Summary Buff catalog
// @Tags catalog
// @Produce json
// @Success 200 {array} buff.Definition
// @Router /api/v1/catalog/buffs [get]
func HandleGetBuffCatalog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, buff.All())
	}
}
