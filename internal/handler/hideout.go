package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Domje/Arc-Looterputer/internal/hideout"
)

// HandleListModules lists hideout stations
// @Summary List hideout stations
// @Tags hideout
// @Produce json
// @Param lang query string false "Display language (BCP 47)"
// @Success 200 {array} ModuleView
// @Router /hideout [get]
func HandleListModules(svc hideout.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		langs, ok := requestLanguages(w, r)
		if !ok {
			return
		}

		modules := svc.Modules()
		views := make([]ModuleView, 0, len(modules))
		for i := range modules {
			views = append(views, NewModuleView(&modules[i], langs))
		}
		respondJSON(w, http.StatusOK, views)
	}
}

// HandleGetModule returns one station with every level's requirements
// @Summary Hideout station detail
// @Tags hideout
// @Produce json
// @Param id path string true "Station ID"
// @Param lang query string false "Display language (BCP 47)"
// @Success 200 {object} ModuleView
// @Failure 404 {object} ErrorResponse
// @Router /hideout/{id} [get]
func HandleGetModule(svc hideout.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		langs, ok := requestLanguages(w, r)
		if !ok {
			return
		}

		id := chi.URLParam(r, "id")
		module, err := svc.Module(id)
		if err != nil {
			respondServiceError(w, r, "Get hideout module", err)
			return
		}

		view := NewModuleView(module, langs)
		for i := range module.Levels {
			level := &module.Levels[i]
			req, err := svc.Requirements(id, level.Level)
			if err != nil {
				respondServiceError(w, r, "Get hideout requirements", err)
				return
			}
			view.Levels = append(view.Levels, NewLevelView(level, req, langs))
		}
		respondJSON(w, http.StatusOK, view)
	}
}

// HandleGetLevel returns the requirements of one station level
// @Summary Hideout level requirements
// @Tags hideout
// @Produce json
// @Param id path string true "Station ID"
// @Param level path int true "Level number"
// @Param lang query string false "Display language (BCP 47)"
// @Success 200 {object} LevelView
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /hideout/{id}/levels/{level} [get]
func HandleGetLevel(svc hideout.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		langs, ok := requestLanguages(w, r)
		if !ok {
			return
		}

		id := chi.URLParam(r, "id")
		n, err := strconv.Atoi(chi.URLParam(r, "level"))
		if err != nil || n < 1 {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidLevel)
			return
		}

		level, err := svc.Level(id, n)
		if err != nil {
			respondServiceError(w, r, "Get hideout level", err)
			return
		}
		req, err := svc.Requirements(id, n)
		if err != nil {
			respondServiceError(w, r, "Get hideout requirements", err)
			return
		}
		respondJSON(w, http.StatusOK, NewLevelView(level, req, langs))
	}
}

// HandleGetCraftables lists what can be crafted at a station
// @Summary Items crafted at a station
// @Tags hideout
// @Produce json
// @Param id path string true "Station ID"
// @Param lang query string false "Display language (BCP 47)"
// @Success 200 {array} ItemView
// @Failure 404 {object} ErrorResponse
// @Router /hideout/{id}/craftables [get]
func HandleGetCraftables(svc hideout.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		langs, ok := requestLanguages(w, r)
		if !ok {
			return
		}

		items, err := svc.Craftables(chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, r, "Get craftables", err)
			return
		}
		respondJSON(w, http.StatusOK, NewItemViews(items, langs))
	}
}
