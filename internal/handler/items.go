package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Domje/Arc-Looterputer/internal/locale"
	"github.com/Domje/Arc-Looterputer/internal/search"
)

// ItemSearchResponse is the localized outcome of a catalog query.
type ItemSearchResponse struct {
	Query       string     `json:"query"`
	Mode        string     `json:"mode"`
	Count       int        `json:"count"`
	Summary     string     `json:"summary"`
	Items       []ItemView `json:"items"`
	Suggestions []string   `json:"suggestions,omitempty"`
	DidYouMean  string     `json:"did_you_mean,omitempty"`
}

type itemSearchQuery struct {
	Q string `validate:"max=100"`
}

// HandleSearchItems handles catalog searches
// @Summary Search the item catalog
// @Description Matches names, rarities and recycle chains. "craft", "recycle" and "upgrade" (and their variants) filter by capability.
// @Tags items
// @Produce json
// @Param q query string false "Search text or reserved keyword; empty lists everything"
// @Param lang query string false "Display language (BCP 47)"
// @Success 200 {object} ItemSearchResponse
// @Failure 400 {object} ErrorResponse
// @Router /items [get]
func HandleSearchItems(svc search.Service, tr *locale.Translator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		langs, ok := requestLanguages(w, r)
		if !ok {
			return
		}

		q := itemSearchQuery{Q: r.URL.Query().Get("q")}
		if err := GetValidator().ValidateStruct(q); err != nil {
			respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
				Error:  ErrMsgInvalidRequestSummary,
				Fields: FormatValidationError(err),
			})
			return
		}

		result := svc.Search(r.Context(), q.Q)
		response := ItemSearchResponse{
			Query:       result.Query,
			Mode:        string(result.Mode),
			Count:       len(result.Items),
			Items:       NewItemViews(result.Items, langs),
			Suggestions: result.Suggestions,
		}
		if response.Count == 0 {
			response.Summary = tr.NoResults(langs, q.Q)
		} else {
			response.Summary = tr.ResultCount(langs, response.Count)
		}
		if len(result.Suggestions) > 0 {
			response.DidYouMean = tr.DidYouMean(langs, strings.Join(result.Suggestions, ", "))
		}

		respondJSON(w, http.StatusOK, response)
	}
}

// HandleGetItem returns one item with its references resolved
// @Summary Item detail
// @Tags items
// @Produce json
// @Param id path string true "Item ID"
// @Param lang query string false "Display language (BCP 47)"
// @Success 200 {object} ItemDetail
// @Failure 404 {object} ErrorResponse
// @Router /items/{id} [get]
func HandleGetItem(svc search.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		langs, ok := requestLanguages(w, r)
		if !ok {
			return
		}

		c := svc.Catalog()
		item, err := c.ItemByID(chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, r, "Get item", err)
			return
		}

		respondJSON(w, http.StatusOK, NewItemDetail(c, item, langs))
	}
}

// KeywordsResponse lists the reserved search keywords.
type KeywordsResponse struct {
	Keywords []string `json:"keywords"`
}

// HandleListKeywords returns the reserved search keywords
// @Summary Reserved search keywords
// @Tags items
// @Produce json
// @Success 200 {object} KeywordsResponse
// @Router /items/keywords [get]
func HandleListKeywords() http.HandlerFunc {
	keywords := search.Keywords()
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, KeywordsResponse{Keywords: keywords})
	}
}
