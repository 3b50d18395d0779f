package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Domje/Arc-Looterputer/internal/locale"
	"github.com/Domje/Arc-Looterputer/internal/shoppinglist"
)

// ShoppingListResponse is the current list, localized.
type ShoppingListResponse struct {
	Count      int        `json:"count"`
	TotalValue float64    `json:"total_value"`
	Summary    string     `json:"summary,omitempty"`
	Items      []ItemView `json:"items"`
}

// AddItemRequest adds a catalog item by ID.
type AddItemRequest struct {
	ItemID string `json:"item_id" validate:"required,max=100"`
}

// AddItemResponse reports whether the item was new to the list.
type AddItemResponse struct {
	Message string `json:"message"`
	Added   bool   `json:"added"`
}

// AddRecipeRequest adds every ingredient of an item's recipe.
type AddRecipeRequest struct {
	ItemID string `json:"item_id" validate:"required,max=100"`
}

// AddUpgradeRequest adds the item requirements of a hideout level.
type AddUpgradeRequest struct {
	ModuleID string `json:"module_id" validate:"required,max=100"`
	Level    int    `json:"level" validate:"min=1"`
}

// MaterialsResponse lists the items a batch add put on the list.
type MaterialsResponse struct {
	Message string   `json:"message"`
	Added   []string `json:"added"`
}

// HandleGetShoppingList returns the shopping list
// @Summary Get the shopping list
// @Tags shopping-list
// @Produce json
// @Param lang query string false "Display language (BCP 47)"
// @Success 200 {object} ShoppingListResponse
// @Failure 503 {object} ErrorResponse
// @Router /shopping-list [get]
func HandleGetShoppingList(svc shoppinglist.Service, tr *locale.Translator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		langs, ok := requestLanguages(w, r)
		if !ok {
			return
		}

		list, err := svc.List(r.Context())
		if err != nil {
			respondServiceError(w, r, "Get shopping list", err)
			return
		}

		views := make([]ItemView, 0, len(list))
		for i := range list {
			views = append(views, newItemView(&list[i], langs))
		}
		response := ShoppingListResponse{
			Count:      len(views),
			TotalValue: shoppinglist.TotalValue(list),
			Items:      views,
		}
		if len(views) == 0 {
			response.Summary = tr.Localize(langs, locale.MsgShoppingEmpty, nil)
		}
		respondJSON(w, http.StatusOK, response)
	}
}

// HandleAddToShoppingList adds an item
// @Summary Add an item to the shopping list
// @Tags shopping-list
// @Accept json
// @Produce json
// @Param request body AddItemRequest true "Item to add"
// @Success 201 {object} AddItemResponse
// @Success 200 {object} AddItemResponse "Already on the list"
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /shopping-list [post]
func HandleAddToShoppingList(svc shoppinglist.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Add to shopping list"); err != nil {
			return
		}

		added, err := svc.AddByID(r.Context(), req.ItemID)
		if err != nil {
			respondServiceError(w, r, "Add to shopping list", err)
			return
		}

		if !added {
			respondJSON(w, http.StatusOK, AddItemResponse{Message: MsgItemAlreadyPresent})
			return
		}
		respondJSON(w, http.StatusCreated, AddItemResponse{Message: MsgItemAdded, Added: true})
	}
}

// HandleRemoveFromShoppingList removes an item by its key
// @Summary Remove an item from the shopping list
// @Tags shopping-list
// @Produce json
// @Param key path string true "Item ID (or name for items without one)"
// @Success 200 {object} SuccessResponse
// @Failure 503 {object} ErrorResponse
// @Router /shopping-list/{key} [delete]
func HandleRemoveFromShoppingList(svc shoppinglist.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.RemoveByKey(r.Context(), chi.URLParam(r, "key")); err != nil {
			respondServiceError(w, r, "Remove from shopping list", err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgItemRemoved})
	}
}

// HandleClearShoppingList empties the list
// @Summary Clear the shopping list
// @Tags shopping-list
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 503 {object} ErrorResponse
// @Router /shopping-list [delete]
func HandleClearShoppingList(svc shoppinglist.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Clear(r.Context()); err != nil {
			respondServiceError(w, r, "Clear shopping list", err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgListCleared})
	}
}

// HandleAddRecipe adds the ingredients of an item's recipe
// @Summary Add recipe ingredients to the shopping list
// @Tags shopping-list
// @Accept json
// @Produce json
// @Param request body AddRecipeRequest true "Item whose recipe to add"
// @Success 200 {object} MaterialsResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /shopping-list/recipe [post]
func HandleAddRecipe(svc shoppinglist.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddRecipeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Add recipe"); err != nil {
			return
		}

		added, err := svc.AddRecipe(r.Context(), req.ItemID)
		if err != nil {
			respondServiceError(w, r, "Add recipe", err)
			return
		}
		respondJSON(w, http.StatusOK, materialsResponse(added))
	}
}

// HandleAddUpgrade adds the items required by a hideout level
// @Summary Add hideout level materials to the shopping list
// @Tags shopping-list
// @Accept json
// @Produce json
// @Param request body AddUpgradeRequest true "Station and level"
// @Success 200 {object} MaterialsResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /shopping-list/upgrade [post]
func HandleAddUpgrade(svc shoppinglist.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddUpgradeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Add upgrade"); err != nil {
			return
		}

		added, err := svc.AddUpgradeLevel(r.Context(), req.ModuleID, req.Level)
		if err != nil {
			respondServiceError(w, r, "Add upgrade "+req.ModuleID+" level "+strconv.Itoa(req.Level), err)
			return
		}
		respondJSON(w, http.StatusOK, materialsResponse(added))
	}
}

func materialsResponse(added []string) MaterialsResponse {
	if added == nil {
		added = []string{}
	}
	return MaterialsResponse{Message: MsgMaterialsAdded, Added: added}
}
