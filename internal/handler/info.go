package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/Domje/Arc-Looterputer/internal/info"
)

// InfoResponse represents the structure for info responses
type InfoResponse struct {
	Platform    string `json:"platform"`
	Feature     string `json:"feature,omitempty"`
	Topic       string `json:"topic,omitempty"`
	Description string `json:"description"`
}

type infoQuery struct {
	Platform string `validate:"omitempty,platform"`
	Feature  string `validate:"max=50,excludesall=/\\"`
	Topic    string `validate:"max=50,excludesall=/\\"`
}

// HandleGetInfo handles the /info endpoint
// @Summary Help topics
// @Description Returns help text for a feature, a topic, or the list of features
// @Tags info
// @Produce json
// @Param platform query string false "discord or api" default(api)
// @Param feature query string false "Feature name, or a topic name to search for"
// @Param topic query string false "Topic within the feature"
// @Success 200 {object} InfoResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /info [get]
func HandleGetInfo(loader *info.Loader) http.HandlerFunc {
	formatter := info.NewFormatter()

	return func(w http.ResponseWriter, r *http.Request) {
		q := infoQuery{
			Platform: strings.ToLower(GetOptionalQueryParam(r, "platform", info.PlatformAPI)),
			Feature:  strings.ToLower(r.URL.Query().Get("feature")),
			Topic:    strings.ToLower(r.URL.Query().Get("topic")),
		}
		if err := GetValidator().ValidateStruct(q); err != nil {
			respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
				Error:  ErrMsgInvalidRequestSummary,
				Fields: FormatValidationError(err),
			})
			return
		}

		response := InfoResponse{Platform: q.Platform}

		if q.Feature != "" && q.Topic != "" {
			topicData, ok := loader.GetTopic(q.Feature, q.Topic)
			if !ok {
				respondError(w, http.StatusNotFound, fmt.Sprintf(ErrMsgTopicNotFound, q.Topic, q.Feature))
				return
			}
			response.Feature = q.Feature
			response.Topic = q.Topic
			response.Description = formatter.FormatTopic(topicData, q.Platform)
			respondJSON(w, http.StatusOK, response)
			return
		}

		if q.Feature != "" {
			featureData, ok := loader.GetFeature(q.Feature)
			if !ok {
				// Fall back to a topic of the same name in any feature
				topicData, featureName, found := loader.SearchTopic(q.Feature)
				if !found {
					respondError(w, http.StatusNotFound, fmt.Sprintf(ErrMsgFeatureNotFound, q.Feature))
					return
				}
				response.Feature = featureName
				response.Topic = q.Feature
				response.Description = formatter.FormatTopic(topicData, q.Platform)
				respondJSON(w, http.StatusOK, response)
				return
			}
			response.Feature = q.Feature
			response.Description = formatter.FormatFeature(featureData, q.Platform)
			respondJSON(w, http.StatusOK, response)
			return
		}

		response.Description = formatter.FormatFeatureList(loader.GetAllFeatures(), q.Platform)
		respondJSON(w, http.StatusOK, response)
	}
}
