package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/diwise/api-landcover/internal/pkg/application/services/mappings"
	"github.com/diwise/api-landcover/internal/pkg/domain"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type mappingCollectionOut struct {
	Mappings []domain.ClassMapping `json:"mappings"`
	Links    []domain.Link         `json:"links"`
}

func mappingsToResponse(result []domain.ClassMapping, sourceRef, targetRef domain.Lookup, baseURL string) mappingCollectionOut {
	if result == nil {
		result = []domain.ClassMapping{}
	}

	return mappingCollectionOut{
		Mappings: result,
		Links: []domain.Link{
			selfLink(fmt.Sprintf("%s/mappings/%s/%s", baseURL, sourceRef, targetRef)),
			newLink(fmt.Sprintf("%s/mappings/%s", baseURL, sourceRef), "parent", "Systems reachable via mapping from the source system"),
			rootLink(baseURL),
		},
	}
}

func validateMappingEntries(entries []domain.MappingEntry) error {
	for _, entry := range entries {
		if entry.SourceClass == "" || entry.TargetClass == "" {
			return fmt.Errorf("%w: mapping entries must name a source and a target class", domain.ErrBadRequest)
		}

		if entry.DegreeOfSimilarity < 0 || entry.DegreeOfSimilarity > 1 {
			return fmt.Errorf("%w: degree_of_similarity must be within [0,1]", domain.ErrBadRequest)
		}
	}

	return nil
}

func NewRetrieveMappingTargetSystemsHandler(logger zerolog.Logger, svc mappings.MappingService, baseURL string) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "retrieve-mapping-target-systems")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		language, err := requestLanguage(r)
		if err != nil {
			writeError(w, err)
			return
		}

		systemRef := domain.ParseLookup(chi.URLParam(r, "systemId"))

		systems, err := svc.ListTargetSystems(ctx, systemRef)
		if err != nil {
			log.Info().Err(err).Msgf("failed to list mapping targets of system %s", systemRef)
			writeError(w, err)
			return
		}

		response := make([]classificationSystemOut, 0, len(systems))
		for _, s := range systems {
			response = append(response, systemToResponse(s, language, baseURL))
		}

		writeJSON(w, http.StatusOK, response)
	})
}

func NewRetrieveMappingsHandler(logger zerolog.Logger, svc mappings.MappingService, baseURL string) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "retrieve-mappings")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		sourceRef := domain.ParseLookup(chi.URLParam(r, "sourceId"))
		targetRef := domain.ParseLookup(chi.URLParam(r, "targetId"))

		result, err := svc.Get(ctx, sourceRef, targetRef)
		if err != nil {
			log.Info().Err(err).Msgf("failed to retrieve mappings %s to %s", sourceRef, targetRef)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, mappingsToResponse(result, sourceRef, targetRef, baseURL))
	})
}

func NewCreateMappingsHandler(logger zerolog.Logger, svc mappings.MappingService, baseURL string) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "create-mappings")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		sourceRef := domain.ParseLookup(chi.URLParam(r, "sourceId"))
		targetRef := domain.ParseLookup(chi.URLParam(r, "targetId"))

		entries := []domain.MappingEntry{}
		if err = json.NewDecoder(r.Body).Decode(&entries); err != nil {
			writeBadRequest(w, "request body is not valid json")
			return
		}

		if len(entries) == 0 {
			writeBadRequest(w, "request contains no mapping entries")
			return
		}

		if err = validateMappingEntries(entries); err != nil {
			writeError(w, err)
			return
		}

		result, err := svc.Insert(ctx, sourceRef, targetRef, entries)
		if err != nil {
			log.Error().Err(err).Msgf("failed to insert mappings %s to %s", sourceRef, targetRef)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, mappingsToResponse(result, sourceRef, targetRef, baseURL))
	})
}

func NewUpdateMappingsHandler(logger zerolog.Logger, svc mappings.MappingService, baseURL string) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "update-mappings")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		sourceRef := domain.ParseLookup(chi.URLParam(r, "sourceId"))
		targetRef := domain.ParseLookup(chi.URLParam(r, "targetId"))

		entries := []domain.MappingUpdateEntry{}
		if err = json.NewDecoder(r.Body).Decode(&entries); err != nil {
			writeBadRequest(w, "request body is not valid json")
			return
		}

		if len(entries) == 0 {
			writeBadRequest(w, "request contains no mapping entries")
			return
		}

		for _, entry := range entries {
			if entry.DegreeOfSimilarity != nil && (*entry.DegreeOfSimilarity < 0 || *entry.DegreeOfSimilarity > 1) {
				writeBadRequest(w, "degree_of_similarity must be within [0,1]")
				return
			}
		}

		result, err := svc.Update(ctx, sourceRef, targetRef, entries)
		if err != nil {
			log.Error().Err(err).Msgf("failed to update mappings %s to %s", sourceRef, targetRef)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, mappingsToResponse(result, sourceRef, targetRef, baseURL))
	})
}

func NewDeleteMappingsHandler(logger zerolog.Logger, svc mappings.MappingService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "delete-mappings")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		sourceRef := domain.ParseLookup(chi.URLParam(r, "sourceId"))
		targetRef := domain.ParseLookup(chi.URLParam(r, "targetId"))

		if err = svc.Delete(ctx, sourceRef, targetRef); err != nil {
			log.Error().Err(err).Msgf("failed to delete mappings %s to %s", sourceRef, targetRef)
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
