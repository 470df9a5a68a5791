package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/diwise/api-landcover/internal/pkg/application/services/classes"
	"github.com/diwise/api-landcover/internal/pkg/domain"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type classOut struct {
	ID                     uint          `json:"id"`
	Name                   string        `json:"name"`
	Code                   string        `json:"code"`
	Title                  any           `json:"title"`
	Description            any           `json:"description"`
	ClassificationSystemID uint          `json:"classification_system_id"`
	ClassParentID          *uint         `json:"class_parent_id,omitempty"`
	Links                  []domain.Link `json:"links"`
}

func classToResponse(c domain.Class, language, baseURL string) classOut {
	systemHref := fmt.Sprintf("%s/classification_systems/%d", baseURL, c.ClassificationSystemID)

	return classOut{
		ID:                     c.ID,
		Name:                   c.Name,
		Code:                   c.Code,
		Title:                  localized(c.Title, language),
		Description:            localized(c.Description, language),
		ClassificationSystemID: c.ClassificationSystemID,
		ClassParentID:          c.ClassParentID,
		Links: []domain.Link{
			selfLink(fmt.Sprintf("%s/classes/%d", systemHref, c.ID)),
			newLink(systemHref+"/classes", "parent", "Classes of this classification system"),
			newLink(systemHref, "parent", "The classification system this class belongs to"),
			rootLink(baseURL),
		},
	}
}

type classTreeRequest struct {
	Classes []domain.ClassNode `json:"classes"`
}

func validateClassNodes(nodes []domain.ClassNode) error {
	for _, node := range nodes {
		if !validName(node.Name) {
			return fmt.Errorf("%w: class name %q must match %s", domain.ErrBadRequest, node.Name, namePattern)
		}

		if err := requireTranslations(node.Title, "title"); err != nil {
			return err
		}

		if err := requireTranslations(node.Description, "description"); err != nil {
			return err
		}

		if err := validateClassNodes(node.Children); err != nil {
			return err
		}
	}

	return nil
}

func NewRetrieveClassesHandler(logger zerolog.Logger, svc classes.ClassService, baseURL string) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "retrieve-classes")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		language, err := requestLanguage(r)
		if err != nil {
			writeError(w, err)
			return
		}

		systemRef := domain.ParseLookup(chi.URLParam(r, "systemId"))

		result, err := svc.GetAll(ctx, systemRef)
		if err != nil {
			log.Info().Err(err).Msgf("failed to retrieve classes of system %s", systemRef)
			writeError(w, err)
			return
		}

		response := make([]classOut, 0, len(result))
		for _, c := range result {
			response = append(response, classToResponse(c, language, baseURL))
		}

		writeJSON(w, http.StatusOK, response)
	})
}

func NewRetrieveClassByIDHandler(logger zerolog.Logger, svc classes.ClassService, baseURL string) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "retrieve-class")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		language, err := requestLanguage(r)
		if err != nil {
			writeError(w, err)
			return
		}

		systemRef := domain.ParseLookup(chi.URLParam(r, "systemId"))
		classRef := domain.ParseLookup(chi.URLParam(r, "classId"))

		class, err := svc.Get(ctx, systemRef, classRef)
		if err != nil {
			log.Info().Err(err).Msgf("failed to retrieve class %s of system %s", classRef, systemRef)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, classToResponse(*class, language, baseURL))
	})
}

func NewCreateClassesHandler(logger zerolog.Logger, svc classes.ClassService, baseURL string) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "create-classes")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		systemRef := domain.ParseLookup(chi.URLParam(r, "systemId"))

		req := classTreeRequest{}
		if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w, "request body is not valid json")
			return
		}

		if len(req.Classes) == 0 {
			writeBadRequest(w, "request contains no classes")
			return
		}

		if err = validateClassNodes(req.Classes); err != nil {
			writeError(w, err)
			return
		}

		inserted, err := svc.InsertTree(ctx, systemRef, req.Classes)
		if err != nil {
			log.Error().Err(err).Msgf("failed to insert classes into system %s", systemRef)
			writeError(w, err)
			return
		}

		response := make([]classOut, 0, len(inserted))
		for _, c := range inserted {
			response = append(response, classToResponse(c, "", baseURL))
		}

		writeJSON(w, http.StatusCreated, response)
	})
}

func NewUpdateClassHandler(logger zerolog.Logger, svc classes.ClassService, baseURL string) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "update-class")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		systemRef := domain.ParseLookup(chi.URLParam(r, "systemId"))
		classRef := domain.ParseLookup(chi.URLParam(r, "classId"))

		patch := domain.ClassPatch{}
		if err = json.NewDecoder(r.Body).Decode(&patch); err != nil {
			writeBadRequest(w, "request body is not valid json")
			return
		}

		class, err := svc.Update(ctx, systemRef, classRef, patch)
		if err != nil {
			log.Error().Err(err).Msgf("failed to update class %s of system %s", classRef, systemRef)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, classToResponse(*class, "", baseURL))
	})
}

func NewDeleteClassHandler(logger zerolog.Logger, svc classes.ClassService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "delete-class")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		systemRef := domain.ParseLookup(chi.URLParam(r, "systemId"))
		classRef := domain.ParseLookup(chi.URLParam(r, "classId"))

		if err = svc.Delete(ctx, systemRef, classRef); err != nil {
			log.Error().Err(err).Msgf("failed to delete class %s of system %s", classRef, systemRef)
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func NewDeleteClassesHandler(logger zerolog.Logger, svc classes.ClassService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "delete-classes")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		systemRef := domain.ParseLookup(chi.URLParam(r, "systemId"))

		if err = svc.DeleteAll(ctx, systemRef); err != nil {
			log.Error().Err(err).Msgf("failed to delete classes of system %s", systemRef)
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
