package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/diwise/api-landcover/internal/pkg/application/services/classificationsystems"
	"github.com/diwise/api-landcover/internal/pkg/domain"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type classificationSystemOut struct {
	ID                 uint          `json:"id"`
	Identifier         string        `json:"identifier"`
	Name               string        `json:"name"`
	Version            string        `json:"version"`
	AuthorityName      string        `json:"authority_name"`
	Title              any           `json:"title"`
	Description        any           `json:"description"`
	VersionPredecessor *uint         `json:"version_predecessor,omitempty"`
	VersionSuccessor   *uint         `json:"version_successor,omitempty"`
	Links              []domain.Link `json:"links"`
}

func systemToResponse(s domain.ClassificationSystem, language, baseURL string) classificationSystemOut {
	href := fmt.Sprintf("%s/classification_systems/%d", baseURL, s.ID)

	return classificationSystemOut{
		ID:                 s.ID,
		Identifier:         s.Identifier,
		Name:               s.Name,
		Version:            s.Version,
		AuthorityName:      s.AuthorityName,
		Title:              localized(s.Title, language),
		Description:        localized(s.Description, language),
		VersionPredecessor: s.VersionPredecessor,
		VersionSuccessor:   s.VersionSuccessor,
		Links: []domain.Link{
			selfLink(href),
			newLink(href+"/classes", "child", "Classes of this classification system"),
			newLink(href+"/style_formats", "child", "Style formats available for this classification system"),
			newLink(baseURL+"/classification_systems", "parent", "List classification systems"),
			rootLink(baseURL),
		},
	}
}

type systemCreateRequest struct {
	Name          string              `json:"name"`
	Version       string              `json:"version"`
	AuthorityName string              `json:"authority_name"`
	Title         domain.Translations `json:"title"`
	Description   domain.Translations `json:"description"`
}

func (req systemCreateRequest) validate() error {
	if !validName(req.Name) {
		return fmt.Errorf("%w: name must match %s", domain.ErrBadRequest, namePattern)
	}

	if req.Version == "" {
		return fmt.Errorf("%w: version must not be empty", domain.ErrBadRequest)
	}

	if err := requireTranslations(req.Title, "title"); err != nil {
		return err
	}

	return requireTranslations(req.Description, "description")
}

func NewRetrieveClassificationSystemsHandler(logger zerolog.Logger, svc classificationsystems.ClassificationSystemService, baseURL string) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "retrieve-classification-systems")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		language, err := requestLanguage(r)
		if err != nil {
			writeError(w, err)
			return
		}

		systems, err := svc.GetAll(ctx)
		if err != nil {
			log.Error().Err(err).Msg("failed to retrieve classification systems")
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

func NewRetrieveClassificationSystemByIDHandler(logger zerolog.Logger, svc classificationsystems.ClassificationSystemService, baseURL string) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "retrieve-classification-system")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		language, err := requestLanguage(r)
		if err != nil {
			writeError(w, err)
			return
		}

		ref := domain.ParseLookup(chi.URLParam(r, "systemId"))

		system, err := svc.Get(ctx, ref)
		if err != nil {
			log.Info().Err(err).Msgf("failed to retrieve classification system %s", ref)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, systemToResponse(*system, language, baseURL))
	})
}

func NewSearchClassificationSystemHandler(logger zerolog.Logger, svc classificationsystems.ClassificationSystemService, baseURL string) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "search-classification-system")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		language, err := requestLanguage(r)
		if err != nil {
			writeError(w, err)
			return
		}

		name := chi.URLParam(r, "name")
		version := chi.URLParam(r, "version")

		system, err := svc.Search(ctx, name, version)
		if err != nil {
			log.Info().Err(err).Msgf("no classification system matches %s %s", name, version)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, systemToResponse(*system, language, baseURL))
	})
}

func NewCreateClassificationSystemHandler(logger zerolog.Logger, svc classificationsystems.ClassificationSystemService, baseURL string) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "create-classification-system")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		req := systemCreateRequest{}
		if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w, "request body is not valid json")
			return
		}

		if err = req.validate(); err != nil {
			writeError(w, err)
			return
		}

		system, err := svc.Create(ctx, domain.ClassificationSystem{
			Name:          req.Name,
			Version:       req.Version,
			AuthorityName: req.AuthorityName,
			Title:         req.Title,
			Description:   req.Description,
		})
		if err != nil {
			log.Error().Err(err).Msgf("failed to create classification system %s", req.Name)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, systemToResponse(*system, "", baseURL))
	})
}

func NewUpdateClassificationSystemHandler(logger zerolog.Logger, svc classificationsystems.ClassificationSystemService, baseURL string) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "update-classification-system")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		ref := domain.ParseLookup(chi.URLParam(r, "systemId"))

		patch := domain.SystemPatch{}
		if err = json.NewDecoder(r.Body).Decode(&patch); err != nil {
			writeBadRequest(w, "request body is not valid json")
			return
		}

		system, err := svc.Update(ctx, ref, patch)
		if err != nil {
			log.Error().Err(err).Msgf("failed to update classification system %s", ref)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, systemToResponse(*system, "", baseURL))
	})
}

func NewDeleteClassificationSystemHandler(logger zerolog.Logger, svc classificationsystems.ClassificationSystemService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "delete-classification-system")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		ref := domain.ParseLookup(chi.URLParam(r, "systemId"))

		if err = svc.Delete(ctx, ref); err != nil {
			log.Error().Err(err).Msgf("failed to delete classification system %s", ref)
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
