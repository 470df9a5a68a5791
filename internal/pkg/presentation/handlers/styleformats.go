package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/diwise/api-landcover/internal/pkg/application/services/styles"
	"github.com/diwise/api-landcover/internal/pkg/domain"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type styleFormatOut struct {
	ID    uint          `json:"id"`
	Name  string        `json:"name"`
	Links []domain.Link `json:"links"`
}

func styleFormatToResponse(f domain.StyleFormat, baseURL string) styleFormatOut {
	return styleFormatOut{
		ID:   f.ID,
		Name: f.Name,
		Links: []domain.Link{
			selfLink(fmt.Sprintf("%s/style_formats/%d", baseURL, f.ID)),
			newLink(baseURL+"/style_formats", "parent", "List style formats"),
			rootLink(baseURL),
		},
	}
}

type styleFormatRequest struct {
	Name string `json:"name"`
}

func NewRetrieveStyleFormatsHandler(logger zerolog.Logger, svc styles.StyleService, baseURL string) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "retrieve-style-formats")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		formats, err := svc.GetFormats(ctx)
		if err != nil {
			log.Error().Err(err).Msg("failed to retrieve style formats")
			writeError(w, err)
			return
		}

		response := make([]styleFormatOut, 0, len(formats))
		for _, f := range formats {
			response = append(response, styleFormatToResponse(f, baseURL))
		}

		writeJSON(w, http.StatusOK, response)
	})
}

func NewRetrieveStyleFormatByIDHandler(logger zerolog.Logger, svc styles.StyleService, baseURL string) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "retrieve-style-format")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		ref := domain.ParseLookup(chi.URLParam(r, "formatId"))

		format, err := svc.GetFormat(ctx, ref)
		if err != nil {
			log.Info().Err(err).Msgf("failed to retrieve style format %s", ref)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, styleFormatToResponse(*format, baseURL))
	})
}

func NewSearchStyleFormatHandler(logger zerolog.Logger, svc styles.StyleService, baseURL string) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "search-style-format")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		name := chi.URLParam(r, "name")

		format, err := svc.GetFormat(ctx, domain.Lookup{Key: name})
		if err != nil {
			log.Info().Err(err).Msgf("no style format matches %s", name)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, styleFormatToResponse(*format, baseURL))
	})
}

func NewCreateStyleFormatHandler(logger zerolog.Logger, svc styles.StyleService, baseURL string) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "create-style-format")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		req := styleFormatRequest{}
		if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w, "request body is not valid json")
			return
		}

		if !validName(req.Name) {
			writeBadRequest(w, fmt.Sprintf("style format name must match %s", namePattern))
			return
		}

		format, err := svc.CreateFormat(ctx, req.Name)
		if err != nil {
			log.Error().Err(err).Msgf("failed to create style format %s", req.Name)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, styleFormatToResponse(*format, baseURL))
	})
}

func NewUpdateStyleFormatHandler(logger zerolog.Logger, svc styles.StyleService, baseURL string) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "update-style-format")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		ref := domain.ParseLookup(chi.URLParam(r, "formatId"))

		req := styleFormatRequest{}
		if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w, "request body is not valid json")
			return
		}

		if !validName(req.Name) {
			writeBadRequest(w, fmt.Sprintf("style format name must match %s", namePattern))
			return
		}

		format, err := svc.UpdateFormat(ctx, ref, req.Name)
		if err != nil {
			log.Error().Err(err).Msgf("failed to update style format %s", ref)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, styleFormatToResponse(*format, baseURL))
	})
}

func NewDeleteStyleFormatHandler(logger zerolog.Logger, svc styles.StyleService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "delete-style-format")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		ref := domain.ParseLookup(chi.URLParam(r, "formatId"))

		if err = svc.DeleteFormat(ctx, ref); err != nil {
			log.Error().Err(err).Msgf("failed to delete style format %s", ref)
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func NewRetrieveSystemStyleFormatsHandler(logger zerolog.Logger, svc styles.StyleService, baseURL string) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "retrieve-system-style-formats")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		systemRef := domain.ParseLookup(chi.URLParam(r, "systemId"))

		formats, err := svc.GetSystemFormats(ctx, systemRef)
		if err != nil {
			log.Info().Err(err).Msgf("failed to retrieve style formats of system %s", systemRef)
			writeError(w, err)
			return
		}

		response := make([]styleFormatOut, 0, len(formats))
		for _, f := range formats {
			response = append(response, styleFormatToResponse(f, baseURL))
		}

		writeJSON(w, http.StatusOK, response)
	})
}
