package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/diwise/api-landcover/internal/pkg/application/services/styles"
	"github.com/diwise/api-landcover/internal/pkg/domain"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// styles are held in the database, so uploads are capped well below
// anything that would bloat a row
const maxStyleUploadSize int64 = 16 << 20

func NewRetrieveStyleHandler(logger zerolog.Logger, svc styles.StyleService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "retrieve-style")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		systemRef := domain.ParseLookup(chi.URLParam(r, "systemId"))
		formatRef := domain.ParseLookup(chi.URLParam(r, "formatId"))

		style, err := svc.GetStyle(ctx, systemRef, formatRef)
		if err != nil {
			log.Info().Err(err).Msgf("failed to retrieve style %s of system %s", formatRef, systemRef)
			writeError(w, err)
			return
		}

		w.Header().Add("Content-Type", style.MimeType)
		w.Header().Add("Content-Disposition", fmt.Sprintf("attachment; filename=%q", style.FileName))
		w.Write(style.Content)
	})
}

func NewUploadStyleHandler(logger zerolog.Logger, svc styles.StyleService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "upload-style")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		systemRef := domain.ParseLookup(chi.URLParam(r, "systemId"))
		formatRef := domain.ParseLookup(chi.URLParam(r, "formatId"))

		fileName, content, err := styleFromRequest(r)
		if err != nil {
			writeError(w, err)
			return
		}

		if err = svc.UploadStyle(ctx, systemRef, formatRef, fileName, content); err != nil {
			log.Error().Err(err).Msgf("failed to upload style %s for system %s", formatRef, systemRef)
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
	})
}

func NewReplaceStyleHandler(logger zerolog.Logger, svc styles.StyleService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "replace-style")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		systemRef := domain.ParseLookup(chi.URLParam(r, "systemId"))
		formatRef := domain.ParseLookup(chi.URLParam(r, "formatId"))

		fileName, content, err := styleFromRequest(r)
		if err != nil {
			writeError(w, err)
			return
		}

		if err = svc.ReplaceStyle(ctx, systemRef, formatRef, fileName, content); err != nil {
			log.Error().Err(err).Msgf("failed to replace style %s of system %s", formatRef, systemRef)
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func NewDeleteStyleHandler(logger zerolog.Logger, svc styles.StyleService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "delete-style")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		systemRef := domain.ParseLookup(chi.URLParam(r, "systemId"))
		formatRef := domain.ParseLookup(chi.URLParam(r, "formatId"))

		if err = svc.DeleteStyle(ctx, systemRef, formatRef); err != nil {
			log.Error().Err(err).Msgf("failed to delete style %s of system %s", formatRef, systemRef)
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// styleFromRequest pulls the uploaded file out of the multipart form
// field named style.
func styleFromRequest(r *http.Request) (string, []byte, error) {
	if err := r.ParseMultipartForm(maxStyleUploadSize); err != nil {
		return "", nil, fmt.Errorf("%w: expected a multipart/form-data body", domain.ErrBadRequest)
	}

	file, header, err := r.FormFile("style")
	if err != nil {
		return "", nil, fmt.Errorf("%w: missing style file in form data", domain.ErrBadRequest)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read style file: %w", err)
	}

	return header.Filename, content, nil
}
