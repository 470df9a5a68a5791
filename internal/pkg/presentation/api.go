package presentation

import (
	"compress/flate"
	"context"
	"encoding/json"
	"net/http"

	"github.com/diwise/api-landcover/internal/pkg/application/services/classes"
	"github.com/diwise/api-landcover/internal/pkg/application/services/classificationsystems"
	"github.com/diwise/api-landcover/internal/pkg/application/services/mappings"
	"github.com/diwise/api-landcover/internal/pkg/application/services/styles"
	"github.com/diwise/api-landcover/internal/pkg/domain"
	"github.com/diwise/api-landcover/internal/pkg/presentation/auth"
	"github.com/diwise/api-landcover/internal/pkg/presentation/handlers"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

type API interface {
	Start(port string) error
}

// Services bundles the application layer services the API publishes.
type Services struct {
	ClassificationSystems classificationsystems.ClassificationSystemService
	Classes               classes.ClassService
	Mappings              mappings.MappingService
	Styles                styles.StyleService
}

type landcoverAPI struct {
	router chi.Router
	log    zerolog.Logger
}

func NewAPI(r chi.Router, ctx context.Context, baseURL, tokenSecret string, svcs Services) API {
	return newLandcoverAPI(r, ctx, baseURL, tokenSecret, svcs)
}

func newLandcoverAPI(r chi.Router, ctx context.Context, baseURL, tokenSecret string, svcs Services) *landcoverAPI {
	log := logging.GetFromContext(ctx)

	r.Use(cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
		Debug:            false,
	}).Handler)

	// Enable gzip compression for our responses
	compressor := middleware.NewCompressor(
		flate.DefaultCompression,
		"application/json",
	)
	r.Use(compressor.Handler)
	r.Use(otelchi.Middleware("api-landcover", otelchi.WithChiRoutes(r)))

	a := &landcoverAPI{
		router: r,
		log:    log,
	}

	a.addCatalogHandlers(r, log, baseURL, tokenSecret, svcs)
	a.addProbeHandlers(r)

	return a
}

func (a *landcoverAPI) Start(port string) error {
	a.log.Info().Msgf("Starting api-landcover on port:%s", port)
	return http.ListenAndServe(":"+port, a.router)
}

func (a *landcoverAPI) addCatalogHandlers(r chi.Router, log zerolog.Logger, baseURL, tokenSecret string, svcs Services) {
	requireEditor := auth.RequireRoles(log, tokenSecret, auth.RoleAdmin, auth.RoleEditor)

	r.Get("/", a.newLandingPageHandler(baseURL))

	r.Route("/classification_systems", func(r chi.Router) {
		r.Get("/", handlers.NewRetrieveClassificationSystemsHandler(log, svcs.ClassificationSystems, baseURL))
		r.Get("/search/{name}/{version}", handlers.NewSearchClassificationSystemHandler(log, svcs.ClassificationSystems, baseURL))
		r.Get("/{systemId}", handlers.NewRetrieveClassificationSystemByIDHandler(log, svcs.ClassificationSystems, baseURL))
		r.Get("/{systemId}/classes", handlers.NewRetrieveClassesHandler(log, svcs.Classes, baseURL))
		r.Get("/{systemId}/classes/{classId}", handlers.NewRetrieveClassByIDHandler(log, svcs.Classes, baseURL))
		r.Get("/{systemId}/style_formats", handlers.NewRetrieveSystemStyleFormatsHandler(log, svcs.Styles, baseURL))
		r.Get("/{systemId}/styles/{formatId}", handlers.NewRetrieveStyleHandler(log, svcs.Styles))

		r.Group(func(r chi.Router) {
			r.Use(requireEditor)

			r.Post("/", handlers.NewCreateClassificationSystemHandler(log, svcs.ClassificationSystems, baseURL))
			r.Put("/{systemId}", handlers.NewUpdateClassificationSystemHandler(log, svcs.ClassificationSystems, baseURL))
			r.Delete("/{systemId}", handlers.NewDeleteClassificationSystemHandler(log, svcs.ClassificationSystems))
			r.Post("/{systemId}/classes", handlers.NewCreateClassesHandler(log, svcs.Classes, baseURL))
			r.Delete("/{systemId}/classes", handlers.NewDeleteClassesHandler(log, svcs.Classes))
			r.Put("/{systemId}/classes/{classId}", handlers.NewUpdateClassHandler(log, svcs.Classes, baseURL))
			r.Delete("/{systemId}/classes/{classId}", handlers.NewDeleteClassHandler(log, svcs.Classes))
			r.Post("/{systemId}/styles/{formatId}", handlers.NewUploadStyleHandler(log, svcs.Styles))
			r.Put("/{systemId}/styles/{formatId}", handlers.NewReplaceStyleHandler(log, svcs.Styles))
			r.Delete("/{systemId}/styles/{formatId}", handlers.NewDeleteStyleHandler(log, svcs.Styles))
		})
	})

	r.Route("/mappings", func(r chi.Router) {
		r.Get("/{systemId}", handlers.NewRetrieveMappingTargetSystemsHandler(log, svcs.Mappings, baseURL))
		r.Get("/{sourceId}/{targetId}", handlers.NewRetrieveMappingsHandler(log, svcs.Mappings, baseURL))

		r.Group(func(r chi.Router) {
			r.Use(requireEditor)

			r.Post("/{sourceId}/{targetId}", handlers.NewCreateMappingsHandler(log, svcs.Mappings, baseURL))
			r.Put("/{sourceId}/{targetId}", handlers.NewUpdateMappingsHandler(log, svcs.Mappings, baseURL))
			r.Delete("/{sourceId}/{targetId}", handlers.NewDeleteMappingsHandler(log, svcs.Mappings))
		})
	})

	r.Route("/style_formats", func(r chi.Router) {
		r.Get("/", handlers.NewRetrieveStyleFormatsHandler(log, svcs.Styles, baseURL))
		r.Get("/search/{name}", handlers.NewSearchStyleFormatHandler(log, svcs.Styles, baseURL))
		r.Get("/{formatId}", handlers.NewRetrieveStyleFormatByIDHandler(log, svcs.Styles, baseURL))

		r.Group(func(r chi.Router) {
			r.Use(requireEditor)

			r.Post("/", handlers.NewCreateStyleFormatHandler(log, svcs.Styles, baseURL))
			r.Put("/{formatId}", handlers.NewUpdateStyleFormatHandler(log, svcs.Styles, baseURL))
			r.Delete("/{formatId}", handlers.NewDeleteStyleFormatHandler(log, svcs.Styles))
		})
	})
}

func (a *landcoverAPI) newLandingPageHandler(baseURL string) http.HandlerFunc {
	links := []domain.Link{
		{Href: baseURL + "/", Rel: "self", Type: "application/json", Title: "Link to this document"},
		{Href: baseURL + "/classification_systems", Rel: "classification_systems", Type: "application/json", Title: "List classification systems"},
		{Href: baseURL + "/style_formats", Rel: "style_formats", Type: "application/json", Title: "List style formats"},
	}

	body, _ := json.MarshalIndent(links, "", "  ")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Content-Type", "application/json")
		w.Write(body)
	})
}

func (a *landcoverAPI) addProbeHandlers(r chi.Router) {
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}
