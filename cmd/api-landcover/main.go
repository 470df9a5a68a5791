package main

import (
	"context"
	"flag"
	"os"

	"github.com/diwise/api-landcover/internal/pkg/application/services/classes"
	"github.com/diwise/api-landcover/internal/pkg/application/services/classificationsystems"
	"github.com/diwise/api-landcover/internal/pkg/application/services/mappings"
	"github.com/diwise/api-landcover/internal/pkg/application/services/styles"
	"github.com/diwise/api-landcover/internal/pkg/infrastructure/repositories/database"
	"github.com/diwise/api-landcover/internal/pkg/presentation"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"
)

var styleFormatsFileName string

func main() {
	serviceName := "api-landcover"
	serviceVersion := buildinfo.SourceVersion()

	ctx, log, cleanup := o11y.Init(context.Background(), serviceName, serviceVersion)
	defer cleanup()

	log.Info().Msgf("Starting up %s ...", serviceName)

	flag.StringVar(&styleFormatsFileName, "formats", "/opt/diwise/config/styleformats.yaml", "A yaml registry of style format names to seed at startup")
	flag.Parse()

	port := env.GetVariableOrDefault(log, "SERVICE_PORT", "8880")
	baseURL := env.GetVariableOrDefault(log, "LANDCOVER_BASE_URL", "http://localhost:"+port)
	tokenSecret := env.GetVariableOrDie(log, "LANDCOVER_TOKEN_SECRET", "secret used to validate bearer tokens")

	connector := database.NewSQLiteConnector()
	if dbURL := os.Getenv("LANDCOVER_DB_URL"); dbURL != "" {
		connector = database.NewPostgreSQLConnector(log, dbURL)
	}

	db, err := database.NewDatabaseConnection(connector)
	if err != nil {
		log.Fatal().Msgf("failed to connect to database, shutting down... %s", err.Error())
	}

	svcs := presentation.Services{
		ClassificationSystems: classificationsystems.NewClassificationSystemService(log, db),
		Classes:               classes.NewClassService(log, db),
		Mappings:              mappings.NewMappingService(log, db),
		Styles:                styles.NewStyleService(log, db),
	}

	seedStyleFormats(ctx, svcs.Styles, styleFormatsFileName)

	r := chi.NewRouter()
	api := presentation.NewAPI(r, ctx, baseURL, tokenSecret, svcs)

	if err := api.Start(port); err != nil {
		log.Fatal().Msgf("failed to start router: %s", err.Error())
	}
}

func seedStyleFormats(ctx context.Context, svc styles.StyleService, path string) {
	log := logging.GetFromContext(ctx)

	file, err := os.Open(path)
	if err != nil {
		log.Info().Msgf("no style format registry found at %s, skipping seed", path)
		return
	}
	defer file.Close()

	if err := styles.SeedFormats(ctx, svc, file); err != nil {
		log.Fatal().Err(err).Msg("failed to seed style formats")
	}
}
