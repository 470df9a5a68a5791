package database

import (
	"errors"
	"fmt"

	"github.com/diwise/api-landcover/internal/pkg/domain"
	"github.com/diwise/api-landcover/internal/pkg/infrastructure/repositories/persistence"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

//Datastore is an interface that is used to inject the database into the services to improve testability
type Datastore interface {
	InTransaction(fn func(tx Datastore) error) error

	GetClassificationSystems() ([]domain.ClassificationSystem, error)
	GetClassificationSystem(ref domain.Lookup) (*domain.ClassificationSystem, error)
	FindClassificationSystem(name, version string) (*domain.ClassificationSystem, error)
	CreateClassificationSystem(system domain.ClassificationSystem) (*domain.ClassificationSystem, error)
	UpdateClassificationSystem(systemID uint, patch domain.SystemPatch) error
	DeleteClassificationSystem(systemID uint) error

	GetClasses(systemID uint) ([]domain.Class, error)
	GetClass(systemID uint, ref domain.Lookup) (*domain.Class, error)
	CreateClass(class domain.Class) (*domain.Class, error)
	UpdateClass(classID uint, patch domain.ClassPatch) error
	DeleteClass(classID uint) error
	DeleteClasses(systemID uint) error
	CountClassChildren(classID uint) (int64, error)

	GetMappings(sourceClassIDs, targetClassIDs []uint) ([]domain.ClassMapping, error)
	GetMapping(sourceClassID, targetClassID uint) (*domain.ClassMapping, error)
	CreateMapping(mapping domain.ClassMapping) error
	UpdateMapping(mapping domain.ClassMapping) error
	DeleteMappings(sourceClassIDs, targetClassIDs []uint) error
	GetMappingTargetSystems(systemID uint) ([]domain.ClassificationSystem, error)

	GetStyleFormats() ([]domain.StyleFormat, error)
	GetStyleFormat(ref domain.Lookup) (*domain.StyleFormat, error)
	CreateStyleFormat(name string) (*domain.StyleFormat, error)
	UpdateStyleFormat(formatID uint, name string) error
	DeleteStyleFormat(formatID uint) error

	GetStyle(systemID, formatID uint) (*domain.Style, error)
	GetSystemStyleFormats(systemID uint) ([]domain.StyleFormat, error)
	CreateStyle(style domain.Style) error
	UpdateStyle(style domain.Style) error
	DeleteStyle(systemID, formatID uint) error
	DeleteStyles(systemID uint) error
}

type catalogDB struct {
	impl *gorm.DB
}

//ConnectorFunc is used to inject a database connection method into NewDatabaseConnection
type ConnectorFunc func() (*gorm.DB, error)

//NewSQLiteConnector opens a connection to a local sqlite database
func NewSQLiteConnector() ConnectorFunc {
	return func() (*gorm.DB, error) {
		db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})

		if err == nil {
			db.Exec("PRAGMA foreign_keys = ON")
		}

		return db, err
	}
}

//NewPostgreSQLConnector opens a connection to a postgresql database
func NewPostgreSQLConnector(log zerolog.Logger, connectionString string) ConnectorFunc {
	return func() (*gorm.DB, error) {
		log.Info().Msg("connecting to postgresql database")

		return gorm.Open(postgres.Open(connectionString), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
	}
}

//NewDatabaseConnection initializes a new connection to the database and wraps it in a Datastore
func NewDatabaseConnection(connect ConnectorFunc) (Datastore, error) {
	impl, err := connect()
	if err != nil {
		return nil, err
	}

	err = impl.AutoMigrate(
		&persistence.ClassificationSystem{},
		&persistence.Class{},
		&persistence.ClassMapping{},
		&persistence.StyleFormat{},
		&persistence.Style{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database schema: %w", err)
	}

	return &catalogDB{impl: impl}, nil
}

//InTransaction invokes fn with a Datastore whose operations all commit or
//roll back together
func (db *catalogDB) InTransaction(fn func(tx Datastore) error) error {
	return db.impl.Transaction(func(tx *gorm.DB) error {
		return fn(&catalogDB{impl: tx})
	})
}

func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}

	return err
}
