package classificationsystems

import (
	"context"
	"errors"
	"fmt"

	"github.com/diwise/api-landcover/internal/pkg/domain"
	"github.com/diwise/api-landcover/internal/pkg/infrastructure/repositories/database"
	"github.com/rs/zerolog"
)

//go:generate moq -rm -out systemsvc_mock.go . ClassificationSystemService

type ClassificationSystemService interface {
	GetAll(ctx context.Context) ([]domain.ClassificationSystem, error)
	Get(ctx context.Context, ref domain.Lookup) (*domain.ClassificationSystem, error)
	Search(ctx context.Context, name, version string) (*domain.ClassificationSystem, error)
	Create(ctx context.Context, system domain.ClassificationSystem) (*domain.ClassificationSystem, error)
	Update(ctx context.Context, ref domain.Lookup, patch domain.SystemPatch) (*domain.ClassificationSystem, error)
	Delete(ctx context.Context, ref domain.Lookup) error
}

func NewClassificationSystemService(logger zerolog.Logger, db database.Datastore) ClassificationSystemService {
	return &systemSvc{
		db:  db,
		log: logger,
	}
}

type systemSvc struct {
	db  database.Datastore
	log zerolog.Logger
}

func (svc *systemSvc) GetAll(ctx context.Context) ([]domain.ClassificationSystem, error) {
	return svc.db.GetClassificationSystems()
}

func (svc *systemSvc) Get(ctx context.Context, ref domain.Lookup) (*domain.ClassificationSystem, error) {
	system, err := svc.db.GetClassificationSystem(ref)
	if err != nil {
		return nil, fmt.Errorf("classification system %s: %w", ref, err)
	}

	return system, nil
}

func (svc *systemSvc) Search(ctx context.Context, name, version string) (*domain.ClassificationSystem, error) {
	system, err := svc.db.FindClassificationSystem(name, version)
	if err != nil {
		return nil, fmt.Errorf("classification system %s-%s: %w", name, version, err)
	}

	return system, nil
}

func (svc *systemSvc) Create(ctx context.Context, system domain.ClassificationSystem) (*domain.ClassificationSystem, error) {
	_, err := svc.db.FindClassificationSystem(system.Name, system.Version)
	if err == nil {
		return nil, fmt.Errorf("classification system %s-%s: %w", system.Name, system.Version, domain.ErrConflict)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	created, err := svc.db.CreateClassificationSystem(system)
	if err != nil {
		return nil, fmt.Errorf("failed to create classification system: %w", err)
	}

	svc.log.Info().Msgf("created classification system %s (id %d)", created.Identifier, created.ID)

	return created, nil
}

func (svc *systemSvc) Update(ctx context.Context, ref domain.Lookup, patch domain.SystemPatch) (*domain.ClassificationSystem, error) {
	system, err := svc.db.GetClassificationSystem(ref)
	if err != nil {
		return nil, fmt.Errorf("classification system %s: %w", ref, err)
	}

	err = svc.db.UpdateClassificationSystem(system.ID, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update classification system %s: %w", system.Identifier, err)
	}

	return svc.db.GetClassificationSystem(domain.Lookup{ID: system.ID})
}

//Delete removes the classification system together with all of its classes
//and styles in a single transaction. Mapping rows that reference the deleted
//classes are left behind, callers clean those up explicitly.
func (svc *systemSvc) Delete(ctx context.Context, ref domain.Lookup) error {
	system, err := svc.db.GetClassificationSystem(ref)
	if err != nil {
		return fmt.Errorf("classification system %s: %w", ref, err)
	}

	err = svc.db.InTransaction(func(tx database.Datastore) error {
		if err := tx.DeleteStyles(system.ID); err != nil {
			return err
		}

		if err := tx.DeleteClasses(system.ID); err != nil {
			return err
		}

		return tx.DeleteClassificationSystem(system.ID)
	})
	if err != nil {
		return fmt.Errorf("failed to delete classification system %s: %w", system.Identifier, err)
	}

	svc.log.Info().Msgf("deleted classification system %s (id %d)", system.Identifier, system.ID)

	return nil
}
