package mappings

import (
	"context"
	"errors"
	"fmt"

	"github.com/diwise/api-landcover/internal/pkg/domain"
	"github.com/diwise/api-landcover/internal/pkg/infrastructure/repositories/database"
	"github.com/rs/zerolog"
)

//go:generate moq -rm -out mappingsvc_mock.go . MappingService

type MappingService interface {
	ListTargetSystems(ctx context.Context, systemRef domain.Lookup) ([]domain.ClassificationSystem, error)
	Get(ctx context.Context, sourceRef, targetRef domain.Lookup) ([]domain.ClassMapping, error)
	Insert(ctx context.Context, sourceRef, targetRef domain.Lookup, entries []domain.MappingEntry) ([]domain.ClassMapping, error)
	Update(ctx context.Context, sourceRef, targetRef domain.Lookup, entries []domain.MappingUpdateEntry) ([]domain.ClassMapping, error)
	Delete(ctx context.Context, sourceRef, targetRef domain.Lookup) error
}

func NewMappingService(logger zerolog.Logger, db database.Datastore) MappingService {
	return &mappingSvc{
		db:  db,
		log: logger,
	}
}

type mappingSvc struct {
	db  database.Datastore
	log zerolog.Logger
}

//ListTargetSystems returns the distinct classification systems reachable via
//mappings whose source classes belong to the given system
func (svc *mappingSvc) ListTargetSystems(ctx context.Context, systemRef domain.Lookup) ([]domain.ClassificationSystem, error) {
	system, err := svc.db.GetClassificationSystem(systemRef)
	if err != nil {
		return nil, fmt.Errorf("classification system %s: %w", systemRef, err)
	}

	return svc.db.GetMappingTargetSystems(system.ID)
}

func (svc *mappingSvc) Get(ctx context.Context, sourceRef, targetRef domain.Lookup) ([]domain.ClassMapping, error) {
	sourceIDs, targetIDs, err := svc.classSets(sourceRef, targetRef)
	if err != nil {
		return nil, err
	}

	return svc.db.GetMappings(sourceIDs, targetIDs)
}

//Insert creates one directed crosswalk edge per entry. The batch commits or
//rolls back as a whole.
func (svc *mappingSvc) Insert(ctx context.Context, sourceRef, targetRef domain.Lookup, entries []domain.MappingEntry) ([]domain.ClassMapping, error) {
	source, err := svc.db.GetClassificationSystem(sourceRef)
	if err != nil {
		return nil, fmt.Errorf("source classification system %s: %w", sourceRef, err)
	}

	target, err := svc.db.GetClassificationSystem(targetRef)
	if err != nil {
		return nil, fmt.Errorf("target classification system %s: %w", targetRef, err)
	}

	err = svc.db.InTransaction(func(tx database.Datastore) error {
		for _, entry := range entries {
			sourceClass, err := tx.GetClass(source.ID, domain.ParseLookup(entry.SourceClass))
			if err != nil {
				return fmt.Errorf("source class %s in system %s: %w", entry.SourceClass, source.Identifier, err)
			}

			targetClass, err := tx.GetClass(target.ID, domain.ParseLookup(entry.TargetClass))
			if err != nil {
				return fmt.Errorf("target class %s in system %s: %w", entry.TargetClass, target.Identifier, err)
			}

			_, err = tx.GetMapping(sourceClass.ID, targetClass.ID)
			if err == nil {
				return fmt.Errorf("mapping %s to %s already exists: %w", entry.SourceClass, entry.TargetClass, domain.ErrConflict)
			} else if !errors.Is(err, domain.ErrNotFound) {
				return err
			}

			err = tx.CreateMapping(domain.ClassMapping{
				SourceClassID:      sourceClass.ID,
				TargetClassID:      targetClass.ID,
				Description:        entry.Description,
				DegreeOfSimilarity: entry.DegreeOfSimilarity,
			})
			if err != nil {
				return fmt.Errorf("failed to insert mapping %s to %s: %w", entry.SourceClass, entry.TargetClass, err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	svc.log.Info().Msgf("inserted %d mappings from %s to %s", len(entries), source.Identifier, target.Identifier)

	return svc.Get(ctx, domain.Lookup{ID: source.ID}, domain.Lookup{ID: target.ID})
}

func (svc *mappingSvc) Update(ctx context.Context, sourceRef, targetRef domain.Lookup, entries []domain.MappingUpdateEntry) ([]domain.ClassMapping, error) {
	source, err := svc.db.GetClassificationSystem(sourceRef)
	if err != nil {
		return nil, fmt.Errorf("source classification system %s: %w", sourceRef, err)
	}

	target, err := svc.db.GetClassificationSystem(targetRef)
	if err != nil {
		return nil, fmt.Errorf("target classification system %s: %w", targetRef, err)
	}

	err = svc.db.InTransaction(func(tx database.Datastore) error {
		for _, entry := range entries {
			sourceClass, err := tx.GetClass(source.ID, domain.ParseLookup(entry.SourceClass))
			if err != nil {
				return fmt.Errorf("source class %s in system %s: %w", entry.SourceClass, source.Identifier, err)
			}

			targetClass, err := tx.GetClass(target.ID, domain.ParseLookup(entry.TargetClass))
			if err != nil {
				return fmt.Errorf("target class %s in system %s: %w", entry.TargetClass, target.Identifier, err)
			}

			mapping, err := tx.GetMapping(sourceClass.ID, targetClass.ID)
			if err != nil {
				return fmt.Errorf("mapping %s to %s: %w", entry.SourceClass, entry.TargetClass, err)
			}

			if entry.Description != nil {
				mapping.Description = *entry.Description
			}
			if entry.DegreeOfSimilarity != nil {
				mapping.DegreeOfSimilarity = *entry.DegreeOfSimilarity
			}

			if err := tx.UpdateMapping(*mapping); err != nil {
				return fmt.Errorf("failed to update mapping %s to %s: %w", entry.SourceClass, entry.TargetClass, err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return svc.Get(ctx, domain.Lookup{ID: source.ID}, domain.Lookup{ID: target.ID})
}

func (svc *mappingSvc) Delete(ctx context.Context, sourceRef, targetRef domain.Lookup) error {
	sourceIDs, targetIDs, err := svc.classSets(sourceRef, targetRef)
	if err != nil {
		return err
	}

	return svc.db.DeleteMappings(sourceIDs, targetIDs)
}

func (svc *mappingSvc) classSets(sourceRef, targetRef domain.Lookup) ([]uint, []uint, error) {
	source, err := svc.db.GetClassificationSystem(sourceRef)
	if err != nil {
		return nil, nil, fmt.Errorf("source classification system %s: %w", sourceRef, err)
	}

	target, err := svc.db.GetClassificationSystem(targetRef)
	if err != nil {
		return nil, nil, fmt.Errorf("target classification system %s: %w", targetRef, err)
	}

	sourceClasses, err := svc.db.GetClasses(source.ID)
	if err != nil {
		return nil, nil, err
	}

	targetClasses, err := svc.db.GetClasses(target.ID)
	if err != nil {
		return nil, nil, err
	}

	return classIDs(sourceClasses), classIDs(targetClasses), nil
}

func classIDs(classes []domain.Class) []uint {
	ids := make([]uint, 0, len(classes))
	for _, class := range classes {
		ids = append(ids, class.ID)
	}

	return ids
}
