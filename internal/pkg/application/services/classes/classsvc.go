package classes

import (
	"context"
	"errors"
	"fmt"

	"github.com/diwise/api-landcover/internal/pkg/domain"
	"github.com/diwise/api-landcover/internal/pkg/infrastructure/repositories/database"
	"github.com/rs/zerolog"
)

//go:generate moq -rm -out classsvc_mock.go . ClassService

type ClassService interface {
	InsertTree(ctx context.Context, systemRef domain.Lookup, nodes []domain.ClassNode) ([]domain.Class, error)
	GetAll(ctx context.Context, systemRef domain.Lookup) ([]domain.Class, error)
	Get(ctx context.Context, systemRef, classRef domain.Lookup) (*domain.Class, error)
	Update(ctx context.Context, systemRef, classRef domain.Lookup, patch domain.ClassPatch) (*domain.Class, error)
	Delete(ctx context.Context, systemRef, classRef domain.Lookup) error
	DeleteAll(ctx context.Context, systemRef domain.Lookup) error
}

func NewClassService(logger zerolog.Logger, db database.Datastore) ClassService {
	return &classSvc{
		db:  db,
		log: logger,
	}
}

type classSvc struct {
	db  database.Datastore
	log zerolog.Logger
}

//InsertTree inserts the given class nodes depth first, threading each parent's
//generated id into its children. The whole tree commits or rolls back as one.
func (svc *classSvc) InsertTree(ctx context.Context, systemRef domain.Lookup, nodes []domain.ClassNode) ([]domain.Class, error) {
	system, err := svc.db.GetClassificationSystem(systemRef)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: classification system %s does not exist", domain.ErrBadRequest, systemRef)
		}

		return nil, err
	}

	inserted := []domain.Class{}

	err = svc.db.InTransaction(func(tx database.Datastore) error {
		for _, node := range nodes {
			if err := insertNode(tx, system.ID, node, nil, &inserted); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	svc.log.Info().Msgf("inserted %d classes into classification system %s", len(inserted), system.Identifier)

	return inserted, nil
}

func insertNode(tx database.Datastore, systemID uint, node domain.ClassNode, parentID *uint, inserted *[]domain.Class) error {
	_, err := tx.GetClass(systemID, domain.Lookup{Key: node.Name})
	if err == nil {
		return fmt.Errorf("class %s already registered in the system: %w", node.Name, domain.ErrConflict)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	created, err := tx.CreateClass(domain.Class{
		Name:                   node.Name,
		Code:                   node.Code,
		Title:                  node.Title,
		Description:            node.Description,
		ClassificationSystemID: systemID,
		ClassParentID:          parentID,
	})
	if err != nil {
		return fmt.Errorf("failed to insert class %s: %w", node.Name, err)
	}

	*inserted = append(*inserted, *created)

	for _, child := range node.Children {
		if err := insertNode(tx, systemID, child, &created.ID, inserted); err != nil {
			return err
		}
	}

	return nil
}

func (svc *classSvc) GetAll(ctx context.Context, systemRef domain.Lookup) ([]domain.Class, error) {
	system, err := svc.db.GetClassificationSystem(systemRef)
	if err != nil {
		return nil, fmt.Errorf("classification system %s: %w", systemRef, err)
	}

	return svc.db.GetClasses(system.ID)
}

func (svc *classSvc) Get(ctx context.Context, systemRef, classRef domain.Lookup) (*domain.Class, error) {
	system, err := svc.db.GetClassificationSystem(systemRef)
	if err != nil {
		return nil, fmt.Errorf("classification system %s: %w", systemRef, err)
	}

	class, err := svc.db.GetClass(system.ID, classRef)
	if err != nil {
		return nil, fmt.Errorf("class %s in system %s: %w", classRef, system.Identifier, err)
	}

	return class, nil
}

func (svc *classSvc) Update(ctx context.Context, systemRef, classRef domain.Lookup, patch domain.ClassPatch) (*domain.Class, error) {
	system, err := svc.db.GetClassificationSystem(systemRef)
	if err != nil {
		return nil, fmt.Errorf("classification system %s: %w", systemRef, err)
	}

	class, err := svc.db.GetClass(system.ID, classRef)
	if err != nil {
		return nil, fmt.Errorf("class %s in system %s: %w", classRef, system.Identifier, err)
	}

	if patch.ClassParentID != nil {
		err = svc.validateParent(system.ID, class.ID, *patch.ClassParentID)
		if err != nil {
			return nil, err
		}
	}

	err = svc.db.UpdateClass(class.ID, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update class %s: %w", class.Name, err)
	}

	return svc.db.GetClass(system.ID, domain.Lookup{ID: class.ID})
}

//validateParent requires the new parent to exist within the same system and
//rejects reassignments that would close a parent cycle
func (svc *classSvc) validateParent(systemID, classID, parentID uint) error {
	if parentID == classID {
		return fmt.Errorf("%w: class can not be its own parent", domain.ErrBadRequest)
	}

	parent, err := svc.db.GetClass(systemID, domain.Lookup{ID: parentID})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%w: parent class %d does not exist in the system", domain.ErrBadRequest, parentID)
		}

		return err
	}

	for parent.ClassParentID != nil {
		if *parent.ClassParentID == classID {
			return fmt.Errorf("%w: parent reassignment would create a cycle", domain.ErrBadRequest)
		}

		parent, err = svc.db.GetClass(systemID, domain.Lookup{ID: *parent.ClassParentID})
		if err != nil {
			return err
		}
	}

	return nil
}

//Delete removes a single class. Classes that still have children can not be
//deleted, the subtree has to be removed bottom up.
func (svc *classSvc) Delete(ctx context.Context, systemRef, classRef domain.Lookup) error {
	system, err := svc.db.GetClassificationSystem(systemRef)
	if err != nil {
		return fmt.Errorf("classification system %s: %w", systemRef, err)
	}

	class, err := svc.db.GetClass(system.ID, classRef)
	if err != nil {
		return fmt.Errorf("class %s in system %s: %w", classRef, system.Identifier, err)
	}

	children, err := svc.db.CountClassChildren(class.ID)
	if err != nil {
		return err
	}

	if children > 0 {
		return fmt.Errorf("class %s still has %d child classes: %w", class.Name, children, domain.ErrConflict)
	}

	return svc.db.DeleteClass(class.ID)
}

func (svc *classSvc) DeleteAll(ctx context.Context, systemRef domain.Lookup) error {
	system, err := svc.db.GetClassificationSystem(systemRef)
	if err != nil {
		return fmt.Errorf("classification system %s: %w", systemRef, err)
	}

	err = svc.db.DeleteClasses(system.ID)
	if err != nil {
		return fmt.Errorf("failed to delete classes of system %s: %w", system.Identifier, err)
	}

	svc.log.Info().Msgf("deleted all classes of classification system %s", system.Identifier)

	return nil
}
