package classes

import (
	"context"
	"errors"
	"testing"

	"github.com/diwise/api-landcover/internal/pkg/domain"
	"github.com/diwise/api-landcover/internal/pkg/infrastructure/repositories/database"
	"github.com/matryer/is"
	"github.com/rs/zerolog"
)

func testSetup(t *testing.T) (*is.I, context.Context, database.Datastore, ClassService) {
	is := is.New(t)

	db, err := database.NewDatabaseConnection(database.NewSQLiteConnector())
	is.NoErr(err)

	return is, context.Background(), db, NewClassService(zerolog.Nop(), db)
}

func createSystem(is *is.I, db database.Datastore, name string) *domain.ClassificationSystem {
	system, err := db.CreateClassificationSystem(domain.ClassificationSystem{
		Name:          name,
		Version:       "1.0",
		AuthorityName: "INPE",
		Title:         domain.Translations{"en": name},
		Description:   domain.Translations{"en": "desc"},
	})
	is.NoErr(err)

	return system
}

func node(name string, children ...domain.ClassNode) domain.ClassNode {
	return domain.ClassNode{
		Name:        name,
		Code:        name,
		Title:       domain.Translations{"en": name, "pt-br": name},
		Description: domain.Translations{"en": "desc", "pt-br": "desc"},
		Children:    children,
	}
}

func TestThatChildrenAreWiredToTheirParentsGeneratedID(t *testing.T) {
	is, ctx, db, svc := testSetup(t)
	system := createSystem(is, db, "TreeWiring")

	inserted, err := svc.InsertTree(ctx, domain.Lookup{ID: system.ID}, []domain.ClassNode{
		node("Forest", node("Native")),
	})
	is.NoErr(err)

	is.Equal(len(inserted), 2)
	is.Equal(inserted[0].Name, "Forest")
	is.True(inserted[0].ClassParentID == nil)
	is.Equal(inserted[1].Name, "Native")
	is.True(inserted[1].ClassParentID != nil)
	is.Equal(*inserted[1].ClassParentID, inserted[0].ID)
}

func TestThatDeepTreesKeepEveryEdgeInsideTheSystem(t *testing.T) {
	is, ctx, db, svc := testSetup(t)
	system := createSystem(is, db, "DeepTree")

	inserted, err := svc.InsertTree(ctx, domain.Lookup{ID: system.ID}, []domain.ClassNode{
		node("Vegetation",
			node("Grassland"),
			node("Woodland", node("Dense"), node("Open")),
		),
		node("Water"),
	})
	is.NoErr(err)
	is.Equal(len(inserted), 6)

	byName := map[string]domain.Class{}
	for _, c := range inserted {
		is.Equal(c.ClassificationSystemID, system.ID)
		byName[c.Name] = c
	}

	is.Equal(*byName["Grassland"].ClassParentID, byName["Vegetation"].ID)
	is.Equal(*byName["Woodland"].ClassParentID, byName["Vegetation"].ID)
	is.Equal(*byName["Dense"].ClassParentID, byName["Woodland"].ID)
	is.Equal(*byName["Open"].ClassParentID, byName["Woodland"].ID)
	is.True(byName["Water"].ClassParentID == nil)
}

func TestThatInsertIntoAnUnknownSystemIsABadRequest(t *testing.T) {
	is, ctx, _, svc := testSetup(t)

	_, err := svc.InsertTree(ctx, domain.Lookup{ID: 987654}, []domain.ClassNode{node("Orphan")})
	is.True(errors.Is(err, domain.ErrBadRequest))
}

func TestThatDuplicateClassNamesAreRejectedAndRolledBack(t *testing.T) {
	is, ctx, db, svc := testSetup(t)
	system := createSystem(is, db, "DupClasses")

	_, err := svc.InsertTree(ctx, domain.Lookup{ID: system.ID}, []domain.ClassNode{node("Forest")})
	is.NoErr(err)

	_, err = svc.InsertTree(ctx, domain.Lookup{ID: system.ID}, []domain.ClassNode{
		node("Pasture"),
		node("Forest"),
	})
	is.True(errors.Is(err, domain.ErrConflict))

	// the batch is one transaction, so the first node must not survive
	remaining, err := svc.GetAll(ctx, domain.Lookup{ID: system.ID})
	is.NoErr(err)
	is.Equal(len(remaining), 1)
	is.Equal(remaining[0].Name, "Forest")
}

func TestThatTheSameClassNameIsAllowedInAnotherSystem(t *testing.T) {
	is, ctx, db, svc := testSetup(t)
	first := createSystem(is, db, "SameNameA")
	second := createSystem(is, db, "SameNameB")

	_, err := svc.InsertTree(ctx, domain.Lookup{ID: first.ID}, []domain.ClassNode{node("Forest")})
	is.NoErr(err)

	_, err = svc.InsertTree(ctx, domain.Lookup{ID: second.ID}, []domain.ClassNode{node("Forest")})
	is.NoErr(err)
}

func TestThatClassesResolveByIDAndByName(t *testing.T) {
	is, ctx, db, svc := testSetup(t)
	system := createSystem(is, db, "ClassDual")

	inserted, err := svc.InsertTree(ctx, domain.Lookup{ID: system.ID}, []domain.ClassNode{node("Savanna")})
	is.NoErr(err)

	byID, err := svc.Get(ctx, domain.Lookup{ID: system.ID}, domain.Lookup{ID: inserted[0].ID})
	is.NoErr(err)

	byName, err := svc.Get(ctx, domain.Lookup{ID: system.ID}, domain.Lookup{Key: "Savanna"})
	is.NoErr(err)

	is.Equal(byID.ID, byName.ID)
}

func TestThatParentReassignmentToAnotherSystemIsRejected(t *testing.T) {
	is, ctx, db, svc := testSetup(t)
	first := createSystem(is, db, "ReparentA")
	second := createSystem(is, db, "ReparentB")

	firstClasses, err := svc.InsertTree(ctx, domain.Lookup{ID: first.ID}, []domain.ClassNode{node("Forest")})
	is.NoErr(err)

	secondClasses, err := svc.InsertTree(ctx, domain.Lookup{ID: second.ID}, []domain.ClassNode{node("Cropland")})
	is.NoErr(err)

	_, err = svc.Update(ctx, domain.Lookup{ID: second.ID}, domain.Lookup{ID: secondClasses[0].ID}, domain.ClassPatch{
		ClassParentID: &firstClasses[0].ID,
	})
	is.True(errors.Is(err, domain.ErrBadRequest))
}

func TestThatCyclicParentReassignmentIsRejected(t *testing.T) {
	is, ctx, db, svc := testSetup(t)
	system := createSystem(is, db, "Cycles")

	inserted, err := svc.InsertTree(ctx, domain.Lookup{ID: system.ID}, []domain.ClassNode{
		node("Top", node("Middle", node("Bottom"))),
	})
	is.NoErr(err)

	byName := map[string]domain.Class{}
	for _, c := range inserted {
		byName[c.Name] = c
	}

	bottomID := byName["Bottom"].ID
	_, err = svc.Update(ctx, domain.Lookup{ID: system.ID}, domain.Lookup{Key: "Top"}, domain.ClassPatch{
		ClassParentID: &bottomID,
	})
	is.True(errors.Is(err, domain.ErrBadRequest))
}

func TestThatDeletingAClassWithChildrenIsAConflict(t *testing.T) {
	is, ctx, db, svc := testSetup(t)
	system := createSystem(is, db, "GuardedDelete")

	_, err := svc.InsertTree(ctx, domain.Lookup{ID: system.ID}, []domain.ClassNode{
		node("Parent", node("Child")),
	})
	is.NoErr(err)

	err = svc.Delete(ctx, domain.Lookup{ID: system.ID}, domain.Lookup{Key: "Parent"})
	is.True(errors.Is(err, domain.ErrConflict))

	err = svc.Delete(ctx, domain.Lookup{ID: system.ID}, domain.Lookup{Key: "Child"})
	is.NoErr(err)

	err = svc.Delete(ctx, domain.Lookup{ID: system.ID}, domain.Lookup{Key: "Parent"})
	is.NoErr(err)
}

func TestThatDeleteAllEmptiesTheSystem(t *testing.T) {
	is, ctx, db, svc := testSetup(t)
	system := createSystem(is, db, "DeleteAll")

	_, err := svc.InsertTree(ctx, domain.Lookup{ID: system.ID}, []domain.ClassNode{
		node("One"), node("Two", node("Three")),
	})
	is.NoErr(err)

	err = svc.DeleteAll(ctx, domain.Lookup{ID: system.ID})
	is.NoErr(err)

	remaining, err := svc.GetAll(ctx, domain.Lookup{ID: system.ID})
	is.NoErr(err)
	is.Equal(len(remaining), 0)
}
