package database

import (
	"testing"

	"github.com/diwise/api-landcover/internal/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDatastoreForTesting(t *testing.T) Datastore {
	db, err := NewDatabaseConnection(NewSQLiteConnector())
	require.NoError(t, err)

	return db
}

func createSystem(t *testing.T, db Datastore, name, version string) *domain.ClassificationSystem {
	system, err := db.CreateClassificationSystem(domain.ClassificationSystem{
		Name:          name,
		Version:       version,
		AuthorityName: "INPE",
		Title:         domain.Translations{"en": name, "pt-br": name},
		Description:   domain.Translations{"en": "desc", "pt-br": "desc"},
	})
	require.NoError(t, err)

	return system
}

func createClass(t *testing.T, db Datastore, systemID uint, name string, parentID *uint) *domain.Class {
	class, err := db.CreateClass(domain.Class{
		Name:                   name,
		Code:                   name,
		Title:                  domain.Translations{"en": name},
		Description:            domain.Translations{"en": "desc"},
		ClassificationSystemID: systemID,
		ClassParentID:          parentID,
	})
	require.NoError(t, err)

	return class
}

func TestThatCreateDerivesTheSystemIdentifier(t *testing.T) {
	db := newDatastoreForTesting(t)

	system := createSystem(t, db, "PRODES", "1.0")

	assert.NotZero(t, system.ID)
	assert.Equal(t, "PRODES-1.0", system.Identifier)
}

func TestThatSystemsResolveByIDAndByIdentifier(t *testing.T) {
	db := newDatastoreForTesting(t)

	created := createSystem(t, db, "DETER", "2.0")

	byID, err := db.GetClassificationSystem(domain.Lookup{ID: created.ID})
	require.NoError(t, err)

	byKey, err := db.GetClassificationSystem(domain.Lookup{Key: "DETER-2.0"})
	require.NoError(t, err)

	assert.Equal(t, byID, byKey)
	assert.Equal(t, created.Name, byID.Name)
}

func TestThatUnknownSystemsReturnNotFound(t *testing.T) {
	db := newDatastoreForTesting(t)

	_, err := db.GetClassificationSystem(domain.Lookup{ID: 999999})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = db.FindClassificationSystem("no-such-system", "0.0")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestThatFindResolvesByNameAndVersion(t *testing.T) {
	db := newDatastoreForTesting(t)

	created := createSystem(t, db, "TerraClass", "3.1")

	found, err := db.FindClassificationSystem("TerraClass", "3.1")
	require.NoError(t, err)

	assert.Equal(t, created.ID, found.ID)
}

func TestThatDuplicateSystemsAreRejected(t *testing.T) {
	db := newDatastoreForTesting(t)

	createSystem(t, db, "MapBiomas", "6.0")

	_, err := db.CreateClassificationSystem(domain.ClassificationSystem{
		Name:    "MapBiomas",
		Version: "6.0",
		Title:   domain.Translations{"en": "dup"},
	})
	assert.Error(t, err)
}

func TestThatSystemUpdatesOnlyTouchPatchedFields(t *testing.T) {
	db := newDatastoreForTesting(t)

	created := createSystem(t, db, "Corine", "2018")

	authority := "EEA"
	err := db.UpdateClassificationSystem(created.ID, domain.SystemPatch{
		AuthorityName: &authority,
	})
	require.NoError(t, err)

	updated, err := db.GetClassificationSystem(domain.Lookup{ID: created.ID})
	require.NoError(t, err)

	assert.Equal(t, "EEA", updated.AuthorityName)
	assert.Equal(t, created.Title, updated.Title)
	assert.Equal(t, created.Identifier, updated.Identifier)
}

func TestThatClassesResolveByIDAndByName(t *testing.T) {
	db := newDatastoreForTesting(t)

	system := createSystem(t, db, "ClassLookup", "1.0")
	created := createClass(t, db, system.ID, "Forest", nil)

	byID, err := db.GetClass(system.ID, domain.Lookup{ID: created.ID})
	require.NoError(t, err)

	byName, err := db.GetClass(system.ID, domain.Lookup{Key: "Forest"})
	require.NoError(t, err)

	assert.Equal(t, byID, byName)
}

func TestThatClassLookupsAreScopedToTheirSystem(t *testing.T) {
	db := newDatastoreForTesting(t)

	first := createSystem(t, db, "ScopeA", "1.0")
	second := createSystem(t, db, "ScopeB", "1.0")
	createClass(t, db, first.ID, "Savanna", nil)

	_, err := db.GetClass(second.ID, domain.Lookup{Key: "Savanna"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestThatChildCountsFollowTheParentReference(t *testing.T) {
	db := newDatastoreForTesting(t)

	system := createSystem(t, db, "ChildCount", "1.0")
	parent := createClass(t, db, system.ID, "Vegetation", nil)
	createClass(t, db, system.ID, "Grassland", &parent.ID)
	createClass(t, db, system.ID, "Shrubland", &parent.ID)

	count, err := db.CountClassChildren(parent.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = db.CountClassChildren(999999)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestThatDeletingAllClassesLeavesNoRows(t *testing.T) {
	db := newDatastoreForTesting(t)

	system := createSystem(t, db, "ClassWipe", "1.0")
	createClass(t, db, system.ID, "Water", nil)
	createClass(t, db, system.ID, "Urban", nil)

	require.NoError(t, db.DeleteClasses(system.ID))

	remaining, err := db.GetClasses(system.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestThatMappingsAreStrictlyDirected(t *testing.T) {
	db := newDatastoreForTesting(t)

	source := createSystem(t, db, "DirSource", "1.0")
	target := createSystem(t, db, "DirTarget", "1.0")
	sourceClass := createClass(t, db, source.ID, "Forest", nil)
	targetClass := createClass(t, db, target.ID, "NativeVeg", nil)

	err := db.CreateMapping(domain.ClassMapping{
		SourceClassID:      sourceClass.ID,
		TargetClassID:      targetClass.ID,
		Description:        "similar",
		DegreeOfSimilarity: 0.8,
	})
	require.NoError(t, err)

	forward, err := db.GetMappings([]uint{sourceClass.ID}, []uint{targetClass.ID})
	require.NoError(t, err)
	require.Len(t, forward, 1)
	assert.Equal(t, 0.8, forward[0].DegreeOfSimilarity)

	reverse, err := db.GetMappings([]uint{targetClass.ID}, []uint{sourceClass.ID})
	require.NoError(t, err)
	assert.Empty(t, reverse)
}

func TestThatMappingQueriesWithEmptyClassSetsReturnNothing(t *testing.T) {
	db := newDatastoreForTesting(t)

	result, err := db.GetMappings([]uint{}, []uint{})
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestThatTargetSystemsAreListedForMappedSources(t *testing.T) {
	db := newDatastoreForTesting(t)

	source := createSystem(t, db, "ReachSource", "1.0")
	target := createSystem(t, db, "ReachTarget", "1.0")
	sourceClass := createClass(t, db, source.ID, "Cropland", nil)
	targetClass := createClass(t, db, target.ID, "Agriculture", nil)

	require.NoError(t, db.CreateMapping(domain.ClassMapping{
		SourceClassID: sourceClass.ID,
		TargetClassID: targetClass.ID,
	}))

	systems, err := db.GetMappingTargetSystems(source.ID)
	require.NoError(t, err)

	require.Len(t, systems, 1)
	assert.Equal(t, target.ID, systems[0].ID)

	systems, err = db.GetMappingTargetSystems(target.ID)
	require.NoError(t, err)
	assert.Empty(t, systems)
}

func TestThatMappingRowsSurviveSourceClassDeletion(t *testing.T) {
	db := newDatastoreForTesting(t)

	source := createSystem(t, db, "DanglingSource", "1.0")
	target := createSystem(t, db, "DanglingTarget", "1.0")
	sourceClass := createClass(t, db, source.ID, "Wetland", nil)
	targetClass := createClass(t, db, target.ID, "Marsh", nil)

	require.NoError(t, db.CreateMapping(domain.ClassMapping{
		SourceClassID: sourceClass.ID,
		TargetClassID: targetClass.ID,
	}))

	// class deletion does not clean up crosswalk edges, they remain as
	// dangling rows until deleted explicitly
	require.NoError(t, db.DeleteClass(sourceClass.ID))

	row, err := db.GetMapping(sourceClass.ID, targetClass.ID)
	require.NoError(t, err)
	assert.Equal(t, sourceClass.ID, row.SourceClassID)
}

func TestStyleFormatLifecycle(t *testing.T) {
	db := newDatastoreForTesting(t)

	format, err := db.CreateStyleFormat("GeoStyler")
	require.NoError(t, err)
	assert.NotZero(t, format.ID)

	byName, err := db.GetStyleFormat(domain.Lookup{Key: "GeoStyler"})
	require.NoError(t, err)
	assert.Equal(t, format.ID, byName.ID)

	require.NoError(t, db.UpdateStyleFormat(format.ID, "GeoStylerV2"))

	_, err = db.GetStyleFormat(domain.Lookup{Key: "GeoStyler"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, db.DeleteStyleFormat(format.ID))

	_, err = db.GetStyleFormat(domain.Lookup{ID: format.ID})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStyleRoundtrip(t *testing.T) {
	db := newDatastoreForTesting(t)

	system := createSystem(t, db, "StyleSys", "1.0")
	format, err := db.CreateStyleFormat("StyleFmt")
	require.NoError(t, err)

	err = db.CreateStyle(domain.Style{
		ClassificationSystemID: system.ID,
		StyleFormatID:          format.ID,
		MimeType:               "application/xml",
		Content:                []byte("<StyledLayerDescriptor/>"),
	})
	require.NoError(t, err)

	style, err := db.GetStyle(system.ID, format.ID)
	require.NoError(t, err)
	assert.Equal(t, "application/xml", style.MimeType)
	assert.Equal(t, []byte("<StyledLayerDescriptor/>"), style.Content)

	formats, err := db.GetSystemStyleFormats(system.ID)
	require.NoError(t, err)
	require.Len(t, formats, 1)
	assert.Equal(t, format.ID, formats[0].ID)

	require.NoError(t, db.DeleteStyles(system.ID))

	_, err = db.GetStyle(system.ID, format.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
