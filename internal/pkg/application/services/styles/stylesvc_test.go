package styles

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/diwise/api-landcover/internal/pkg/domain"
	"github.com/diwise/api-landcover/internal/pkg/infrastructure/repositories/database"
	"github.com/matryer/is"
	"github.com/rs/zerolog"
)

func testSetup(t *testing.T) (*is.I, context.Context, database.Datastore, StyleService) {
	is := is.New(t)

	db, err := database.NewDatabaseConnection(database.NewSQLiteConnector())
	is.NoErr(err)

	return is, context.Background(), db, NewStyleService(zerolog.Nop(), db)
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

func TestThatFormatsCanBeCreatedAndResolvedByName(t *testing.T) {
	is, ctx, _, svc := testSetup(t)

	created, err := svc.CreateFormat(ctx, "FmtByName")
	is.NoErr(err)
	is.True(created.ID > 0)

	found, err := svc.GetFormat(ctx, domain.Lookup{Key: "FmtByName"})
	is.NoErr(err)
	is.Equal(found.ID, created.ID)
}

func TestThatDuplicateFormatNamesAreAConflict(t *testing.T) {
	is, ctx, _, svc := testSetup(t)

	_, err := svc.CreateFormat(ctx, "FmtDup")
	is.NoErr(err)

	_, err = svc.CreateFormat(ctx, "FmtDup")
	is.True(errors.Is(err, domain.ErrConflict))
}

func TestThatUploadedStylesComeBackAsAttachments(t *testing.T) {
	is, ctx, db, svc := testSetup(t)

	system := createSystem(is, db, "StyleUp")
	_, err := svc.CreateFormat(ctx, "SLD")
	is.NoErr(err)

	err = svc.UploadStyle(ctx, domain.Lookup{Key: "StyleUp-1.0"}, domain.Lookup{Key: "SLD"}, "styles.json", []byte(`{"rules":[]}`))
	is.NoErr(err)

	download, err := svc.GetStyle(ctx, domain.Lookup{ID: system.ID}, domain.Lookup{Key: "SLD"})
	is.NoErr(err)

	is.Equal(download.Content, []byte(`{"rules":[]}`))
	is.True(strings.HasPrefix(download.MimeType, "application/json"))
	is.True(strings.HasPrefix(download.FileName, "StyleUp-1.0_SLD"))
}

func TestThatASecondUploadForTheSamePairIsAConflict(t *testing.T) {
	is, ctx, db, svc := testSetup(t)

	createSystem(is, db, "StyleDup")
	_, err := svc.CreateFormat(ctx, "StyleDupFmt")
	is.NoErr(err)

	err = svc.UploadStyle(ctx, domain.Lookup{Key: "StyleDup-1.0"}, domain.Lookup{Key: "StyleDupFmt"}, "a.json", []byte("{}"))
	is.NoErr(err)

	err = svc.UploadStyle(ctx, domain.Lookup{Key: "StyleDup-1.0"}, domain.Lookup{Key: "StyleDupFmt"}, "b.json", []byte("{}"))
	is.True(errors.Is(err, domain.ErrConflict))
}

func TestThatReplaceOverwritesContentAndMimeType(t *testing.T) {
	is, ctx, db, svc := testSetup(t)

	createSystem(is, db, "StyleRepl")
	_, err := svc.CreateFormat(ctx, "StyleReplFmt")
	is.NoErr(err)

	systemRef := domain.Lookup{Key: "StyleRepl-1.0"}
	formatRef := domain.Lookup{Key: "StyleReplFmt"}

	err = svc.UploadStyle(ctx, systemRef, formatRef, "first.json", []byte("{}"))
	is.NoErr(err)

	err = svc.ReplaceStyle(ctx, systemRef, formatRef, "second.xml", []byte("<sld/>"))
	is.NoErr(err)

	download, err := svc.GetStyle(ctx, systemRef, formatRef)
	is.NoErr(err)
	is.Equal(download.Content, []byte("<sld/>"))
	is.True(strings.Contains(download.MimeType, "xml"))
}

func TestThatReplacingAMissingStyleIsNotFound(t *testing.T) {
	is, ctx, db, svc := testSetup(t)

	createSystem(is, db, "StyleReplMiss")
	_, err := svc.CreateFormat(ctx, "StyleReplMissFmt")
	is.NoErr(err)

	err = svc.ReplaceStyle(ctx, domain.Lookup{Key: "StyleReplMiss-1.0"}, domain.Lookup{Key: "StyleReplMissFmt"}, "a.json", []byte("{}"))
	is.True(errors.Is(err, domain.ErrNotFound))
}

func TestThatSystemFormatsOnlyListFormatsWithAStoredStyle(t *testing.T) {
	is, ctx, db, svc := testSetup(t)

	system := createSystem(is, db, "StyleList")
	_, err := svc.CreateFormat(ctx, "StyleListWith")
	is.NoErr(err)
	_, err = svc.CreateFormat(ctx, "StyleListWithout")
	is.NoErr(err)

	err = svc.UploadStyle(ctx, domain.Lookup{ID: system.ID}, domain.Lookup{Key: "StyleListWith"}, "a.json", []byte("{}"))
	is.NoErr(err)

	formats, err := svc.GetSystemFormats(ctx, domain.Lookup{ID: system.ID})
	is.NoErr(err)
	is.Equal(len(formats), 1)
	is.Equal(formats[0].Name, "StyleListWith")
}

func TestThatDeleteStyleRemovesTheArtifact(t *testing.T) {
	is, ctx, db, svc := testSetup(t)

	system := createSystem(is, db, "StyleDel")
	_, err := svc.CreateFormat(ctx, "StyleDelFmt")
	is.NoErr(err)

	systemRef := domain.Lookup{ID: system.ID}
	formatRef := domain.Lookup{Key: "StyleDelFmt"}

	err = svc.UploadStyle(ctx, systemRef, formatRef, "a.json", []byte("{}"))
	is.NoErr(err)

	err = svc.DeleteStyle(ctx, systemRef, formatRef)
	is.NoErr(err)

	_, err = svc.GetStyle(ctx, systemRef, formatRef)
	is.True(errors.Is(err, domain.ErrNotFound))
}

func TestThatUnknownFileExtensionsFallBackToOctetStream(t *testing.T) {
	is, ctx, db, svc := testSetup(t)

	createSystem(is, db, "StyleQml")
	_, err := svc.CreateFormat(ctx, "QML")
	is.NoErr(err)

	err = svc.UploadStyle(ctx, domain.Lookup{Key: "StyleQml-1.0"}, domain.Lookup{Key: "QML"}, "layer.qml2", []byte("<qgis/>"))
	is.NoErr(err)

	download, err := svc.GetStyle(ctx, domain.Lookup{Key: "StyleQml-1.0"}, domain.Lookup{Key: "QML"})
	is.NoErr(err)
	is.Equal(download.MimeType, "application/octet-stream")
}

func TestThatTheRegistrySeedsMissingFormats(t *testing.T) {
	is, ctx, _, svc := testSetup(t)

	_, err := svc.CreateFormat(ctx, "SeedExisting")
	is.NoErr(err)

	registry := strings.NewReader("formats:\n  - SeedExisting\n  - SeedNew\n")

	err = SeedFormats(ctx, svc, registry)
	is.NoErr(err)

	_, err = svc.GetFormat(ctx, domain.Lookup{Key: "SeedNew"})
	is.NoErr(err)
}

func TestThatTheRegistrySeedsRepeatedNamesOnce(t *testing.T) {
	is, ctx, _, svc := testSetup(t)

	registry := strings.NewReader("formats:\n  - SeedTwice\n  - SeedTwice\n")

	err := SeedFormats(ctx, svc, registry)
	is.NoErr(err)

	_, err = svc.GetFormat(ctx, domain.Lookup{Key: "SeedTwice"})
	is.NoErr(err)
}

func TestThatAMalformedRegistryIsRejected(t *testing.T) {
	is, ctx, _, svc := testSetup(t)

	err := SeedFormats(ctx, svc, strings.NewReader(":\tnot yaml"))
	is.True(err != nil)
}
