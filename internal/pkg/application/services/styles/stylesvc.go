package styles

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"github.com/diwise/api-landcover/internal/pkg/domain"
	"github.com/diwise/api-landcover/internal/pkg/infrastructure/repositories/database"
	"github.com/rs/zerolog"
)

//go:generate moq -rm -out stylesvc_mock.go . StyleService

type StyleService interface {
	GetFormats(ctx context.Context) ([]domain.StyleFormat, error)
	GetFormat(ctx context.Context, ref domain.Lookup) (*domain.StyleFormat, error)
	CreateFormat(ctx context.Context, name string) (*domain.StyleFormat, error)
	UpdateFormat(ctx context.Context, ref domain.Lookup, name string) (*domain.StyleFormat, error)
	DeleteFormat(ctx context.Context, ref domain.Lookup) error

	GetStyle(ctx context.Context, systemRef, formatRef domain.Lookup) (*StyleDownload, error)
	GetSystemFormats(ctx context.Context, systemRef domain.Lookup) ([]domain.StyleFormat, error)
	UploadStyle(ctx context.Context, systemRef, formatRef domain.Lookup, fileName string, content []byte) error
	ReplaceStyle(ctx context.Context, systemRef, formatRef domain.Lookup, fileName string, content []byte) error
	DeleteStyle(ctx context.Context, systemRef, formatRef domain.Lookup) error
}

//StyleDownload is a style artifact prepared for delivery as a file attachment
type StyleDownload struct {
	FileName string
	MimeType string
	Content  []byte
}

func NewStyleService(logger zerolog.Logger, db database.Datastore) StyleService {
	return &styleSvc{
		db:  db,
		log: logger,
	}
}

type styleSvc struct {
	db  database.Datastore
	log zerolog.Logger
}

func (svc *styleSvc) GetFormats(ctx context.Context) ([]domain.StyleFormat, error) {
	return svc.db.GetStyleFormats()
}

func (svc *styleSvc) GetFormat(ctx context.Context, ref domain.Lookup) (*domain.StyleFormat, error) {
	format, err := svc.db.GetStyleFormat(ref)
	if err != nil {
		return nil, fmt.Errorf("style format %s: %w", ref, err)
	}

	return format, nil
}

func (svc *styleSvc) CreateFormat(ctx context.Context, name string) (*domain.StyleFormat, error) {
	_, err := svc.db.GetStyleFormat(domain.Lookup{Key: name})
	if err == nil {
		return nil, fmt.Errorf("style format %s: %w", name, domain.ErrConflict)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	return svc.db.CreateStyleFormat(name)
}

func (svc *styleSvc) UpdateFormat(ctx context.Context, ref domain.Lookup, name string) (*domain.StyleFormat, error) {
	format, err := svc.db.GetStyleFormat(ref)
	if err != nil {
		return nil, fmt.Errorf("style format %s: %w", ref, err)
	}

	err = svc.db.UpdateStyleFormat(format.ID, name)
	if err != nil {
		return nil, fmt.Errorf("failed to update style format %s: %w", format.Name, err)
	}

	return svc.db.GetStyleFormat(domain.Lookup{ID: format.ID})
}

func (svc *styleSvc) DeleteFormat(ctx context.Context, ref domain.Lookup) error {
	format, err := svc.db.GetStyleFormat(ref)
	if err != nil {
		return fmt.Errorf("style format %s: %w", ref, err)
	}

	return svc.db.DeleteStyleFormat(format.ID)
}

func (svc *styleSvc) GetStyle(ctx context.Context, systemRef, formatRef domain.Lookup) (*StyleDownload, error) {
	system, format, err := svc.resolve(systemRef, formatRef)
	if err != nil {
		return nil, err
	}

	style, err := svc.db.GetStyle(system.ID, format.ID)
	if err != nil {
		return nil, fmt.Errorf("style for system %s in format %s: %w", system.Identifier, format.Name, err)
	}

	return &StyleDownload{
		FileName: fmt.Sprintf("%s_%s%s", system.Identifier, format.Name, extensionByMimeType(style.MimeType)),
		MimeType: style.MimeType,
		Content:  style.Content,
	}, nil
}

func (svc *styleSvc) GetSystemFormats(ctx context.Context, systemRef domain.Lookup) ([]domain.StyleFormat, error) {
	system, err := svc.db.GetClassificationSystem(systemRef)
	if err != nil {
		return nil, fmt.Errorf("classification system %s: %w", systemRef, err)
	}

	return svc.db.GetSystemStyleFormats(system.ID)
}

//UploadStyle stores a new style artifact. The mime type is derived from the
//uploaded file name, existing styles for the same system and format are a
//conflict and have to be replaced via ReplaceStyle.
func (svc *styleSvc) UploadStyle(ctx context.Context, systemRef, formatRef domain.Lookup, fileName string, content []byte) error {
	system, format, err := svc.resolve(systemRef, formatRef)
	if err != nil {
		return err
	}

	_, err = svc.db.GetStyle(system.ID, format.ID)
	if err == nil {
		return fmt.Errorf("style for system %s in format %s: %w", system.Identifier, format.Name, domain.ErrConflict)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	err = svc.db.CreateStyle(domain.Style{
		ClassificationSystemID: system.ID,
		StyleFormatID:          format.ID,
		MimeType:               mimeTypeByFileName(fileName),
		Content:                content,
	})
	if err != nil {
		return fmt.Errorf("failed to store style for system %s: %w", system.Identifier, err)
	}

	svc.log.Info().Msgf("stored %s style for classification system %s (%d bytes)", format.Name, system.Identifier, len(content))

	return nil
}

func (svc *styleSvc) ReplaceStyle(ctx context.Context, systemRef, formatRef domain.Lookup, fileName string, content []byte) error {
	system, format, err := svc.resolve(systemRef, formatRef)
	if err != nil {
		return err
	}

	_, err = svc.db.GetStyle(system.ID, format.ID)
	if err != nil {
		return fmt.Errorf("style for system %s in format %s: %w", system.Identifier, format.Name, err)
	}

	return svc.db.UpdateStyle(domain.Style{
		ClassificationSystemID: system.ID,
		StyleFormatID:          format.ID,
		MimeType:               mimeTypeByFileName(fileName),
		Content:                content,
	})
}

func (svc *styleSvc) DeleteStyle(ctx context.Context, systemRef, formatRef domain.Lookup) error {
	system, format, err := svc.resolve(systemRef, formatRef)
	if err != nil {
		return err
	}

	_, err = svc.db.GetStyle(system.ID, format.ID)
	if err != nil {
		return fmt.Errorf("style for system %s in format %s: %w", system.Identifier, format.Name, err)
	}

	return svc.db.DeleteStyle(system.ID, format.ID)
}

func (svc *styleSvc) resolve(systemRef, formatRef domain.Lookup) (*domain.ClassificationSystem, *domain.StyleFormat, error) {
	system, err := svc.db.GetClassificationSystem(systemRef)
	if err != nil {
		return nil, nil, fmt.Errorf("classification system %s: %w", systemRef, err)
	}

	format, err := svc.db.GetStyleFormat(formatRef)
	if err != nil {
		return nil, nil, fmt.Errorf("style format %s: %w", formatRef, err)
	}

	return system, format, nil
}

func mimeTypeByFileName(fileName string) string {
	mimeType := mime.TypeByExtension(strings.ToLower(filepath.Ext(fileName)))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	return mimeType
}

func extensionByMimeType(mimeType string) string {
	// strip any parameters the upload may have carried, e.g. a charset
	if idx := strings.Index(mimeType, ";"); idx >= 0 {
		mimeType = strings.TrimSpace(mimeType[:idx])
	}

	extensions, err := mime.ExtensionsByType(mimeType)
	if err != nil || len(extensions) == 0 {
		return ""
	}

	return extensions[0]
}
