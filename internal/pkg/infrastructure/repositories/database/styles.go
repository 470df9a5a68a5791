package database

import (
	"github.com/diwise/api-landcover/internal/pkg/domain"
	"github.com/diwise/api-landcover/internal/pkg/infrastructure/repositories/persistence"
)

func (db *catalogDB) GetStyleFormats() ([]domain.StyleFormat, error) {
	rows := []persistence.StyleFormat{}

	result := db.impl.Order("id").Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	formats := make([]domain.StyleFormat, 0, len(rows))
	for _, row := range rows {
		formats = append(formats, domain.StyleFormat{ID: row.ID, Name: row.Name})
	}

	return formats, nil
}

func (db *catalogDB) GetStyleFormat(ref domain.Lookup) (*domain.StyleFormat, error) {
	row := persistence.StyleFormat{}

	query := db.impl
	if ref.ByID() {
		query = query.Where("id = ?", ref.ID)
	} else {
		query = query.Where("name = ?", ref.Key)
	}

	result := query.First(&row)
	if result.Error != nil {
		return nil, notFoundOr(result.Error)
	}

	return &domain.StyleFormat{ID: row.ID, Name: row.Name}, nil
}

func (db *catalogDB) CreateStyleFormat(name string) (*domain.StyleFormat, error) {
	row := persistence.StyleFormat{Name: name}

	result := db.impl.Create(&row)
	if result.Error != nil {
		return nil, result.Error
	}

	return &domain.StyleFormat{ID: row.ID, Name: row.Name}, nil
}

func (db *catalogDB) UpdateStyleFormat(formatID uint, name string) error {
	return db.impl.Model(&persistence.StyleFormat{}).Where("id = ?", formatID).Update("name", name).Error
}

func (db *catalogDB) DeleteStyleFormat(formatID uint) error {
	return db.impl.Delete(&persistence.StyleFormat{}, formatID).Error
}

func (db *catalogDB) GetStyle(systemID, formatID uint) (*domain.Style, error) {
	row := persistence.Style{}

	result := db.impl.
		Where("classification_system_id = ? AND style_format_id = ?", systemID, formatID).
		First(&row)
	if result.Error != nil {
		return nil, notFoundOr(result.Error)
	}

	return &domain.Style{
		ID:                     row.ID,
		ClassificationSystemID: row.ClassificationSystemID,
		StyleFormatID:          row.StyleFormatID,
		MimeType:               row.MimeType,
		Content:                row.Content,
	}, nil
}

func (db *catalogDB) GetSystemStyleFormats(systemID uint) ([]domain.StyleFormat, error) {
	rows := []persistence.StyleFormat{}

	result := db.impl.Model(&persistence.StyleFormat{}).
		Joins("JOIN styles ON styles.style_format_id = style_formats.id").
		Where("styles.classification_system_id = ?", systemID).
		Order("style_formats.id").
		Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	formats := make([]domain.StyleFormat, 0, len(rows))
	for _, row := range rows {
		formats = append(formats, domain.StyleFormat{ID: row.ID, Name: row.Name})
	}

	return formats, nil
}

func (db *catalogDB) CreateStyle(style domain.Style) error {
	row := persistence.Style{
		ClassificationSystemID: style.ClassificationSystemID,
		StyleFormatID:          style.StyleFormatID,
		MimeType:               style.MimeType,
		Content:                style.Content,
	}

	return db.impl.Create(&row).Error
}

func (db *catalogDB) UpdateStyle(style domain.Style) error {
	return db.impl.Model(&persistence.Style{}).
		Where("classification_system_id = ? AND style_format_id = ?", style.ClassificationSystemID, style.StyleFormatID).
		Updates(map[string]any{
			"mime_type": style.MimeType,
			"content":   style.Content,
		}).Error
}

func (db *catalogDB) DeleteStyle(systemID, formatID uint) error {
	return db.impl.
		Where("classification_system_id = ? AND style_format_id = ?", systemID, formatID).
		Delete(&persistence.Style{}).Error
}

func (db *catalogDB) DeleteStyles(systemID uint) error {
	return db.impl.Where("classification_system_id = ?", systemID).Delete(&persistence.Style{}).Error
}
