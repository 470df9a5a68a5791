package database

import (
	"github.com/diwise/api-landcover/internal/pkg/domain"
	"github.com/diwise/api-landcover/internal/pkg/infrastructure/repositories/persistence"
)

func (db *catalogDB) GetClasses(systemID uint) ([]domain.Class, error) {
	rows := []persistence.Class{}

	result := db.impl.Where("classification_system_id = ?", systemID).Order("id").Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	classes := make([]domain.Class, 0, len(rows))
	for idx := range rows {
		classes = append(classes, classToDomain(&rows[idx]))
	}

	return classes, nil
}

func (db *catalogDB) GetClass(systemID uint, ref domain.Lookup) (*domain.Class, error) {
	row := persistence.Class{}

	query := db.impl.Where("classification_system_id = ?", systemID)
	if ref.ByID() {
		query = query.Where("id = ?", ref.ID)
	} else {
		query = query.Where("name = ?", ref.Key)
	}

	result := query.First(&row)
	if result.Error != nil {
		return nil, notFoundOr(result.Error)
	}

	class := classToDomain(&row)

	return &class, nil
}

func (db *catalogDB) CreateClass(class domain.Class) (*domain.Class, error) {
	row := persistence.Class{
		Name:                   class.Name,
		Code:                   class.Code,
		Title:                  persistence.Translations(class.Title),
		Description:            persistence.Translations(class.Description),
		ClassificationSystemID: class.ClassificationSystemID,
		ClassParentID:          class.ClassParentID,
	}

	result := db.impl.Create(&row)
	if result.Error != nil {
		return nil, result.Error
	}

	created := classToDomain(&row)

	return &created, nil
}

func (db *catalogDB) UpdateClass(classID uint, patch domain.ClassPatch) error {
	values := map[string]any{}

	if patch.Code != nil {
		values["code"] = *patch.Code
	}
	if patch.Title != nil {
		values["title"] = persistence.Translations(patch.Title)
	}
	if patch.Description != nil {
		values["description"] = persistence.Translations(patch.Description)
	}
	if patch.ClassParentID != nil {
		values["class_parent_id"] = *patch.ClassParentID
	}

	if len(values) == 0 {
		return nil
	}

	return db.impl.Model(&persistence.Class{}).Where("id = ?", classID).Updates(values).Error
}

func (db *catalogDB) DeleteClass(classID uint) error {
	return db.impl.Delete(&persistence.Class{}, classID).Error
}

func (db *catalogDB) DeleteClasses(systemID uint) error {
	return db.impl.Where("classification_system_id = ?", systemID).Delete(&persistence.Class{}).Error
}

func (db *catalogDB) CountClassChildren(classID uint) (int64, error) {
	var count int64

	result := db.impl.Model(&persistence.Class{}).Where("class_parent_id = ?", classID).Count(&count)

	return count, result.Error
}

func classToDomain(row *persistence.Class) domain.Class {
	return domain.Class{
		ID:                     row.ID,
		Name:                   row.Name,
		Code:                   row.Code,
		Title:                  domain.Translations(row.Title),
		Description:            domain.Translations(row.Description),
		ClassificationSystemID: row.ClassificationSystemID,
		ClassParentID:          row.ClassParentID,
	}
}
