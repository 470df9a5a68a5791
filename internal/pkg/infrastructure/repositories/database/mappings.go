package database

import (
	"github.com/diwise/api-landcover/internal/pkg/domain"
	"github.com/diwise/api-landcover/internal/pkg/infrastructure/repositories/persistence"
)

func (db *catalogDB) GetMappings(sourceClassIDs, targetClassIDs []uint) ([]domain.ClassMapping, error) {
	if len(sourceClassIDs) == 0 || len(targetClassIDs) == 0 {
		return []domain.ClassMapping{}, nil
	}

	rows := []persistence.ClassMapping{}

	result := db.impl.
		Where("source_class_id IN ?", sourceClassIDs).
		Where("target_class_id IN ?", targetClassIDs).
		Order("source_class_id, target_class_id").
		Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	mappings := make([]domain.ClassMapping, 0, len(rows))
	for idx := range rows {
		mappings = append(mappings, mappingToDomain(&rows[idx]))
	}

	return mappings, nil
}

func (db *catalogDB) GetMapping(sourceClassID, targetClassID uint) (*domain.ClassMapping, error) {
	row := persistence.ClassMapping{}

	result := db.impl.
		Where("source_class_id = ? AND target_class_id = ?", sourceClassID, targetClassID).
		First(&row)
	if result.Error != nil {
		return nil, notFoundOr(result.Error)
	}

	mapping := mappingToDomain(&row)

	return &mapping, nil
}

func (db *catalogDB) CreateMapping(mapping domain.ClassMapping) error {
	row := persistence.ClassMapping{
		SourceClassID:      mapping.SourceClassID,
		TargetClassID:      mapping.TargetClassID,
		Description:        mapping.Description,
		DegreeOfSimilarity: mapping.DegreeOfSimilarity,
	}

	return db.impl.Create(&row).Error
}

func (db *catalogDB) UpdateMapping(mapping domain.ClassMapping) error {
	return db.impl.Model(&persistence.ClassMapping{}).
		Where("source_class_id = ? AND target_class_id = ?", mapping.SourceClassID, mapping.TargetClassID).
		Updates(map[string]any{
			"description":          mapping.Description,
			"degree_of_similarity": mapping.DegreeOfSimilarity,
		}).Error
}

func (db *catalogDB) DeleteMappings(sourceClassIDs, targetClassIDs []uint) error {
	if len(sourceClassIDs) == 0 || len(targetClassIDs) == 0 {
		return nil
	}

	return db.impl.
		Where("source_class_id IN ?", sourceClassIDs).
		Where("target_class_id IN ?", targetClassIDs).
		Delete(&persistence.ClassMapping{}).Error
}

//GetMappingTargetSystems returns the distinct classification systems owning at
//least one class that is the target of a mapping sourced in the given system
func (db *catalogDB) GetMappingTargetSystems(systemID uint) ([]domain.ClassificationSystem, error) {
	sourceClasses := db.impl.Model(&persistence.Class{}).
		Select("id").
		Where("classification_system_id = ?", systemID)

	targetClasses := db.impl.Model(&persistence.ClassMapping{}).
		Distinct("target_class_id").
		Where("source_class_id IN (?)", sourceClasses)

	rows := []persistence.ClassificationSystem{}

	result := db.impl.Model(&persistence.ClassificationSystem{}).
		Distinct("classification_systems.*").
		Joins("JOIN classes ON classes.classification_system_id = classification_systems.id").
		Where("classes.id IN (?)", targetClasses).
		Order("classification_systems.id").
		Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	systems := make([]domain.ClassificationSystem, 0, len(rows))
	for idx := range rows {
		systems = append(systems, systemToDomain(&rows[idx]))
	}

	return systems, nil
}

func mappingToDomain(row *persistence.ClassMapping) domain.ClassMapping {
	return domain.ClassMapping{
		SourceClassID:      row.SourceClassID,
		TargetClassID:      row.TargetClassID,
		Description:        row.Description,
		DegreeOfSimilarity: row.DegreeOfSimilarity,
	}
}
