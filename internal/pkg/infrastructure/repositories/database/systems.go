package database

import (
	"fmt"

	"github.com/diwise/api-landcover/internal/pkg/domain"
	"github.com/diwise/api-landcover/internal/pkg/infrastructure/repositories/persistence"
)

func (db *catalogDB) GetClassificationSystems() ([]domain.ClassificationSystem, error) {
	rows := []persistence.ClassificationSystem{}

	result := db.impl.Order("id").Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	systems := make([]domain.ClassificationSystem, 0, len(rows))
	for idx := range rows {
		systems = append(systems, systemToDomain(&rows[idx]))
	}

	return systems, nil
}

func (db *catalogDB) GetClassificationSystem(ref domain.Lookup) (*domain.ClassificationSystem, error) {
	row := persistence.ClassificationSystem{}

	query := db.impl
	if ref.ByID() {
		query = query.Where("id = ?", ref.ID)
	} else {
		query = query.Where("identifier = ?", ref.Key)
	}

	result := query.First(&row)
	if result.Error != nil {
		return nil, notFoundOr(result.Error)
	}

	system := systemToDomain(&row)

	return &system, nil
}

func (db *catalogDB) FindClassificationSystem(name, version string) (*domain.ClassificationSystem, error) {
	row := persistence.ClassificationSystem{}

	result := db.impl.Where("name = ? AND version = ?", name, version).First(&row)
	if result.Error != nil {
		return nil, notFoundOr(result.Error)
	}

	system := systemToDomain(&row)

	return &system, nil
}

func (db *catalogDB) CreateClassificationSystem(system domain.ClassificationSystem) (*domain.ClassificationSystem, error) {
	row := persistence.ClassificationSystem{
		Name:          system.Name,
		Version:       system.Version,
		Identifier:    fmt.Sprintf("%s-%s", system.Name, system.Version),
		AuthorityName: system.AuthorityName,
		Title:         persistence.Translations(system.Title),
		Description:   persistence.Translations(system.Description),
	}

	result := db.impl.Create(&row)
	if result.Error != nil {
		return nil, result.Error
	}

	created := systemToDomain(&row)

	return &created, nil
}

func (db *catalogDB) UpdateClassificationSystem(systemID uint, patch domain.SystemPatch) error {
	values := map[string]any{}

	if patch.AuthorityName != nil {
		values["authority_name"] = *patch.AuthorityName
	}
	if patch.Title != nil {
		values["title"] = persistence.Translations(patch.Title)
	}
	if patch.Description != nil {
		values["description"] = persistence.Translations(patch.Description)
	}
	if patch.VersionPredecessor != nil {
		values["version_predecessor_id"] = *patch.VersionPredecessor
	}
	if patch.VersionSuccessor != nil {
		values["version_successor_id"] = *patch.VersionSuccessor
	}

	if len(values) == 0 {
		return nil
	}

	return db.impl.Model(&persistence.ClassificationSystem{}).Where("id = ?", systemID).Updates(values).Error
}

func (db *catalogDB) DeleteClassificationSystem(systemID uint) error {
	return db.impl.Delete(&persistence.ClassificationSystem{}, systemID).Error
}

func systemToDomain(row *persistence.ClassificationSystem) domain.ClassificationSystem {
	return domain.ClassificationSystem{
		ID:                 row.ID,
		Identifier:         row.Identifier,
		Name:               row.Name,
		Version:            row.Version,
		AuthorityName:      row.AuthorityName,
		Title:              domain.Translations(row.Title),
		Description:        domain.Translations(row.Description),
		VersionPredecessor: row.VersionPredecessorID,
		VersionSuccessor:   row.VersionSuccessorID,
	}
}
