package persistence

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Translations stores a localized text as a json column.
type Translations map[string]string

func (t Translations) Value() (driver.Value, error) {
	if t == nil {
		return nil, nil
	}

	return json.Marshal(t)
}

func (t *Translations) Scan(value any) error {
	if value == nil {
		*t = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, t)
	case string:
		return json.Unmarshal([]byte(v), t)
	}

	return fmt.Errorf("unsupported column type %T for translations", value)
}

// ClassificationSystem ...
type ClassificationSystem struct {
	ID                   uint         `gorm:"primaryKey"`
	Name                 string       `gorm:"not null;uniqueIndex:idx_system_name_version"`
	Version              string       `gorm:"not null;uniqueIndex:idx_system_name_version"`
	Identifier           string       `gorm:"not null;uniqueIndex"`
	AuthorityName        string       `gorm:"not null"`
	Title                Translations `gorm:"type:text;not null"`
	Description          Translations `gorm:"type:text;not null"`
	VersionPredecessorID *uint
	VersionSuccessorID   *uint
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// Class ...
type Class struct {
	ID                     uint         `gorm:"primaryKey"`
	Name                   string       `gorm:"not null;uniqueIndex:idx_class_system_name"`
	Code                   string       `gorm:"not null"`
	Title                  Translations `gorm:"type:text;not null"`
	Description            Translations `gorm:"type:text;not null"`
	ClassificationSystemID uint         `gorm:"not null;uniqueIndex:idx_class_system_name;index"`
	ClassParentID          *uint        `gorm:"index"`
	CreatedAt              time.Time
	UpdatedAt              time.Time

	ClassificationSystem ClassificationSystem `gorm:"constraint:OnDelete:CASCADE"`
}

// ClassMapping rows are not owned by either classification system and are
// removed explicitly, never by cascade.
type ClassMapping struct {
	SourceClassID      uint    `gorm:"primaryKey;autoIncrement:false"`
	TargetClassID      uint    `gorm:"primaryKey;autoIncrement:false"`
	Description        string  `gorm:"not null"`
	DegreeOfSimilarity float64 `gorm:"not null"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// StyleFormat ...
type StyleFormat struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"not null;uniqueIndex"`
}

// Style holds the symbology file bytes in the row itself.
type Style struct {
	ID                     uint   `gorm:"primaryKey"`
	ClassificationSystemID uint   `gorm:"not null;uniqueIndex:idx_style_system_format"`
	StyleFormatID          uint   `gorm:"not null;uniqueIndex:idx_style_system_format"`
	MimeType               string `gorm:"not null"`
	Content                []byte `gorm:"not null"`
	CreatedAt              time.Time
	UpdatedAt              time.Time

	StyleFormat StyleFormat `gorm:"constraint:OnDelete:CASCADE"`
}
