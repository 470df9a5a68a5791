package domain

// SystemPatch carries the attributes of a classification system that may be
// changed after creation. Nil fields are left untouched; name, version and
// the derived identifier are immutable.
type SystemPatch struct {
	AuthorityName      *string      `json:"authority_name,omitempty"`
	Title              Translations `json:"title,omitempty"`
	Description        Translations `json:"description,omitempty"`
	VersionPredecessor *uint        `json:"version_predecessor,omitempty"`
	VersionSuccessor   *uint        `json:"version_successor,omitempty"`
}

// ClassPatch carries the updatable attributes of a class. Nil fields are
// left untouched.
type ClassPatch struct {
	Code          *string      `json:"code,omitempty"`
	Title         Translations `json:"title,omitempty"`
	Description   Translations `json:"description,omitempty"`
	ClassParentID *uint        `json:"class_parent_id,omitempty"`
}
