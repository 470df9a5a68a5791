package domain

// Translations holds one text in the languages the service supports.
// Keys are language tags ("en", "pt-br").
type Translations map[string]string

// Translated returns the text in the requested language, falling back to
// english and then to any language that happens to be present.
func (t Translations) Translated(language string) string {
	if value, ok := t[language]; ok {
		return value
	}

	if value, ok := t["en"]; ok {
		return value
	}

	for _, value := range t {
		return value
	}

	return ""
}

// ClassificationSystem is a named, versioned land cover taxonomy.
type ClassificationSystem struct {
	ID                 uint         `json:"id"`
	Identifier         string       `json:"identifier"`
	Name               string       `json:"name"`
	Version            string       `json:"version"`
	AuthorityName      string       `json:"authority_name"`
	Title              Translations `json:"title"`
	Description        Translations `json:"description"`
	VersionPredecessor *uint        `json:"version_predecessor,omitempty"`
	VersionSuccessor   *uint        `json:"version_successor,omitempty"`
}

// Class is one category within a classification system, optionally nested
// under a parent class from the same system.
type Class struct {
	ID                     uint         `json:"id"`
	Name                   string       `json:"name"`
	Code                   string       `json:"code"`
	Title                  Translations `json:"title"`
	Description            Translations `json:"description"`
	ClassificationSystemID uint         `json:"classification_system_id"`
	ClassParentID          *uint        `json:"class_parent_id,omitempty"`
}

// ClassNode is the shape of one node in a bulk class insertion request.
// Children are inserted with their parent's generated id threaded through.
type ClassNode struct {
	Name        string       `json:"name"`
	Code        string       `json:"code"`
	Title       Translations `json:"title"`
	Description Translations `json:"description"`
	Children    []ClassNode  `json:"children,omitempty"`
}

// ClassMapping is a directed, weighted crosswalk edge between two classes.
type ClassMapping struct {
	SourceClassID      uint    `json:"source_class_id"`
	TargetClassID      uint    `json:"target_class_id"`
	Description        string  `json:"description"`
	DegreeOfSimilarity float64 `json:"degree_of_similarity"`
}

// MappingEntry names the endpoints of one crosswalk edge by class id or name.
type MappingEntry struct {
	SourceClass        string  `json:"source_class"`
	TargetClass        string  `json:"target_class"`
	Description        string  `json:"description"`
	DegreeOfSimilarity float64 `json:"degree_of_similarity"`
}

// MappingUpdateEntry overwrites the description and similarity of an existing
// crosswalk edge. Nil fields are left untouched.
type MappingUpdateEntry struct {
	SourceClass        string   `json:"source_class"`
	TargetClass        string   `json:"target_class"`
	Description        *string  `json:"description,omitempty"`
	DegreeOfSimilarity *float64 `json:"degree_of_similarity,omitempty"`
}

// StyleFormat is a named rendering format tag, such as QML or SLD.
type StyleFormat struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// Style is a cartographic symbology artifact for one classification system
// in one style format.
type Style struct {
	ID                     uint   `json:"id"`
	ClassificationSystemID uint   `json:"classification_system_id"`
	StyleFormatID          uint   `json:"style_format_id"`
	MimeType               string `json:"mime_type"`
	Content                []byte `json:"-"`
}

// Link is one hypermedia reference in a response body.
type Link struct {
	Href  string `json:"href"`
	Rel   string `json:"rel"`
	Type  string `json:"type"`
	Title string `json:"title"`
}
