package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"

	"github.com/diwise/api-landcover/internal/pkg/domain"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("api-landcover/api")

const (
	LanguageEN   string = "en"
	LanguagePTBR string = "pt-br"
)

var namePattern = regexp.MustCompile(`^[A-Za-z0-9-]{1,32}$`)

// ErrUnsupportedLanguage is returned by requestLanguage for language values
// the catalog has no translations for.
var ErrUnsupportedLanguage error = fmt.Errorf("unsupported language")

type errorResponse struct {
	Code        int    `json:"code"`
	Description string `json:"description"`
}

// writeError maps a failure from the application layer onto a status code
// and the uniform {code, description} error body.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	description := "internal server error"

	if errors.Is(err, domain.ErrNotFound) {
		status = http.StatusNotFound
		description = err.Error()
	} else if errors.Is(err, domain.ErrConflict) {
		status = http.StatusConflict
		description = err.Error()
	} else if errors.Is(err, domain.ErrBadRequest) {
		status = http.StatusBadRequest
		description = err.Error()
	} else if errors.Is(err, ErrUnsupportedLanguage) {
		status = http.StatusForbidden
		description = err.Error()
	}

	writeJSON(w, status, errorResponse{Code: status, Description: description})
}

func writeBadRequest(w http.ResponseWriter, description string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{
		Code:        http.StatusBadRequest,
		Description: description,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	bytes, err := json.MarshalIndent(body, "", "  ")
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(bytes)
}

// requestLanguage resolves the optional language query parameter. An empty
// parameter keeps the full translation maps in the response.
func requestLanguage(r *http.Request) (string, error) {
	language := r.URL.Query().Get("language")
	if language == "" || language == LanguageEN || language == LanguagePTBR {
		return language, nil
	}

	return "", fmt.Errorf("%w %s", ErrUnsupportedLanguage, language)
}

// localized collapses a translation map to a single string when a language
// has been requested, keeping the whole map otherwise.
func localized(t domain.Translations, language string) any {
	if language == "" {
		return t
	}

	return t.Translated(language)
}

func validName(name string) bool {
	return namePattern.MatchString(name)
}

// requireTranslations checks that the required languages are present in a
// localized field of an incoming payload.
func requireTranslations(t domain.Translations, field string) error {
	for _, language := range []string{LanguageEN, LanguagePTBR} {
		if _, ok := t[language]; !ok {
			return fmt.Errorf("%w: %s is missing a %s translation", domain.ErrBadRequest, field, language)
		}
	}

	return nil
}

func newLink(href, rel, title string) domain.Link {
	return domain.Link{
		Href:  href,
		Rel:   rel,
		Type:  "application/json",
		Title: title,
	}
}

func selfLink(href string) domain.Link {
	return newLink(href, "self", "Link to this document")
}

func rootLink(baseURL string) domain.Link {
	return newLink(baseURL+"/", "root", "API landing page")
}
