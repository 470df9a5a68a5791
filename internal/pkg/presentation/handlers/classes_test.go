package handlers

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/diwise/api-landcover/internal/pkg/application/services/classes"
	"github.com/diwise/api-landcover/internal/pkg/domain"
	"github.com/go-chi/chi/v5"
	"github.com/matryer/is"
	"github.com/rs/zerolog"
)

func newClassesRouter(svc classes.ClassService) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/classification_systems/{systemId}/classes", NewRetrieveClassesHandler(zerolog.Nop(), svc, "http://lccs.test"))
	r.Get("/classification_systems/{systemId}/classes/{classId}", NewRetrieveClassByIDHandler(zerolog.Nop(), svc, "http://lccs.test"))
	r.Post("/classification_systems/{systemId}/classes", NewCreateClassesHandler(zerolog.Nop(), svc, "http://lccs.test"))
	r.Put("/classification_systems/{systemId}/classes/{classId}", NewUpdateClassHandler(zerolog.Nop(), svc, "http://lccs.test"))
	r.Delete("/classification_systems/{systemId}/classes/{classId}", NewDeleteClassHandler(zerolog.Nop(), svc))
	r.Delete("/classification_systems/{systemId}/classes", NewDeleteClassesHandler(zerolog.Nop(), svc))

	return r
}

func uintPtr(v uint) *uint {
	return &v
}

func TestThatATreeOfClassesCanBePosted(t *testing.T) {
	is := is.New(t)
	svc := &classes.ClassServiceMock{
		InsertTreeFunc: func(ctx context.Context, systemRef domain.Lookup, nodes []domain.ClassNode) ([]domain.Class, error) {
			return []domain.Class{
				{ID: 1, Name: "Forest", ClassificationSystemID: 1,
					Title: domain.Translations{"en": "Forest", "pt-br": "Floresta"}},
				{ID: 2, Name: "Mangrove", ClassificationSystemID: 1, ClassParentID: uintPtr(1),
					Title: domain.Translations{"en": "Mangrove", "pt-br": "Mangue"}},
			}, nil
		},
	}

	ts := httptest.NewServer(newClassesRouter(svc))
	defer ts.Close()

	payload := `{"classes":[{"name":"Forest","title":{"en":"Forest","pt-br":"Floresta"},"description":{"en":"d","pt-br":"d"},"children":[{"name":"Mangrove","title":{"en":"Mangrove","pt-br":"Mangue"},"description":{"en":"d","pt-br":"d"}}]}]}`
	resp, body := testRequest(is, ts, http.MethodPost, "/classification_systems/1/classes", bytes.NewBufferString(payload))

	is.Equal(resp.StatusCode, http.StatusCreated)
	is.True(strings.Contains(body, `"class_parent_id": 1`))

	calls := svc.InsertTreeCalls()
	is.Equal(len(calls), 1)
	is.Equal(len(calls[0].Nodes), 1)
	is.Equal(len(calls[0].Nodes[0].Children), 1)
	is.Equal(calls[0].Nodes[0].Children[0].Name, "Mangrove")
}

func TestThatAnEmptyTreeIsRejected(t *testing.T) {
	is := is.New(t)
	svc := &classes.ClassServiceMock{}

	ts := httptest.NewServer(newClassesRouter(svc))
	defer ts.Close()

	resp, _ := testRequest(is, ts, http.MethodPost, "/classification_systems/1/classes", bytes.NewBufferString(`{"classes":[]}`))

	is.Equal(resp.StatusCode, http.StatusBadRequest)
	is.Equal(len(svc.InsertTreeCalls()), 0)
}

func TestThatABadClassNameDeepInTheTreeIsRejected(t *testing.T) {
	is := is.New(t)
	svc := &classes.ClassServiceMock{}

	ts := httptest.NewServer(newClassesRouter(svc))
	defer ts.Close()

	payload := `{"classes":[{"name":"Forest","title":{"en":"t","pt-br":"t"},"description":{"en":"d","pt-br":"d"},"children":[{"name":"no spaces allowed","title":{"en":"t","pt-br":"t"},"description":{"en":"d","pt-br":"d"}}]}]}`
	resp, _ := testRequest(is, ts, http.MethodPost, "/classification_systems/1/classes", bytes.NewBufferString(payload))

	is.Equal(resp.StatusCode, http.StatusBadRequest)
	is.Equal(len(svc.InsertTreeCalls()), 0)
}

func TestThatClassRetrievalPassesBothLookupsThrough(t *testing.T) {
	is := is.New(t)
	svc := &classes.ClassServiceMock{
		GetFunc: func(ctx context.Context, systemRef, classRef domain.Lookup) (*domain.Class, error) {
			return &domain.Class{ID: 7, Name: "Forest", ClassificationSystemID: 3}, nil
		},
	}

	ts := httptest.NewServer(newClassesRouter(svc))
	defer ts.Close()

	resp, _ := testRequest(is, ts, http.MethodGet, "/classification_systems/PRODES-1.0/classes/Forest", nil)

	is.Equal(resp.StatusCode, http.StatusOK)
	calls := svc.GetCalls()
	is.Equal(len(calls), 1)
	is.Equal(calls[0].SystemRef.Key, "PRODES-1.0")
	is.Equal(calls[0].ClassRef.Key, "Forest")
}

func TestThatDeletingAClassWithChildrenIsAConflict(t *testing.T) {
	is := is.New(t)
	svc := &classes.ClassServiceMock{
		DeleteFunc: func(ctx context.Context, systemRef, classRef domain.Lookup) error {
			return fmt.Errorf("class has children: %w", domain.ErrConflict)
		},
	}

	ts := httptest.NewServer(newClassesRouter(svc))
	defer ts.Close()

	resp, body := testRequest(is, ts, http.MethodDelete, "/classification_systems/1/classes/1", nil)

	is.Equal(resp.StatusCode, http.StatusConflict)
	is.True(strings.Contains(body, `"code": 409`))
}

func TestThatDeleteAllClassesReturns204(t *testing.T) {
	is := is.New(t)
	svc := &classes.ClassServiceMock{
		DeleteAllFunc: func(ctx context.Context, systemRef domain.Lookup) error {
			return nil
		},
	}

	ts := httptest.NewServer(newClassesRouter(svc))
	defer ts.Close()

	resp, _ := testRequest(is, ts, http.MethodDelete, "/classification_systems/1/classes", nil)

	is.Equal(resp.StatusCode, http.StatusNoContent)
	is.Equal(len(svc.DeleteAllCalls()), 1)
}
