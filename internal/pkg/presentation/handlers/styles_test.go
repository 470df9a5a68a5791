package handlers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/diwise/api-landcover/internal/pkg/application/services/styles"
	"github.com/diwise/api-landcover/internal/pkg/domain"
	"github.com/go-chi/chi/v5"
	"github.com/matryer/is"
	"github.com/rs/zerolog"
)

func newStylesRouter(svc styles.StyleService) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/classification_systems/{systemId}/styles/{formatId}", NewRetrieveStyleHandler(zerolog.Nop(), svc))
	r.Post("/classification_systems/{systemId}/styles/{formatId}", NewUploadStyleHandler(zerolog.Nop(), svc))
	r.Put("/classification_systems/{systemId}/styles/{formatId}", NewReplaceStyleHandler(zerolog.Nop(), svc))
	r.Delete("/classification_systems/{systemId}/styles/{formatId}", NewDeleteStyleHandler(zerolog.Nop(), svc))

	return r
}

func multipartStyle(is *is.I, fileName string, content []byte) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("style", fileName)
	is.NoErr(err)
	_, err = part.Write(content)
	is.NoErr(err)
	is.NoErr(writer.Close())

	return body, writer.FormDataContentType()
}

func TestThatAStyleUploadIsPassedToTheService(t *testing.T) {
	is := is.New(t)
	svc := &styles.StyleServiceMock{
		UploadStyleFunc: func(ctx context.Context, systemRef, formatRef domain.Lookup, fileName string, content []byte) error {
			return nil
		},
	}

	ts := httptest.NewServer(newStylesRouter(svc))
	defer ts.Close()

	body, contentType := multipartStyle(is, "prodes.sld", []byte(`{"layers":[]}`))

	req, _ := http.NewRequest(http.MethodPost, ts.URL+"/classification_systems/PRODES-1.0/styles/SLD", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := http.DefaultClient.Do(req)
	is.NoErr(err)
	resp.Body.Close()

	is.Equal(resp.StatusCode, http.StatusCreated)

	calls := svc.UploadStyleCalls()
	is.Equal(len(calls), 1)
	is.Equal(calls[0].SystemRef.Key, "PRODES-1.0")
	is.Equal(calls[0].FormatRef.Key, "SLD")
	is.Equal(calls[0].FileName, "prodes.sld")
	is.Equal(string(calls[0].Content), `{"layers":[]}`)
}

func TestThatANonMultipartUploadIsRejected(t *testing.T) {
	is := is.New(t)
	svc := &styles.StyleServiceMock{}

	ts := httptest.NewServer(newStylesRouter(svc))
	defer ts.Close()

	resp, _ := testRequest(is, ts, http.MethodPost, "/classification_systems/1/styles/1", bytes.NewBufferString("not a form"))

	is.Equal(resp.StatusCode, http.StatusBadRequest)
	is.Equal(len(svc.UploadStyleCalls()), 0)
}

func TestThatADownloadIsServedAsAnAttachment(t *testing.T) {
	is := is.New(t)
	svc := &styles.StyleServiceMock{
		GetStyleFunc: func(ctx context.Context, systemRef, formatRef domain.Lookup) (*styles.StyleDownload, error) {
			return &styles.StyleDownload{
				FileName: "PRODES-1.0_SLD.sld",
				MimeType: "application/xml",
				Content:  []byte("<StyledLayerDescriptor/>"),
			}, nil
		},
	}

	ts := httptest.NewServer(newStylesRouter(svc))
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/classification_systems/1/styles/1")
	is.NoErr(err)
	defer resp.Body.Close()

	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(resp.Header.Get("Content-Type"), "application/xml")
	is.Equal(resp.Header.Get("Content-Disposition"), `attachment; filename="PRODES-1.0_SLD.sld"`)

	content, _ := io.ReadAll(resp.Body)
	is.Equal(string(content), "<StyledLayerDescriptor/>")
}

func TestThatDownloadingAMissingStyleIs404(t *testing.T) {
	is := is.New(t)
	svc := &styles.StyleServiceMock{
		GetStyleFunc: func(ctx context.Context, systemRef, formatRef domain.Lookup) (*styles.StyleDownload, error) {
			return nil, fmt.Errorf("no style stored: %w", domain.ErrNotFound)
		},
	}

	ts := httptest.NewServer(newStylesRouter(svc))
	defer ts.Close()

	resp, _ := testRequest(is, ts, http.MethodGet, "/classification_systems/1/styles/1", nil)

	is.Equal(resp.StatusCode, http.StatusNotFound)
}

func TestThatReplacingAStyleReturns204(t *testing.T) {
	is := is.New(t)
	svc := &styles.StyleServiceMock{
		ReplaceStyleFunc: func(ctx context.Context, systemRef, formatRef domain.Lookup, fileName string, content []byte) error {
			return nil
		},
	}

	ts := httptest.NewServer(newStylesRouter(svc))
	defer ts.Close()

	body, contentType := multipartStyle(is, "prodes-v2.sld", []byte("<StyledLayerDescriptor/>"))

	req, _ := http.NewRequest(http.MethodPut, ts.URL+"/classification_systems/1/styles/1", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := http.DefaultClient.Do(req)
	is.NoErr(err)
	resp.Body.Close()

	is.Equal(resp.StatusCode, http.StatusNoContent)
	is.Equal(svc.ReplaceStyleCalls()[0].FileName, "prodes-v2.sld")
}

func TestThatDeletingAStyleReturns204(t *testing.T) {
	is := is.New(t)
	svc := &styles.StyleServiceMock{
		DeleteStyleFunc: func(ctx context.Context, systemRef, formatRef domain.Lookup) error {
			return nil
		},
	}

	ts := httptest.NewServer(newStylesRouter(svc))
	defer ts.Close()

	resp, _ := testRequest(is, ts, http.MethodDelete, "/classification_systems/1/styles/1", nil)

	is.Equal(resp.StatusCode, http.StatusNoContent)
	is.Equal(len(svc.DeleteStyleCalls()), 1)
}
