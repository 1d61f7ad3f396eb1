package handlers

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"scholar-portal/pkg/models"
	"scholar-portal/pkg/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPatentsRenderCards(t *testing.T) {
	app := newTestApp(t)
	app.login("", "f1")
	app.backend.EXPECT().ListPatents(gomock.Any(), "f1").Return([]models.Patent{
		{ID: "p1", NumOfInventors: 2, Attributes: map[string]string{
			"inventionTitle": "Solar Gadget",
			"numOfInventors": "2",
			"proofOfPatent":  "data:image/png;base64,iVBORw0KGgo=",
		}},
		{ID: "p2", Attributes: map[string]string{
			"inventionTitle": "PDF Thing",
			"proofOfPatent":  "data:application/pdf;base64,JVBERi0x",
		}},
		{ID: "p3", Attributes: map[string]string{
			"department":    "Physics",
			"proofOfPatent": "https://drive.example/proof",
		}},
	}, nil)

	w := app.do(http.MethodGet, "/patents", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()

	assert.Equal(t, 3, strings.Count(body, `class="patent-card"`))
	assert.Contains(t, body, "Your Patents")
	assert.Contains(t, body, "Number of Inventors:</strong> 2")
	assert.Contains(t, body, `<img src="data:image/png;base64,iVBORw0KGgo="`)
	assert.Contains(t, body, `<iframe src="data:application/pdf;base64,JVBERi0x"`)
	assert.Contains(t, body, `<a href="https://drive.example/proof" target="_blank" rel="noopener noreferrer">View Proof</a>`)
	assert.Equal(t, 1, strings.Count(body, "<img "))
	assert.Equal(t, 1, strings.Count(body, "<iframe "))
}

func TestPatentsHideEmptyFields(t *testing.T) {
	app := newTestApp(t)
	app.login("", "f1")
	app.backend.EXPECT().ListPatents(gomock.Any(), "f1").Return([]models.Patent{
		{ID: "p1", Attributes: map[string]string{"inventionTitle": "Only Title"}},
	}, nil)

	body := app.do(http.MethodGet, "/patents", nil).Body.String()
	assert.Contains(t, body, "Invention Title:</strong> Only Title")
	assert.NotContains(t, body, "Number of Inventors")
	assert.NotContains(t, body, "Proof of Patent")
	assert.NotContains(t, body, "Department")
}

func TestPatentsEmpty(t *testing.T) {
	app := newTestApp(t)
	app.login("", "f1")
	app.backend.EXPECT().ListPatents(gomock.Any(), "f1").Return(nil, nil)

	body := app.do(http.MethodGet, "/patents", nil).Body.String()
	assert.Contains(t, body, "No Patents available. Please check again later.")
}

func TestPatentsFetchFailure(t *testing.T) {
	app := newTestApp(t)
	app.login("", "f1")
	app.backend.EXPECT().ListPatents(gomock.Any(), "f1").Return(nil, errors.New("timeout"))

	w := app.do(http.MethodGet, "/patents", nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, services.PatentFetchError)
	assert.NotContains(t, body, "patent-grid")
	assert.NotContains(t, body, "timeout")
}

func TestPatentsWithoutFacultyID(t *testing.T) {
	app := newTestApp(t)
	app.login("c1", "")

	// No ListPatents expectation: the patent service is never asked.
	w := app.do(http.MethodGet, "/patents", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), services.PatentFetchError)
	assert.NotContains(t, w.Body.String(), "patent-grid")
}
