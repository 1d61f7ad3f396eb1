package cmd

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"scholar-portal/pkg/logger"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestPendingCommand(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/getAllPublications", r.URL.Path)
		assert.Equal(t, "c1", r.URL.Query().Get("coordinatorid"))
		io.WriteString(w, `[{"publication_id": 5, "status": "Pending", "citeAs": "Doe 2024"}]`)
	}))
	defer ts.Close()
	t.Setenv("PUBLICATION_API_URL", ts.URL)

	out, err := runCommand(t, "pending", "--coordinator", "c1")
	require.NoError(t, err)
	assert.Contains(t, out, "CITE AS")
	assert.Contains(t, out, "Doe 2024")
}

func TestPatentsCommand(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/getPatents/f1", r.URL.Path)
		io.WriteString(w, `[{"patent_id": 1, "status": "Filed", "numOfInventors": 3, "inventionTitle": "Gizmo", "proofOfPatent": "data:application/pdf;base64,AA"}]`)
	}))
	defer ts.Close()
	t.Setenv("PATENT_API_URL", ts.URL)

	out, err := runCommand(t, "patents", "--faculty", "f1")
	require.NoError(t, err)
	assert.Contains(t, out, "Gizmo")
	assert.Contains(t, out, "pdf")
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "scholar-portal dev")
}

func TestLogLevelFlag(t *testing.T) {
	t.Cleanup(func() {
		rootCmd.PersistentFlags().Set("loglevel", "info")
		logger.SetLevel("info")
	})

	_, err := runCommand(t, "--loglevel", "debug", "version")
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, logger.Log.GetLevel())

	_, err = runCommand(t, "--loglevel", "loud", "version")
	assert.Error(t, err)
}
