package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/molecule-insight/insight-server/internal/config"
	"github.com/molecule-insight/insight-server/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPubChemAdapter(t *testing.T, serverURL string) PubChemAdapter {
	t.Helper()

	p, err := NewPubChemAdapter(config.Adapter{PubChemBaseURL: serverURL}, logger.Nop())
	require.NoError(t, err)
	return p
}

func TestGetProperties_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		switch {
		case strings.HasPrefix(r.URL.Path, "/compound/name/aspirin/cids"):
			_, _ = w.Write([]byte(`{"IdentifierList":{"CID":[2244,123]}}`))
		case strings.HasPrefix(r.URL.Path, "/compound/cid/2244/property/"):
			_, _ = w.Write([]byte(`{"PropertyTable":{"Properties":[{
				"CID": 2244,
				"MolecularFormula": "C9H8O4",
				"MolecularWeight": "180.16",
				"CanonicalSMILES": "CC(=O)OC1=CC=CC=C1C(=O)O",
				"IUPACName": "2-acetyloxybenzoic acid"
			}]}}`))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	p := newTestPubChemAdapter(t, srv.URL)
	got, err := p.GetProperties(context.Background(), "aspirin")

	require.NoError(t, err)
	assert.Equal(t, int64(2244), got.CID)
	assert.Equal(t, "C9H8O4", got.MolecularFormula)
	assert.Equal(t, "180.16", got.MolecularWeight)
	assert.Equal(t, "2-acetyloxybenzoic acid", got.IUPACName)
}

func TestGetProperties_UnknownMolecule(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"Fault":{"Code":"PUGREST.NotFound"}}`))
	}))
	defer srv.Close()

	p := newTestPubChemAdapter(t, srv.URL)
	_, err := p.GetProperties(context.Background(), "unobtainium")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMoleculeNotFound)
}

func TestGetProperties_EmptyCIDList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"IdentifierList":{"CID":[]}}`))
	}))
	defer srv.Close()

	p := newTestPubChemAdapter(t, srv.URL)
	_, err := p.GetProperties(context.Background(), "aspirin")

	assert.ErrorIs(t, err, ErrMoleculeNotFound)
}

func TestGetProperties_EscapesName(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	p := newTestPubChemAdapter(t, srv.URL)
	_, _ = p.GetProperties(context.Background(), "acetylsalicylic acid")

	assert.Contains(t, gotPath, "acetylsalicylic%20acid")
}

func TestNewPubChemAdapter_InvalidURL(t *testing.T) {
	_, err := NewPubChemAdapter(config.Adapter{PubChemBaseURL: ""}, logger.Nop())
	require.Error(t, err)
}
