package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/molecule-insight/insight-server/internal/config"
	"github.com/molecule-insight/insight-server/internal/logger"
	"github.com/molecule-insight/insight-server/models"
)

const pubchemTimeout = 15 * time.Second

type pubchemCIDResponse struct {
	IdentifierList struct {
		CID []int64 `json:"CID"`
	} `json:"IdentifierList"`
}

type pubchemPropertyResponse struct {
	PropertyTable struct {
		Properties []struct {
			CID              int64  `json:"CID"`
			MolecularFormula string `json:"MolecularFormula"`
			MolecularWeight  string `json:"MolecularWeight"`
			CanonicalSMILES  string `json:"CanonicalSMILES"`
			IUPACName        string `json:"IUPACName"`
		} `json:"Properties"`
	} `json:"PropertyTable"`
}

type pubchemAdapter struct {
	client *resty.Client
	logger *logger.Logger
}

// NewPubChemAdapter constructs a [PubChemAdapter] over the PUG REST API at
// adapterCfg.PubChemBaseURL. Lookups are interactive, so the client uses a
// short fixed timeout independent of the agent request timeout.
func NewPubChemAdapter(adapterCfg config.Adapter, logger *logger.Logger) (PubChemAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.PubChemBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid pubchem base url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(pubchemTimeout)

	return &pubchemAdapter{client: client, logger: logger}, nil
}

// GetProperties implements [PubChemAdapter]. It resolves the name to the first
// matching CID via GET /compound/name/{name}/cids/JSON, then fetches the
// compound's properties via GET /compound/cid/{cid}/property/.../JSON.
func (p *pubchemAdapter) GetProperties(ctx context.Context, name string) (models.MoleculeProperties, error) {
	cid, err := p.lookupCID(ctx, name)
	if err != nil {
		return models.MoleculeProperties{}, err
	}

	var props pubchemPropertyResponse

	resp, err := p.client.R().
		SetContext(ctx).
		SetPathParam("cid", fmt.Sprintf("%d", cid)).
		SetResult(&props).
		Get("/compound/cid/{cid}/property/MolecularFormula,MolecularWeight,IUPACName,CanonicalSMILES/JSON")
	if err != nil {
		return models.MoleculeProperties{}, fmt.Errorf("pubchem property request: %w", err)
	}
	if resp.IsError() || len(props.PropertyTable.Properties) == 0 {
		return models.MoleculeProperties{}, fmt.Errorf("%w: no properties for cid %d", ErrMoleculeNotFound, cid)
	}

	first := props.PropertyTable.Properties[0]
	return models.MoleculeProperties{
		CID:              cid,
		MolecularFormula: first.MolecularFormula,
		MolecularWeight:  first.MolecularWeight,
		CanonicalSMILES:  first.CanonicalSMILES,
		IUPACName:        first.IUPACName,
	}, nil
}

func (p *pubchemAdapter) lookupCID(ctx context.Context, name string) (int64, error) {
	var cids pubchemCIDResponse

	resp, err := p.client.R().
		SetContext(ctx).
		SetPathParam("name", name).
		SetResult(&cids).
		Get("/compound/name/{name}/cids/JSON")
	if err != nil {
		return 0, fmt.Errorf("pubchem cid request: %w", err)
	}
	if resp.IsError() || len(cids.IdentifierList.CID) == 0 {
		return 0, fmt.Errorf("%w: %s", ErrMoleculeNotFound, name)
	}

	return cids.IdentifierList.CID[0], nil
}
