package models

import "encoding/json"

// AnalysisRequest is the payload forwarded to the agent backend's analyze
// endpoint. At least one of Query or Molecule must be non-empty; Geography
// defaults to "Global" when unset.
type AnalysisRequest struct {
	Query     string `json:"query"`
	Molecule  string `json:"molecule"`
	Geography string `json:"geography"`
}

// AnalysisResult is one category entry inside the agent backend's results map
// (market, clinical trials, patents, trade, web intelligence, internal
// knowledge, innovation opportunities).
type AnalysisResult struct {
	Success bool   `json:"success"`
	Report  string `json:"report,omitempty"`
	Error   string `json:"error,omitempty"`
}

// AgentResponse is the decoded success body of the agent backend. The results
// map is keyed by analysis category; Updates carries the incremental progress
// records the backend accumulated while the agents ran, passed through
// verbatim.
type AgentResponse struct {
	Molecule string                    `json:"molecule"`
	Results  map[string]AnalysisResult `json:"results"`
	Updates  []json.RawMessage         `json:"updates"`
}

// AgentError is the error body shape FastAPI services produce on non-success
// statuses. Detail, when present, is surfaced to the client.
type AgentError struct {
	Detail string `json:"detail"`
}

// MoleculeProperties is the subset of PubChem compound properties exposed by
// the molecule lookup endpoint.
type MoleculeProperties struct {
	CID              int64  `json:"cid"`
	MolecularFormula string `json:"molecularFormula"`
	MolecularWeight  string `json:"molecularWeight"`
	CanonicalSMILES  string `json:"canonicalSmiles,omitempty"`
	IUPACName        string `json:"iupacName,omitempty"`
}
