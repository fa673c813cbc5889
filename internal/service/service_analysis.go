package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/molecule-insight/insight-server/internal/adapter"
	"github.com/molecule-insight/insight-server/internal/logger"
	"github.com/molecule-insight/insight-server/models"
)

type analysisService struct {
	agent   adapter.AgentAdapter
	pubchem adapter.PubChemAdapter

	logger *logger.Logger
}

// NewAnalysisService constructs an AnalysisService over the agent backend and
// PubChem adapters.
func NewAnalysisService(agent adapter.AgentAdapter, pubchem adapter.PubChemAdapter, logger *logger.Logger) AnalysisService {
	return &analysisService{
		agent:   agent,
		pubchem: pubchem,
		logger:  logger,
	}
}

// Analyze implements [AnalysisService].
func (s *analysisService) Analyze(ctx context.Context, req models.AnalysisRequest) (models.AgentResponse, error) {
	log := logger.FromContext(ctx)

	req.Query = strings.TrimSpace(req.Query)
	req.Molecule = strings.TrimSpace(req.Molecule)
	if req.Query == "" && req.Molecule == "" {
		return models.AgentResponse{}, ErrInvalidDataProvided
	}

	response, err := s.agent.Analyze(ctx, req)
	if err != nil {
		log.Err(err).Str("molecule", req.Molecule).Msg("agent analysis failed")
		return models.AgentResponse{}, err
	}

	return response, nil
}

// LookupMolecule implements [AnalysisService].
func (s *analysisService) LookupMolecule(ctx context.Context, name string) (models.MoleculeProperties, error) {
	log := logger.FromContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" {
		return models.MoleculeProperties{}, ErrInvalidDataProvided
	}

	properties, err := s.pubchem.GetProperties(ctx, name)
	if err != nil {
		log.Err(err).Str("molecule", name).Msg("pubchem lookup failed")
		return models.MoleculeProperties{}, fmt.Errorf("pubchem lookup failed: %w", err)
	}

	return properties, nil
}

// AgentURL implements [AnalysisService].
func (s *analysisService) AgentURL() string {
	return s.agent.BaseURL()
}

// AgentHealthy implements [AnalysisService].
func (s *analysisService) AgentHealthy(ctx context.Context) bool {
	return s.agent.Health(ctx) == nil
}
