package adapter

import (
	"github.com/molecule-insight/insight-server/internal/config"
	"github.com/molecule-insight/insight-server/internal/logger"
)

// Adapters aggregates every outbound client the service layer depends on.
type Adapters struct {
	Agent   AgentAdapter
	Google  GoogleOAuthAdapter
	PubChem PubChemAdapter
}

// NewAdapters constructs all outbound clients from the configuration.
func NewAdapters(adapterCfg config.Adapter, oauthCfg config.OAuth, logger *logger.Logger) (*Adapters, error) {
	agent, err := NewAgentAdapter(adapterCfg, logger)
	if err != nil {
		return nil, err
	}

	pubchem, err := NewPubChemAdapter(adapterCfg, logger)
	if err != nil {
		return nil, err
	}

	return &Adapters{
		Agent:   agent,
		Google:  NewGoogleOAuth(oauthCfg, logger),
		PubChem: pubchem,
	}, nil
}
