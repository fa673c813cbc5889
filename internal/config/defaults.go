package config

import "time"

// defaultConfig returns the built-in fallback values. Secrets (token sign
// key, OAuth credentials, DSN) deliberately have no defaults; validation
// rejects a config that leaves them empty.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Environment: EnvDevelopment,
			Version:     "0.1.0",
		},
		Auth: Auth{
			TokenIssuer:   "insight-server",
			TokenDuration: 7 * 24 * time.Hour,
		},
		OAuth: OAuth{
			RedirectBase: "http://localhost:8080",
		},
		Storage: Storage{
			Files: Files{
				AvatarDir: "uploads/avatars",
				StaticDir: "web/dist",
			},
		},
		Server: Server{
			HTTPAddress: "localhost:8080",
			// must stay above the adapter timeout or long analyses get
			// cut off at the server before the proxy can answer
			RequestTimeout: 6 * time.Minute,
		},
		Adapter: Adapter{
			AgentBaseURL:   "http://localhost:8000",
			PubChemBaseURL: "https://pubchem.ncbi.nlm.nih.gov/rest/pug",
			RequestTimeout: 5 * time.Minute,
			RetryCount:     1,
		},
	}
}
