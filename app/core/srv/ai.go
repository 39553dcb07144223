package srv

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/moodnote-ai/moodnote/pkg/ai/openai"
)

type AIConfig struct {
	Token    string `toml:"token"`
	Endpoint string `toml:"endpoint"`
	Model    string `toml:"model"`
}

func (c *AIConfig) FromENV() {
	c.Token = os.Getenv("MOODNOTE_AI_TOKEN")
	c.Endpoint = os.Getenv("MOODNOTE_AI_ENDPOINT")
	c.Model = os.Getenv("MOODNOTE_AI_MODEL")
}

// ApplyAI wires the openai driver when a token is configured. Without a token
// the service runs in local-only mode. client bounds every request, nil
// falls back to the default client.
func ApplyAI(cfg AIConfig, client *http.Client) ApplyFunc {
	return func(s *Srv) {
		if cfg.Token == "" {
			slog.Info("ai provider not configured, running local analysis only")
			return
		}
		s.ai = openai.New(cfg.Token, cfg.Endpoint, cfg.Model, client)
	}
}
