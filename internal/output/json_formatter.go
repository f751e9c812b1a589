package output

import (
	"encoding/json"

	"github.com/cdimurro/bamboo-forecast-app/internal/domain"
)

// JSONFormatter serializes the full projection result as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}
