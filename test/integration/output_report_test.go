package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cdimurro/bamboo-forecast-app/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputGeneration(t *testing.T) {
	_, res := run(t, "../testdata/example_scenario.yaml")
	dir := t.TempDir()

	for _, format := range []string{"table", "summary", "csv", "json", "html", "pdf"} {
		t.Run(format, func(t *testing.T) {
			paths, err := output.GenerateReport(res, format, dir)
			require.NoError(t, err)
			require.Len(t, paths, 1)
			assert.Equal(t, "."+output.Extension(format), filepath.Ext(paths[0]))

			info, err := os.Stat(paths[0])
			require.NoError(t, err)
			assert.Positive(t, info.Size())
		})
	}
}
