package pdf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertMarkdownToPDF(t *testing.T) {
	markdownPath := filepath.Join(t.TempDir(), "report-2025-06-30.md")
	require.NoError(t, os.WriteFile(markdownPath, []byte("# Study journal report\n\nSome text.\n"), 0644))

	pdfPath, err := ConvertMarkdownToPDF(markdownPath)
	require.NoError(t, err)

	assert.Equal(t, ".pdf", filepath.Ext(pdfPath))
	info, err := os.Stat(pdfPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestConvertMarkdownToPDF_requiresMarkdownExtension(t *testing.T) {
	_, err := ConvertMarkdownToPDF("report.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".md extension")
}
