package pdf

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estateoffice/internal/models"
)

func TestGenerateDealSummary(t *testing.T) {
	dir := t.TempDir()
	gen := NewDocumentGenerator(dir)

	path, err := gen.GenerateDealSummary(models.DealSummary{
		DealID:       42,
		DealType:     "sale",
		DealDate:     models.NewDate(2026, time.March, 14),
		Amount:       "250000.00",
		Status:       "active",
		ClientName:   "Ivan Petrov",
		Address:      "Main St 1",
		EmployeeName: "Agent One",
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "deal_summary_42.pdf"), path)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotEmpty(t, b)
	assert.Equal(t, "%PDF", string(b[:4]))
}

func TestGenerateDealSummaryCreatesRootDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "files")
	gen := NewDocumentGenerator(dir)

	path, err := gen.GenerateDealSummary(models.DealSummary{
		DealID:       1,
		DealType:     "rent",
		DealDate:     models.NewDate(2026, time.January, 5),
		Amount:       "1200.00",
		ClientName:   "Anna K",
		Address:      "Oak Ave 7",
		EmployeeName: "Agent Two",
	})
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}
