package pdf

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	"estateoffice/internal/models"
)

// Generator is an interface so handlers can be tested with a fake.
type Generator interface {
	GenerateDealSummary(data models.DealSummary) (string, error)
}

// DocumentGenerator renders one-page deal summaries into RootDir.
type DocumentGenerator struct {
	RootDir string
}

func NewDocumentGenerator(rootDir string) *DocumentGenerator {
	return &DocumentGenerator{RootDir: filepath.Clean(rootDir)}
}

// GenerateDealSummary writes the PDF and returns its absolute path.
func (g *DocumentGenerator) GenerateDealSummary(data models.DealSummary) (string, error) {
	filename := fmt.Sprintf("deal_summary_%d.pdf", data.DealID)
	absPath, err := g.ensureTarget(filename)
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Deal summary #%d", data.DealID), false)
	pdf.SetAuthor("Real Estate Office", false)
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "DEAL SUMMARY", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	sub := fmt.Sprintf("No. %06d  dated  %s", data.DealID, data.DealDate.String())
	pdf.CellFormat(0, 7, sub, "", 1, "C", false, 0, "")
	g.hr(pdf)
	pdf.Ln(3)

	g.sectionTitle(pdf, "Parties")
	g.kvLine(pdf, "Client", data.ClientName)
	g.kvLine(pdf, "Agent", data.EmployeeName)
	pdf.Ln(2)
	g.hr(pdf)

	g.sectionTitle(pdf, "Subject")
	g.kvLine(pdf, "Deal type", data.DealType)
	g.kvLine(pdf, "Property", data.Address)
	g.kvLine(pdf, "Amount", data.Amount)
	if data.Status != "" {
		g.kvLine(pdf, "Status", data.Status)
	}
	pdf.Ln(2)
	g.hr(pdf)

	g.sectionTitle(pdf, "Signatures")
	pdf.Ln(6)
	lineY := pdf.GetY()
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(80, 6, "Agent", "", 0, "L", false, 0, "")
	pdf.CellFormat(30, 6, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(80, 6, "Client", "", 1, "L", false, 0, "")
	pdf.SetLineWidth(0.3)
	pdf.Line(20, lineY+10, 100, lineY+10)
	pdf.Line(130, lineY+10, 190, lineY+10)

	if err := pdf.OutputFileAndClose(absPath); err != nil {
		return "", fmt.Errorf("write deal summary pdf: %w", err)
	}
	return absPath, nil
}

func (g *DocumentGenerator) ensureTarget(filename string) (string, error) {
	if err := os.MkdirAll(g.RootDir, 0o755); err != nil {
		return "", fmt.Errorf("create files root: %w", err)
	}
	return filepath.Join(g.RootDir, filepath.Base(filename)), nil
}

func (g *DocumentGenerator) sectionTitle(pdf *gofpdf.Fpdf, s string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, s, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
}

func (g *DocumentGenerator) kvLine(pdf *gofpdf.Fpdf, key, val string) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(45, 6, key+":", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, val, "", 1, "L", false, 0, "")
}

func (g *DocumentGenerator) hr(pdf *gofpdf.Fpdf) {
	y := pdf.GetY() + 1.5
	pdf.SetLineWidth(0.2)
	pdf.Line(20, y, 190, y)
	pdf.SetY(y + 2)
}
