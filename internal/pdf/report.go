package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"

	"gamyam/internal/models"
	"gamyam/internal/pipeline"
)

// Generator is the PDF side of reporting, kept as an interface so report
// tests can stub it out.
type Generator interface {
	GeneratePipelineReport(data ReportData) (string, error)
}

type ReportData struct {
	GeneratedAt time.Time
	Pipeline    pipeline.Summary
	LeadCounts  map[models.LeadStatus]int
	Filename    string // without path; generated when empty
}

// ReportGenerator renders pipeline reports under RootDir.
type ReportGenerator struct {
	RootDir string
}

func NewReportGenerator(rootDir string) *ReportGenerator {
	return &ReportGenerator{RootDir: filepath.Clean(rootDir)}
}

func (g *ReportGenerator) GeneratePipelineReport(data ReportData) (string, error) {
	filename := data.Filename
	if filename == "" {
		filename = fmt.Sprintf("pipeline_report_%s.pdf", data.GeneratedAt.Format("2006-01-02"))
	}
	absPath, err := g.ensureTarget(filename)
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Pipeline Report", false)
	pdf.SetAuthor("Gamyam CRM", false)
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "PIPELINE REPORT", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	sub := fmt.Sprintf("Generated %s", data.GeneratedAt.Format("02.01.2006 15:04"))
	pdf.CellFormat(0, 7, sub, "", 1, "C", false, 0, "")
	g.hr(pdf)
	pdf.Ln(3)

	g.sectionTitle(pdf, "Totals")
	g.kvLine(pdf, "Deals", fmt.Sprintf("%d", data.Pipeline.TotalDealCount))
	g.kvLine(pdf, "Total value", fmt.Sprintf("%.2f", data.Pipeline.TotalValue))
	g.kvLine(pdf, "Weighted value", fmt.Sprintf("%.2f", data.Pipeline.WeightedValue))
	pdf.Ln(2)
	g.hr(pdf)

	g.sectionTitle(pdf, "Deals by stage")
	for _, stage := range models.Stages() {
		if n, ok := data.Pipeline.StageCounts[stage]; ok {
			g.kvLine(pdf, string(stage), fmt.Sprintf("%d", n))
		}
	}
	pdf.Ln(2)
	g.hr(pdf)

	if len(data.LeadCounts) > 0 {
		g.sectionTitle(pdf, "Leads by status")
		for status, n := range data.LeadCounts {
			g.kvLine(pdf, string(status), fmt.Sprintf("%d", n))
		}
		pdf.Ln(2)
		g.hr(pdf)
	}

	if err := pdf.OutputFileAndClose(absPath); err != nil {
		return "", fmt.Errorf("write report pdf: %w", err)
	}
	return absPath, nil
}

func (g *ReportGenerator) ensureTarget(filename string) (string, error) {
	if err := os.MkdirAll(g.RootDir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}
	return filepath.Join(g.RootDir, filepath.Base(filename)), nil
}

func (g *ReportGenerator) sectionTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
}

func (g *ReportGenerator) kvLine(pdf *gofpdf.Fpdf, key, value string) {
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(60, 6, key, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 6, value, "", 1, "L", false, 0, "")
}

func (g *ReportGenerator) hr(pdf *gofpdf.Fpdf) {
	x, y := pdf.GetXY()
	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	pdf.SetDrawColor(180, 180, 180)
	pdf.Line(left, y, pageW-right, y)
	pdf.SetXY(x, y+2)
}
