package dataset

import (
	"bufio"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// WriteSummaryPDF renders a minimal PDF from the markdown run summary,
// preserving paragraphs and heading weight. Layout is intentionally simple.
func WriteSummaryPDF(markdown string, outPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.AddPage()

	scanner := bufio.NewScanner(strings.NewReader(markdown))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		s := strings.TrimSpace(scanner.Text())
		if s == "" {
			pdf.Ln(5)
			continue
		}
		if strings.HasPrefix(s, "#") {
			i := 0
			for i < len(s) && s[i] == '#' {
				i++
			}
			text := strings.TrimSpace(s[i:])
			if text == "" {
				continue
			}
			size := 14.0
			if i >= 2 {
				size = 12.0
			}
			pdf.SetFont("Helvetica", "B", size)
			pdf.CellFormat(0, 8, text, "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 11)
			continue
		}
		// Strip bold markers; the summary uses them for labels only.
		s = strings.ReplaceAll(s, "**", "")
		pdf.MultiCell(0, 5, s, "", "L", false)
	}
	return pdf.OutputFileAndClose(outPath)
}
