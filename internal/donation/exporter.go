package donation

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/ruangpeduli/donation-backend/internal/domain"
)

// Exporter renders an admin donation report in the requested format.
// Returns content, filename and content type.
type Exporter interface {
	Export(format string, donations []Donation) ([]byte, string, string, error)
}

type exporter struct{}

func NewExporter() Exporter {
	return &exporter{}
}

func (e *exporter) Export(format string, donations []Donation) ([]byte, string, string, error) {
	timestamp := time.Now().Format("20060102_150405")
	switch format {
	case "csv":
		return e.exportCSV(timestamp, donations)
	case "xlsx":
		return e.exportXLSX(timestamp, donations)
	case "pdf":
		return e.exportPDF(timestamp, donations)
	default:
		return nil, "", "", domain.ValidationError{Field: "format", Msg: "unsupported export format"}
	}
}

var exportHeader = []string{"ID", "Date", "Donor", "Email", "Phone", "Amount", "Status", "Order ID"}

func exportRow(d Donation) []string {
	phone := ""
	if d.Phone != nil {
		phone = *d.Phone
	}
	return []string{
		strconv.FormatUint(uint64(d.ID), 10),
		d.CreatedAt.Format("2006-01-02 15:04:05"),
		d.Name,
		d.Email,
		phone,
		strconv.FormatInt(d.Amount, 10),
		d.Status,
		d.OrderID,
	}
}

func (e *exporter) exportCSV(timestamp string, donations []Donation) ([]byte, string, string, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(exportHeader); err != nil {
		return nil, "", "", err
	}
	for _, d := range donations {
		if err := writer.Write(exportRow(d)); err != nil {
			return nil, "", "", err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, "", "", err
	}

	filename := fmt.Sprintf("donations_%s.csv", timestamp)
	return buf.Bytes(), filename, "text/csv", nil
}

func (e *exporter) exportXLSX(timestamp string, donations []Donation) ([]byte, string, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Donations"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", "", err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for col, title := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, title)
	}
	for row, d := range donations {
		for col, value := range exportRow(d) {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", "", err
	}

	filename := fmt.Sprintf("donations_%s.xlsx", timestamp)
	return buf.Bytes(), filename, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil
}

func (e *exporter) exportPDF(timestamp string, donations []Donation) ([]byte, string, string, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Donation Report")
	pdf.Ln(12)

	widths := []float64{15, 38, 45, 55, 32, 28, 22, 42}

	pdf.SetFont("Arial", "B", 9)
	for i, title := range exportHeader {
		pdf.CellFormat(widths[i], 7, title, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for _, d := range donations {
		for i, value := range exportRow(d) {
			pdf.CellFormat(widths[i], 6, value, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", "", err
	}

	filename := fmt.Sprintf("donations_%s.pdf", timestamp)
	return buf.Bytes(), filename, "application/pdf", nil
}
