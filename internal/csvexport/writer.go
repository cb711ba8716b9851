package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/govilvipul/HealthcareCM/internal/domain"
	"github.com/govilvipul/HealthcareCM/internal/viewmodel"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row.
var columns = []string{
	"Case ID",
	"Status",
	"Priority",
	"Document Type",
	"File Name",
	"Patient Name",
	"Date of Birth",
	"Member ID",
	"Insurance Plan",
	"Policy Number",
	"Referring Provider",
	"Provider NPI",
	"Facility",
	"CPT Codes",
	"ICD-10 Codes",
	"Diagnosis",
	"Case Summary",
	"Confidence",
	"Upload Date",
}

// Writer wraps csv.Writer for exporting cases as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteCases converts a batch of cases to CSV rows and writes them,
// preserving order.
func (w *Writer) WriteCases(cases []domain.Case) error {
	for i := range cases {
		if err := w.csv.Write(caseToRow(&cases[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() error {
	w.csv.Flush()
	return w.csv.Error()
}

func caseToRow(c *domain.Case) []string {
	return []string{
		c.CaseID,
		string(c.Status),
		string(c.Priority),
		c.DocumentType,
		c.FileName,
		c.PatientName,
		c.PatientDOB,
		c.MemberID,
		c.InsurancePlan,
		c.PolicyNumber,
		c.ReferringProvider,
		c.ProviderNPI,
		c.Facility,
		strings.Join(c.CPTCodes, "; "),
		strings.Join(c.ICD10Codes, "; "),
		c.DiagnosisDescription,
		c.CaseSummary,
		fmt.Sprintf("%.1f%%", c.ConfidenceScore*100),
		viewmodel.FormatTimestamp(c.UploadDate),
	}
}
