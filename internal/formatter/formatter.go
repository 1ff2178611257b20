// package formatter provides functions to export stored feedback to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/insighthub/landing/internal/models"
	"github.com/insighthub/landing/internal/shared"
)

// timeLayout is the timestamp format used in every export.
const timeLayout = time.RFC3339

// ExportToCSV converts feedback entries to CSV with columns: Sequence, Name, Email, Message, Source, CreatedAt
func ExportToCSV(entries []*models.Feedback) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Sequence", "Name", "Email", "Message", "Source", "CreatedAt"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, entry := range entries {
		record := []string{
			strconv.Itoa(entry.Sequence()),
			entry.Name(),
			entry.Email(),
			entry.Message(),
			entry.Source(),
			entry.CreatedAt().Format(timeLayout),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts feedback entries to a Markdown digest, one section per entry
func ExportToMarkdown(entries []*models.Feedback) []byte {
	var buf bytes.Buffer

	buf.WriteString("# Landing Page Feedback\n\n")
	buf.WriteString(fmt.Sprintf("%d entries\n\n", len(entries)))

	for _, entry := range entries {
		buf.WriteString(fmt.Sprintf("## #%d %s\n\n", entry.Sequence(), entry.Name()))
		if entry.Email() != "" {
			buf.WriteString(fmt.Sprintf("- Email: %s\n", entry.Email()))
		}
		buf.WriteString(fmt.Sprintf("- Source: %s\n", entry.Source()))
		buf.WriteString(fmt.Sprintf("- Received: %s\n\n", entry.CreatedAt().Format(timeLayout)))
		buf.WriteString(entry.Message())
		buf.WriteString("\n\n")
	}

	return buf.Bytes()
}

// ExportToPlain converts feedback entries to a one-line-per-entry summary for terminal output
func ExportToPlain(entries []*models.Feedback) []byte {
	var buf bytes.Buffer

	for _, entry := range entries {
		buf.WriteString(fmt.Sprintf(
			"#%d [%s] %s: %s\n",
			entry.Sequence(),
			entry.Source(),
			entry.Name(),
			shared.Truncate(entry.Message(), 60),
		))
	}

	return buf.Bytes()
}
