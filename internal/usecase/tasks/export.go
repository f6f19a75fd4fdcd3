package tasks

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"hooklens/internal/pkg/errs"
	"hooklens/internal/usecase/queries"
)

func renderExport(outPath, format string, views []*queries.RequestView) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return errs.Wrap(err, "failed to create export directory")
	}

	switch format {
	case "json":
		return renderJSON(outPath, views)
	case "csv":
		return renderCSV(outPath, views)
	}
	return errs.ErrInvalidExportFormat
}

func renderJSON(outPath string, views []*queries.RequestView) error {
	// Empty list renders as [] rather than null.
	if views == nil {
		views = []*queries.RequestView{}
	}
	raw, err := json.MarshalIndent(views, "", "  ")
	if err != nil {
		return errs.Wrap(err, "failed to encode export")
	}
	if err := os.WriteFile(outPath, raw, 0o644); err != nil {
		return errs.Wrap(err, "failed to write export file")
	}
	return nil
}

var csvHeader = []string{
	"id", "method", "path", "query_string", "content_type",
	"content_length", "ip_address", "user_agent", "referer",
	"processed", "received_at", "body",
}

func renderCSV(outPath string, views []*queries.RequestView) error {
	f, err := os.Create(outPath)
	if err != nil {
		return errs.Wrap(err, "failed to create export file")
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return errs.Wrap(err, "failed to write export header")
	}
	for _, v := range views {
		record := []string{
			strconv.FormatInt(v.ID, 10),
			v.Method,
			v.Path,
			v.QueryString,
			v.ContentType,
			strconv.FormatInt(v.ContentLength, 10),
			v.IPAddress,
			v.UserAgent,
			v.Referer,
			strconv.FormatBool(v.Processed),
			v.ReceivedAt.Format("2006-01-02T15:04:05.000000Z07:00"),
			v.Body,
		}
		if err := w.Write(record); err != nil {
			return errs.Wrap(err, "failed to write export record")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return errs.Wrap(err, "failed to flush export file")
	}
	return nil
}
