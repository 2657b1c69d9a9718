package services

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	log "github.com/sirupsen/logrus"

	"wealthgenie/backend/models"
)

var (
	// ErrNoSelection means every section toggle was off. The UI disables the
	// export action in that state, so seeing this server-side is a client bug.
	ErrNoSelection = errors.New("no data selected for export")

	// ErrExportInProgress rejects re-entrant exports. The guard is
	// cooperative: one flag per service instance, always cleared on return.
	ErrExportInProgress = errors.New("an export is already in progress")
)

// ExportResult is one rendered artifact, ready to stream to the client.
type ExportResult struct {
	FileName string
	MIMEType string
	Data     []byte
}

// ExportService orchestrates a single export: fetch the snapshot, render it
// through exactly one builder, and name the artifact.
type ExportService struct {
	fetcher   DataFetcher
	exporting atomic.Bool
}

func NewExportService(fetcher DataFetcher) *ExportService {
	return &ExportService{fetcher: fetcher}
}

// Export runs one manual, single-attempt export. Failures are terminal for
// the attempt: no retry, no partial artifact.
func (s *ExportService) Export(ctx context.Context, accessToken string, opts models.ExportOptions, format models.ExportFormat) (*ExportResult, error) {
	if !opts.Any() {
		return nil, ErrNoSelection
	}
	if !format.Valid() {
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
	if !s.exporting.CompareAndSwap(false, true) {
		return nil, ErrExportInProgress
	}
	defer s.exporting.Store(false)

	snapshot, err := s.fetcher.FetchSnapshot(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	var data []byte
	switch format {
	case models.FormatPDF:
		data, err = BuildPDF(snapshot, opts)
	default:
		data, err = BuildWorkbook(snapshot, opts)
	}
	if err != nil {
		return nil, fmt.Errorf("error building %s report: %w", format, err)
	}

	fileName := fmt.Sprintf("%s_%s.%s", models.ReportBaseName,
		time.Now().UTC().Format("2006-01-02"), format.Extension())

	log.Printf("Export built: %s (%d bytes, %d transactions, %d EMIs, %d goals)",
		fileName, len(data), len(snapshot.Transactions), len(snapshot.EMIs), len(snapshot.Savings))

	return &ExportResult{
		FileName: fileName,
		MIMEType: format.MIMEType(),
		Data:     data,
	}, nil
}
