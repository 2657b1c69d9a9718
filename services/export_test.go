package services

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"wealthgenie/backend/models"
)

type stubFetcher struct {
	snapshot models.Snapshot
	err      error
	tokens   []string
}

func (f *stubFetcher) FetchSnapshot(_ context.Context, accessToken string) (models.Snapshot, error) {
	f.tokens = append(f.tokens, accessToken)
	if f.err != nil {
		return models.Snapshot{}, f.err
	}
	return f.snapshot, nil
}

func TestExportXLSX(t *testing.T) {
	fetcher := &stubFetcher{snapshot: sampleSnapshot()}
	svc := NewExportService(fetcher)

	result, err := svc.Export(context.Background(), "token-123", allOptions(), models.FormatXLSX)
	if err != nil {
		t.Fatal(err)
	}

	pattern := regexp.MustCompile(`^WealthGenie_Report_\d{4}-\d{2}-\d{2}\.xlsx$`)
	if !pattern.MatchString(result.FileName) {
		t.Errorf("file name = %q, want WealthGenie_Report_<date>.xlsx", result.FileName)
	}
	if result.MIMEType != models.MIMETypeXLSX {
		t.Errorf("MIME type = %q", result.MIMEType)
	}
	if len(result.Data) == 0 {
		t.Error("expected artifact bytes")
	}
	if len(fetcher.tokens) != 1 || fetcher.tokens[0] != "token-123" {
		t.Errorf("access token not forwarded: %v", fetcher.tokens)
	}
}

func TestExportPDF(t *testing.T) {
	svc := NewExportService(&stubFetcher{snapshot: sampleSnapshot()})

	result, err := svc.Export(context.Background(), "t", allOptions(), models.FormatPDF)
	if err != nil {
		t.Fatal(err)
	}
	pattern := regexp.MustCompile(`^WealthGenie_Report_\d{4}-\d{2}-\d{2}\.pdf$`)
	if !pattern.MatchString(result.FileName) {
		t.Errorf("file name = %q", result.FileName)
	}
	if result.MIMEType != models.MIMETypePDF {
		t.Errorf("MIME type = %q", result.MIMEType)
	}
}

func TestExportNoSelection(t *testing.T) {
	fetcher := &stubFetcher{snapshot: sampleSnapshot()}
	svc := NewExportService(fetcher)

	_, err := svc.Export(context.Background(), "t", models.ExportOptions{}, models.FormatXLSX)
	if !errors.Is(err, ErrNoSelection) {
		t.Errorf("err = %v, want ErrNoSelection", err)
	}
	if len(fetcher.tokens) != 0 {
		t.Error("no fetch should happen without a selection")
	}
}

func TestExportSingleFlagStillExports(t *testing.T) {
	svc := NewExportService(&stubFetcher{snapshot: sampleSnapshot()})

	// Income and expenses both off; summary alone still permits export.
	opts := models.ExportOptions{Summary: true}
	result, err := svc.Export(context.Background(), "t", opts, models.FormatXLSX)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Data) == 0 {
		t.Error("expected artifact bytes")
	}
}

func TestExportUnsupportedFormat(t *testing.T) {
	svc := NewExportService(&stubFetcher{snapshot: sampleSnapshot()})

	_, err := svc.Export(context.Background(), "t", allOptions(), models.ExportFormat("csv"))
	if err == nil {
		t.Fatal("expected an error for an unsupported format")
	}
}

func TestExportFetchFailure(t *testing.T) {
	fetchErr := errors.New("failed to fetch export data: data API returned status 503")
	svc := NewExportService(&stubFetcher{err: fetchErr})

	_, err := svc.Export(context.Background(), "t", allOptions(), models.FormatXLSX)
	if !errors.Is(err, fetchErr) {
		t.Errorf("fetch error not surfaced as-is: %v", err)
	}

	// A failed attempt clears the in-flight flag; the next one runs.
	svc.fetcher = &stubFetcher{snapshot: sampleSnapshot()}
	if _, err := svc.Export(context.Background(), "t", allOptions(), models.FormatXLSX); err != nil {
		t.Errorf("follow-up export failed: %v", err)
	}
}

type blockingFetcher struct {
	entered chan struct{}
	release chan struct{}
}

func (f *blockingFetcher) FetchSnapshot(context.Context, string) (models.Snapshot, error) {
	close(f.entered)
	<-f.release
	return models.Snapshot{}, nil
}

func TestExportRejectsReentrantAttempt(t *testing.T) {
	fetcher := &blockingFetcher{entered: make(chan struct{}), release: make(chan struct{})}
	svc := NewExportService(fetcher)

	done := make(chan error, 1)
	go func() {
		_, err := svc.Export(context.Background(), "t", allOptions(), models.FormatXLSX)
		done <- err
	}()

	<-fetcher.entered
	_, err := svc.Export(context.Background(), "t", allOptions(), models.FormatXLSX)
	if !errors.Is(err, ErrExportInProgress) {
		t.Errorf("err = %v, want ErrExportInProgress", err)
	}

	close(fetcher.release)
	if err := <-done; err != nil {
		t.Errorf("first export failed: %v", err)
	}
}
