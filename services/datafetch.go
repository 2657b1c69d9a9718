package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"wealthgenie/backend/models"
)

// ErrFetchFailed wraps every failure talking to the data API so the HTTP
// layer can map it to an upstream error status.
var ErrFetchFailed = errors.New("failed to fetch export data")

// DataFetcher retrieves one user's financial snapshot from the data API.
type DataFetcher interface {
	FetchSnapshot(ctx context.Context, accessToken string) (models.Snapshot, error)
}

// DataClient is the HTTP implementation of DataFetcher. One GET per export,
// no retries, no caching.
type DataClient struct {
	baseURL string
	client  *http.Client
}

func NewDataClient(baseURL string) *DataClient {
	return &DataClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// FetchSnapshot calls the data API with the caller's access token and
// normalizes the response once at this boundary.
func (c *DataClient) FetchSnapshot(ctx context.Context, accessToken string) (models.Snapshot, error) {
	url := c.baseURL + "/export/data"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: error creating request: %v", ErrFetchFailed, err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		log.Printf("Data API error response: %s", string(body))
		return models.Snapshot{}, fmt.Errorf("%w: data API returned status %d", ErrFetchFailed, resp.StatusCode)
	}

	var snapshot models.Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snapshot); err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: error decoding response: %v", ErrFetchFailed, err)
	}

	snapshot.Normalize()
	return snapshot, nil
}
