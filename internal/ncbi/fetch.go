// internal/ncbi/fetch.go
package ncbi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"cpgscan-core/fasta"
)

// DefaultBaseURL is the NCBI sequence download endpoint.
const DefaultBaseURL = "https://www.ncbi.nlm.nih.gov/search/api/download-sequence/"

// maxBodySize caps a single genome download (human chromosome 1 is ~250 Mbp).
const maxBodySize = 1 << 30

// Client fetches nucleotide records from the NCBI download-sequence
// endpoint. The zero value is not usable; call NewClient.
type Client struct {
	HTTP    *http.Client
	BaseURL string
}

// NewClient returns a Client with a generous timeout; large genomes take a
// while to stream.
func NewClient() *Client {
	return &Client{
		HTTP:    &http.Client{Timeout: 5 * time.Minute},
		BaseURL: DefaultBaseURL,
	}
}

// Fetch downloads accession id from the nuccore database and returns its
// first FASTA record. A body starting with "Error" is how the endpoint
// reports unknown accessions.
func (c *Client) Fetch(ctx context.Context, id string) (fasta.Record, error) {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fasta.Record{}, fmt.Errorf("ncbi: bad base URL: %w", err)
	}
	q := u.Query()
	q.Set("db", "nuccore")
	q.Set("id", id)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fasta.Record{}, fmt.Errorf("ncbi: %w", err)
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fasta.Record{}, fmt.Errorf("ncbi: fetch %s: %w", id, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fasta.Record{}, fmt.Errorf("ncbi: fetch %s: unexpected status %s", id, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fasta.Record{}, fmt.Errorf("ncbi: read %s: %w", id, err)
	}
	if bytes.HasPrefix(body, []byte("Error")) {
		return fasta.Record{}, fmt.Errorf("ncbi: genome %q not found", id)
	}

	recs, err := fasta.ReadAll(bytes.NewReader(body))
	if err != nil {
		return fasta.Record{}, fmt.Errorf("ncbi: parse %s: %w", id, err)
	}
	if len(recs) == 0 {
		return fasta.Record{}, fmt.Errorf("ncbi: %s: response contained no FASTA records", id)
	}
	return recs[0], nil
}
