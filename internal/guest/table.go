// Package guest resolves an optional guest display name from the query
// parameters of a shared invitation link. Names come either from a legacy
// underscore-delimited parameter or from an invitation code looked up against
// a remotely published CSV table (one row per invitee).
package guest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Record is one row of the published guest table.
type Record struct {
	Code string // invitation code, normalized for comparison
	Name string // display name, trimmed
}

// Table fetches and searches the published guest list. The list is fetched
// fresh on every lookup; the source is tiny and edited out-of-band, so no
// cache layer is worth its staleness bugs here.
type Table struct {
	URL    string
	Client *http.Client
}

// maxTableBytes caps how much of the published CSV is read. The real list is
// a few KiB; anything bigger means the URL points at the wrong resource.
const maxTableBytes = 1 << 20

// Lookup fetches the table and returns the name for code, or ("", nil) when
// the code has no row. The code must already be normalized by NormalizeCode.
//
// The first row is a header and is skipped. Duplicate codes resolve to the
// first matching row.
func (t *Table) Lookup(ctx context.Context, code string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.URL, nil)
	if err != nil {
		return "", err
	}

	client := t.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("guest table fetch: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxTableBytes))
	if err != nil {
		return "", err
	}

	for _, rec := range parseTable(string(body)) {
		if rec.Code == code {
			return rec.Name, nil
		}
	}
	return "", nil
}

// parseTable splits raw CSV text into records, tolerating both \n and \r\n
// line endings and a UTF-8 BOM on the first cell. The header row is dropped.
// Rows without a code or a name are skipped.
//
// The published sheet never quotes fields, so a plain comma split matches the
// producer; a full CSV reader would silently change semantics on stray quotes.
func parseTable(raw string) []Record {
	lines := strings.Split(raw, "\n")
	out := make([]Record, 0, len(lines))
	header := true
	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		if header {
			header = false
			continue
		}
		cols := strings.Split(line, ",")
		if len(cols) < 2 {
			continue
		}
		code := normalizeCell(cols[0])
		name := strings.TrimSpace(cols[1])
		if code == "" || name == "" {
			continue
		}
		out = append(out, Record{Code: code, Name: name})
	}
	return out
}

// normalizeCell prepares a table cell for code comparison: BOM artifacts are
// stripped (Sheets exports one on the very first cell), whitespace trimmed,
// and the result uppercased.
func normalizeCell(s string) string {
	s = strings.TrimPrefix(s, "\ufeff")
	return strings.ToUpper(strings.TrimSpace(s))
}

// NormalizeCode prepares a query-supplied invitation code for comparison:
// trimmed, uppercased, and with the leading "A0" corrected to "AO": guests
// routinely read the letter O as a zero when typing codes from print.
func NormalizeCode(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	if strings.HasPrefix(s, "A0") {
		s = "AO" + s[2:]
	}
	return s
}
