// Package twse resolves Taiwan stock codes to their listed company names
// through the TWSE code-query suggestion endpoint.
package twse

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

const defaultBaseURL = "https://www.twse.com.tw"

// Client looks up company names, memoizing answers: listed names do not
// change within a session.
type Client struct {
	http    *http.Client
	baseURL string

	mu    sync.RWMutex
	names map[string]string
}

func New() *Client {
	return &Client{
		http:    &http.Client{Timeout: 8 * time.Second},
		baseURL: defaultBaseURL,
		names:   make(map[string]string),
	}
}

// Name returns the listed name for a stock code, e.g. "2330" -> "台積電".
// Codes the exchange does not suggest come back as an error.
func (c *Client) Name(code string) (string, error) {
	code = strings.TrimSpace(code)
	c.mu.RLock()
	if name, ok := c.names[code]; ok {
		c.mu.RUnlock()
		return name, nil
	}
	c.mu.RUnlock()

	addr := fmt.Sprintf("%s/zh/api/codeQuery?query=%s", c.baseURL, code)
	resp, err := c.http.Get(addr)
	if err != nil {
		return "", fmt.Errorf("error retrieving name for %q: %w", code, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("twse http %d", resp.StatusCode)
	}

	var jobj any
	if err := json.NewDecoder(resp.Body).Decode(&jobj); err != nil {
		return "", fmt.Errorf("error decoding suggestions for %q: %w", code, err)
	}

	path := "$.suggestions"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return "", fmt.Errorf("error parsing %q: %q %w", code, path, err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		return "", fmt.Errorf("error parsing %q: %q %s", code, path, "not a list")
	}

	// suggestions come back as "code\tname" pairs, first exact match wins
	for _, jitem := range jlist {
		s, ok := jitem.(string)
		if !ok {
			continue
		}
		fields := strings.SplitN(s, "\t", 2)
		if len(fields) == 2 && fields[0] == code {
			name := strings.TrimSpace(fields[1])
			c.mu.Lock()
			c.names[code] = name
			c.mu.Unlock()
			return name, nil
		}
	}
	return "", fmt.Errorf("no name found for %q", code)
}

// DisplayName renders "name (code)" when a name is known, or the bare code.
func DisplayName(name, code string) string {
	if name == "" {
		return code
	}
	return fmt.Sprintf("%s (%s)", name, code)
}
