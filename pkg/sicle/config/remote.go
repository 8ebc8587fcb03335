package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	_ "github.com/BrandonKowalski/certifiable" // Add CA certificates to the default trust store
)

// maxBindingsSize bounds a downloaded bindings file.
const maxBindingsSize = 1 << 20

// ErrBindingsTooLarge is returned for a downloaded bindings file over 1 MiB.
var ErrBindingsTooLarge = errors.New("bindings file too large")

// DefaultFetchTimeout bounds FetchBindings when the caller's context has no deadline.
const DefaultFetchTimeout = 10 * time.Second

// IsRemote reports whether location is an http or https URL rather than a path.
func IsRemote(location string) bool {
	return strings.HasPrefix(location, "https://") || strings.HasPrefix(location, "http://")
}

// FetchBindings downloads and decodes a bindings file. Handheld firmware
// often ships without a CA store; the bundled certificates cover that case.
func FetchBindings(ctx context.Context, client *http.Client, url string) (*Bindings, error) {
	if client == nil {
		client = http.DefaultClient
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultFetchTimeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("fetching bindings: %w", err)
	}
	req.Header.Set("Accept", "application/toml, application/yaml, text/plain")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching bindings: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching bindings: %s returned %s", url, resp.Status)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBindingsSize+1))
	if err != nil {
		return nil, fmt.Errorf("fetching bindings: %w", err)
	}
	if len(data) > maxBindingsSize {
		return nil, fmt.Errorf("fetching bindings: %s: %w", url, ErrBindingsTooLarge)
	}

	body := bytes.NewReader(data)
	if strings.Contains(resp.Header.Get("Content-Type"), "yaml") {
		return DecodeBindingsYAML(body)
	}
	return decoderFor(req.URL.Path)(body)
}
