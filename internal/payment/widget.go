package payment

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

var ErrScriptUnavailable = errors.New("payment script unavailable")

// ScriptLoader checks that the payment widget script can be served before a
// checkout hands its options to the browser. A successful load is
// remembered for the life of the process.
type ScriptLoader struct {
	client *http.Client
	url    string

	mu     sync.Mutex
	loaded bool
}

func NewScriptLoader(url string, timeout time.Duration) *ScriptLoader {
	return &ScriptLoader{
		client: &http.Client{Timeout: timeout},
		url:    url,
	}
}

func (l *ScriptLoader) Load(ctx context.Context) error {
	const op = "payment.ScriptLoader.Load"

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.loaded {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", op, ErrScriptUnavailable, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: %w: status %d", op, ErrScriptUnavailable, resp.StatusCode)
	}

	l.loaded = true

	return nil
}
