package adapters

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/net/html"
)

// NetHTTPScriptLoader is the standard script loader implementation using net/http package.
// Fetched sources are handed to a ScriptEvaluator.
type NetHTTPScriptLoader struct {
	client    *http.Client
	evaluator ScriptEvaluator
}

// Ensure NetHTTPScriptLoader implements ScriptLoader interface
var _ ScriptLoader = (*NetHTTPScriptLoader)(nil)

// NewNetHTTPScriptLoader creates a new NetHTTPScriptLoader instance.
func NewNetHTTPScriptLoader(evaluator ScriptEvaluator) *NetHTTPScriptLoader {
	return &NetHTTPScriptLoader{
		client:    &http.Client{},
		evaluator: evaluator,
	}
}

// Load fetches src and evaluates the response body.
func (l *NetHTTPScriptLoader) Load(ctx context.Context, src string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrScriptLoad, err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrScriptLoad, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: %s returned status %d", ErrScriptLoad, src, resp.StatusCode)
	}

	source, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read body: %v", ErrScriptLoad, err)
	}

	return l.evaluator.Eval(src, string(source))
}

// ScriptSource extracts the src attribute of the first script element in tag.
func ScriptSource(tag string) (string, error) {
	z := html.NewTokenizer(strings.NewReader(tag))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return "", fmt.Errorf("no script src in tag %q", tag)
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			if tok.Data != "script" {
				continue
			}
			for _, attr := range tok.Attr {
				if attr.Key == "src" && attr.Val != "" {
					return attr.Val, nil
				}
			}
		}
	}
}
