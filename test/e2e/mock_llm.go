package e2e

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/klartext-health/befund/pkg/llm"
)

// LLMScriptEntry defines a single scripted LLM response.
type LLMScriptEntry struct {
	// Response content (exactly one of Text or Err should be set)
	Text string
	Err  error

	// Token counts reported back; zero values fall back to 100/50 so that
	// cost accounting is always non-zero on success.
	InputTokens  int
	OutputTokens int

	// Test control
	BlockUntilCancelled bool            // Block Complete() until ctx is cancelled
	WaitCh              <-chan struct{} // Block Complete() until closed, then return the normal response
	OnBlock             chan<- struct{} // Notified when Complete() enters its blocking path
}

// ScriptedLLMClient implements llm.Client with a dual-dispatch mock:
// sequential fallback for single-job runs, plus prompt-substring routing for
// tests where multiple jobs execute concurrently and call order is
// non-deterministic.
type ScriptedLLMClient struct {
	mu             sync.Mutex
	sequential     []LLMScriptEntry
	seqIndex       int
	routes         map[string][]LLMScriptEntry // prompt substring → per-route script
	routeIndex     map[string]int
	capturedInputs []llm.Request
}

// NewScriptedLLMClient creates an empty script. Every unmatched call fails
// the test with a script-exhausted error.
func NewScriptedLLMClient() *ScriptedLLMClient {
	return &ScriptedLLMClient{
		routes:     make(map[string][]LLMScriptEntry),
		routeIndex: make(map[string]int),
	}
}

// AddSequential adds an entry consumed in order for non-routed calls. One
// job running alone consumes its steps strictly in pipeline order, so most
// scenarios only need this.
func (c *ScriptedLLMClient) AddSequential(entry LLMScriptEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sequential = append(c.sequential, entry)
}

// AddScript appends plain-text sequential responses, one per argument.
func (c *ScriptedLLMClient) AddScript(texts ...string) {
	for _, text := range texts {
		c.AddSequential(LLMScriptEntry{Text: text})
	}
}

// AddRouted adds an entry served when any message of the request contains
// the given substring. Routed entries win over sequential ones. Used when
// concurrent jobs interleave their calls.
func (c *ScriptedLLMClient) AddRouted(substring string, entry LLMScriptEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.routes[substring] = append(c.routes[substring], entry)
}

// Complete implements llm.Client.
func (c *ScriptedLLMClient) Complete(ctx context.Context, req llm.Request) (*llm.Response, error) {
	c.mu.Lock()
	c.capturedInputs = append(c.capturedInputs, req)
	entry, err := c.nextEntry(req)
	c.mu.Unlock()
	if err != nil {
		return nil, err
	}

	if entry.BlockUntilCancelled {
		if entry.OnBlock != nil {
			entry.OnBlock <- struct{}{}
		}
		<-ctx.Done()
		return nil, &llm.Error{Kind: llm.KindTransientTransport}
	}

	if entry.WaitCh != nil {
		if entry.OnBlock != nil {
			entry.OnBlock <- struct{}{}
		}
		select {
		case <-entry.WaitCh:
		case <-ctx.Done():
			return nil, &llm.Error{Kind: llm.KindTransientTransport}
		}
	}

	if entry.Err != nil {
		return nil, entry.Err
	}

	in, out := entry.InputTokens, entry.OutputTokens
	if in == 0 {
		in = 100
	}
	if out == 0 {
		out = 50
	}
	return &llm.Response{
		Text:         entry.Text,
		Model:        req.Model,
		InputTokens:  in,
		OutputTokens: out,
		LatencyMS:    3,
	}, nil
}

// nextEntry picks the routed script whose key appears in any message, then
// falls back to the sequential script. Callers hold c.mu.
func (c *ScriptedLLMClient) nextEntry(req llm.Request) (LLMScriptEntry, error) {
	for key, entries := range c.routes {
		if !requestContains(req, key) {
			continue
		}
		idx := c.routeIndex[key]
		if idx >= len(entries) {
			return LLMScriptEntry{}, fmt.Errorf("scripted llm: route %q exhausted after %d calls", key, idx)
		}
		c.routeIndex[key] = idx + 1
		return entries[idx], nil
	}

	if c.seqIndex >= len(c.sequential) {
		return LLMScriptEntry{}, fmt.Errorf("scripted llm: sequential script exhausted after %d calls (model %s)",
			c.seqIndex, req.Model)
	}
	entry := c.sequential[c.seqIndex]
	c.seqIndex++
	return entry, nil
}

func requestContains(req llm.Request, substring string) bool {
	for _, msg := range req.Messages {
		if strings.Contains(msg.Content, substring) {
			return true
		}
	}
	return false
}

// CallCount returns how many Complete calls were made.
func (c *ScriptedLLMClient) CallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.capturedInputs)
}

// CapturedRequests returns a copy of all requests seen so far.
func (c *ScriptedLLMClient) CapturedRequests() []llm.Request {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]llm.Request, len(c.capturedInputs))
	copy(out, c.capturedInputs)
	return out
}
