package toolgate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fermofou/llm-speak/pkg/uniqueid"

	"github.com/zeromicro/go-zero/core/logx"
)

// CapabilityFunc performs the actual side effect bound to a tool name. It
// only ever sees validated arguments and must honor ctx cancellation.
type CapabilityFunc func(ctx context.Context, args Args) (any, error)

// EnvelopeError carries the failure classification back to the caller.
type EnvelopeError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

// Envelope is the uniform result of proposing an invocation. Every outcome,
// including capability faults, is expressed in-band; Propose never panics
// and never returns a Go error.
type Envelope struct {
	Success bool           `json:"success"`
	Tool    string         `json:"tool"`
	Result  any            `json:"result,omitempty"`
	Error   *EnvelopeError `json:"error,omitempty"`
}

// Gate mediates between model-suggested invocations and execution. All tool
// calls go through Propose; there is no other path to a capability function.
type Gate struct {
	bindings map[ToolName]CapabilityFunc
	recorder *Recorder
	timeout  time.Duration
}

// NewGate cross-checks the whitelist against the schema table and the
// supplied bindings. A whitelisted tool without a schema or without a bound
// capability is a configuration error: refuse to start instead of failing
// on the first call.
func NewGate(bindings map[ToolName]CapabilityFunc, recorder *Recorder, timeout time.Duration) (*Gate, error) {
	for _, name := range AllTools() {
		if _, ok := SchemaFor(name); !ok {
			return nil, fmt.Errorf("tool %q is whitelisted but has no argument schema", name)
		}
		if bindings[name] == nil {
			return nil, fmt.Errorf("tool %q is whitelisted but has no bound capability", name)
		}
	}
	for name := range bindings {
		if !IsKnown(string(name)) {
			return nil, fmt.Errorf("capability bound to unknown tool %q", name)
		}
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Gate{bindings: bindings, recorder: recorder, timeout: timeout}, nil
}

func MustNewGate(bindings map[ToolName]CapabilityFunc, recorder *Recorder, timeout time.Duration) *Gate {
	g, err := NewGate(bindings, recorder, timeout)
	logx.Must(err)
	return g
}

// Propose runs one full invocation lifecycle:
// proposed -> rejected, or proposed -> executed/failed. Identical candidates
// always run independent lifecycles; nothing is cached or de-duplicated.
func (g *Gate) Propose(ctx context.Context, rawName string, rawArgs map[string]any) Envelope {
	if rawArgs == nil {
		rawArgs = map[string]any{}
	}

	sn := uniqueid.GenSn(uniqueid.SN_PREFIX_INVOCATION)
	g.recorder.RecordProposed(sn, rawName, rawArgs)

	inv, verr := validate(rawName, rawArgs)
	if verr != nil {
		g.recorder.RecordRejected(sn, rawName, rawArgs, verr)
		return Envelope{
			Success: false,
			Tool:    rawName,
			Error:   &EnvelopeError{Kind: verr.Kind, Message: verr.Message},
		}
	}

	// guaranteed by the NewGate consistency check
	capFn := g.bindings[inv.Name()]

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	start := time.Now()
	result, err := g.invoke(callCtx, capFn, inv)
	elapsed := time.Since(start)

	if err != nil {
		detail := err.Error()
		if errors.Is(err, context.DeadlineExceeded) || callCtx.Err() == context.DeadlineExceeded {
			detail = fmt.Sprintf("timeout after %s", g.timeout)
		}
		g.recorder.RecordFailed(sn, rawName, detail, elapsed)
		return Envelope{
			Success: false,
			Tool:    rawName,
			Error: &EnvelopeError{
				Kind:    ErrExecutionFailed,
				Message: g.recorder.Redact(detail),
			},
		}
	}

	g.recorder.RecordExecuted(sn, rawName, summarize(result), elapsed)
	return Envelope{Success: true, Tool: rawName, Result: result}
}

// invoke shields the gate from a misbehaving capability: a panic is turned
// into an ordinary execution failure.
func (g *Gate) invoke(ctx context.Context, capFn CapabilityFunc, inv *ValidatedInvocation) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			logx.Errorf("panic recovered in capability %s: %v", inv.Name(), r)
			result = nil
			err = fmt.Errorf("capability panicked: %v", r)
		}
	}()
	return capFn(ctx, inv.Args())
}

// summarize keeps the audit trail small: record what kind of payload came
// back, not the payload itself.
func summarize(result any) string {
	if result == nil {
		return "ok"
	}
	return fmt.Sprintf("ok (%T)", result)
}
