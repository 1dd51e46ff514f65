package observability

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/architectus/pkg/geom"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	g := NoopGenerationHooks{}
	g.OnGenerateStart(ctx, "tiny", geom.Vec(10, 6))
	g.OnAttempt(ctx, 0, 42, nil)
	g.OnGenerateComplete(ctx, "tiny", 1, time.Millisecond, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "plan")
	c.OnCacheMiss(ctx, "plan")
	c.OnCacheSet(ctx, "plan", 1024)

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "GET", "/v1/plan")
	h.OnResponse(ctx, "GET", "/v1/plan", 200, time.Second)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Generation().(NoopGenerationHooks); !ok {
		t.Error("Generation() should return NoopGenerationHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	custom := &testGenerationHooks{}
	SetGenerationHooks(custom)
	if Generation() != custom {
		t.Error("SetGenerationHooks should set custom hooks")
	}

	Reset()
	if _, ok := Generation().(NoopGenerationHooks); !ok {
		t.Error("Reset() should restore NoopGenerationHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testGenerationHooks{}
	SetGenerationHooks(custom)
	SetGenerationHooks(nil)
	if Generation() != custom {
		t.Error("SetGenerationHooks(nil) should not replace existing hooks")
	}
	Reset()
}

func TestLogHooks(t *testing.T) {
	defer Reset()

	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	NewLogHooks(logger).Install()

	ctx := context.Background()
	Generation().OnAttempt(ctx, 1, 7, errors.New("overflow"))
	Cache().OnCacheHit(ctx, "plan")
	HTTP().OnResponse(ctx, "GET", "/healthz", 200, time.Millisecond)

	out := buf.String()
	for _, want := range []string{"attempt failed", "seed=7", "cache hit", "status=200"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

type testGenerationHooks struct {
	NoopGenerationHooks
	attempts int
}

func (h *testGenerationHooks) OnAttempt(context.Context, int, uint64, error) { h.attempts++ }
