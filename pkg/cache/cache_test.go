package cache

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "key")
	if err != nil || hit || data != nil {
		t.Errorf("Get = %q, %v, %v; want miss", data, hit, err)
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if _, hit, _ := c.Get(ctx, "missing"); hit {
		t.Error("empty cache reported a hit")
	}
	if err := c.Set(ctx, "plan:a", []byte(`{"seed":1}`), time.Hour); err != nil {
		t.Fatal(err)
	}
	data, hit, err := c.Get(ctx, "plan:a")
	if err != nil || !hit || string(data) != `{"seed":1}` {
		t.Errorf("Get = %q, %v, %v", data, hit, err)
	}

	if err := c.Delete(ctx, "plan:a"); err != nil {
		t.Fatal(err)
	}
	if _, hit, _ := c.Get(ctx, "plan:a"); hit {
		t.Error("deleted entry still present")
	}
	if err := c.Delete(ctx, "plan:a"); err != nil {
		t.Errorf("second Delete error: %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	if err := c.Set(ctx, "k", []byte("v"), time.Nanosecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(5 * time.Millisecond)
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("expired entry returned")
	}
	if _, err := os.Stat(c.path("k")); !os.IsNotExist(err) {
		t.Error("expired entry not removed")
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())
	_ = c.Set(ctx, "k", []byte("v"), 0)
	if err := os.WriteFile(c.path("k"), []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, hit, err := c.Get(ctx, "k"); hit || err != nil {
		t.Errorf("corrupt entry: hit=%v err=%v, want clean miss", hit, err)
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())
	for _, k := range []string{"a", "b", "c"} {
		_ = c.Set(ctx, k, []byte(k), 0)
	}
	n, err := c.Clear()
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("Clear() removed %d, want 3", n)
	}
	if _, hit, _ := c.Get(ctx, "a"); hit {
		t.Error("entry survived Clear")
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	if h1 != Hash([]byte("hello")) {
		t.Error("Hash should be deterministic")
	}
	if h1 == Hash([]byte("world")) {
		t.Error("Different inputs should produce different hashes")
	}
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestPlanKey(t *testing.T) {
	k := NewDefaultKeyer()
	base := PlanKeyOpts{Component: "tiny", Width: 10, Height: 6, Seed: 42, Margin: [4]int{1, 1, 1, 1}, MaxAttempts: 3}

	if k.PlanKey(base) != k.PlanKey(base) {
		t.Error("PlanKey not deterministic")
	}
	variants := []func(o *PlanKeyOpts){
		func(o *PlanKeyOpts) { o.Seed = 43 },
		func(o *PlanKeyOpts) { o.FlipX = true },
		func(o *PlanKeyOpts) { o.Width = 11 },
		func(o *PlanKeyOpts) { o.Component = "family" },
		func(o *PlanKeyOpts) { o.TemplateHash = "abc" },
		func(o *PlanKeyOpts) { o.Margin = [4]int{2, 1, 1, 1} },
		func(o *PlanKeyOpts) { o.Registry = []string{"family", "tiny"} },
		func(o *PlanKeyOpts) { o.Registry = []string{"family", "studio@abc"} },
	}
	for i, mutate := range variants {
		o := base
		mutate(&o)
		if k.PlanKey(o) == k.PlanKey(base) {
			t.Errorf("variant %d produced the same key", i)
		}
	}
}

func TestScopedKeyer(t *testing.T) {
	scoped := NewScopedKeyer(nil, "tenant:")
	key := scoped.PlanKey(PlanKeyOpts{Component: "tiny"})
	if want := "tenant:" + NewDefaultKeyer().PlanKey(PlanKeyOpts{Component: "tiny"}); key != want {
		t.Errorf("PlanKey = %q, want %q", key, want)
	}
}

func TestRetryableError(t *testing.T) {
	if Retryable(nil) != nil {
		t.Error("Retryable(nil) should return nil")
	}
	err := Retryable(ErrNetwork)
	if !IsRetryable(err) {
		t.Error("IsRetryable should return true for wrapped error")
	}
	if err.Error() != ErrNetwork.Error() {
		t.Errorf("Error message should be preserved: %s", err.Error())
	}
	if IsRetryable(ErrNetwork) {
		t.Error("IsRetryable should return false for unwrapped error")
	}
}

func TestRetryWithBackoff(t *testing.T) {
	ctx := context.Background()
	Backoff = time.Millisecond

	calls := 0
	if err := RetryWithBackoff(ctx, func() error { calls++; return nil }); err != nil || calls != 1 {
		t.Errorf("success: err=%v calls=%d", err, calls)
	}

	permanent := errors.New("permanent")
	calls = 0
	if err := RetryWithBackoff(ctx, func() error { calls++; return permanent }); err != permanent || calls != 1 {
		t.Errorf("permanent: err=%v calls=%d", err, calls)
	}

	calls = 0
	err := RetryWithBackoff(ctx, func() error {
		calls++
		if calls < 2 {
			return Retryable(ErrNetwork)
		}
		return nil
	})
	if err != nil || calls != 2 {
		t.Errorf("transient: err=%v calls=%d", err, calls)
	}

	calls = 0
	err = RetryWithBackoff(ctx, func() error { calls++; return Retryable(ErrNetwork) })
	if !errors.Is(err, ErrNetwork) || calls != 3 {
		t.Errorf("exhausted: err=%v calls=%d", err, calls)
	}
}

func TestRetryWithBackoffContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RetryWithBackoff(ctx, func() error {
		return Retryable(ErrNetwork)
	})
	if err != context.Canceled {
		t.Errorf("Should return context error: %v", err)
	}
}

func TestRedisCache(t *testing.T) {
	addr := os.Getenv("ARCHITECTUS_TEST_REDIS")
	if addr == "" {
		t.Skip("ARCHITECTUS_TEST_REDIS not set")
	}
	ctx := context.Background()
	c, err := NewRedisCache(ctx, addr, "", 0)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	key := "architectus:test:" + t.Name()
	if err := c.Set(ctx, key, []byte("v"), time.Minute); err != nil {
		t.Fatal(err)
	}
	data, hit, err := c.Get(ctx, key)
	if err != nil || !hit || string(data) != "v" {
		t.Errorf("Get = %q, %v, %v", data, hit, err)
	}
	_ = c.Delete(ctx, key)
	if _, hit, _ := c.Get(ctx, key); hit {
		t.Error("deleted key still present")
	}
}
