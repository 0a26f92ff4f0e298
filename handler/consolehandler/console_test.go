package consolehandler

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/philipp01105/nlogfacade/core"
	"github.com/philipp01105/nlogfacade/formatter"
	"github.com/philipp01105/nlogfacade/handler"
	"github.com/philipp01105/nlogfacade/levels"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreAnyFunction("github.com/philipp01105/nlogfacade/core.StartCoarseClock.func1.1"),
	)
}

// syncBuffer is a goroutine-safe bytes.Buffer.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// errWriter fails every write.
type errWriter struct{}

func (errWriter) Write([]byte) (int, error) { return 0, errors.New("disk gone") }

// slowWriter blocks each write until release is closed.
type slowWriter struct {
	release chan struct{}
}

func (w *slowWriter) Write(p []byte) (int, error) {
	<-w.release
	return len(p), nil
}

func TestConsoleHandler_Sync(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{
		Writer:    &buf,
		Async:     false,
		Formatter: formatter.NewTextFormatter(formatter.Config{}),
	})
	defer h.Close()

	h.Write(core.InfoLevel, "test message", nil)

	if !strings.Contains(buf.String(), "[INFO] test message") {
		t.Errorf("Expected 'test message' in output, got: %s", buf.String())
	}
}

func TestConsoleHandler_Enabled(t *testing.T) {
	set := levels.New(core.WarnLevel)
	h := NewConsoleHandler(ConsoleConfig{Writer: io.Discard, Levels: set})
	defer h.Close()

	if !h.Enabled(core.WarnLevel) || h.Enabled(core.ErrorLevel) {
		t.Error("Enabled should follow the level set")
	}
	set.Enable(core.ErrorLevel)
	if !h.Enabled(core.ErrorLevel) {
		t.Error("Enabled should see live level set changes")
	}

	all := NewConsoleHandler(ConsoleConfig{Writer: io.Discard})
	defer all.Close()
	for _, l := range core.Levels() {
		if !all.Enabled(l) {
			t.Errorf("default handler should enable %s", l)
		}
	}
}

func TestConsoleHandler_SyncMaterializesMessage(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{
		Writer:    &buf,
		Formatter: formatter.NewJSONFormatter(formatter.Config{}),
	})
	defer h.Close()

	msg := core.NewTemplateMessage(nil, "hello {0}", []any{"world"})
	h.Write(core.WarnLevel, msg, errors.New("cause"))

	out := buf.String()
	if !strings.Contains(out, `"message":"hello world"`) || !strings.Contains(out, `"error":"cause"`) {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestConsoleHandler_Async(t *testing.T) {
	buf := &syncBuffer{}
	h := NewConsoleHandler(ConsoleConfig{
		Writer:     buf,
		Async:      true,
		BufferSize: 100,
		Formatter:  formatter.NewTextFormatter(formatter.Config{}),
	})

	for i := 0; i < 50; i++ {
		h.Write(core.InfoLevel, "async test", nil)
	}

	if err := h.Close(); err != nil {
		t.Fatal(err)
	}

	count := strings.Count(buf.String(), "async test")
	if count != 50 {
		t.Errorf("Expected 50 messages, got %d", count)
	}
}

func TestConsoleHandler_AsyncMaterializesOnWorker(t *testing.T) {
	buf := &syncBuffer{}
	h := NewConsoleHandler(ConsoleConfig{Writer: buf, Async: true})

	var mu sync.Mutex
	calls := 0
	msg := core.NewCallbackMessage(func() string {
		mu.Lock()
		calls++
		mu.Unlock()
		return "computed later"
	})
	h.Write(core.DebugLevel, msg, nil)
	h.Close()

	if !strings.Contains(buf.String(), "computed later") {
		t.Errorf("unexpected output: %s", buf.String())
	}
	if msg.Text() != "computed later" {
		t.Error("memoized text should be visible to the logging goroutine")
	}
	mu.Lock()
	defer mu.Unlock()
	if calls != 1 {
		t.Errorf("callback called %d times, want 1", calls)
	}
}

func TestConsoleHandler_WriteAfterClose(t *testing.T) {
	buf := &syncBuffer{}
	h := NewConsoleHandler(ConsoleConfig{Writer: buf, Async: true})
	h.Close()
	h.Close()

	h.Write(core.ErrorLevel, "late", nil)
	if !strings.Contains(buf.String(), "late") {
		t.Error("writes after Close should be written synchronously")
	}
}

func TestConsoleHandler_CloseDuringWrites(t *testing.T) {
	const writers = 4
	const msgs = 200

	for round := 0; round < 50; round++ {
		buf := &syncBuffer{}
		h := NewConsoleHandler(ConsoleConfig{
			Writer:         buf,
			Async:          true,
			BufferSize:     writers * msgs,
			OverflowPolicy: map[core.Level]handler.OverflowPolicy{core.InfoLevel: handler.Block},
		})

		var wg sync.WaitGroup
		start := make(chan struct{})
		for g := 0; g < writers; g++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				for i := 0; i < msgs; i++ {
					h.Write(core.InfoLevel, "m", nil)
				}
			}()
		}
		close(start)
		h.Close()
		wg.Wait()

		if got := strings.Count(buf.String(), "\n"); got != writers*msgs {
			t.Fatalf("round %d: %d lines written, want %d", round, got, writers*msgs)
		}
	}
}

func TestConsoleHandler_WriteError(t *testing.T) {
	var reported []error
	h := NewConsoleHandler(ConsoleConfig{
		Writer:  errWriter{},
		OnError: func(err error) { reported = append(reported, err) },
	})
	defer h.Close()

	h.Write(core.InfoLevel, "x", nil)

	if len(reported) != 1 {
		t.Fatalf("reported %d errors, want 1", len(reported))
	}
	snap := h.(handler.StatsProvider).Stats()
	if snap.Failed != 1 || snap.Processed != 0 {
		t.Errorf("stats = %+v", snap)
	}
}

func TestConsoleHandler_TextError(t *testing.T) {
	var buf bytes.Buffer
	var reported []error
	h := NewConsoleHandler(ConsoleConfig{
		Writer:  &buf,
		OnError: func(err error) { reported = append(reported, err) },
	})
	defer h.Close()

	h.Write(core.InfoLevel, core.NewTemplateMessage(nil, "{3}", []any{"a"}), nil)

	if !strings.Contains(buf.String(), "!FORMAT_ERROR(") {
		t.Errorf("expected marker line, got: %s", buf.String())
	}
	var te *formatter.TextError
	if len(reported) != 1 || !errors.As(reported[0], &te) {
		t.Errorf("reported = %v", reported)
	}
	snap := h.(handler.StatsProvider).Stats()
	if snap.Processed != 1 || snap.Failed != 1 {
		t.Errorf("stats = %+v", snap)
	}
}

func TestOverflowPolicy_DropNewest(t *testing.T) {
	w := &slowWriter{release: make(chan struct{})}
	h := NewConsoleHandler(ConsoleConfig{
		Writer:     w,
		Async:      true,
		BufferSize: 2,
		OverflowPolicy: map[core.Level]handler.OverflowPolicy{
			core.InfoLevel: handler.DropNewest,
		},
		OnError: handler.DiscardErrors,
	})

	for i := 0; i < 10; i++ {
		h.Write(core.InfoLevel, "test", nil)
	}

	stats := h.(handler.StatsProvider).Stats()
	close(w.release)
	h.Close()

	// At most one entry is in the writer and two in the queue.
	if stats.Dropped[core.InfoLevel] < 7 {
		t.Errorf("dropped = %d, want at least 7", stats.Dropped[core.InfoLevel])
	}
}

func TestOverflowPolicy_DropOldest(t *testing.T) {
	w := &slowWriter{release: make(chan struct{})}
	h := NewConsoleHandler(ConsoleConfig{
		Writer:     w,
		Async:      true,
		BufferSize: 2,
		OverflowPolicy: map[core.Level]handler.OverflowPolicy{
			core.WarnLevel: handler.DropOldest,
		},
	})

	for i := 0; i < 10; i++ {
		h.Write(core.WarnLevel, "warn", nil)
	}

	stats := h.(handler.StatsProvider).Stats()
	close(w.release)
	h.Close()

	if stats.TotalDropped() == 0 {
		t.Error("Expected dropped entries with DropOldest policy")
	}
}

func TestOverflowPolicy_Block(t *testing.T) {
	buf := &syncBuffer{}
	release := make(chan struct{})
	var once sync.Once
	gate := writerFunc(func(p []byte) (int, error) {
		<-release
		return buf.Write(p)
	})

	h := NewConsoleHandler(ConsoleConfig{
		Writer:       gate,
		Async:        true,
		BufferSize:   1,
		BlockTimeout: 10 * time.Millisecond,
		OverflowPolicy: map[core.Level]handler.OverflowPolicy{
			core.ErrorLevel: handler.Block,
		},
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 5; i++ {
			h.Write(core.ErrorLevel, "error", nil)
		}
	}()

	// Let the writes time out at least once before releasing the writer.
	time.Sleep(50 * time.Millisecond)
	once.Do(func() { close(release) })
	<-done
	h.Close()

	stats := h.(handler.StatsProvider).Stats()
	if stats.Blocked == 0 {
		t.Error("Expected blocked writes with Block policy")
	}
	if stats.TotalDropped() != 0 {
		t.Error("Block policy must not drop")
	}
	if got := strings.Count(buf.String(), "error"); got != 5 {
		t.Errorf("Expected 5 entries, got %d", got)
	}
}

type writerFunc func(p []byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) { return f(p) }

func TestConsoleHandler_CoarseClock(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{Writer: &buf, CoarseClock: true})
	defer h.Close()

	before := time.Now().Add(-time.Second)
	h.Write(core.InfoLevel, "tick", nil)

	ts, err := time.Parse(time.RFC3339, strings.Fields(buf.String())[0])
	if err != nil {
		t.Fatal(err)
	}
	if ts.Before(before.Truncate(time.Second)) {
		t.Errorf("timestamp %v too old", ts)
	}
}

func TestIsConcurrentSafeWriter(t *testing.T) {
	tests := []struct {
		name     string
		writer   io.Writer
		expected bool
	}{
		{"io.Discard", io.Discard, true},
		{"os.Stdout", os.Stdout, true},
		{"os.Stderr", os.Stderr, true},
		{"bytes.Buffer", &bytes.Buffer{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isConcurrentSafeWriter(tt.writer); got != tt.expected {
				t.Errorf("isConcurrentSafeWriter(%T) = %v, want %v", tt.writer, got, tt.expected)
			}
		})
	}
}

func TestConcurrentSafeConfig(t *testing.T) {
	// Auto-detected for io.Discard
	h := NewConsoleHandler(ConsoleConfig{Writer: io.Discard})
	if !h.(*SyncConsoleHandler).concurrentSafe {
		t.Error("Expected concurrentSafe=true for io.Discard")
	}
	h.Close()

	// Not auto-detected for bytes.Buffer
	h = NewConsoleHandler(ConsoleConfig{Writer: &bytes.Buffer{}})
	if h.(*SyncConsoleHandler).concurrentSafe {
		t.Error("Expected concurrentSafe=false for bytes.Buffer")
	}
	h.Close()

	// Explicit opt-in via ConcurrentWriter
	h = NewConsoleHandler(ConsoleConfig{Writer: &bytes.Buffer{}, ConcurrentWriter: true})
	if !h.(*SyncConsoleHandler).concurrentSafe {
		t.Error("Expected concurrentSafe=true with ConcurrentWriter=true")
	}
	h.Close()
}

func TestConsoleHandler_Parallel(t *testing.T) {
	buf := &syncBuffer{}
	h := NewConsoleHandler(ConsoleConfig{
		Writer:    buf,
		Formatter: formatter.NewTextFormatter(formatter.Config{}),
	})
	defer h.Close()

	const goroutines = 8
	const msgs = 100
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < msgs; i++ {
				h.Write(core.InfoLevel, "parallel safe test", nil)
			}
		}()
	}
	wg.Wait()

	snap := h.(handler.StatsProvider).Stats()
	if snap.Processed != goroutines*msgs {
		t.Errorf("Expected %d processed, got %d", goroutines*msgs, snap.Processed)
	}
	if got := strings.Count(buf.String(), "\n"); got != goroutines*msgs {
		t.Errorf("Expected %d lines, got %d", goroutines*msgs, got)
	}
}

func BenchmarkSyncConsoleHandler(b *testing.B) {
	h := NewConsoleHandler(ConsoleConfig{Writer: io.Discard})
	defer h.Close()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.Write(core.InfoLevel, "benchmark message", nil)
	}
}

func BenchmarkSyncConsoleHandler_Parallel(b *testing.B) {
	h := NewConsoleHandler(ConsoleConfig{Writer: io.Discard})
	defer h.Close()

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			h.Write(core.InfoLevel, "benchmark message", nil)
		}
	})
}

func BenchmarkAsyncConsoleHandler(b *testing.B) {
	h := NewConsoleHandler(ConsoleConfig{Writer: io.Discard, Async: true, BufferSize: 4096})
	defer h.Close()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.Write(core.InfoLevel, "benchmark message", nil)
	}
}
