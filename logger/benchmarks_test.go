package logger

import (
	"io"
	"testing"

	"github.com/philipp01105/nlogfacade/core"
	"github.com/philipp01105/nlogfacade/formatter"
	"github.com/philipp01105/nlogfacade/handler"
	"github.com/philipp01105/nlogfacade/handler/consolehandler"
	"github.com/philipp01105/nlogfacade/levels"
)

// BenchmarkDisabled measures the gate alone.
// Target: a few ns/op, 0 allocs/op
func BenchmarkDisabled(b *testing.B) {
	log := New(handler.Discard{Levels: levels.None()})

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		log.Debugf("value {0}", "constant")
	}
}

func BenchmarkDisabledParallel(b *testing.B) {
	log := New(handler.Discard{Levels: levels.New(core.ErrorLevel)})

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			log.Info("static")
		}
	})
}

// BenchmarkEnabledDiscard measures payload construction without rendering.
func BenchmarkEnabledDiscard(b *testing.B) {
	log := New(handler.Discard{})

	b.Run("raw", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			log.Info("static")
		}
	})
	b.Run("template", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			log.Infof("value {0}", i)
		}
	})
	b.Run("callback", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			log.InfoFunc(staticText)
		}
	})
}

// BenchmarkEnabledText measures the full path to a text console line.
func BenchmarkEnabledText(b *testing.B) {
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer:    io.Discard,
		Formatter: formatter.NewTextFormatter(formatter.Config{}),
	})
	defer h.Close()
	log := New(h)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		log.Infof("request {0} took {1,6:F1} ms", "GET /", 12.5)
	}
}
