package consolehandler_test

import (
	"io"
	"os"
	"time"

	"github.com/philipp01105/nlogfacade/core"
	"github.com/philipp01105/nlogfacade/formatter"
	"github.com/philipp01105/nlogfacade/handler/consolehandler"
	"github.com/philipp01105/nlogfacade/levels"
	"github.com/philipp01105/nlogfacade/logger"
)

// Create a synchronous console handler and log through it.
func ExampleNewConsoleHandler() {
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer: os.Stdout,
		Levels: levels.AtLeast(core.InfoLevel),
		Formatter: formatter.NewTextFormatter(formatter.Config{
			TimestampFormat: "15:04",
		}),
	})
	defer h.Close()

	log := logger.New(h)
	log.Debug("hidden")
	log.Warnf("disk {0:P0} full", 0.93)
}

// Create an async console handler with a custom buffer size.
func ExampleNewConsoleHandler_async() {
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer:       io.Discard,
		Async:        true,
		BufferSize:   4096,
		DrainTimeout: time.Second,
		Formatter:    formatter.NewJSONFormatter(formatter.Config{}),
	})
	defer h.Close()

	logger.New(h).Info("queued")
}
