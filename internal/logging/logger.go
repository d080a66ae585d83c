package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"github.com/larynjahor/ds/internal/check"
)

// Auto installs the process-wide logger and returns a closer for its sink.
// Builds tagged dsdebug log at debug level with color, default builds at
// info level without.
func Auto() io.Closer {
	w, err := getWriter()
	if err != nil {
		log.Fatalln(err)
	}

	logLevel := slog.LevelInfo
	if check.Enabled {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(tint.NewHandler(w, &tint.Options{
		AddSource:   true,
		Level:       logLevel,
		ReplaceAttr: nil,
		TimeFormat:  time.Kitchen,
		NoColor:     !check.Enabled,
	}))

	slog.SetDefault(logger)
	slog.SetLogLoggerLevel(logLevel)

	return w
}

func getWriter() (io.WriteCloser, error) {
	return struct {
		io.Writer
		io.Closer
	}{
		os.Stderr,
		io.NopCloser(nil),
	}, nil
}
