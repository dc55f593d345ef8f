// Package logging provides the shared diagnostic logger. Remote call
// failures are logged and otherwise swallowed, so this file is the only
// place they surface.
package logging

import (
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the shared logrus instance. Before Init it writes to
// stderr with logrus defaults, which is what tests want.
var Logger = logrus.New()

var once sync.Once

// Init routes the shared logger to a rotated file. With debug set,
// entries are mirrored to stderr and the level drops to Debug.
// Safe to call more than once; only the first call takes effect.
func Init(logPath string, debug bool) {
	once.Do(func() {
		rotator := &lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    5, // megabytes
			MaxBackups: 2,
			MaxAge:     28, // days
		}

		var out io.Writer = rotator
		if debug {
			out = io.MultiWriter(rotator, os.Stderr)
		}

		Logger.SetOutput(out)
		Logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		Logger.SetLevel(logrus.InfoLevel)
		if debug {
			Logger.SetLevel(logrus.DebugLevel)
		}
	})
}
