package utils

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// SetupLogging routes the process log to stdout and a rotating file under the
// data directory.
func SetupLogging(dataDir string) {
	rotator := &lumberjack.Logger{
		Filename:   filepath.Join(dataDir, "jumpbot.log"),
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     14, // days
	}
	log.SetOutput(io.MultiWriter(os.Stdout, rotator))
}
