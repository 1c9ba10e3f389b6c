package engine

import (
	"fmt"
	"log"
	"os"
)

// OpenLog opens (creating if necessary) the engine's log file at path and
// directs the standard logger's output to it. Rotation is driven by
// Cfg.LogFileSize in the cycle preamble.
func (e *Engine) OpenLog(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("engine: opening log file %q: %w", path, err)
	}

	e.logFile = f
	e.logPath = path
	log.SetOutput(f)

	return nil
}

// rotateLogIfNeeded backs up and reopens the log file once it has grown
// past Cfg.LogFileSize. I/O errors here are never loop-fatal: they are
// logged to stderr and the rotation is simply skipped for this cycle.
func (e *Engine) rotateLogIfNeeded() {
	if e.logFile == nil || e.Cfg.LogFileSize <= 0 {
		return
	}

	info, err := e.logFile.Stat()
	if err != nil {
		fmt.Fprintf(os.Stderr, "engine: stat log file: %v\n", err)
		return
	}

	if info.Size() <= e.Cfg.LogFileSize {
		return
	}

	backupPath := e.logPath + ".bak"
	if err := e.logFile.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "engine: closing log file before rotation: %v\n", err)
		return
	}

	if err := os.Rename(e.logPath, backupPath); err != nil {
		fmt.Fprintf(os.Stderr, "engine: renaming log file: %v\n", err)
	}

	if err := e.OpenLog(e.logPath); err != nil {
		fmt.Fprintf(os.Stderr, "engine: reopening log file: %v\n", err)
	}
}
