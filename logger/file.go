package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	logDirName       = "logs"
	logFileName      = "log.txt"
	sessionLayout    = "2006-01-02_15-04-05.000000"
	logFilePerm      = 0o644
	logDirectoryPerm = 0o755
)

var (
	// ErrDirectoryCreation is returned by New when the logs directory cannot be created.
	ErrDirectoryCreation = errors.New("create log directory")
	// ErrFileOpen is returned when the log file cannot be opened.
	ErrFileOpen = errors.New("open log file")
	// ErrFileWrite is returned when writing or closing the log file fails.
	ErrFileWrite = errors.New("write log file")
)

// session stamps handed out so far in this process
var (
	sessionMu   sync.Mutex
	lastSession time.Time
)

// nextSessionStamp returns the current time formatted for a session file name.
// Stamps are strictly increasing within the process, so two session Loggers
// never resolve to the same file.
func nextSessionStamp() string {
	sessionMu.Lock()
	defer sessionMu.Unlock()

	t := now().Truncate(time.Microsecond)
	if !t.After(lastSession) {
		t = lastSession.Add(time.Microsecond)
	}
	lastSession = t
	return t.Format(sessionLayout)
}

// resolvePath computes the log file path from the working directory and
// creates the logs directory when it is needed and missing.
func resolvePath(config Config) (string, error) {
	dir, err := getwd()
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}

	if config.InDirectory {
		dir = filepath.Join(dir, logDirName)
		if config.WriteToFile {
			if err := ensureDir(dir); err != nil {
				return "", err
			}
		}
	}

	name := logFileName
	if config.Session {
		name = "log_" + nextSessionStamp() + ".txt"
	}
	return filepath.Join(dir, name), nil
}

// ensureDir creates dir (one level only) unless it already is a directory.
func ensureDir(dir string) error {
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		return nil
	}
	if err := os.Mkdir(dir, logDirectoryPerm); err != nil {
		return fmt.Errorf("%w: %w", ErrDirectoryCreation, err)
	}
	return nil
}

// writeLine opens path with the extra flag (os.O_TRUNC or os.O_APPEND),
// writes line and closes the file again, whatever happens.
func writeLine(path string, flag int, line string) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|flag, logFilePerm)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFileOpen, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrFileWrite, cerr)
		}
	}()

	if _, err := io.WriteString(f, line); err != nil {
		return fmt.Errorf("%w: %w", ErrFileWrite, err)
	}
	return nil
}
