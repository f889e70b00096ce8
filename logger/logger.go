package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Level is the tag written in the level field of a line.
// The four constants below get their own console color; any other value is
// accepted as-is and rendered with the neutral style.
type Level string

const (
	// InfoLevel tags informational messages.
	InfoLevel Level = "INFO"
	// ErrorLevel tags error messages.
	ErrorLevel Level = "ERROR"
	// WarnLevel tags warnings.
	WarnLevel Level = "WARN"
	// InitLevel tags initialization messages.
	InitLevel Level = "INIT"
)

// Known reports whether l is one of the predefined levels.
func (l Level) Known() bool {
	switch l {
	case InfoLevel, ErrorLevel, WarnLevel, InitLevel:
		return true
	default:
		return false
	}
}

const (
	fullTimestampLayout  = "2006-01-02 15:04:05"
	shortTimestampLayout = "15:04"

	fieldSeparator = "::"
	headerDashes   = "-----------------------"
)

// Config defines the options for New. The zero value logs to the console only.
// A Logger never changes its Config after construction.
type Config struct {
	// WriteToFile mirrors every line to the log file and keeps it in memory for FlushLogs.
	// Default: false
	WriteToFile bool
	// InDirectory places the log file under ./logs, creating it when WriteToFile is set.
	// Default: false
	InDirectory bool
	// Session uses a timestamped log_<time>.txt per Logger instead of log.txt.
	// Default: false
	Session bool
	// Prefix is inserted as [Prefix] after the timestamp; empty omits the field.
	// Default: ""
	Prefix string
	// ShortTimestamp renders timestamps as HH:MM instead of YYYY-MM-DD HH:MM:SS.
	// Default: false
	ShortTimestamp bool
	// Output receives the colorized console lines.
	// Default: nil (standard output)
	Output io.Writer
}

// Dependency injection points for testing.
var (
	outStdout io.Writer = os.Stdout
	now                 = time.Now
	getwd               = os.Getwd
)

// Logger writes leveled lines to the console and, optionally, to a log file.
// Lines written to the file are also kept in memory and handed out by FlushLogs.
// A Logger is safe for use by multiple goroutines of one process.
type Logger struct {
	mu sync.Mutex

	config   Config
	path     string
	out      io.Writer
	renderer *lipgloss.Renderer
	styles   styles

	// allLogs is the full history, pendingLogs the lines since the last flush.
	allLogs     []string
	pendingLogs []string
}

// New resolves the log file path and, when file writing is enabled, creates
// the logs directory if needed and starts the file with a header line.
// A non-session log.txt is truncated on every New.
func New(config Config) (*Logger, error) {
	out := config.Output
	if out == nil {
		out = outStdout
	}

	l := &Logger{
		config:      config,
		out:         out,
		renderer:    lipgloss.NewRenderer(out),
		allLogs:     []string{},
		pendingLogs: []string{},
	}
	l.styles = newStyles(l.renderer)

	path, err := resolvePath(config)
	if err != nil {
		return nil, err
	}
	l.path = path

	if config.WriteToFile {
		header := headerDashes + l.timestamp() + headerDashes + "\n"
		if err := writeLine(l.path, os.O_TRUNC, header); err != nil {
			return nil, err
		}
	}

	return l, nil
}

// Path returns the log file path. It is resolved even when file writing is disabled.
func (l *Logger) Path() string {
	return l.path
}

// Config returns the options the Logger was created with.
func (l *Logger) Config() Config {
	return l.config
}

// timestamp renders the current wall-clock time in the configured layout.
func (l *Logger) timestamp() string {
	if l.config.ShortTimestamp {
		return now().Format(shortTimestampLayout)
	}
	return now().Format(fullTimestampLayout)
}

// entry is one log line before rendering.
type entry struct {
	timestamp string
	prefix    string
	level     Level
	message   string
}

// plain renders the file/buffer form of the entry, newline terminated.
func (e entry) plain() string {
	fields := make([]string, 0, 4)
	fields = append(fields, "["+e.timestamp+"]")
	if e.prefix != "" {
		fields = append(fields, "["+e.prefix+"]")
	}
	fields = append(fields, string(e.level), e.message)
	return strings.Join(fields, fieldSeparator) + "\n"
}

// Emit writes msg with the given level tag. Unknown tags are accepted.
// With file writing enabled the line is appended to the log file and to both
// in-memory buffers; the console line is written in every case.
// File errors are returned; console write errors are ignored.
func (l *Logger) Emit(level Level, msg string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	e := entry{
		timestamp: l.timestamp(),
		prefix:    l.config.Prefix,
		level:     level,
		message:   msg,
	}

	var err error
	if l.config.WriteToFile {
		line := e.plain()
		if err = writeLine(l.path, os.O_APPEND, line); err == nil {
			l.allLogs = append(l.allLogs, line)
			l.pendingLogs = append(l.pendingLogs, line)
		}
	}

	_, _ = io.WriteString(l.out, l.styles.render(e)+"\n")
	return err
}

// Log writes an INFO line.
func (l *Logger) Log(msg string) error {
	return l.Emit(InfoLevel, msg)
}

// Error writes an ERROR line.
func (l *Logger) Error(msg string) error {
	return l.Emit(ErrorLevel, msg)
}

// Warn writes a WARN line.
func (l *Logger) Warn(msg string) error {
	return l.Emit(WarnLevel, msg)
}

// Init writes an INIT line.
func (l *Logger) Init(msg string) error {
	return l.Emit(InitLevel, msg)
}

// Logf writes an INFO line formatted with fmt.Sprintf.
func (l *Logger) Logf(format string, v ...any) error {
	return l.Emit(InfoLevel, fmt.Sprintf(format, v...))
}

// Errorf writes an ERROR line formatted with fmt.Sprintf.
func (l *Logger) Errorf(format string, v ...any) error {
	return l.Emit(ErrorLevel, fmt.Sprintf(format, v...))
}

// Warnf writes a WARN line formatted with fmt.Sprintf.
func (l *Logger) Warnf(format string, v ...any) error {
	return l.Emit(WarnLevel, fmt.Sprintf(format, v...))
}

// Initf writes an INIT line formatted with fmt.Sprintf.
func (l *Logger) Initf(format string, v ...any) error {
	return l.Emit(InitLevel, fmt.Sprintf(format, v...))
}

// FlushLogs returns the lines written to the file since the previous flush
// and clears them. With fromStart set it returns the whole history instead.
// Lines keep their emission order and trailing newline. The result is never nil.
func (l *Logger) FlushLogs(fromStart bool) []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	if fromStart {
		l.pendingLogs = append([]string{}, l.allLogs...)
	}
	flushed := make([]string, len(l.pendingLogs))
	copy(flushed, l.pendingLogs)
	l.pendingLogs = []string{}
	return flushed
}
