// Package logger provides a small leveled logger for command-line tools:
// timestamped, colorized console lines with an optional mirrored log file and
// in-memory retrieval of what was written.
//
// # Line Format
//
// Every line is made of fields joined by "::":
//
//	[2024-01-01 10:00:00]::[APP]::ERROR::disk full
//
// The [APP] field is present only when Config.Prefix is set. With
// Config.ShortTimestamp the timestamp is rendered as HH:MM. The console gets
// the same fields with colors applied; the file gets the plain text.
//
// # Levels
//
// Log, Error, Warn and Init write INFO, ERROR, WARN and INIT lines. Emit
// accepts any other tag and renders it with a neutral style. There is no
// level filtering: every call emits.
//
// # File Output
//
// With Config.WriteToFile the line is also appended to log.txt in the working
// directory (./logs/log.txt with Config.InDirectory, log_<time>.txt with
// Config.Session). The file is opened and closed for every line, so nothing
// needs closing. New starts the file with a header line and truncates a
// reused log.txt.
//
// # Usage
//
//	log, err := logger.New(logger.Config{WriteToFile: true, Prefix: "APP"})
//	if err != nil {
//	    return err
//	}
//	log.Init("system initialized")
//	log.Errorf("disk %s", "full")
//
//	pending := log.FlushLogs(false) // lines since the last flush
//	history := log.FlushLogs(true)  // every line so far
package logger
