package log

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// ANSI color codes.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[90m"
)

// leadingFields are printed before the remaining, alphabetically sorted fields.
var leadingFields = []string{"group_id", "action", "route"}

// hiddenFields repeat the message and are not printed.
var hiddenFields = map[string]bool{"toast": true}

// PrettyFormatter renders console-friendly lines. Colors are dropped when
// NoColor is set.
type PrettyFormatter struct {
	NoColor bool
}

func (f *PrettyFormatter) paint(color string, s string) string {
	if f.NoColor {
		return s
	}
	return color + s + colorReset
}

// Format renders a logrus entry as a single line.
func (f *PrettyFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	icon, color := levelStyle(entry.Level)

	var b strings.Builder
	b.WriteString(f.paint(colorGray, entry.Time.Format("15:04:05")))
	b.WriteByte(' ')
	b.WriteString(f.paint(color, icon))
	b.WriteByte(' ')
	b.WriteString(entry.Message)

	for _, k := range fieldOrder(entry.Data) {
		fmt.Fprintf(&b, " %s=%v", f.paint(colorCyan, k), entry.Data[k])
	}
	b.WriteByte('\n')
	return []byte(b.String()), nil
}

func levelStyle(level logrus.Level) (string, string) {
	switch level {
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		return "✗", colorRed
	case logrus.WarnLevel:
		return "⚠", colorYellow
	case logrus.InfoLevel:
		return "•", colorGreen
	default:
		return "·", colorGray
	}
}

func fieldOrder(data logrus.Fields) []string {
	keys := make([]string, 0, len(data))
	for _, k := range leadingFields {
		if _, ok := data[k]; ok {
			keys = append(keys, k)
		}
	}
	rest := make([]string, 0, len(data))
	for k := range data {
		if hiddenFields[k] || isLeading(k) {
			continue
		}
		rest = append(rest, k)
	}
	sort.Strings(rest)
	return append(keys, rest...)
}

func isLeading(key string) bool {
	for _, k := range leadingFields {
		if k == key {
			return true
		}
	}
	return false
}

// NewLogger creates a configured logrus logger writing to stdout.
func NewLogger(level string, format string) *logrus.Logger {
	logger := logrus.New()
	Configure(logger, os.Stdout, level, format)
	return logger
}

// Configure sets output, format, and level on an existing logger.
func Configure(logger *logrus.Logger, out io.Writer, level string, format string) {
	if out != nil {
		logger.SetOutput(out)
	}
	setFormatter(logger, format, !isTTY(logger.Out))
	setLevel(logger, level)
}

func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func setFormatter(logger *logrus.Logger, format string, noColor bool) {
	switch format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "pretty":
		logger.SetFormatter(&PrettyFormatter{NoColor: noColor})
	default:
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "15:04:05",
			DisableColors:   noColor,
		})
	}
}

func setLevel(logger *logrus.Logger, level string) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logger.SetLevel(parsed)
}
