// Package logger provides the leveled logger used by the command-line tool.
package logger

import (
	"io"
	"log"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Logger writes informational and error messages.
type Logger interface {
	Infof(format string, v ...interface{})
	Errorf(format string, v ...interface{})
}

type stdLogger struct {
	l *log.Logger
	p *message.Printer
}

// New returns a Logger writing to w, prefixed with prog.  Numbers are
// formatted with English thousands separators.
func New(w io.Writer, prog string) Logger {
	return &stdLogger{
		l: log.New(w, prog+": ", 0),
		p: message.NewPrinter(language.English),
	}
}

func (l *stdLogger) Infof(format string, v ...interface{}) {
	l.l.Print("[INFO] " + l.p.Sprintf(format, v...))
}

func (l *stdLogger) Errorf(format string, v ...interface{}) {
	l.l.Print("[ERROR] " + l.p.Sprintf(format, v...))
}

var _ Logger = (*stdLogger)(nil)
