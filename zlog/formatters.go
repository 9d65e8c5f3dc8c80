package zlog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/coreos/go-systemd/v22/journal"
)

// Formatter renders one log record somewhere.
type Formatter interface {
	Format(pkg string, level LogLevel, msg string)
	Flush()
}

// NewStringFormatter writes bare "pkg: msg" lines to w.
func NewStringFormatter(w io.Writer) Formatter {
	return &stringFormatter{w: bufio.NewWriter(w)}
}

type stringFormatter struct {
	w *bufio.Writer
}

func (s *stringFormatter) Format(pkg string, _ LogLevel, msg string) {
	if pkg != "" {
		s.w.WriteString(pkg + ": ")
	}
	s.w.WriteString(msg)
	if len(msg) == 0 || msg[len(msg)-1] != '\n' {
		s.w.WriteByte('\n')
	}
	s.w.Flush()
}

func (s *stringFormatter) Flush() {
	s.w.Flush()
}

// NewPrettyFormatter prefixes records with a timestamp and the level
// character, glog fashion.
func NewPrettyFormatter(w io.Writer) Formatter {
	return &prettyFormatter{w: bufio.NewWriter(w)}
}

type prettyFormatter struct {
	w *bufio.Writer
}

func (p *prettyFormatter) Format(pkg string, l LogLevel, msg string) {
	now := time.Now()
	hour, minute, second := now.Clock()
	fmt.Fprintf(p.w, "%s%02d%02d %02d:%02d:%02d.%06d ", l.Char(),
		int(now.Month()), now.Day(), hour, minute, second,
		now.Nanosecond()/1000)
	if pkg != "" {
		p.w.WriteString(pkg + ": ")
	}
	p.w.WriteString(msg)
	if len(msg) == 0 || msg[len(msg)-1] != '\n' {
		p.w.WriteByte('\n')
	}
	p.w.Flush()
}

func (p *prettyFormatter) Flush() {
	p.w.Flush()
}

// NewJournalFormatter sends records to the systemd journal. It returns
// an error when no journal socket is available; a record that fails to
// send is written to stderr instead.
func NewJournalFormatter() (Formatter, error) {
	if !journal.Enabled() {
		return nil, fmt.Errorf("journal socket not available")
	}
	return &journalFormatter{}, nil
}

type journalFormatter struct{}

func (j *journalFormatter) Format(pkg string, l LogLevel, msg string) {
	pri := journalPriority(l)
	vars := map[string]string{}
	if pkg != "" {
		vars["PACKAGE"] = pkg
	}
	if err := journal.Send(msg, pri, vars); err != nil {
		fmt.Fprintln(os.Stderr, msg)
	}
}

func (j *journalFormatter) Flush() {}

func journalPriority(l LogLevel) journal.Priority {
	switch l {
	case CRITICAL:
		return journal.PriCrit
	case ERROR:
		return journal.PriErr
	case WARNING:
		return journal.PriWarning
	case NOTICE:
		return journal.PriNotice
	case INFO:
		return journal.PriInfo
	default: // DEBUG, TRACE
		return journal.PriDebug
	}
}
