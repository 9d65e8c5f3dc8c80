// Package zlog provides leveled, per-package logging with pluggable
// formatters. Packages register a logger under their repo and package
// name at init time; programs pick the verbosity and the output
// format (plain writer, glog-style, or the systemd journal) at
// startup.
package zlog

import (
	"fmt"
	"strings"
	"sync"
)

// LogLevel is the set of all log levels.
type LogLevel int8

const (
	// CRITICAL is for errors which will end the program.
	CRITICAL LogLevel = iota - 1
	// ERROR is for errors that are not fatal but lead to troubling behavior.
	ERROR
	// WARNING is for conditions which are not errors, but are unusual.
	WARNING
	// NOTICE is for normal but significant conditions.
	NOTICE
	// INFO is a log level for common, everyday log updates.
	INFO
	// DEBUG is the default hidden level for more verbose updates.
	DEBUG
	// TRACE is for (potentially) call by call tracing of programs.
	TRACE
)

// Char returns a single-character representation of the log level.
func (l LogLevel) Char() string {
	switch l {
	case CRITICAL:
		return "C"
	case ERROR:
		return "E"
	case WARNING:
		return "W"
	case NOTICE:
		return "N"
	case INFO:
		return "I"
	case DEBUG:
		return "D"
	case TRACE:
		return "T"
	default:
		panic("unhandled log level")
	}
}

// ParseLevel translates a log level string into its level.
func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToUpper(s) {
	case "CRITICAL", "C":
		return CRITICAL, nil
	case "ERROR", "E":
		return ERROR, nil
	case "WARNING", "W":
		return WARNING, nil
	case "NOTICE", "N":
		return NOTICE, nil
	case "INFO", "I":
		return INFO, nil
	case "DEBUG", "D":
		return DEBUG, nil
	case "TRACE", "T":
		return TRACE, nil
	}
	return CRITICAL, fmt.Errorf("couldn't parse log level %s", s)
}

type registry struct {
	lock      sync.Mutex
	loggers   map[string]*PackageLogger
	formatter Formatter
}

var reg = &registry{loggers: make(map[string]*PackageLogger)}

// NewPackageLogger creates (or returns the existing) logger for pkg.
// Define it as a global var in the package that logs.
func NewPackageLogger(repo, pkg string) *PackageLogger {
	reg.lock.Lock()
	defer reg.lock.Unlock()
	key := repo + "/" + pkg
	p, ok := reg.loggers[key]
	if !ok {
		p = &PackageLogger{pkg: pkg, level: INFO}
		reg.loggers[key] = p
	}
	return p
}

// SetGlobalLogLevel sets the level for every registered logger.
func SetGlobalLogLevel(l LogLevel) {
	reg.lock.Lock()
	defer reg.lock.Unlock()
	for _, p := range reg.loggers {
		p.level = l
	}
}

// SetFormatter sets the formatter all loggers write through.
func SetFormatter(f Formatter) {
	reg.lock.Lock()
	defer reg.lock.Unlock()
	reg.formatter = f
}

// PackageLogger writes leveled messages for one package.
type PackageLogger struct {
	pkg   string
	level LogLevel
}

func (p *PackageLogger) log(l LogLevel, format string, args ...interface{}) {
	if p.level < l {
		return
	}
	reg.lock.Lock()
	defer reg.lock.Unlock()
	if reg.formatter != nil {
		reg.formatter.Format(p.pkg, l, fmt.Sprintf(format, args...))
	}
}

func (p *PackageLogger) Criticalf(format string, args ...interface{}) {
	p.log(CRITICAL, format, args...)
}

func (p *PackageLogger) Errorf(format string, args ...interface{}) {
	p.log(ERROR, format, args...)
}

func (p *PackageLogger) Warningf(format string, args ...interface{}) {
	p.log(WARNING, format, args...)
}

func (p *PackageLogger) Noticef(format string, args ...interface{}) {
	p.log(NOTICE, format, args...)
}

func (p *PackageLogger) Infof(format string, args ...interface{}) {
	p.log(INFO, format, args...)
}

func (p *PackageLogger) Debugf(format string, args ...interface{}) {
	p.log(DEBUG, format, args...)
}

func (p *PackageLogger) Tracef(format string, args ...interface{}) {
	p.log(TRACE, format, args...)
}
