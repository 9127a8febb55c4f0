package logger

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

// Level is the severity of a log line.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

func (l Level) String() string {
	if l < LevelDebug || l > LevelError {
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
	return levelNames[l]
}

// ParseLevel accepts the names printed by Level.String, in any case.
func ParseLevel(s string) (Level, error) {
	for i, name := range levelNames {
		if strings.EqualFold(s, name) {
			return Level(i), nil
		}
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

const (
	dirName = ".goanime-site"

	// DefaultFile is the log file name inside the log directory.
	DefaultFile = "debug.log"

	// DefaultMaxSize is the size past which the log is rotated on open.
	DefaultMaxSize = 1 << 20

	// LevelEnv overrides the level when --debug is not given.
	LevelEnv = "GOANIME_SITE_LOG_LEVEL"
)

// Options configure New.
type Options struct {
	Dir     string    // defaults to ~/.goanime-site
	File    string    // defaults to DefaultFile
	Level   Level     // lines below it are dropped
	Echo    io.Writer // optional second copy of every line
	MaxSize int64     // defaults to DefaultMaxSize; negative disables rotation
}

// Logger writes timestamped, component tagged lines to a file.
type Logger struct {
	mu    sync.Mutex
	out   io.Writer
	echo  io.Writer
	file  *os.File
	path  string
	level Level
	now   func() time.Time
}

// New opens (appending) the log file described by opts. A file larger than
// MaxSize is moved aside to "<file>.1" first, replacing any older copy.
func New(opts Options) (*Logger, error) {
	if opts.Dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		opts.Dir = filepath.Join(home, dirName)
	}
	if opts.File == "" {
		opts.File = DefaultFile
	}
	if opts.MaxSize == 0 {
		opts.MaxSize = DefaultMaxSize
	}
	if err := os.MkdirAll(opts.Dir, 0755); err != nil {
		return nil, err
	}

	path := filepath.Join(opts.Dir, opts.File)
	if info, err := os.Stat(path); err == nil && opts.MaxSize > 0 && info.Size() > opts.MaxSize {
		if err := os.Rename(path, path+".1"); err != nil {
			return nil, fmt.Errorf("rotate %s: %w", path, err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	return &Logger{out: f, echo: opts.Echo, file: f, path: path, level: opts.Level, now: time.Now}, nil
}

// Path is the file being written, or "" when logging to stderr.
func (l *Logger) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Close closes the log file
func (l *Logger) Close() {
	if l == nil || l.file == nil {
		return
	}
	l.output(2, LevelInfo, "", "=== GoAnime Site stopped ===")
	l.mu.Lock()
	defer l.mu.Unlock()
	l.file.Close()
	l.file = nil
	l.out = io.Discard
}

// output formats one line. skip is the number of frames between the
// caller being reported and output itself.
func (l *Logger) output(skip int, level Level, scope, msg string) {
	if l == nil || l.out == nil || level < l.level {
		return
	}
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		file, line = "???", 0
	}

	var b strings.Builder
	b.WriteString(l.now().Format("2006-01-02 15:04:05"))
	b.WriteString(" [" + level.String() + "] ")
	if scope != "" {
		b.WriteString(scope + ": ")
	}
	fmt.Fprintf(&b, "%s (%s:%d)\n", msg, filepath.Base(file), line)

	l.mu.Lock()
	defer l.mu.Unlock()
	io.WriteString(l.out, b.String())
	if l.echo != nil {
		io.WriteString(l.echo, b.String())
	}
}

func (l *Logger) Debug(format string, args ...interface{}) {
	l.output(2, LevelDebug, "", fmt.Sprintf(format, args...))
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.output(2, LevelInfo, "", fmt.Sprintf(format, args...))
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.output(2, LevelWarn, "", fmt.Sprintf(format, args...))
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.output(2, LevelError, "", fmt.Sprintf(format, args...))
}

// LogCommand logs an external command started by the UI, such as the URL opener.
func (l *Logger) LogCommand(cmd string, args []string, err error) {
	l.logCommand(cmd, args, err)
}

func (l *Logger) logCommand(cmd string, args []string, err error) {
	full := strings.TrimSpace(cmd + " " + strings.Join(args, " "))
	if err != nil {
		l.output(3, LevelError, "exec", fmt.Sprintf("%s: %v", full, err))
		return
	}
	l.output(3, LevelDebug, "exec", full)
}

var (
	stdMu sync.Mutex
	std   *Logger
)

// Initialize sets up the process-wide logger in ~/.goanime-site at info
// level, or debug with a stderr copy in debug mode. When that
// directory is not writable it falls back to the temp dir, then to stderr.
// Later calls are no-ops.
func Initialize(debugMode bool) error {
	stdMu.Lock()
	defer stdMu.Unlock()
	if std != nil {
		return nil
	}

	opts := Options{Level: LevelInfo}
	if debugMode {
		opts.Level = LevelDebug
		opts.Echo = os.Stderr
	} else if v := os.Getenv(LevelEnv); v != "" {
		if lvl, err := ParseLevel(v); err == nil {
			opts.Level = lvl
		}
	}
	l, err := New(opts)
	if err != nil {
		opts.Dir, opts.File = os.TempDir(), "goanime-site-"+DefaultFile
		l, err = New(opts)
	}
	if err != nil {
		l = &Logger{out: os.Stderr, level: opts.Level, now: time.Now}
	}
	std = l

	l.Info("=== GoAnime Site started ===")
	l.Info("Log file: %s", orStderr(l.path))
	l.Info("Debug mode: %v", debugMode)
	return nil
}

func orStderr(path string) string {
	if path == "" {
		return "(stderr)"
	}
	return path
}

// SetDefault replaces the process-wide logger and returns the previous one.
func SetDefault(l *Logger) *Logger {
	stdMu.Lock()
	defer stdMu.Unlock()
	prev := std
	std = l
	return prev
}

// GetLogger returns the process-wide logger, initializing it on first use.
func GetLogger() *Logger {
	stdMu.Lock()
	l := std
	stdMu.Unlock()
	if l == nil {
		Initialize(false)
		stdMu.Lock()
		l = std
		stdMu.Unlock()
	}
	return l
}

// GetLogPath returns the path to the log file
func GetLogPath() string {
	stdMu.Lock()
	l := std
	stdMu.Unlock()
	if p := l.Path(); p != "" {
		return p
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, dirName, DefaultFile)
}

// Scope tags lines with the component that wrote them.
type Scope string

// For returns the scope for a component. The process-wide logger is looked
// up on every call, so scopes can be created before Initialize runs.
func For(component string) Scope { return Scope(component) }

func (s Scope) Debug(format string, args ...interface{}) {
	GetLogger().output(2, LevelDebug, string(s), fmt.Sprintf(format, args...))
}

func (s Scope) Info(format string, args ...interface{}) {
	GetLogger().output(2, LevelInfo, string(s), fmt.Sprintf(format, args...))
}

func (s Scope) Warn(format string, args ...interface{}) {
	GetLogger().output(2, LevelWarn, string(s), fmt.Sprintf(format, args...))
}

func (s Scope) Error(format string, args ...interface{}) {
	GetLogger().output(2, LevelError, string(s), fmt.Sprintf(format, args...))
}

// Static functions for easier access
func Debug(format string, args ...interface{}) {
	GetLogger().output(2, LevelDebug, "", fmt.Sprintf(format, args...))
}

func Info(format string, args ...interface{}) {
	GetLogger().output(2, LevelInfo, "", fmt.Sprintf(format, args...))
}

func Warn(format string, args ...interface{}) {
	GetLogger().output(2, LevelWarn, "", fmt.Sprintf(format, args...))
}

func Error(format string, args ...interface{}) {
	GetLogger().output(2, LevelError, "", fmt.Sprintf(format, args...))
}

func LogCommand(cmd string, args []string, err error) {
	GetLogger().logCommand(cmd, args, err)
}

// Tail returns the last n non-blank lines of the log at path.
func Tail(path string, n int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
		if n > 0 && len(lines) > n {
			lines = lines[1:]
		}
	}
	return lines, sc.Err()
}
