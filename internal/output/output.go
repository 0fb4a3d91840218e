package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

type Output interface {
	Section(icon, title string)
	Header(title string)
	Info(format string, args ...interface{})
	Success(format string, args ...interface{})
	Warning(format string, args ...interface{})
	Error(format string, args ...interface{})
	Detail(format string, args ...interface{})
	Debug(format string, args ...interface{})
	Println(s string)
	Printf(format string, args ...interface{})
}

// Line levels.
const (
	LevelSection = "section"
	LevelHeader  = "header"
	LevelInfo    = "info"
	LevelSuccess = "success"
	LevelWarning = "warning"
	LevelError   = "error"
	LevelDetail  = "detail"
	LevelDebug   = "debug"
)

var prefixes = map[string]string{
	LevelInfo:    "  ",
	LevelSuccess: "  ✅ ",
	LevelWarning: "  ⚠️  ",
	LevelError:   "  ❌ ",
	LevelDetail:  "   ",
	LevelDebug:   "  🔍 [DEBUG] ",
}

func render(level, format string, args ...interface{}) string {
	return prefixes[level] + fmt.Sprintf(format, args...)
}

func section(icon, title string) string {
	return fmt.Sprintf("\n%s %s", icon, title)
}

func header(title string) string {
	return fmt.Sprintf("\n%s\n%s", title, strings.Repeat("=", len(title)))
}

// StreamingOutput writes each line as soon as it is produced.
type StreamingOutput struct {
	writer io.Writer
	mu     sync.Mutex
}

func NewStreamingOutput(writer io.Writer) *StreamingOutput {
	if writer == nil {
		writer = os.Stdout
	}
	return &StreamingOutput{writer: writer}
}

func (o *StreamingOutput) write(s string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprint(o.writer, s)
}

func (o *StreamingOutput) Section(icon, title string) { o.write(section(icon, title) + "\n") }
func (o *StreamingOutput) Header(title string)        { o.write(header(title) + "\n") }

func (o *StreamingOutput) Info(format string, args ...interface{}) {
	o.write(render(LevelInfo, format, args...) + "\n")
}

func (o *StreamingOutput) Success(format string, args ...interface{}) {
	o.write(render(LevelSuccess, format, args...) + "\n")
}

func (o *StreamingOutput) Warning(format string, args ...interface{}) {
	o.write(render(LevelWarning, format, args...) + "\n")
}

func (o *StreamingOutput) Error(format string, args ...interface{}) {
	o.write(render(LevelError, format, args...) + "\n")
}

func (o *StreamingOutput) Detail(format string, args ...interface{}) {
	o.write(render(LevelDetail, format, args...) + "\n")
}

func (o *StreamingOutput) Debug(format string, args ...interface{}) {
	if !IsDebugMode() {
		return
	}
	o.write(render(LevelDebug, format, args...) + "\n")
}

func (o *StreamingOutput) Println(s string) { o.write(s + "\n") }

func (o *StreamingOutput) Printf(format string, args ...interface{}) {
	o.write(fmt.Sprintf(format, args...))
}

type OutputLine struct {
	Level   string
	Message string
}

// BufferedOutput keeps lines in memory, for callers that need the report as a
// value (MCP tool results) rather than on a terminal.
type BufferedOutput struct {
	lines []OutputLine
	mu    sync.Mutex
}

func NewBufferedOutput() *BufferedOutput {
	return &BufferedOutput{lines: make([]OutputLine, 0)}
}

func (o *BufferedOutput) add(level, message string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.lines = append(o.lines, OutputLine{Level: level, Message: message})
}

func (o *BufferedOutput) Section(icon, title string) { o.add(LevelSection, section(icon, title)) }
func (o *BufferedOutput) Header(title string)        { o.add(LevelHeader, header(title)) }

func (o *BufferedOutput) Info(format string, args ...interface{}) {
	o.add(LevelInfo, render(LevelInfo, format, args...))
}

func (o *BufferedOutput) Success(format string, args ...interface{}) {
	o.add(LevelSuccess, render(LevelSuccess, format, args...))
}

func (o *BufferedOutput) Warning(format string, args ...interface{}) {
	o.add(LevelWarning, render(LevelWarning, format, args...))
}

func (o *BufferedOutput) Error(format string, args ...interface{}) {
	o.add(LevelError, render(LevelError, format, args...))
}

func (o *BufferedOutput) Detail(format string, args ...interface{}) {
	o.add(LevelDetail, render(LevelDetail, format, args...))
}

func (o *BufferedOutput) Debug(format string, args ...interface{}) {
	if !IsDebugMode() {
		return
	}
	o.add(LevelDebug, render(LevelDebug, format, args...))
}

func (o *BufferedOutput) Println(s string) { o.add(LevelInfo, s) }

func (o *BufferedOutput) Printf(format string, args ...interface{}) {
	o.add(LevelInfo, fmt.Sprintf(format, args...))
}

func (o *BufferedOutput) Flush(writer io.Writer) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, line := range o.lines {
		fmt.Fprintln(writer, line.Message)
	}
}

// String returns every buffered line joined by newlines.
func (o *BufferedOutput) String() string {
	var b strings.Builder
	o.Flush(&b)
	return b.String()
}

func (o *BufferedOutput) Lines() []OutputLine {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]OutputLine{}, o.lines...)
}

// NoOpOutput is a no-op implementation for tests
type NoOpOutput struct{}

func NewNoOpOutput() *NoOpOutput {
	return &NoOpOutput{}
}

func (o *NoOpOutput) Section(icon, title string)                 {}
func (o *NoOpOutput) Header(title string)                        {}
func (o *NoOpOutput) Info(format string, args ...interface{})    {}
func (o *NoOpOutput) Success(format string, args ...interface{}) {}
func (o *NoOpOutput) Warning(format string, args ...interface{}) {}
func (o *NoOpOutput) Error(format string, args ...interface{})   {}
func (o *NoOpOutput) Detail(format string, args ...interface{})  {}
func (o *NoOpOutput) Debug(format string, args ...interface{})   {}
func (o *NoOpOutput) Println(s string)                           {}
func (o *NoOpOutput) Printf(format string, args ...interface{})  {}
