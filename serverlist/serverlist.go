package serverlist

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Mode selects what Load does when the requested source cannot be used.
type Mode int

const (
	// ModeFallback logs the problem and returns the default list.
	ModeFallback Mode = iota
	// ModeStrict returns an error wrapping ErrServerListUnavailable.
	ModeStrict
)

func (m Mode) String() string {
	switch m {
	case ModeFallback:
		return "fallback"
	case ModeStrict:
		return "strict"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts a textual mode name into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fallback":
		return ModeFallback, nil
	case "strict":
		return ModeStrict, nil
	default:
		return ModeFallback, fmt.Errorf("unknown server list mode %q (want fallback|strict)", s)
	}
}

var (
	// ErrServerListUnavailable is returned by strict loads when no usable list exists.
	ErrServerListUnavailable = errors.New("serverlist: no usable server list")

	// ErrEmpty is returned when a source contains no endpoints.
	ErrEmpty = errors.New("serverlist: source contains no endpoints")
)

//go:embed default.txt
var defaultSource string

var defaultList = mustParse(defaultSource)

// List is an ordered sequence of endpoint URLs. Duplicates are allowed.
type List []string

// Clone returns a copy of the list.
func (l List) Clone() List {
	return append(List(nil), l...)
}

// Default returns a copy of the built-in endpoint list.
func Default() List {
	return defaultList.Clone()
}

// Parse reads a list from r.
func Parse(r io.Reader) (List, error) {
	var list List
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		list = append(list, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read server list: %w", err)
	}
	if len(list) == 0 {
		return nil, ErrEmpty
	}
	return list, nil
}

// Load returns the list stored at path, or the default list when path is empty.
func Load(path string, mode Mode, logger *slog.Logger) (List, error) {
	if path == "" {
		return Default(), nil
	}
	if logger == nil {
		logger = slog.Default()
	}

	list, err := readFile(path)
	if err == nil {
		logger.Debug("loaded server list", "path", path, "servers", len(list))
		return list, nil
	}

	if mode == ModeStrict {
		return nil, fmt.Errorf("%w: %s: %w", ErrServerListUnavailable, path, err)
	}
	logger.Warn("could not use server list, falling back to built-in list",
		"path", path,
		"err", err,
		"servers", len(defaultList))
	return Default(), nil
}

func readFile(path string) (List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

func mustParse(src string) List {
	list, err := Parse(strings.NewReader(src))
	if err != nil {
		panic(fmt.Sprintf("serverlist: invalid built-in list: %v", err))
	}
	return list
}
