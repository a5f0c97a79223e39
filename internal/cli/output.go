package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jmgilman/go/fspath/errors"
	"github.com/jmgilman/go/fspath/internal/config"
)

// textual is implemented by results with a plain-text rendering.
type textual interface {
	text() string
}

// pathResult is the outcome of a command mapping one path to another.
type pathResult struct {
	Input  string                `json:"input" yaml:"input"`
	Result string                `json:"result" yaml:"result"`
	Error  *errors.ErrorResponse `json:"error,omitempty" yaml:"error,omitempty"`
}

func (r pathResult) text() string { return r.Result }

// listResult is a directory listing.
type listResult struct {
	Path    string   `json:"path" yaml:"path"`
	Entries []string `json:"entries" yaml:"entries"`
}

func (r listResult) text() string { return strings.Join(r.Entries, "\n") }

// statResult holds every predicate for one path.
type statResult struct {
	Path        string `json:"path" yaml:"path"`
	Exists      bool   `json:"exists" yaml:"exists"`
	Directory   bool   `json:"directory" yaml:"directory"`
	RegularFile bool   `json:"regularFile" yaml:"regularFile"`
	Symlink     bool   `json:"symlink" yaml:"symlink"`
	Hidden      bool   `json:"hidden" yaml:"hidden"`
}

func (r statResult) text() string {
	return fmt.Sprintf("path: %s\nexists: %t\ndirectory: %t\nregular file: %t\nsymlink: %t\nhidden: %t",
		r.Path, r.Exists, r.Directory, r.RegularFile, r.Symlink, r.Hidden)
}

// statResults holds the predicates of several paths in argument order.
type statResults []statResult

func (r statResults) text() string {
	blocks := make([]string, len(r))
	for i, st := range r {
		blocks[i] = st.text()
	}
	return strings.Join(blocks, "\n\n")
}

// boolResult is the outcome of a predicate or mutation.
type boolResult struct {
	Paths []string `json:"paths" yaml:"paths"`
	OK    bool     `json:"ok" yaml:"ok"`
}

func (r boolResult) text() string { return fmt.Sprintf("%t", r.OK) }

// write encodes a result in the configured format.
func (a *app) write(w io.Writer, result textual) error {
	switch a.cfg.Output {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(result); err != nil {
			return err
		}
		return enc.Close()
	default:
		text := result.text()
		if text == "" {
			return nil
		}
		_, err := fmt.Fprintln(w, text)
		return err
	}
}
