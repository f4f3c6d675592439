// Package cli implements the interactive prompt: raw-terminal line
// editing with tab completion against the index, plus rendering of
// resolved documents.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/mkarren/docdex/pkg/config"
	"github.com/mkarren/docdex/pkg/index"
	"github.com/mkarren/docdex/pkg/resolve"
)

const prompt = "docdex> "

// Control bytes handled by the line editor.
const (
	keyCtrlC     = 0x03
	keyCtrlD     = 0x04
	keyTab       = 0x09
	keyBackspace = 0x7f
	keyCtrlH     = 0x08
)

// REPL is the interactive prompt bound to an index store. The store's
// current snapshot is re-read on every keypress, so index reloads take
// effect mid-session.
type REPL struct {
	store   *index.Store
	docsDir string
	cfg     config.REPLConfig
}

// NewREPL creates an interactive prompt.
func NewREPL(store *index.Store, docsDir string, cfg config.REPLConfig) *REPL {
	return &REPL{store: store, docsDir: docsDir, cfg: cfg}
}

// Run loops reading phrases until Ctrl+C or Ctrl+D. Each entered
// phrase is resolved and its document rendered; ambiguous phrases
// print their continuations instead.
func (r *REPL) Run() error {
	fmt.Println("docdex interactive prompt")
	fmt.Println("type a phrase, Tab to complete, Enter to show the document (Ctrl+C to exit)")

	for {
		line, quit, err := r.readLine()
		if err != nil {
			return err
		}
		if quit {
			fmt.Println()
			return nil
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		r.execute(line)
	}
}

// readLine runs one raw-mode editing session: printable bytes extend
// the line, backspace trims it, and tab feeds the line through the
// completion engine with a press counter that resets on any other key.
func (r *REPL) readLine() (string, bool, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return "", false, fmt.Errorf("entering raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	var line string
	iteration := 0
	redraw := func() {
		fmt.Printf("\r\x1b[K%s%s", prompt, line)
	}
	redraw()

	buf := make([]byte, 1)
	for {
		if _, err := os.Stdin.Read(buf); err != nil {
			return "", true, nil
		}

		switch b := buf[0]; b {
		case keyCtrlC, keyCtrlD:
			return "", true, nil

		case '\r', '\n':
			fmt.Print("\r\n")
			return line, false, nil

		case keyBackspace, keyCtrlH:
			if len(line) > 0 {
				line = line[:len(line)-1]
			}
			iteration = 0
			redraw()

		case keyTab:
			iteration++
			comp := resolve.Complete(r.store.Current(), line, iteration, resolve.MatchCommonPrefix)
			if comp.Choices != nil {
				fmt.Print("\r\n" + FormatSuggestions(comp.Choices, r.cfg.SuggestLimit) + "\r\n")
				iteration = 0
			} else {
				if comp.Line != line {
					iteration = 0
				}
				line = comp.Line
			}
			redraw()

		default:
			if b >= 0x20 {
				line += string(rune(b))
				iteration = 0
				redraw()
			}
		}
	}
}

// execute resolves one entered phrase and shows the outcome.
func (r *REPL) execute(input string) {
	res := resolve.Resolve(r.store.Current(), input, resolve.Options{})

	switch {
	case res.Exists:
		if err := ShowDocument(r.docsDir, res.Path, r.cfg.Render); err != nil {
			log.Errorf("Rendering %s: %v", res.Path, err)
		}
	case res.Suggestions != nil:
		fmt.Println(FormatSuggestions(res.Suggestions, r.cfg.SuggestLimit))
	default:
		fmt.Printf("No document found for %q\n", input)
	}
}
