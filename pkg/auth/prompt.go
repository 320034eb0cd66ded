package auth

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompt drives the interactive half of the authorization-code flow
// (spec.md §9 "OAuth prompt abstraction"): given the URL the user must
// open in a browser, it returns the redirect URL (or just the
// authorization code) the authority sent back. Embedding applications
// that have their own UI supply their own Prompt instead of the default
// stderr/stdin one.
type Prompt interface {
	// Authorize presents authorizeURL to the user and returns whatever
	// they paste back once they complete sign-in.
	Authorize(authorizeURL string) (string, error)
}

// StdPrompt is the default Prompt: it prints instructions to stderr and
// reads a line from stdin. When stdin is not a terminal (piped input, a
// CI runner, an embedding process feeding the value programmatically) it
// skips the human-oriented instructions and just reads the line, since
// nobody is there to read them.
type StdPrompt struct {
	In  io.Reader
	Out io.Writer
}

// NewStdPrompt returns a StdPrompt reading from os.Stdin and writing
// instructions to os.Stderr.
func NewStdPrompt() *StdPrompt {
	return &StdPrompt{In: os.Stdin, Out: os.Stderr}
}

func (p *StdPrompt) Authorize(authorizeURL string) (string, error) {
	in := p.In
	if in == nil {
		in = os.Stdin
	}
	out := p.Out
	if out == nil {
		out = os.Stderr
	}

	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprintln(out, "Open the following URL in a browser and sign in:")
		fmt.Fprintln(out, authorizeURL)
		fmt.Fprintln(out, "Paste the redirect URL you land on here, then press Enter:")
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return "", &AuthError{Kind: ErrorKindUserAborted, Cause: err}
	}

	return strings.TrimSpace(line), nil
}
