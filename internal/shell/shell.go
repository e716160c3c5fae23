// Package shell owns everything the user sees and types: banners, menus,
// index prompts, and the event tables. It hands validated primitives to the
// session layer and knows nothing about where the data came from.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

type Shell struct {
	in       *bufio.Scanner
	out      io.Writer
	terminal bool
	eof      bool
}

func New() *Shell {
	s := NewWithIO(os.Stdin, os.Stdout)
	s.terminal = true
	return s
}

// NewWithIO wires the shell to arbitrary streams; tests script a session by
// handing in a strings.Reader.
func NewWithIO(in io.Reader, out io.Writer) *Shell {
	return &Shell{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

func (s *Shell) Printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func (s *Shell) Println(line string) {
	fmt.Fprintln(s.out, line)
}

func (s *Shell) Banner() {
	s.Println("!!!!!!!!!!!!!!!!!!!")
	s.Println("BYU ACTIVITY FINDER")
	s.Println("!!!!!!!!!!!!!!!!!!!")
	s.Println("")
}

func (s *Shell) Welcome() {
	s.Println("")
	s.Println("!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!")
	s.Println("WELCOME TO BYU ACTIVITY FINDER")
	s.Println("!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!")
	s.Println("")
}

func (s *Shell) Farewell() {
	s.Println("")
	s.Println("!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!")
	s.Println("THANKS FOR USING BYU ACTIVITY FINDER")
	s.Println("!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!")
	s.Println("")
}

// AskLine prompts and returns one trimmed line of input. A closed input
// stream reads as an endless empty line.
func (s *Shell) AskLine(message string) string {
	s.Printf("%s ", message)
	if s.eof {
		return ""
	}
	if !s.in.Scan() {
		s.eof = true
		return ""
	}
	return strings.TrimSpace(s.in.Text())
}

// AskSecret reads a line without echoing it, for the API key. Falls back to
// a plain read when stdin is not a terminal (tests, pipes).
func (s *Shell) AskSecret(message string) string {
	fd := int(os.Stdin.Fd())
	if !s.terminal || !term.IsTerminal(fd) {
		return s.AskLine(message)
	}
	s.Printf("%s ", message)
	b, err := term.ReadPassword(fd)
	s.Println("")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}

// Menu shows numbered options and re-prompts until one is chosen.
func (s *Shell) Menu(message string, options []string) string {
	for {
		s.Println("")
		s.Println(message)
		for i, opt := range options {
			s.Printf("  %d) %s\n", i+1, opt)
		}
		answer := s.AskLine(">")
		if s.eof {
			// No more input is ever coming; take the escape hatch, which is
			// the last option (BACK or QUIT) on every menu.
			return options[len(options)-1]
		}
		n, err := strconv.Atoi(answer)
		if err == nil && n >= 1 && n <= len(options) {
			return options[n-1]
		}
		// Accept the option text too, so "BACK" works as typed.
		for _, opt := range options {
			if strings.EqualFold(answer, opt) {
				return opt
			}
		}
		s.Println("\nThat input is not recognized. Please try again.")
	}
}

// AskIndex prompts for a table index. ok is false when the user pressed
// Enter to go back. A non-numeric answer re-prompts.
func (s *Shell) AskIndex(message string) (index int, ok bool) {
	for {
		answer := s.AskLine(message)
		if answer == "" {
			return 0, false
		}
		n, err := strconv.Atoi(answer)
		if err != nil {
			s.Println("\nThat index is not recognizable. Please try again.")
			continue
		}
		return n, true
	}
}

// Confirm asks a yes/no question; default is no.
func (s *Shell) Confirm(message string) bool {
	answer := strings.ToLower(s.AskLine(message + " (y/N)"))
	return answer == "y" || answer == "yes"
}

// WaitForEnter blocks until the user presses Enter.
func (s *Shell) WaitForEnter(message string) {
	s.AskLine(message)
}
