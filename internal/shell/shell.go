// Package shell implements the interactive command loop driving a
// record store: one command is read, dispatched and fully reported
// before the next one, and no error stops the loop.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"

	"github.com/vsokolov/departures/internal/record"
	"github.com/vsokolov/departures/internal/storage"
)

// UnknownCommandError reports an input line that matches no command.
type UnknownCommandError struct {
	Command string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("%s -> unknown command", e.Command)
}

var (
	errorText = color.New(color.FgRed)
	warnText  = color.New(color.FgYellow)
)

// Shell reads commands line by line and invokes store operations. The
// core never logs; the shell logs every outcome around its calls to
// the injected logger.
type Shell struct {
	kind   record.Kind
	store  *record.Store
	in     *bufio.Scanner
	out    io.Writer
	errOut io.Writer
	log    *slog.Logger
}

// New returns a shell over the given store. Input is consumed line by
// line from in; results go to out, errors to errOut.
func New(kind record.Kind, store *record.Store, in io.Reader, out, errOut io.Writer, log *slog.Logger) *Shell {
	return &Shell{
		kind:   kind,
		store:  store,
		in:     bufio.NewScanner(in),
		out:    out,
		errOut: errOut,
		log:    log,
	}
}

// Run processes commands until exit or end of input. It returns an
// error only when reading the input itself fails.
func (s *Shell) Run() error {
	for {
		fmt.Fprint(s.out, ">>> ")
		line, ok := s.readLine()
		if !ok {
			return s.in.Err()
		}
		if s.dispatch(line) {
			return nil
		}
	}
}

// dispatch runs one command line and reports whether the loop should
// terminate. The command word is matched case-insensitively; the
// remainder of the line is passed through with its case intact.
func (s *Shell) dispatch(line string) (done bool) {
	cmd, arg := splitCommand(line)
	switch {
	case cmd == "exit":
		return true
	case cmd == "add":
		s.runAdd()
	case cmd == "list":
		s.runList()
	case cmd == "select" && arg != "":
		s.runSelect(arg)
	case cmd == "load" && arg != "":
		s.runLoad(arg)
	case cmd == "save" && arg != "":
		s.runSave(arg)
	case cmd == "help":
		s.printHelp()
	default:
		err := &UnknownCommandError{Command: line}
		errorText.Fprintln(s.errOut, err)
		s.log.Error("unknown command", "command", line)
	}
	return false
}

// splitCommand separates the command word from the rest of the line.
// The argument may embed spaces (file paths); only its edges are
// trimmed.
func splitCommand(line string) (cmd, arg string) {
	cmd, arg, _ = strings.Cut(strings.TrimSpace(line), " ")
	return strings.ToLower(cmd), strings.TrimSpace(arg)
}

func (s *Shell) runAdd() {
	name := s.prompt(s.kind.NamePrompt)
	no := s.prompt(s.kind.NoPrompt)
	timeStr := s.prompt(s.kind.TimePrompt)

	if err := s.store.Add(name, no, timeStr); err != nil {
		errorText.Fprintln(s.errOut, err)
		s.log.Error("add failed", "name", name, "no", no, "time", timeStr, "err", err.Error())
		return
	}
	s.log.Info("record added", "name", name, "no", no, "time", timeStr)
}

func (s *Shell) runList() {
	fmt.Fprintln(s.out, s.store.Table())
	s.log.Info("records listed", "count", s.store.Len())
}

func (s *Shell) runSelect(no string) {
	found := s.store.Select(no)
	if len(found) == 0 {
		warnText.Fprintf(s.out, "No %s found with number %s\n", s.kind.Plural, no)
		s.log.Warn("no records found", "no", no)
		return
	}

	for i, r := range found {
		fmt.Fprintf(s.out, "%4d: %s\n", i+1, r.Name)
	}
	s.log.Info("records selected", "no", no, "count", len(found))
}

func (s *Shell) runLoad(path string) {
	recs, err := storage.Load(path, s.kind)
	if err != nil {
		errorText.Fprintln(s.errOut, err)
		s.log.Error("load failed", "path", path, "err", err.Error())
		return
	}
	s.store.Replace(recs)
	s.log.Info("records loaded", "path", path, "count", len(recs))
}

func (s *Shell) runSave(path string) {
	if err := storage.Save(path, s.kind, s.store.Records()); err != nil {
		errorText.Fprintln(s.errOut, err)
		s.log.Error("save failed", "path", path, "err", err.Error())
		return
	}
	s.log.Info("records saved", "path", path, "count", s.store.Len())
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, "Commands:")
	fmt.Fprintf(s.out, "  add            - add a %s\n", s.kind.Noun)
	fmt.Fprintf(s.out, "  list           - print the %s table\n", s.kind.Noun)
	fmt.Fprintf(s.out, "  select <no>    - find %s by number\n", s.kind.Plural)
	fmt.Fprintln(s.out, "  load <file>    - load records from an XML file")
	fmt.Fprintln(s.out, "  save <file>    - save records to an XML file")
	fmt.Fprintln(s.out, "  help           - show this help")
	fmt.Fprintln(s.out, "  exit           - quit")
}

func (s *Shell) prompt(text string) string {
	fmt.Fprint(s.out, text)
	line, _ := s.readLine()
	return line
}

func (s *Shell) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}
