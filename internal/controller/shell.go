package controller

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/project/catalog/internal/log"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

type outcome = string

const (
	outcomeOK       outcome = "ok"
	outcomeRejected         = "rejected"
	outcomeInvalid          = "invalid"
	outcomeError            = "error"
)

const sortFlag = "1"

type command struct {
	key   string
	name  string
	title string
	run   func(i *implementation, ctx context.Context, s *session) (outcome, error)
}

// exit has no handler.
var commands = []command{
	{key: "1", name: "add_book", title: "Add a book", run: (*implementation).addBook},
	{key: "2", name: "add_reader", title: "Add a reader", run: (*implementation).addReader},
	{key: "3", name: "lend_book", title: "Lend a book", run: (*implementation).lendBook},
	{key: "4", name: "return_book", title: "Return a book", run: (*implementation).returnBook},
	{key: "5", name: "available_books", title: "Show available books", run: (*implementation).availableBooks},
	{key: "6", name: "save_catalog", title: "Save library", run: (*implementation).saveCatalog},
	{key: "7", name: "load_catalog", title: "Load library", run: (*implementation).loadCatalog},
	{key: "8", name: "exit", title: "Exit"},
	{key: "9", name: "remove_book", title: "Remove a book", run: (*implementation).removeBook},
	{key: "10", name: "remove_reader", title: "Remove a reader", run: (*implementation).removeReader},
	{key: "11", name: "list_readers", title: "Show readers", run: (*implementation).listReaders},
}

var commandsByKey = lo.KeyBy(commands, func(c command) string {
	return c.key
})

type session struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func newSession(in io.Reader, out io.Writer) *session {
	return &session{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// ask prints prompt and reads one trimmed line. io.EOF means the input is closed.
func (s *session) ask(prompt string) (string, error) {
	_, _ = fmt.Fprint(s.out, prompt)

	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", fmt.Errorf("can not read input: %w", err)
		}
		return "", io.EOF
	}

	return strings.TrimSpace(s.scanner.Text()), nil
}

func (s *session) askAll(prompts ...string) ([]string, error) {
	answers := make([]string, 0, len(prompts))
	for _, prompt := range prompts {
		answer, err := s.ask(prompt)
		if err != nil {
			return nil, err
		}
		answers = append(answers, answer)
	}
	return answers, nil
}

func (s *session) say(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format+"\n", args...)
}

func (s *session) printMenu() {
	for _, c := range commands {
		s.say("%s. %s", c.key, c.title)
	}
}

// Run serves the menu loop until the user exits, the input ends or ctx is done.
func (i *implementation) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	s := newSession(in, out)

	for ctx.Err() == nil {
		s.printMenu()

		choice, err := s.ask("> ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		c, ok := commandsByKey[choice]
		if !ok {
			log.InfoCommand(i.logger, "unknown command", choice)
			s.say("Unknown command %q", choice)
			continue
		}

		if c.run == nil {
			s.say("Bye")
			return nil
		}

		err = i.execute(ctx, s, c)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (i *implementation) execute(ctx context.Context, s *session, c command) error {
	start := time.Now()

	result, err := c.run(i, ctx, s)
	if err != nil {
		return err
	}

	CommandDuration.WithLabelValues(c.name).Observe(float64(time.Since(start).Milliseconds()))
	CommandOutcomes.WithLabelValues(c.name, result).Inc()
	log.InfoCommand(i.logger, "command finished", c.name, zap.String("outcome", result))

	return nil
}

// invalid reports a validation failure to the user.
func (i *implementation) invalid(s *session, err error, name string) bool {
	if !log.ErrorCommand(i.logger, err, "got invalid input", name) {
		return false
	}
	s.say("Invalid input: %s", err)
	return true
}
