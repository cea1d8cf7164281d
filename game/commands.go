package game

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// CommandKind identifies a user action
type CommandKind int

const (
	CmdPlay CommandKind = iota
	CmdStop
	CmdNext
	CmdRandom
	CmdBlank
	CmdToggle
	CmdBack
	CmdQuit
)

// Command is a parsed line of user input. Row and Col are only set for CmdToggle.
type Command struct {
	Kind CommandKind
	Row  int
	Col  int
}

var commandNames = map[string]CommandKind{
	"play":   CmdPlay,
	"p":      CmdPlay,
	"stop":   CmdStop,
	"s":      CmdStop,
	"next":   CmdNext,
	"n":      CmdNext,
	"random": CmdRandom,
	"r":      CmdRandom,
	"blank":  CmdBlank,
	"b":      CmdBlank,
	"toggle": CmdToggle,
	"t":      CmdToggle,
	"quit":   CmdQuit,
	"q":      CmdQuit,
	"back":   CmdBack,
}

const helpLine = "commands: [p]lay [s]top [n]ext [r]andom [b]lank [t]oggle ROW COL back [q]uit"

// ParseCommand parses a single input line such as "next" or "t 3 4"
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return Command{}, errors.New("[ParseCommand] empty command")
	}

	kind, ok := commandNames[fields[0]]
	if !ok {
		return Command{}, errors.Errorf("[ParseCommand] unknown command %q", fields[0])
	}

	if kind != CmdToggle {
		if len(fields) != 1 {
			return Command{}, errors.Errorf("[ParseCommand] %q takes no arguments", fields[0])
		}
		return Command{Kind: kind}, nil
	}

	if len(fields) != 3 {
		return Command{}, errors.Errorf("[ParseCommand] usage: %s ROW COL", fields[0])
	}
	row, err := strconv.Atoi(fields[1])
	if err != nil {
		return Command{}, errors.Wrapf(err, "[ParseCommand] invalid row %q", fields[1])
	}
	col, err := strconv.Atoi(fields[2])
	if err != nil {
		return Command{}, errors.Wrapf(err, "[ParseCommand] invalid column %q", fields[2])
	}
	return Command{Kind: CmdToggle, Row: row, Col: col}, nil
}
