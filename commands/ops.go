package commands

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

type Operation int

const (
	DEFAULT Operation = iota
	// Append an event payload, given as a JSON object.
	APPEND
	// List blocks whose payload type matches the argument.
	QUERY
	// Print ledger statistics.
	STATS
	// Recheck whole-chain validity.
	VALIDATE
	// Write the serialized chain to a file.
	EXPORT
	// Replace the chain from a serialized file.
	IMPORT
	// Print the last n blocks.
	SHOW
	// Exit the console.
	QUIT
)

// A command contains an operation and its arguments.
type Command struct {
	Op   Operation
	Args []string
}

func (c Command) IsValid() bool {
	switch c.Op {
	case STATS, VALIDATE, QUIT:
		return len(c.Args) == 0
	case APPEND:
		// The payload must at least parse as a JSON object.
		if len(c.Args) != 1 {
			return false
		}
		arg := c.Args[0]
		return strings.HasPrefix(arg, "{") && json.Valid([]byte(arg))
	case QUERY, EXPORT, IMPORT:
		return len(c.Args) == 1
	case SHOW:
		if len(c.Args) != 1 {
			return false
		}
		// depth must be a number.
		if _, err := strconv.Atoi(c.Args[0]); err != nil {
			return false
		}
		return true
	default:
		return false
	}
}

// CreateCommand parses one console line. The append argument is the rest
// of the line, so payload JSON may contain spaces.
func CreateCommand(s string) (Command, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Command{}, errors.New("command is empty")
	}
	op, rest, _ := strings.Cut(s, " ")
	rest = strings.TrimSpace(rest)

	cmd := Command{}
	switch op {
	case "append":
		cmd.Op = APPEND
	case "query":
		cmd.Op = QUERY
	case "stats":
		cmd.Op = STATS
	case "validate":
		cmd.Op = VALIDATE
	case "export":
		cmd.Op = EXPORT
	case "import":
		cmd.Op = IMPORT
	case "show":
		cmd.Op = SHOW
	case "quit", "exit":
		cmd.Op = QUIT
	}
	if rest != "" {
		if cmd.Op == APPEND {
			cmd.Args = []string{rest}
		} else {
			cmd.Args = strings.Fields(rest)
		}
	}
	if !cmd.IsValid() {
		return Command{}, errors.New("invalid command")
	}
	return cmd, nil
}

// NewDefaultCommand creates a command with the default no-op operation.
func NewDefaultCommand() Command {
	return Command{Op: DEFAULT}
}

func (c Command) IsDefault() bool {
	return c.Op == DEFAULT
}
