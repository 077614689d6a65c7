package terminal

import "strings"

// Command is the closed set of commands the engine knows how to run.
type Command int

const (
	CommandUnknown Command = iota
	CommandHelp
	CommandClear
	CommandEcho
	CommandDate
	CommandVersion
	CommandLs
	CommandExplain
	CommandHistory
	CommandSettings
)

var commandNames = map[string]Command{
	"help":     CommandHelp,
	"clear":    CommandClear,
	"echo":     CommandEcho,
	"date":     CommandDate,
	"version":  CommandVersion,
	"ls":       CommandLs,
	"explain":  CommandExplain,
	"history":  CommandHistory,
	"settings": CommandSettings,
}

// DefaultCommands is the command-name list used for help and completion
// when none is configured.
var DefaultCommands = []string{
	"help", "explain", "ls", "echo", "date", "version", "history", "settings", "clear",
}

// ParseCommand resolves a command name, case-insensitively.
func ParseCommand(name string) Command {
	if cmd, ok := commandNames[strings.ToLower(name)]; ok {
		return cmd
	}
	return CommandUnknown
}

func (c Command) String() string {
	for name, cmd := range commandNames {
		if cmd == c {
			return name
		}
	}
	return "unknown"
}

// Invocation is one submitted line resolved against the command set.
type Invocation struct {
	Command Command
	Name    string // lower-cased first token
	Args    []string
}

// ParseLine splits line on whitespace. It returns false for a blank line.
func ParseLine(line string) (Invocation, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Invocation{}, false
	}
	name := strings.ToLower(fields[0])
	return Invocation{
		Command: ParseCommand(name),
		Name:    name,
		Args:    fields[1:],
	}, true
}
