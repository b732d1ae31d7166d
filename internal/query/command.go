package query

type CommandType uint8

const (
	CommandBegin CommandType = iota
	CommandPut
	CommandGet
	CommandCommit
	CommandRollback

	CommandDump
	CommandStats
	CommandHelp
	CommandExit
)

const (
	BEGIN    = "BEGIN"
	PUT      = "PUT"
	GET      = "GET"
	COMMIT   = "COMMIT"
	ROLLBACK = "ROLLBACK"
	DUMP     = "DUMP"
	STATS    = "STATS"
	HELP     = "HELP"
	EXIT     = "EXIT"
)

type Command struct {
	Type  CommandType
	Key   string
	Value int64
}

type CommandMeta struct {
	Name        string
	Usage       string
	Description string
}

// Order is the order commands are listed in help output.
var Order = []CommandType{
	CommandBegin,
	CommandPut,
	CommandGet,
	CommandCommit,
	CommandRollback,
	CommandDump,
	CommandStats,
	CommandHelp,
	CommandExit,
}

var CommandRegistry = map[CommandType]CommandMeta{
	CommandBegin: {
		Name:        BEGIN,
		Usage:       "BEGIN",
		Description: "Start a new transaction",
	},
	CommandPut: {
		Name:        PUT,
		Usage:       "PUT <key> <int>",
		Description: "Buffer a value in the current transaction",
	},
	CommandGet: {
		Name:        GET,
		Usage:       "GET <key>",
		Description: "Read the committed value of a key",
	},
	CommandCommit: {
		Name:        COMMIT,
		Usage:       "COMMIT",
		Description: "Commit the current transaction",
	},
	CommandRollback: {
		Name:        ROLLBACK,
		Usage:       "ROLLBACK",
		Description: "Discard the current transaction",
	},
	CommandDump: {
		Name:        DUMP,
		Usage:       "DUMP",
		Description: "Print all committed keys",
	},
	CommandStats: {
		Name:        STATS,
		Usage:       "STATS",
		Description: "Print store metrics",
	},
	CommandHelp: {
		Name:        HELP,
		Usage:       "HELP",
		Description: "Show help message",
	},
	CommandExit: {
		Name:        EXIT,
		Usage:       "EXIT",
		Description: "Exit the REPL",
	},
}
