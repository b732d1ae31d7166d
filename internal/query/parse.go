package query

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidCommand        = errors.New("invalid command")
	ErrInvalidNumberOfTokens = errors.New("invalid number of tokens")
	ErrInvalidValue          = errors.New("value must be a 64-bit integer")
	ErrUnterminatedQuote     = errors.New("unterminated quoted string")
)

// noArgs maps keywords that take no arguments to their command type.
var noArgs = map[string]CommandType{
	BEGIN:    CommandBegin,
	COMMIT:   CommandCommit,
	ROLLBACK: CommandRollback,
	DUMP:     CommandDump,
	STATS:    CommandStats,
	HELP:     CommandHelp,
	EXIT:     CommandExit,
}

func Parse(input string) (*Command, error) {
	trimmedInput := strings.TrimSpace(input)
	if trimmedInput == "" {
		return nil, ErrInvalidCommand
	}

	tokens, err := tokenize(trimmedInput)
	if err != nil {
		return nil, err
	}

	if len(tokens) == 0 {
		return nil, ErrInvalidCommand
	}

	keyword := strings.ToUpper(tokens[0])

	switch keyword {
	case PUT:
		if len(tokens) != 3 {
			return nil, ErrInvalidNumberOfTokens
		}

		value, err := strconv.ParseInt(tokens[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidValue, tokens[2])
		}

		return &Command{
			Type:  CommandPut,
			Key:   tokens[1],
			Value: value,
		}, nil

	case GET:
		if len(tokens) != 2 {
			return nil, ErrInvalidNumberOfTokens
		}

		return &Command{
			Type: CommandGet,
			Key:  tokens[1],
		}, nil
	}

	typ, ok := noArgs[keyword]
	if !ok {
		return nil, ErrInvalidCommand
	}
	if len(tokens) != 1 {
		return nil, ErrInvalidNumberOfTokens
	}

	return &Command{Type: typ}, nil
}
