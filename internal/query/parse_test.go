package query

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantCommand *Command
		wantError   error
	}{
		{
			name:        "PUT simple",
			input:       "PUT A 5",
			wantCommand: &Command{Type: CommandPut, Key: "A", Value: 5},
		},
		{
			name:        "PUT negative value",
			input:       "put a -42",
			wantCommand: &Command{Type: CommandPut, Key: "a", Value: -42},
		},
		{
			name:        "PUT quoted key with spaces",
			input:       `PUT "hello world" 1`,
			wantCommand: &Command{Type: CommandPut, Key: "hello world", Value: 1},
		},
		{
			name:        "PUT empty key",
			input:       `PUT "" 7`,
			wantCommand: &Command{Type: CommandPut, Key: "", Value: 7},
		},
		{
			name:      "PUT non-integer value",
			input:     "PUT a five",
			wantError: ErrInvalidValue,
		},
		{
			name:      "PUT value overflows int64",
			input:     "PUT a 9223372036854775808",
			wantError: ErrInvalidValue,
		},
		{
			name:      "PUT missing value",
			input:     "PUT a",
			wantError: ErrInvalidNumberOfTokens,
		},
		{
			name:        "GET valid",
			input:       "GET foo",
			wantCommand: &Command{Type: CommandGet, Key: "foo"},
		},
		{
			name:      "GET missing key",
			input:     "GET",
			wantError: ErrInvalidNumberOfTokens,
		},
		{
			name:        "BEGIN",
			input:       "  begin  ",
			wantCommand: &Command{Type: CommandBegin},
		},
		{
			name:        "COMMIT",
			input:       "COMMIT",
			wantCommand: &Command{Type: CommandCommit},
		},
		{
			name:        "ROLLBACK",
			input:       "Rollback",
			wantCommand: &Command{Type: CommandRollback},
		},
		{
			name:        "DUMP",
			input:       "DUMP",
			wantCommand: &Command{Type: CommandDump},
		},
		{
			name:        "STATS",
			input:       "stats",
			wantCommand: &Command{Type: CommandStats},
		},
		{
			name:        "EXIT",
			input:       "EXIT",
			wantCommand: &Command{Type: CommandExit},
		},
		{
			name:      "BEGIN with argument",
			input:     "BEGIN now",
			wantError: ErrInvalidNumberOfTokens,
		},
		{
			name:      "unknown command",
			input:     "DELETE a",
			wantError: ErrInvalidCommand,
		},
		{
			name:      "empty input",
			input:     "   ",
			wantError: ErrInvalidCommand,
		},
		{
			name:      "unterminated quote",
			input:     `GET "abc`,
			wantError: ErrUnterminatedQuote,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)

			if tt.wantError != nil {
				if !errors.Is(err, tt.wantError) {
					t.Fatalf("expected error %v, got %v", tt.wantError, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if *got != *tt.wantCommand {
				t.Fatalf("expected %+v, got %+v", *tt.wantCommand, *got)
			}
		})
	}
}

func TestCommandRegistryCoversOrder(t *testing.T) {
	for _, typ := range Order {
		if _, ok := CommandRegistry[typ]; !ok {
			t.Fatalf("command %d has no registry entry", typ)
		}
	}
	if len(Order) != len(CommandRegistry) {
		t.Fatalf("order lists %d commands, registry has %d", len(Order), len(CommandRegistry))
	}
}
