package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"txkv/internal/query"
	"txkv/pkg/config"
	"txkv/pkg/metrics"
	"txkv/pkg/snapshot"

	"github.com/google/uuid"
)

type iStore interface {
	Begin() error
	Put(key string, value int64) error
	Get(key string) (int64, bool)
	Commit() error
	Rollback() error

	Active() (uuid.UUID, bool)
	Pending() int
	Snapshot() snapshot.Snapshot
}

type repl struct {
	store  iStore
	stats  *metrics.Registry // nil when metrics are disabled
	out    io.Writer
	prompt string
	echo   bool
}

func newREPL(s iStore, stats *metrics.Registry, out io.Writer, cfg config.REPLConfig) *repl {
	return &repl{
		store:  s,
		stats:  stats,
		out:    out,
		prompt: cfg.Prompt,
		echo:   cfg.Echo,
	}
}

// Run reads commands from in until EOF or EXIT.
func (r *repl) Run(in io.Reader) error {
	reader := bufio.NewScanner(in)

	for {
		if !r.echo {
			fmt.Fprint(r.out, r.prompt)
		}

		if !reader.Scan() {
			return reader.Err()
		}

		line := reader.Text()
		if r.echo {
			fmt.Fprintf(r.out, "%s%s\n", r.prompt, line)
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		cmd, err := query.Parse(line)
		if err != nil {
			fmt.Fprintln(r.out, "ERR:", err)
			continue
		}

		if cmd.Type == query.CommandExit {
			return nil
		}

		r.exec(cmd)
	}
}

func (r *repl) exec(cmd *query.Command) {
	switch cmd.Type {
	case query.CommandBegin:
		if err := r.store.Begin(); err != nil {
			fmt.Fprintln(r.out, "ERR:", err)
			return
		}
		id, _ := r.store.Active()
		fmt.Fprintf(r.out, "OK (tx %s started)\n", id)

	case query.CommandPut:
		if err := r.store.Put(cmd.Key, cmd.Value); err != nil {
			fmt.Fprintln(r.out, "ERR:", err)
			return
		}
		fmt.Fprintln(r.out, "OK")

	case query.CommandGet:
		val, ok := r.store.Get(cmd.Key)
		if !ok {
			fmt.Fprintln(r.out, "(nil)")
			return
		}
		fmt.Fprintln(r.out, val)

	case query.CommandCommit:
		if err := r.store.Commit(); err != nil {
			fmt.Fprintln(r.out, "ERR:", err)
			return
		}
		fmt.Fprintln(r.out, "OK")

	case query.CommandRollback:
		if err := r.store.Rollback(); err != nil {
			fmt.Fprintln(r.out, "ERR:", err)
			return
		}
		fmt.Fprintln(r.out, "OK")

	case query.CommandDump:
		r.dump()

	case query.CommandStats:
		r.printStats()

	case query.CommandHelp:
		r.printHelp()

	default:
		fmt.Fprintln(r.out, "ERR: unsupported command")
	}
}

func (r *repl) dump() {
	snap := r.store.Snapshot()
	for _, it := range snap.Items() {
		fmt.Fprintf(r.out, "%q = %d\n", it.Key, it.Value)
	}

	status := "no active transaction"
	if id, ok := r.store.Active(); ok {
		status = fmt.Sprintf("tx %s active, %d pending", id, r.store.Pending())
	}
	fmt.Fprintf(r.out, "(%d keys, seq %d, %s)\n", snap.Len(), snap.Sequence(), status)
}

func (r *repl) printStats() {
	if r.stats == nil {
		fmt.Fprintln(r.out, "metrics disabled")
		return
	}
	for _, line := range r.stats.Dump() {
		fmt.Fprintln(r.out, line)
	}
}

func (r *repl) printHelp() {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "AVAILABLE COMMANDS")
	fmt.Fprintln(r.out, "──────────────────────────────────────────────────────────────")
	fmt.Fprintf(r.out, "  %-10s | %-18s | %s\n", "Name", "Usage", "Description")
	fmt.Fprintln(r.out, "──────────────────────────────────────────────────────────────")

	for _, cmdType := range query.Order {
		meta := query.CommandRegistry[cmdType]
		fmt.Fprintf(r.out, "- %-11s %-20s %s\n", meta.Name, meta.Usage, meta.Description)
	}

	fmt.Fprintln(r.out)
}
