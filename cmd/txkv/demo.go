package main

import "strings"

// demoScript is the reference call sequence: reads before and after commit,
// guard errors outside a transaction, and a rollback that leaves no trace.
var demoScript = []string{
	"GET A",
	"PUT A 5",
	"BEGIN",
	"PUT A 5",
	"GET A",
	"PUT A 6",
	"COMMIT",
	"GET A",
	"COMMIT",
	"ROLLBACK",
	"GET B",
	"BEGIN",
	"PUT B 10",
	"ROLLBACK",
	"GET B",
}

func runDemo(r *repl) error {
	r.echo = true
	return r.Run(strings.NewReader(strings.Join(demoScript, "\n")))
}
