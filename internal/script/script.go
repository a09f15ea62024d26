package script

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/dreamware/binder/binder"
)

// Op is one parsed script statement.
type Op struct {
	Line int // 1-based line number in the source
	Verb string
	Args []string
}

// arity maps each verb to its minimum and maximum argument count.
var arity = map[string][2]int{
	"new":          {1, 1},
	"copy":         {2, 2},
	"insert-front": {3, 3},
	"insert-after": {4, 4},
	"remove":       {1, 2},
	"get":          {2, 2},
	"set":          {3, 3},
	"len":          {1, 1},
	"list":         {1, 1},
	"clear":        {1, 1},
}

// Parse reads a script and returns its statements in order. Blank lines and
// lines starting with '#' are skipped. Unknown verbs and wrong argument
// counts are reported with their line number.
func Parse(r io.Reader) ([]Op, error) {
	var ops []Op

	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		verb, args := fields[0], fields[1:]

		bounds, ok := arity[verb]
		if !ok {
			return nil, fmt.Errorf("line %d: unknown verb %q", line, verb)
		}
		if len(args) < bounds[0] || len(args) > bounds[1] {
			return nil, fmt.Errorf("line %d: %s takes %d-%d arguments, got %d",
				line, verb, bounds[0], bounds[1], len(args))
		}

		ops = append(ops, Op{Line: line, Verb: verb, Args: args})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}

	return ops, nil
}

// Interp executes parsed statements against named binder handles. Every
// observation (get, len, list) appends one line of output.
type Interp struct {
	handles map[string]*binder.Binder[string, string]
	out     []string
}

// NewInterp creates an interpreter with no handles defined.
func NewInterp() *Interp {
	return &Interp{handles: make(map[string]*binder.Binder[string, string])}
}

// Run executes ops in order and returns the accumulated output. Execution
// stops at the first failing statement; the error carries its line number.
func (in *Interp) Run(ops []Op) ([]string, error) {
	for _, op := range ops {
		if err := in.exec(op); err != nil {
			return in.out, fmt.Errorf("line %d: %s: %w", op.Line, op.Verb, err)
		}
	}
	return in.out, nil
}

// handle resolves a handle name defined earlier by new or copy.
func (in *Interp) handle(name string) (*binder.Binder[string, string], error) {
	b, ok := in.handles[name]
	if !ok {
		return nil, fmt.Errorf("unknown handle %q", name)
	}
	return b, nil
}

func (in *Interp) exec(op Op) error {
	switch op.Verb {
	case "new":
		if _, exists := in.handles[op.Args[0]]; exists {
			return fmt.Errorf("handle %q already exists", op.Args[0])
		}
		in.handles[op.Args[0]] = binder.New[string, string]()
		return nil

	case "copy":
		src, err := in.handle(op.Args[0])
		if err != nil {
			return err
		}
		if _, exists := in.handles[op.Args[1]]; exists {
			return fmt.Errorf("handle %q already exists", op.Args[1])
		}
		in.handles[op.Args[1]] = src.Copy()
		return nil
	}

	b, err := in.handle(op.Args[0])
	if err != nil {
		return err
	}

	switch op.Verb {
	case "insert-front":
		return b.InsertFront(op.Args[1], op.Args[2])

	case "insert-after":
		return b.InsertAfter(op.Args[1], op.Args[2], op.Args[3])

	case "remove":
		if len(op.Args) == 1 {
			return b.RemoveFront()
		}
		return b.Remove(op.Args[1])

	case "get":
		v, err := b.Get(op.Args[1])
		if err != nil {
			return err
		}
		in.print("%s=%s", op.Args[1], v)

	case "set":
		p, err := b.GetMutable(op.Args[1])
		if err != nil {
			return err
		}
		*p = op.Args[2]

	case "len":
		in.print("len=%d", b.Len())

	case "list":
		for k, v := range b.All() {
			in.print("%s=%s", k, v)
		}

	case "clear":
		b.Clear()
	}
	return nil
}

func (in *Interp) print(format string, args ...any) {
	in.out = append(in.out, fmt.Sprintf(format, args...))
}
