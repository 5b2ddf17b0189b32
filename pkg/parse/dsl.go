package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/railyard/railyard/pkg/errors"
	"github.com/railyard/railyard/pkg/rail"
)

// command is one parsed DSL line with the lines indented beneath it.
type command struct {
	name     string
	prelude  string
	kind     string // for MultipleChoice only
	text     string
	line     int
	children []*command
}

var (
	nameRe  = regexp.MustCompile(`^\s*(\w+)`)
	blockRe = regexp.MustCompile(`^\s*(\w+)\s*:\s*(.*)$`)
	mcRe    = regexp.MustCompile(`^\s*MultipleChoice\s*:\s*(\d*)\s*(.*)$`)
	textRe  = regexp.MustCompile(`^\s*(\w+)(\s[\w\s]+)?:\s*(.*)$`)
)

var blockNames = map[string]bool{
	"And": true, "Seq": true, "Sequence": true,
	"Stack": true,
	"Or":    true, "Choice": true,
	"Opt": true, "Optional": true,
	"Plus": true, "OneOrMore": true,
	"Star": true, "ZeroOrMore": true,
	"OptionalSequence":    true,
	"HorizontalChoice":    true,
	"AlternatingSequence": true,
	"Group":               true,
}

var textNames = map[string]bool{
	"T": true, "Terminal": true,
	"N": true, "NonTerminal": true,
	"C": true, "Comment": true,
	"S": true, "Skip": true,
}

// buildTree parses the command lines into a tree rooted at a synthetic node.
// Blank lines are ignored; everything else must be a command.
func buildTree(input string) (*command, error) {
	lines := dedent(strings.Split(strings.ReplaceAll(input, "\r\n", "\n"), "\n"))
	unit := indentUnit(lines)

	root := &command{}
	active := map[int]*command{-1: root}
	lastDepth := 0
	for i, line := range lines {
		lineNo := i + 1
		if strings.TrimSpace(line) == "" {
			continue
		}
		depth := 0
		rest := line
		for strings.HasPrefix(rest, unit) {
			depth++
			rest = rest[len(unit):]
		}
		if depth > lastDepth+1 {
			return nil, errors.New(errors.ErrCodeSyntax,
				"line %d: indentation jumps from level %d to %d", lineNo, lastDepth, depth)
		}
		parent, ok := active[depth-1]
		if !ok {
			return nil, errors.New(errors.ErrCodeSyntax,
				"line %d: no parent command at indentation level %d", lineNo, depth-1)
		}

		cmd, err := parseLine(rest, lineNo)
		if err != nil {
			return nil, err
		}
		parent.children = append(parent.children, cmd)
		active[depth] = cmd
		for d := range active {
			if d > depth {
				delete(active, d)
			}
		}
		lastDepth = depth
	}
	if len(root.children) == 0 {
		return nil, errors.New(errors.ErrCodeSyntax, "no commands in input")
	}
	return root, nil
}

// parseLine classifies one line, already stripped of its indentation.
func parseLine(line string, lineNo int) (*command, error) {
	m := nameRe.FindStringSubmatch(line)
	if m == nil {
		return nil, errors.New(errors.ErrCodeSyntax,
			"line %d: not a railroad command: %q", lineNo, strings.TrimSpace(line))
	}
	name := m[1]
	switch {
	case name == "MultipleChoice":
		m := mcRe.FindStringSubmatch(line)
		if m == nil {
			return nil, errors.New(errors.ErrCodeSyntax,
				"line %d: malformed MultipleChoice command", lineNo)
		}
		kind := strings.TrimSpace(m[2])
		if kind == "" {
			kind = "any"
		}
		return &command{name: name, prelude: m[1], kind: kind, line: lineNo}, nil
	case blockNames[name]:
		m := blockRe.FindStringSubmatch(line)
		if m == nil {
			return nil, errors.New(errors.ErrCodeSyntax,
				"line %d: malformed %s command", lineNo, name)
		}
		return &command{name: name, prelude: strings.TrimSpace(m[2]), line: lineNo}, nil
	case textNames[name]:
		m := textRe.FindStringSubmatch(line)
		if m == nil {
			return nil, errors.New(errors.ErrCodeSyntax,
				"line %d: malformed %s command", lineNo, name)
		}
		return &command{
			name:    name,
			prelude: strings.TrimSpace(m[2]),
			text:    m[3],
			line:    lineNo,
		}, nil
	default:
		return nil, errors.New(errors.ErrCodeSyntax,
			"line %d: unknown command %q", lineNo, name)
	}
}

// buildElement turns a command subtree into a rail element, enforcing each
// command's arity and argument rules.
func buildElement(p *rail.Params, cmd *command) (rail.Element, error) {
	if textNames[cmd.name] {
		return buildTextElement(p, cmd)
	}

	children := make([]rail.Element, 0, len(cmd.children))
	for _, child := range cmd.children {
		el, err := buildElement(p, child)
		if err != nil {
			return nil, err
		}
		children = append(children, el)
	}

	var el rail.Element
	var err error
	switch cmd.name {
	case "And", "Seq", "Sequence":
		if err := noPrelude(cmd); err != nil {
			return nil, err
		}
		el, err = rail.NewSequence(p, children...)
	case "Stack":
		if err := noPrelude(cmd); err != nil {
			return nil, err
		}
		el, err = rail.NewStack(p, children...)
	case "HorizontalChoice":
		if err := noPrelude(cmd); err != nil {
			return nil, err
		}
		el, err = rail.NewHorizontalChoice(p, children...)
	case "OptionalSequence":
		if err := noPrelude(cmd); err != nil {
			return nil, err
		}
		el, err = rail.NewOptionalSequence(p, children...)
	case "Or", "Choice":
		defaultIdx := 0
		if cmd.prelude != "" {
			defaultIdx, err = strconv.Atoi(cmd.prelude)
			if err != nil {
				return nil, errors.New(errors.ErrCodeSyntax,
					"line %d: %s default must be an integer, got %q", cmd.line, cmd.name, cmd.prelude)
			}
		}
		el, err = rail.NewChoice(p, defaultIdx, children...)
	case "Opt", "Optional":
		skip, serr := skipFlag(cmd)
		if serr != nil {
			return nil, serr
		}
		if len(children) != 1 {
			return nil, errors.New(errors.ErrCodeSyntax,
				"line %d: %s takes exactly one child, got %d", cmd.line, cmd.name, len(children))
		}
		el = rail.Optional(p, children[0], skip)
	case "Plus", "OneOrMore":
		if err := noPrelude(cmd); err != nil {
			return nil, err
		}
		item, repeat, aerr := loopArgs(cmd, children)
		if aerr != nil {
			return nil, aerr
		}
		el = rail.NewOneOrMore(p, item, repeat)
	case "Star", "ZeroOrMore":
		skip, serr := skipFlag(cmd)
		if serr != nil {
			return nil, serr
		}
		item, repeat, aerr := loopArgs(cmd, children)
		if aerr != nil {
			return nil, aerr
		}
		el = rail.ZeroOrMore(p, item, repeat, skip)
	case "AlternatingSequence":
		if err := noPrelude(cmd); err != nil {
			return nil, err
		}
		el, err = rail.NewAlternatingSequence(p, children...)
	case "Group":
		if len(children) != 1 {
			return nil, errors.New(errors.ErrCodeSyntax,
				"line %d: Group takes exactly one child, got %d", cmd.line, len(children))
		}
		if cmd.prelude == "" {
			el = rail.NewGroup(p, children[0], nil)
		} else {
			el = rail.NewLabeledGroup(p, children[0], cmd.prelude)
		}
	case "MultipleChoice":
		defaultIdx := 0
		if cmd.prelude != "" {
			defaultIdx, err = strconv.Atoi(cmd.prelude)
			if err != nil {
				return nil, errors.New(errors.ErrCodeSyntax,
					"line %d: MultipleChoice default must be an integer, got %q", cmd.line, cmd.prelude)
			}
		}
		el, err = rail.NewMultipleChoice(p, defaultIdx, cmd.kind, children...)
	default:
		return nil, errors.New(errors.ErrCodeSyntax,
			"line %d: unknown command %q", cmd.line, cmd.name)
	}
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", cmd.line, err)
	}
	return el, nil
}

func buildTextElement(p *rail.Params, cmd *command) (rail.Element, error) {
	if len(cmd.children) > 0 {
		return nil, errors.New(errors.ErrCodeSyntax,
			"line %d: %s takes no children", cmd.line, cmd.name)
	}
	if cmd.name == "S" || cmd.name == "Skip" {
		if cmd.text != "" {
			return nil, errors.New(errors.ErrCodeSyntax,
				"line %d: Skip takes no text", cmd.line)
		}
		return rail.NewSkip(p), nil
	}
	if cmd.text == "" {
		return nil, errors.New(errors.ErrCodeSyntax,
			"line %d: %s needs text after the colon", cmd.line, cmd.name)
	}
	var opts []rail.TextOption
	if cmd.prelude != "" {
		opts = append(opts, rail.WithHref(cmd.prelude))
	}
	switch cmd.name {
	case "T", "Terminal":
		return rail.NewTerminal(p, cmd.text, opts...), nil
	case "N", "NonTerminal":
		return rail.NewNonTerminal(p, cmd.text, opts...), nil
	case "C", "Comment":
		return rail.NewComment(p, cmd.text, opts...), nil
	}
	return nil, errors.New(errors.ErrCodeSyntax,
		"line %d: unknown command %q", cmd.line, cmd.name)
}

func noPrelude(cmd *command) error {
	if cmd.prelude != "" {
		return errors.New(errors.ErrCodeSyntax,
			"line %d: %s takes no argument, got %q", cmd.line, cmd.name, cmd.prelude)
	}
	return nil
}

// skipFlag interprets the prelude of Optional and ZeroOrMore, which accept
// only "skip" or nothing.
func skipFlag(cmd *command) (bool, error) {
	switch cmd.prelude {
	case "":
		return false, nil
	case "skip":
		return true, nil
	}
	return false, errors.New(errors.ErrCodeSyntax,
		"line %d: %s argument must be \"skip\" or empty, got %q", cmd.line, cmd.name, cmd.prelude)
}

// loopArgs splits the one or two children of a loop command into the item on
// the main line and the optional repeat item.
func loopArgs(cmd *command, children []rail.Element) (item, repeat rail.Element, err error) {
	switch len(children) {
	case 1:
		return children[0], nil, nil
	case 2:
		return children[0], children[1], nil
	}
	return nil, nil, errors.New(errors.ErrCodeSyntax,
		"line %d: %s takes one or two children, got %d", cmd.line, cmd.name, len(children))
}

// dedent strips the whitespace prefix shared by every non-blank line.
func dedent(lines []string) []string {
	prefix := ""
	first := true
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lead := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if first {
			prefix = lead
			first = false
			continue
		}
		for !strings.HasPrefix(lead, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
		if prefix == "" {
			return lines
		}
	}
	if prefix == "" {
		return lines
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = strings.TrimPrefix(line, prefix)
	}
	return out
}

// indentUnit returns the leading whitespace of the first indented line. One
// tab is assumed when nothing in the input is indented.
func indentUnit(lines []string) string {
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lead := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if lead != "" {
			return lead
		}
	}
	return "\t"
}
