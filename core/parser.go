package core

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/sarchlab/ippcode/instr"
)

// Parser validates IPPcode24 source and builds its program tree. A Parser
// keeps no state between calls to Parse.
type Parser struct {
	header      string
	language    string
	logger      *slog.Logger
	suggestions bool
}

type phase int

const (
	awaitingHeader phase = iota
	processingBody
	done
	failed
)

func (p phase) String() string {
	switch p {
	case awaitingHeader:
		return "AwaitingHeader"
	case processingBody:
		return "ProcessingBody"
	case done:
		return "Done"
	default:
		return "Failed"
	}
}

// headerState tracks the language identifier. Every literal match counts, so
// a count above one means the identifier was repeated.
type headerState struct {
	seen  bool
	count int
}

// run is the state of one Parse call.
type run struct {
	p      *Parser
	phase  phase
	header headerState
	prog   *Program
}

// StripComment removes everything from the first # on.
func StripComment(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		return line[:i]
	}
	return line
}

// Tokenize turns a raw line into its whitespace separated tokens, comments
// excluded. A blank or comment only line yields no tokens.
func Tokenize(line string) []string {
	return strings.Fields(StripComment(line))
}

// Parse validates the whole source and returns its program. The first error
// stops the parse; no partial program is returned with it.
func (p *Parser) Parse(src string) (*Program, error) {
	r := &run{
		p:     p,
		phase: awaitingHeader,
		prog:  NewProgram(p.language),
	}

	lines := strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n")
	for i, line := range lines {
		Trace(p.logger, "line", "no", i+1, "text", line)

		if err := r.processLine(line); err != nil {
			r.phase = failed
			err = withLine(err, i+1)
			Trace(p.logger, "parse failed", "error", err)
			return nil, err
		}
	}

	return r.finish()
}

func (r *run) processLine(line string) error {
	tokens := Tokenize(line)
	if len(tokens) == 0 {
		return nil
	}

	if r.phase == awaitingHeader {
		if err := r.recognizeHeader(tokens); err != nil {
			return err
		}

		r.phase = processingBody
		Trace(r.p.logger, "header ok", "header", tokens[0])

		return nil
	}

	if strings.EqualFold(tokens[0], r.p.header) {
		return r.recognizeHeader(tokens)
	}

	return r.dispatch(tokens)
}

func (r *run) recognizeHeader(tokens []string) error {
	if len(tokens) != 1 {
		return &Error{
			Kind:  ErrHeader,
			Token: tokens[0],
			Msg: fmt.Sprintf("the header line must hold only %s, got %d tokens",
				r.p.header, len(tokens)),
		}
	}

	if !strings.EqualFold(tokens[0], r.p.header) {
		return &Error{
			Kind:  ErrHeader,
			Token: tokens[0],
			Msg:   fmt.Sprintf("expected language identifier %s, got %q", r.p.header, tokens[0]),
		}
	}

	r.header.seen = true
	r.header.count++
	if r.header.count > 1 {
		return &Error{
			Kind:  ErrDuplicateHeader,
			Token: tokens[0],
			Msg:   fmt.Sprintf("language identifier %s repeated", r.p.header),
		}
	}

	return nil
}

func (r *run) dispatch(tokens []string) error {
	opcode := strings.ToUpper(tokens[0])

	sig, ok := instr.Lookup(opcode)
	if !ok {
		return r.p.unknownOpcode(tokens[0])
	}

	if len(tokens) != sig.Tokens() {
		return &Error{
			Kind:  ErrArity,
			Token: opcode,
			Msg: fmt.Sprintf("%s expects %d operand(s), got %d",
				opcode, sig.Arity(), len(tokens)-1),
		}
	}

	args := make([]instr.Operand, 0, sig.Arity())
	for i, role := range sig.Roles {
		arg, err := Classify(role, tokens[i+1])
		if err != nil {
			var e *Error
			if errors.As(err, &e) {
				e.Msg = fmt.Sprintf("operand %d of %s: %s", i+1, opcode, e.Msg)
			}
			return err
		}

		args = append(args, arg)
	}

	inst := r.prog.Append(opcode, args)
	Trace(r.p.logger, "instruction", "order", inst.Order, "opcode", inst.Opcode)

	return nil
}

// finish ends the run once input is exhausted. Input with no logical line
// never leaves awaitingHeader and yields an empty program.
func (r *run) finish() (*Program, error) {
	r.phase = done
	Trace(r.p.logger, "parse done", "instructions", r.prog.Len())

	return r.prog, nil
}

func (p *Parser) unknownOpcode(mnemonic string) error {
	msg := fmt.Sprintf("%q is not an instruction", mnemonic)
	if p.suggestions {
		if s := Suggest(mnemonic); s != "" {
			msg += fmt.Sprintf(", did you mean %s?", s)
		}
	}

	return &Error{Kind: ErrUnknownOpcode, Token: mnemonic, Msg: msg}
}

// Suggest returns the known mnemonic closest to an unknown one, or "" if
// none is close.
func Suggest(mnemonic string) string {
	ranks := fuzzy.RankFindFold(mnemonic, instr.Mnemonics())
	if len(ranks) == 0 {
		return ""
	}

	sort.Sort(ranks)

	return ranks[0].Target
}

func withLine(err error, line int) error {
	var e *Error
	if errors.As(err, &e) && e.Line == 0 {
		e.Line = line
	}
	return err
}
