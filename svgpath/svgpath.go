// Package svgpath parses the SVG path mini-language into command sequences.
//
// The supported grammar is the SVG 1.1 path data subset: moveto (M/m),
// lineto (L/l, H/h, V/v), cubic and smooth cubic curves (C/c, S/s),
// quadratic and smooth quadratic curves (Q/q, T/t), elliptical arcs (A/a)
// and closepath (Z/z). Parsing is lenient about unknown command letters,
// which are skipped with a warning, but strict about parameter counts:
// a command whose parameter list is not a multiple of its arity is an error.
package svgpath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrEmptyPath is returned when the input contains no commands at all.
var ErrEmptyPath = errors.New("svgpath: empty path data")

// Command is a single path command with its absolute or relative parameters.
type Command struct {
	Letter byte
	Params []float64
}

// Relative reports whether the command uses relative coordinates.
func (c Command) Relative() bool { return c.Letter >= 'a' && c.Letter <= 'z' }

// ArgCount returns the parameter arity of the given command letter, or -1 if
// the letter is not a path command.
func ArgCount(letter byte) int {
	switch letter {
	case 'M', 'm', 'L', 'l', 'T', 't':
		return 2
	case 'H', 'h', 'V', 'v':
		return 1
	case 'C', 'c':
		return 6
	case 'S', 's', 'Q', 'q':
		return 4
	case 'A', 'a':
		return 7
	case 'Z', 'z':
		return 0
	default:
		return -1
	}
}

var (
	commandRe = regexp.MustCompile(`([MmLlHhVvCcSsQqTtAaZz])([^MmLlHhVvCcSsQqTtAaZz]*)`)
	numberRe  = regexp.MustCompile(`[-+]?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?`)
)

// Parse tokenizes path data into commands. Commands with a parameter count
// that is not a positive multiple of the command's arity fail parsing.
// Repeated parameter groups split into repeated commands, with an implicit
// M/m continuation becoming L/l per the SVG rules. Letters outside the
// grammar are skipped.
func Parse(data string) ([]Command, error) {
	trimmed := strings.TrimSpace(data)
	if trimmed == "" {
		return nil, ErrEmptyPath
	}

	var cmds []Command
	for _, m := range commandRe.FindAllStringSubmatch(trimmed, -1) {
		letter := m[1][0]
		arity := ArgCount(letter)

		params, err := parseNumbers(m[2])
		if err != nil {
			return nil, fmt.Errorf("svgpath: command %c: %w", letter, err)
		}

		if arity == 0 {
			if len(params) != 0 {
				return nil, fmt.Errorf("svgpath: command %c takes no parameters, got %d", letter, len(params))
			}
			cmds = append(cmds, Command{Letter: letter})
			continue
		}
		if len(params) == 0 || len(params)%arity != 0 {
			return nil, fmt.Errorf("svgpath: command %c expects multiples of %d parameters, got %d",
				letter, arity, len(params))
		}

		for i := 0; i < len(params); i += arity {
			l := letter
			// Extra coordinate pairs after a moveto are implicit linetos.
			if i > 0 && (letter == 'M' || letter == 'm') {
				l-- // 'M' -> 'L', 'm' -> 'l'
			}
			group := make([]float64, arity)
			copy(group, params[i:i+arity])
			cmds = append(cmds, Command{Letter: l, Params: group})
		}
	}

	if len(cmds) == 0 {
		return nil, ErrEmptyPath
	}
	return cmds, nil
}

// parseNumbers extracts every numeric token from s, including scientific
// notation, ignoring commas and whitespace between them.
func parseNumbers(s string) ([]float64, error) {
	tokens := numberRe.FindAllString(s, -1)
	if tokens == nil {
		return nil, nil
	}
	nums := make([]float64, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %q: %w", tok, err)
		}
		nums[i] = v
	}
	return nums, nil
}

// HasDrawingCommand reports whether data contains at least one recognized
// path command letter. It is cheaper than a full Parse and is used for
// validation.
func HasDrawingCommand(data string) bool {
	return strings.ContainsAny(data, "MmLlHhVvCcSsQqTtAaZz")
}

// UnknownLetters returns the distinct alphabetic characters in data that are
// not path commands and not part of scientific notation. Callers use it to
// warn about junk the parser skipped.
func UnknownLetters(data string) []byte {
	var seen [256]bool
	var out []byte
	for i := 0; i < len(data); i++ {
		c := data[i]
		isLetter := (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
		if !isLetter || seen[c] || ArgCount(c) >= 0 {
			continue
		}
		// e/E between digits is an exponent marker, not a command.
		if (c == 'e' || c == 'E') && i > 0 && data[i-1] >= '0' && data[i-1] <= '9' {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
