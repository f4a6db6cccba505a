// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"strings"
)

// heredoc removes the common leading indentation of text and surrounding blank lines.
func heredoc(text string) string {
	lines := strings.Split(strings.Trim(text, " \t\n"), "\n")

	minIndent := -1
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		indent := len(line) - len(strings.TrimLeft(line, " \t"))
		if minIndent == -1 || indent < minIndent {
			minIndent = indent
		}
	}

	for i, line := range lines {
		if i == 0 {
			continue
		}
		if len(line) >= minIndent && minIndent > 0 {
			lines[i] = line[minIndent:]
		} else {
			lines[i] = strings.TrimLeft(line, " \t")
		}
	}

	return strings.Join(lines, "\n")
}

func longHelp() string {
	return strings.Join([]string{
		heredoc(`
            Evaluates its arguments as a reverse polish expression over quantities with units
            and prints the resulting stack, top first.
        `),
		heredoc(`
            Quantities:
              A number optionally followed by a unit, e.g. 7, -3.5e3, 1_000, 7m, 9.81m/s^2
              Compound units use '*' or '·' and '/', with exponents as ^N or superscripts
        `),
		heredoc(`
            Stack operations:
              x: exchange top 2 elements of the stack
              d: duplicate top element of the stack (aliased as dup)
              p: pop top element off of the stack (aliased as pop)
        `),
		heredoc(`
            Binary operations (prepend with '@' to reduce the stack):
              + -  (operands must have the same dimension, result in the left operand's unit)
              *    (aliased as . and •)
              /
              **   (aliased as pow, the exponent must be a dimensionless integer)

            Unary operations:
              chs  (change sign)
              abs  (absolute value)
              r    (reciprocal)
        `),
		heredoc(`
            Units:
              A unit applies to the top of stack if it has no units,
              otherwise the top of stack is converted to the unit

              Results pick the most suitable unit and prefix: 1289m shows as 1.3 km
              Run 'units list' for the known units and 'units define' to add your own

            Currencies:
              Three letter codes (USD, EUR, ...) and $ € £ ¥ load exchange rates on first use
              Set the API key in $openexchangerates (or the macOS keychain)
        `),
	}, "\n\n")
}
