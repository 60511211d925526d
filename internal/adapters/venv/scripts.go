package venv

import (
	"slices"
	"strings"

	"go.trai.ch/hatchery/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	argsPlaceholder = "{args}"
	ignoreExitCode  = "- "
)

// expandCommands replaces script names with the commands they stand for.
//
// A command whose first word names a script expands into every command of the script,
// with the remaining words substituted for {args} or appended. A "- " prefix carries
// over to every expanded command.
func expandCommands(scripts map[string][]string, commands []string) ([]string, error) {
	var out []string
	for _, command := range commands {
		expanded, err := expandCommand(scripts, command, nil)
		if err != nil {
			return nil, err
		}
		out = append(out, expanded...)
	}
	return out, nil
}

func expandCommand(scripts map[string][]string, command string, chain []string) ([]string, error) {
	body, ignore := strings.CutPrefix(command, ignoreExitCode)

	name, args, _ := strings.Cut(strings.TrimSpace(body), " ")
	script, ok := scripts[name]
	if !ok {
		return []string{command}, nil
	}

	chain = append(slices.Clone(chain), name)
	if slices.Contains(chain[:len(chain)-1], name) {
		return nil, zerr.With(domain.ErrCircularScript, "chain", strings.Join(chain, " -> "))
	}

	var out []string
	for _, line := range script {
		nested, err := expandCommand(scripts, substituteArgs(line, strings.TrimSpace(args)), chain)
		if err != nil {
			return nil, err
		}
		for _, n := range nested {
			if ignore && !strings.HasPrefix(n, ignoreExitCode) {
				n = ignoreExitCode + n
			}
			out = append(out, n)
		}
	}
	return out, nil
}

func substituteArgs(line, args string) string {
	if strings.Contains(line, argsPlaceholder) {
		return strings.TrimSpace(strings.ReplaceAll(line, argsPlaceholder, args))
	}
	if args == "" {
		return line
	}
	return line + " " + args
}
