package pip

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// run executes the environment's interpreter with the given arguments and
// returns its trimmed standard output.
func run(ctx context.Context, python string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, python, args...)

	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("%s %s: %w", python, strings.Join(args, " "), err)
	}

	return strings.TrimSpace(string(output)), nil
}

// runMerged executes the environment's interpreter and returns its merged
// standard output and error text together with the command error, if any.
// Tools like pip check exit non-zero exactly when they have something to
// report, so callers usually want the output even on error.
func runMerged(ctx context.Context, python string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, python, args...)

	output, err := cmd.CombinedOutput()
	text := strings.TrimSpace(string(output))
	if err != nil {
		return text, fmt.Errorf("%s %s: %w", python, strings.Join(args, " "), err)
	}

	return text, nil
}

// splitLines splits merged tool output into lines, dropping blank ones.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}

	var lines []string
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
