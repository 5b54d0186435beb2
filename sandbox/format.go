package sandbox

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

const truncatedSuffix = "\n... [output truncated]"

// FormatResult renders a finished run as STDOUT/STDERR/exit-code sections.
func FormatResult(res Result) string {
	if res.Stdout == "" && res.Stderr == "" {
		if res.ExitCode != 0 {
			return exitLine(res.ExitCode)
		}
		return "No output produced."
	}

	sections := make([]string, 0, 3)
	if res.Stdout != "" {
		sections = append(sections, "STDOUT: "+res.Stdout)
	}
	if res.Stderr != "" {
		sections = append(sections, "STDERR: "+res.Stderr)
	}
	if res.ExitCode != 0 {
		sections = append(sections, exitLine(res.ExitCode))
	}
	return strings.Join(sections, "\n")
}

// FormatError renders an error returned by Runner.Run. language names the
// script kind in messages, e.g. "Python".
func FormatError(err error, language string) string {
	var pathErr *PathError
	if errors.As(err, &pathErr) {
		switch {
		case errors.Is(err, ErrOutsideWorkdir):
			return fmt.Sprintf(`Error: Cannot execute "%s" as it is outside the permitted working directory`, pathErr.FilePath)
		case errors.Is(err, ErrNotFound):
			return fmt.Sprintf(`Error: File "%s" not found.`, pathErr.FilePath)
		case errors.Is(err, ErrWrongType):
			return fmt.Sprintf(`Error: "%s" is not a %s file.`, pathErr.FilePath, language)
		}
	}
	return fmt.Sprintf("Error: executing %s file: %v", language, err)
}

func exitLine(code int) string {
	return fmt.Sprintf("Process exited with code %d", code)
}

// truncateOutput caps s at maxBytes, appending a notice when cut. A
// non-positive maxBytes disables the cap. Cuts never split a UTF-8 sequence.
func truncateOutput(s string, maxBytes int) string {
	if maxBytes <= 0 || len(s) <= maxBytes {
		return s
	}
	if maxBytes <= len(truncatedSuffix) {
		return s[:runeBoundary(s, maxBytes)]
	}
	return s[:runeBoundary(s, maxBytes-len(truncatedSuffix))] + truncatedSuffix
}

// runeBoundary backs cut off to the start of the rune it falls inside.
func runeBoundary(s string, cut int) int {
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return cut
}
