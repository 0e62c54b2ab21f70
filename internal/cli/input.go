package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetRequiredText repeats the prompt until a non-empty line is entered.
func GetRequiredText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	for {
		s, err := GetSimpleText(reader, prompt, w)
		if err != nil {
			return "", err
		}
		if s != "" {
			return s, nil
		}
		fmt.Fprintln(w, "A value is required.")
	}
}

// GetOptionalInt reads a non-negative integer. An empty line means "not
// set" and yields nil; anything else that is not a number re-prompts.
func GetOptionalInt(reader *bufio.Reader, prompt string, w io.Writer) (*int, error) {
	for {
		s, err := GetSimpleText(reader, prompt, w)
		if err != nil {
			return nil, err
		}
		if s == "" {
			return nil, nil
		}
		n, err := strconv.Atoi(s)
		if err == nil && n >= 0 {
			return &n, nil
		}
		fmt.Fprintln(w, "Please enter a whole number, or leave empty.")
	}
}

// GetChoice reads one of options (case-insensitive) and returns it in its
// canonical spelling. An empty line returns "" when allowEmpty is set.
func GetChoice(reader *bufio.Reader, prompt string, options []string, allowEmpty bool, w io.Writer) (string, error) {
	full := fmt.Sprintf("%s [%s]", prompt, strings.Join(options, ", "))
	for {
		s, err := GetSimpleText(reader, full, w)
		if err != nil {
			return "", err
		}
		if s == "" && allowEmpty {
			return "", nil
		}
		for _, o := range options {
			if strings.EqualFold(o, s) {
				return o, nil
			}
		}
		fmt.Fprintln(w, "Please pick one of the listed values.")
	}
}

// GetList reads a comma-separated line and returns the trimmed, non-empty
// items. An empty line yields nil.
func GetList(reader *bufio.Reader, prompt string, w io.Writer) ([]string, error) {
	s, err := GetSimpleText(reader, prompt+" (comma-separated)", w)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out, nil
}

// GetMultiline prints a prompt to w and reads multiple lines until an empty
// line is entered (i.e., the user presses Enter twice). The trailing newline
// on each line is trimmed and the collected text is joined with '\n'.
func GetMultiline(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n(press Enter on an empty line to finish)\n"); err != nil {
		return "", err
	}

	var lines []string
	for {
		line, err := reader.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		lines = append(lines, line)
		if err != nil {
			break
		}
	}

	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}
