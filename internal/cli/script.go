package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"

	"github.com/lessonforge/webutil/hashutil"
	"github.com/lessonforge/webutil/urlutil"
	"github.com/lessonforge/webutil/vfspath"
)

// runScript evaluates one operation per line, printing one result per line.
// Lines are split with shell quoting rules so segments may contain spaces.
// Blank lines and '#' comments are skipped.
func runScript(out io.Writer, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		args, err := shellwords.Parse(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		if len(args) == 0 {
			continue
		}
		result, err := evalScriptOp(args[0], args[1:])
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		fmt.Fprintln(out, result)
	}
	return scanner.Err()
}

func evalScriptOp(op string, args []string) (string, error) {
	switch op {
	case "normpath":
		if len(args) != 1 {
			return "", fmt.Errorf("normpath takes one path, got %d args", len(args))
		}
		return vfspath.Normalize(args[0]), nil
	case "join":
		if len(args) == 0 {
			return "", errors.New("join needs a base path")
		}
		return vfspath.Normalize(vfspath.Join(args[0], args[1:]...)), nil
	case "hash":
		switch len(args) {
		case 1:
			return hashutil.ShortHash(args[0], 12), nil
		case 2:
			length, err := strconv.Atoi(args[1])
			if err != nil {
				return "", fmt.Errorf("hash length: %w", err)
			}
			return hashutil.ShortHash(args[0], length), nil
		default:
			return "", fmt.Errorf("hash takes a string and an optional length, got %d args", len(args))
		}
	case "set-url-param":
		if len(args) != 3 {
			return "", fmt.Errorf("set-url-param takes url, name, value, got %d args", len(args))
		}
		return urlutil.SetQueryParam(args[0], args[1], args[2])
	default:
		return "", fmt.Errorf("unknown operation %q", op)
	}
}
