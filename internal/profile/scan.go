package profile

import (
	"bufio"
	"bytes"
	"strings"

	"gopkg.in/ini.v1"
)

// keyLine records one key assignment as it appears in the source.
type keyLine struct {
	name   string
	quoted bool
}

// scanKeyLines lists the key assignments of every section in file order.
// ini.v1 groups repeated keys into shadows and drops quoting, so the loader
// uses this listing to replay assignments in the order they were written.
// Sections sharing a header share one listing, as ini.v1 merges them.
func scanKeyLines(data []byte) map[string][]keyLine {
	lines := make(map[string][]keyLine)
	section := ini.DefaultSection

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == ';' || line[0] == '#' {
			continue
		}

		if line[0] == '[' {
			if end := strings.LastIndexByte(line, ']'); end > 0 {
				section = strings.TrimSpace(line[1:end])
			}
			continue
		}

		name, value, found := strings.Cut(line, "=")
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		value = strings.TrimSpace(value)

		lines[section] = append(lines[section], keyLine{
			name:   name,
			quoted: found && isQuoted(value),
		})
	}

	return lines
}

func isQuoted(value string) bool {
	return value != "" && strings.ContainsRune("\"'`", rune(value[0]))
}
