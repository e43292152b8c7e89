package profile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/ini.v1"
)

const parentSeparator = ":"

var loadOptions = ini.LoadOptions{
	AllowShadows:               true,
	AllowDuplicateShadowValues: true,
	AllowBooleanKeys:           true,
	IgnoreContinuation:         true,
	SpaceBeforeInlineComment:   true,
	KeyValueDelimiters:         "=",
}

// Loader parses profile definitions and resolves their inheritance.
type Loader struct {
	logger *zap.Logger
}

// NewLoader creates a Loader. A nil logger disables warnings.
func NewLoader(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{logger: logger}
}

// Load reads and parses the INI file at path.
func (l *Loader) Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrConfigMissing, err)
		}
		return nil, fmt.Errorf("read file: %w", err)
	}

	return l.Parse(data)
}

// Parse builds the merged profile set from raw INI content. Sections are
// processed in file order. A section header "name:parent" first copies the
// keys declared by the section whose header is exactly "parent", then applies
// its own keys on top. Unknown parents are ignored.
func (l *Loader) Parse(data []byte) (*Set, error) {
	file, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return nil, fmt.Errorf("parse INI: %w", err)
	}

	sections := make([]*ini.Section, 0, len(file.Sections()))
	for _, section := range file.Sections() {
		if section.Name() == ini.DefaultSection {
			if n := len(section.Keys()); n > 0 {
				l.logger.Warn("ignoring settings declared outside of a profile section",
					zap.Int("keys", n))
			}
			continue
		}
		sections = append(sections, section)
	}

	lines := scanKeyLines(data)
	declared := make(map[string]Settings, len(sections))
	for _, section := range sections {
		declared[section.Name()] = declaredSettings(section, lines[strings.TrimSpace(section.Name())])
	}

	set := newSet()
	for _, section := range sections {
		name, parent, extends := splitHeader(section.Name())
		merged := set.bucket(name)

		if extends {
			if inherited, ok := declared[parent]; ok {
				merged.merge(inherited)
			} else {
				l.logger.Warn("parent profile not found, inheriting nothing",
					zap.String("profile", name),
					zap.String("parent", parent))
			}
		}

		merged.merge(declared[section.Name()])
	}

	return set, nil
}

func splitHeader(header string) (name, parent string, extends bool) {
	name, parent, extends = strings.Cut(header, parentSeparator)
	return strings.TrimSpace(name), strings.TrimSpace(parent), extends
}

// declaredSettings collects the keys written directly inside a section,
// replaying assignments in the order they appear in the source.
func declaredSettings(section *ini.Section, lines []keyLine) Settings {
	pending := make(map[string][]string, len(section.Keys()))
	for _, key := range section.Keys() {
		pending[key.Name()] = key.ValueWithShadows()
	}

	b := newSettingsBuilder(len(pending))
	for _, line := range lines {
		if !section.HasKey(line.name) {
			continue
		}

		var raw string
		if queue := pending[line.name]; len(queue) > 0 {
			raw, pending[line.name] = queue[0], queue[1:]
		}
		if !line.quoted {
			raw = normalizeValue(raw)
		}
		b.assign(line.name, raw)
	}

	// Assignments the line listing could not account for keep ini.v1's order.
	for _, key := range section.Keys() {
		for _, raw := range pending[key.Name()] {
			b.assign(key.Name(), normalizeValue(raw))
		}
	}

	return b.settings
}

// settingsBuilder applies assignments with PHP array semantics: "key[]"
// appends, "key[idx]" overwrites the slot named idx in place, and a plain
// "key" replaces whatever was stored before.
type settingsBuilder struct {
	settings Settings
	slots    map[string]map[string]int
}

func newSettingsBuilder(size int) *settingsBuilder {
	return &settingsBuilder{
		settings: make(Settings, size),
		slots:    make(map[string]map[string]int),
	}
}

func (b *settingsBuilder) assign(name, value string) {
	base, index, indexed := splitKey(name)
	if !indexed {
		b.settings[base] = Scalar(value)
		delete(b.slots, base)
		return
	}

	current, ok := b.settings[base]
	if !ok || !current.IsList() {
		current = List()
		b.slots[base] = make(map[string]int)
	}

	if index != "" {
		if pos, seen := b.slots[base][index]; seen {
			current.items[pos] = value
			return
		}
		b.slots[base][index] = len(current.items)
	}
	b.settings[base] = current.appendItems(value)
}

// splitKey separates an array index suffix such as "[]" or "[utm]".
func splitKey(name string) (base, index string, indexed bool) {
	open := strings.IndexByte(name, '[')
	if open <= 0 || !strings.HasSuffix(name, "]") {
		return name, "", false
	}
	return strings.TrimSpace(name[:open]), strings.TrimSpace(name[open+1 : len(name)-1]), true
}

// normalizeValue applies the boolean literal conversions PHP-style INI files
// perform on unquoted values.
func normalizeValue(raw string) string {
	switch strings.ToLower(raw) {
	case "true", "on", "yes":
		return "1"
	case "false", "off", "no", "none", "null":
		return ""
	}
	return raw
}
