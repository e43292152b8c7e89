package application

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/satellitewp/rocket-parser/internal/profile"
)

type dumpedProfile struct {
	Name     string           `yaml:"name"`
	Settings profile.Settings `yaml:"settings"`
}

// Dump writes the merged profiles to w as YAML, in declaration order, without
// rendering or writing any configuration file.
func (a *App) Dump(w io.Writer) error {
	if err := checkPresence(a.cfg.ConfigFile, ErrConfigMissing); err != nil {
		return err
	}

	profiles, err := a.loadProfiles()
	if err != nil {
		return err
	}

	out := make([]dumpedProfile, 0, profiles.Len())
	for _, name := range profiles.Names() {
		settings, _ := profiles.Get(name)
		out = append(out, dumpedProfile{Name: name, Settings: settings})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode profiles: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode profiles: %w", err)
	}
	return nil
}
