package profile

// Set is the ordered collection of merged profiles produced by a Loader.
type Set struct {
	names    []string
	profiles map[string]Settings
}

func newSet() *Set {
	return &Set{profiles: make(map[string]Settings)}
}

// bucket returns the settings stored for name, creating them on first use.
func (s *Set) bucket(name string) Settings {
	settings, ok := s.profiles[name]
	if !ok {
		settings = make(Settings)
		s.profiles[name] = settings
		s.names = append(s.names, name)
	}
	return settings
}

// Names returns profile names in the order they were first declared.
func (s *Set) Names() []string {
	return append([]string{}, s.names...)
}

// Get returns a copy of the merged settings for name.
func (s *Set) Get(name string) (Settings, bool) {
	settings, ok := s.profiles[name]
	if !ok {
		return nil, false
	}
	return settings.Clone(), true
}

// Len returns the number of profiles.
func (s *Set) Len() int {
	return len(s.names)
}
