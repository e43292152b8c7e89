package render

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/satellitewp/rocket-parser/internal/fragment"
	"github.com/satellitewp/rocket-parser/internal/profile"
)

var (
	// ErrTemplateMissing is returned when the template file does not exist.
	ErrTemplateMissing = errors.New("template file not found")
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithIncludeRoot overrides the directory used in generated include directives.
func WithIncludeRoot(root string) Option {
	return func(r *Renderer) {
		r.includeRoot = root
	}
}

// Renderer produces one output document per profile from a shared template.
type Renderer struct {
	template    string
	includeRoot string
}

// LoadTemplate reads the template text from path.
func LoadTemplate(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %w", ErrTemplateMissing, err)
		}
		return "", fmt.Errorf("read file: %w", err)
	}
	return string(data), nil
}

// New creates a Renderer for the given template text.
func New(template string, opts ...Option) *Renderer {
	r := &Renderer{
		template:    template,
		includeRoot: fragment.DefaultIncludeRoot,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Values computes the replacement text of every token for a profile.
func (r *Renderer) Values(name string, settings profile.Settings) (map[Token]string, error) {
	opts, err := DecodeOptions(settings)
	if err != nil {
		return nil, err
	}

	debug := "0"
	if opts.DebugEnabled() {
		debug = "1"
	}

	values := map[Token]string{
		TokenDebug:             debug,
		TokenWPContentURI:      opts.ContentFolder(),
		TokenHTMLCacheControl:  opts.HTMLCacheControl,
		TokenCookieInvalidate:  fragment.CookieNames(opts.CookieInvalidate),
		TokenQueryStringIgnore: fragment.QueryStringIgnore(opts.QueryStringIgnore),
		TokenMediaExtensions:   opts.MediaExtensions,
	}
	for token, section := range includeTokens {
		values[token] = fragment.Include(r.includeRoot, name, section)
	}

	return values, nil
}

// Render returns the template with every known marker replaced. Replacement
// happens in a single pass, so substituted text is never rescanned and the
// order of tokens does not matter. Unknown markers are left as they are.
func (r *Renderer) Render(name string, settings profile.Settings) (string, error) {
	values, err := r.Values(name, settings)
	if err != nil {
		return "", fmt.Errorf("render profile %q: %w", name, err)
	}

	pairs := make([]string, 0, 2*len(Tokens))
	for _, token := range Tokens {
		pairs = append(pairs, token.Marker(), values[token])
	}

	return strings.NewReplacer(pairs...).Replace(r.template), nil
}
