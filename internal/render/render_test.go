package render

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/satellitewp/rocket-parser/internal/profile"
)

func TestRenderSubstitutesInPlace(t *testing.T) {
	t.Parallel()

	tmpl := "set $rocket_debug #!# DEBUG #!#;\nlocation ~ /#!# WP_CONTENT_URI #!#/cache {}\n"
	settings := profile.Settings{
		"debug":             profile.Scalar("1"),
		"wp_content_folder": profile.Scalar("wp-files"),
	}

	got, err := New(tmpl).Render("site", settings)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	want := "set $rocket_debug 1;\nlocation ~ /wp-files/cache {}\n"
	if got != want {
		t.Fatalf("unexpected output:\n%q\nwant:\n%q", got, want)
	}
}

func TestRenderDefaults(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	for _, token := range Tokens {
		b.WriteString(token.Marker())
		b.WriteString("\n")
	}

	got, err := New(b.String()).Render("blog", profile.Settings{})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	want := strings.Join([]string{
		"0",
		"wp-content",
		"",
		"",
		"# None.\n",
		"include conf.d/blog/global.*.conf;",
		"include conf.d/blog/http.*.conf;",
		"include conf.d/blog/css.*.conf;",
		"include conf.d/blog/js.*.conf;",
		"include conf.d/blog/media.*.conf;",
		"",
	}, "\n") + "\n"

	if got != want {
		t.Fatalf("unexpected output:\n%q\nwant:\n%q", got, want)
	}
}

func TestRenderReplacesEveryOccurrence(t *testing.T) {
	t.Parallel()

	tmpl := "#!# MEDIA_EXTENSIONS #!# and #!# MEDIA_EXTENSIONS #!#"
	got, err := New(tmpl).Render("site", profile.Settings{"media_extensions": profile.Scalar("png|svg")})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if got != "png|svg and png|svg" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRenderLeavesUnknownMarkers(t *testing.T) {
	t.Parallel()

	tmpl := "#!# UNKNOWN #!# #!# DEBUG #!#"
	got, err := New(tmpl).Render("site", profile.Settings{})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if got != "#!# UNKNOWN #!# 0" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRenderDoesNotRescanReplacements(t *testing.T) {
	t.Parallel()

	tmpl := "#!# HTML_CACHE_CONTROL #!#|#!# DEBUG #!#"
	settings := profile.Settings{"html_cache_control": profile.Scalar("#!# DEBUG #!#")}

	got, err := New(tmpl).Render("site", settings)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if got != "#!# DEBUG #!#|0" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	t.Parallel()

	renderer := New("#!# COOKIE_INVALIDATE #!#\n#!# QUERY_STRING_IGNORE #!#\n#!# INCLUDE_JS #!#")
	settings := profile.Settings{
		"cookie_invalidate":   profile.List("a", "b"),
		"query_string_ignore": profile.List("utm_source"),
	}

	first, err := renderer.Render("site", settings)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	second, err := renderer.Render("site", settings)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if first != second {
		t.Fatalf("expected identical output, got %q and %q", first, second)
	}
	if !strings.HasPrefix(first, "a|b\nset $rocket_args $args;\n") {
		t.Fatalf("unexpected output %q", first)
	}
}

func TestRenderWithIncludeRoot(t *testing.T) {
	t.Parallel()

	got, err := New("#!# INCLUDE_GLOBAL #!#", WithIncludeRoot("rocket-nginx/conf.d")).Render("shop", nil)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if got != "include rocket-nginx/conf.d/shop/global.*.conf;" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestDecodeOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		settings profile.Settings
		check    func(t *testing.T, opts Options)
	}{
		{
			name: "lists and scalars",
			settings: profile.Settings{
				"debug":               profile.Scalar("1"),
				"cookie_invalidate":   profile.List("x", "y"),
				"query_string_ignore": profile.List("fbclid"),
				"unrelated":           profile.Scalar("ignored"),
			},
			check: func(t *testing.T, opts Options) {
				if !opts.DebugEnabled() {
					t.Fatalf("expected debug enabled")
				}
				if !slices.Equal(opts.CookieInvalidate, []string{"x", "y"}) {
					t.Fatalf("unexpected cookies %v", opts.CookieInvalidate)
				}
				if !slices.Equal(opts.QueryStringIgnore, []string{"fbclid"}) {
					t.Fatalf("unexpected query strings %v", opts.QueryStringIgnore)
				}
			},
		},
		{
			name: "scalar where list expected",
			settings: profile.Settings{
				"cookie_invalidate": profile.Scalar("wordpress_logged_in_"),
			},
			check: func(t *testing.T, opts Options) {
				if len(opts.CookieInvalidate) != 0 {
					t.Fatalf("expected no cookies, got %v", opts.CookieInvalidate)
				}
			},
		},
		{
			name: "list where scalar expected",
			settings: profile.Settings{
				"wp_content_folder": profile.List("a"),
				"debug":             profile.List("1"),
			},
			check: func(t *testing.T, opts Options) {
				if opts.ContentFolder() != "wp-content" {
					t.Fatalf("expected default content folder, got %q", opts.ContentFolder())
				}
				if opts.DebugEnabled() {
					t.Fatalf("expected debug disabled")
				}
			},
		},
		{
			name:     "debug requires exact one",
			settings: profile.Settings{"debug": profile.Scalar("2")},
			check: func(t *testing.T, opts Options) {
				if opts.DebugEnabled() {
					t.Fatalf("expected debug disabled")
				}
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			opts, err := DecodeOptions(tc.settings)
			if err != nil {
				t.Fatalf("DecodeOptions returned error: %v", err)
			}
			tc.check(t, opts)
		})
	}
}

func TestLoadTemplate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	if _, err := LoadTemplate(filepath.Join(dir, "rocket-nginx.tmpl")); !errors.Is(err, ErrTemplateMissing) || !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected ErrTemplateMissing, got %v", err)
	}

	path := filepath.Join(dir, "rocket-nginx.tmpl")
	if err := os.WriteFile(path, []byte("#!# DEBUG #!#"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	got, err := LoadTemplate(path)
	if err != nil {
		t.Fatalf("LoadTemplate returned error: %v", err)
	}
	if got != "#!# DEBUG #!#" {
		t.Fatalf("unexpected template %q", got)
	}
}

func TestTokenMarker(t *testing.T) {
	t.Parallel()

	if got := TokenIncludeMedia.Marker(); got != "#!# INCLUDE_MEDIA #!#" {
		t.Fatalf("unexpected marker %q", got)
	}
	if len(Tokens) != len(includeTokens)+6 {
		t.Fatalf("unexpected token count %d", len(Tokens))
	}
}
