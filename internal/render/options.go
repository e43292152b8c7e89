package render

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"

	"github.com/satellitewp/rocket-parser/internal/profile"
)

const (
	optionTagName          = "ini"
	defaultWPContentFolder = "wp-content"
)

// Options are the settings the renderer consumes. Keys not listed here are ignored.
type Options struct {
	Debug             string   `ini:"debug"`
	WPContentFolder   string   `ini:"wp_content_folder"`
	HTMLCacheControl  string   `ini:"html_cache_control"`
	CookieInvalidate  []string `ini:"cookie_invalidate"`
	QueryStringIgnore []string `ini:"query_string_ignore"`
	MediaExtensions   string   `ini:"media_extensions"`
}

// DebugEnabled reports whether debug was set to exactly "1".
func (o Options) DebugEnabled() bool {
	return o.Debug == "1"
}

// ContentFolder returns the configured wp-content folder or its default.
func (o Options) ContentFolder() string {
	if o.WPContentFolder == "" {
		return defaultWPContentFolder
	}
	return o.WPContentFolder
}

// DecodeOptions maps merged settings onto Options. A list where a scalar is
// expected, or a scalar where a list is expected, decodes to the zero value.
func DecodeOptions(settings profile.Settings) (Options, error) {
	var opts Options

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: shapeMismatchHook,
		Result:     &opts,
		TagName:    optionTagName,
	})
	if err != nil {
		return Options{}, fmt.Errorf("create decoder: %w", err)
	}

	if err := decoder.Decode(settings.Map()); err != nil {
		return Options{}, fmt.Errorf("decode settings: %w", err)
	}

	return opts, nil
}

func shapeMismatchHook(from, to reflect.Type, data any) (any, error) {
	switch {
	case from.Kind() == reflect.String && to.Kind() == reflect.Slice:
		return []string(nil), nil
	case from.Kind() == reflect.Slice && to.Kind() == reflect.String:
		return "", nil
	}
	return data, nil
}
