package render

const tokenDelimiter = "#!#"

// Token names a placeholder in the template.
type Token string

const (
	TokenDebug             Token = "DEBUG"
	TokenWPContentURI      Token = "WP_CONTENT_URI"
	TokenHTMLCacheControl  Token = "HTML_CACHE_CONTROL"
	TokenCookieInvalidate  Token = "COOKIE_INVALIDATE"
	TokenQueryStringIgnore Token = "QUERY_STRING_IGNORE"
	TokenIncludeGlobal     Token = "INCLUDE_GLOBAL"
	TokenIncludeHTTP       Token = "INCLUDE_HTTP"
	TokenIncludeCSS        Token = "INCLUDE_CSS"
	TokenIncludeJS         Token = "INCLUDE_JS"
	TokenIncludeMedia      Token = "INCLUDE_MEDIA"
	TokenMediaExtensions   Token = "MEDIA_EXTENSIONS"
)

// Tokens is the closed set of placeholders the renderer resolves.
var Tokens = []Token{
	TokenDebug,
	TokenWPContentURI,
	TokenHTMLCacheControl,
	TokenCookieInvalidate,
	TokenQueryStringIgnore,
	TokenIncludeGlobal,
	TokenIncludeHTTP,
	TokenIncludeCSS,
	TokenIncludeJS,
	TokenIncludeMedia,
	TokenMediaExtensions,
}

// includeTokens maps include placeholders to their header section.
var includeTokens = map[Token]string{
	TokenIncludeGlobal: "global",
	TokenIncludeHTTP:   "http",
	TokenIncludeCSS:    "css",
	TokenIncludeJS:     "js",
	TokenIncludeMedia:  "media",
}

// Marker returns the literal text of the token as it appears in the template.
func (t Token) Marker() string {
	return tokenDelimiter + " " + string(t) + " " + tokenDelimiter
}
