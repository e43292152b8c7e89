// Package config resolves the generator's runtime configuration from built-in
// defaults and CLI flags, with precedence: CLI flags > Defaults. The defaults
// reproduce the classic layout: rocket-nginx.ini and rocket-nginx.tmpl in the
// working directory, output under conf.d.
package config
