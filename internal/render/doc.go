// Package render substitutes "#!# TOKEN #!#" markers in the rocket-nginx
// template with values computed from a profile's merged settings.
package render
