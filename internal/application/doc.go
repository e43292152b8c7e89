// Package application drives one generation pass. It checks that the profile
// configuration and the template exist, loads and merges the profiles, then
// renders and writes each profile in declaration order. A profile that fails
// to render or write is logged and skipped; the remaining profiles are still
// generated.
package application
