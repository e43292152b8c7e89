// Package profile loads site profiles from rocket-nginx.ini. Each INI section
// declares one profile, optionally inheriting the declared settings of another
// section through a "name:parent" header. Inheritance is single-level: a child
// copies its parent's own declared keys, never the parent's inherited ones.
package profile
