// Package templates holds the page shell and the static display widgets.
//
// The *_templ.go files are generated from the .templ sources with
// `templ generate`; edit the .templ files, not the generated output.
package templates

//go:generate go tool templ generate
