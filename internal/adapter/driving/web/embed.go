package web

import "embed"

// StaticFS holds the embedded stylesheet and the login and ticker scripts.
//
//go:embed static/*
var StaticFS embed.FS
