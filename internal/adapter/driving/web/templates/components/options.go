// Package components is the shared widget library used by every portal page.
// Widgets are configured through option records instead of per-page markup.
package components

import (
	"strings"

	"github.com/a-h/templ"
)

// Variant selects a widget's color scheme.
type Variant string

const (
	VariantPrimary   Variant = "primary"
	VariantSecondary Variant = "secondary"
	VariantOutline   Variant = "outline"
	VariantGhost     Variant = "ghost"
)

// Size selects a widget's scale.
type Size string

const (
	SizeSmall  Size = "sm"
	SizeMedium Size = "md"
	SizeLarge  Size = "lg"
)

// ButtonOptions configures Button and LinkButton.
type ButtonOptions struct {
	Variant  Variant
	Size     Size
	Type     string // "button" (default), "submit" or "reset"
	ID       string
	Disabled bool
	Block    bool // full width

	// LoadingLabel replaces the label while the enclosing form submits.
	LoadingLabel string
}

func (o ButtonOptions) buttonType() string {
	if o.Type == "" {
		return "button"
	}
	return o.Type
}

func (o ButtonOptions) class() string {
	extra := ""
	if o.Block {
		extra = "btn-block"
	}
	return classList("btn", o.Variant, o.Size, extra)
}

// CardOptions configures Card.
type CardOptions struct {
	Variant     Variant
	Size        Size
	ID          string
	Title       string
	Description string
	Footer      templ.Component
}

// InputOptions configures Input.
type InputOptions struct {
	Size         Size
	ID           string
	Name         string
	Type         string // defaults to "text"
	Value        string // raw; escaped when rendered
	Placeholder  string
	Autocomplete string
	Required     bool
	Disabled     bool
}

func (o InputOptions) inputType() string {
	if o.Type == "" {
		return "text"
	}
	return o.Type
}

// LabelOptions configures Label.
type LabelOptions struct {
	Size Size
	For  string
}

// CheckboxOptions configures Checkbox.
type CheckboxOptions struct {
	Size    Size
	ID      string
	Name    string
	Value   string // defaults to "on"
	Checked bool
}

func (o CheckboxOptions) value() string {
	if o.Value == "" {
		return "on"
	}
	return o.Value
}

// classList builds "base base-variant base-size extra..." using defaults for
// zero-valued options.
func classList(base string, variant Variant, size Size, extra ...string) string {
	if variant == "" {
		variant = VariantPrimary
	}
	if size == "" {
		size = SizeMedium
	}

	parts := []string{base, base + "-" + string(variant), base + "-" + string(size)}
	for _, e := range extra {
		if e != "" {
			parts = append(parts, e)
		}
	}
	return strings.Join(parts, " ")
}
