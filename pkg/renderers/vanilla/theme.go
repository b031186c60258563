package vanilla

import (
	"fmt"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

const (
	DefaultThemeName    = "formcheck"
	VariantHighContrast = "high-contrast"
	stylesheetAssetKey  = "vanilla.stylesheet"
	defaultAssetsPrefix = "/assets/formcheck"
	defaultThemeVersion = "1.0.0"
	tokenColorValid     = "color.valid"
	tokenColorInvalid   = "color.invalid"
	tokenColorMessage   = "color.message"
	tokenBorderWidth    = "border.width"
)

// DefaultManifest returns the built-in theme: state colours for valid and
// invalid inputs plus a high-contrast variant.
func DefaultManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    DefaultThemeName,
		Version: defaultThemeVersion,
		Tokens: map[string]string{
			tokenColorValid:   "#2e7d32",
			tokenColorInvalid: "#c62828",
			tokenColorMessage: "#c62828",
			tokenBorderWidth:  "1px",
		},
		Assets: theme.Assets{
			Prefix: defaultAssetsPrefix,
			Files: map[string]string{
				stylesheetAssetKey: StylesheetName,
			},
		},
		Variants: map[string]theme.Variant{
			VariantHighContrast: {
				Tokens: map[string]string{
					tokenColorValid:   "#005a00",
					tokenColorInvalid: "#a00000",
					tokenColorMessage: "#000000",
					tokenBorderWidth:  "2px",
				},
			},
		},
	}
}

// DefaultSelection selects the built-in manifest with the given variant.
func DefaultSelection(variant string) (*theme.Selection, error) {
	manifest := DefaultManifest()
	if variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("vanilla renderer: unknown theme variant %q", variant)
		}
	}
	return &theme.Selection{Theme: manifest.Name, Variant: variant, Manifest: manifest}, nil
}

// themeView is what templates see under "theme".
type themeView struct {
	Name          string            `json:"name,omitempty"`
	Variant       string            `json:"variant,omitempty"`
	Tokens        map[string]string `json:"tokens,omitempty"`
	CSSVars       map[string]string `json:"css_vars,omitempty"`
	StylesheetURL string            `json:"stylesheet_url,omitempty"`
}

func buildThemeView(selection *theme.Selection) themeView {
	if selection == nil {
		return themeView{}
	}
	view := themeView{Name: selection.Theme, Variant: selection.Variant}
	manifest := selection.Manifest
	if manifest == nil {
		return view
	}

	tokens := copyStringMap(manifest.Tokens)
	prefix := manifest.Assets.Prefix
	files := copyStringMap(manifest.Assets.Files)
	if variant, ok := manifest.Variants[selection.Variant]; ok {
		tokens = mergeStringMap(tokens, variant.Tokens)
		files = mergeStringMap(files, variant.Assets.Files)
		if variant.Assets.Prefix != "" {
			prefix = variant.Assets.Prefix
		}
	}
	view.Tokens = tokens
	view.CSSVars = cssVars(tokens)
	if file := files[stylesheetAssetKey]; file != "" {
		view.StylesheetURL = strings.TrimRight(prefix, "/") + "/" + strings.TrimLeft(file, "/")
	}
	return view
}

// cssVars maps "color.valid" to "--color-valid".
func cssVars(tokens map[string]string) map[string]string {
	if len(tokens) == 0 {
		return nil
	}
	keys := make([]string, 0, len(tokens))
	for key := range tokens {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	out := make(map[string]string, len(tokens))
	for _, key := range keys {
		name := "--" + strings.NewReplacer(".", "-", "_", "-", " ", "-").Replace(key)
		out[name] = tokens[key]
	}
	return out
}

func copyStringMap(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}

func mergeStringMap(base, override map[string]string) map[string]string {
	if len(override) == 0 {
		return base
	}
	if base == nil {
		base = make(map[string]string, len(override))
	}
	for key, value := range override {
		base[key] = value
	}
	return base
}
