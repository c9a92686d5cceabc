package views

import (
	"fmt"
	"strings"

	"github.com/sandeepkv93/baringwidget/internal/preset"
	"github.com/sandeepkv93/baringwidget/internal/widget"
)

// CatalogMarkdown lists the widget families and preset gradients.
func CatalogMarkdown(descriptors []widget.Descriptor, presets []preset.StylePreset) string {
	var b strings.Builder
	b.WriteString("# Widgets\n\n")
	b.WriteString("| Kind | Name | Size | Description |\n")
	b.WriteString("|---|---|---|---|\n")
	for _, d := range descriptors {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", d.Family, d.DisplayName, d.Size, d.Description)
	}
	b.WriteString("\n# Presets\n\n")
	b.WriteString("| Index | Start | End | Dark |\n")
	b.WriteString("|---|---|---|---|\n")
	for _, p := range presets {
		dark := "no"
		if p.Dark {
			dark = "yes"
		}
		fmt.Fprintf(&b, "| %d | %s | %s | %s |\n", p.Index, p.Start.Hex(), p.End.Hex(), dark)
	}
	fmt.Fprintf(&b, "\nAll widgets open `%s`.\n", widget.DeepLink)
	return b.String()
}

func RenderCatalog() string {
	return RenderMarkdown(CatalogMarkdown(widget.Catalog(), preset.All()))
}
