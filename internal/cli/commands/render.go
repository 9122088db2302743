package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/glamstack/glamql/internal/catalog"
)

var themeTitle = cases.Title(language.English)

// renderOutfitTable writes outfits as a table in the requested format
// (table, markdown, or csv).
func renderOutfitTable(w io.Writer, format string, outfits []catalog.Outfit, imageBase string) {
	if len(outfits) == 0 {
		fmt.Fprintln(w, "(no outfits)")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Name", "Theme", "Items", "Colors", "Image"})

	for _, o := range outfits {
		t.AppendRow(table.Row{
			o.Name,
			themeTitle.String(o.Theme),
			strings.Join(o.Items, ", "),
			strings.Join(o.Colors, ", "),
			catalog.ImagePath(imageBase, o),
		})
	}

	switch format {
	case "md", "markdown":
		t.RenderMarkdown()
	case "csv":
		t.RenderCSV()
	default:
		t.Render()
	}
}

// renderOutfitDetails writes one block per outfit with its image path and
// assembly steps.
func renderOutfitDetails(w io.Writer, outfits []catalog.Outfit, imageBase string) {
	for _, o := range outfits {
		fmt.Fprintf(w, "%s · Theme: %s · Colors: %s\n",
			o.Name, o.Theme, strings.Join(o.Colors, ", "))
		fmt.Fprintf(w, "  Image: %s\n", catalog.ImagePath(imageBase, o))
		if len(o.Steps) > 0 {
			fmt.Fprintln(w, "  Assembly Steps:")
			for _, s := range o.Steps {
				fmt.Fprintf(w, "  - %s\n", s)
			}
		}
	}
}

// renderItemList writes inventory items as a single-column table.
func renderItemList(w io.Writer, format string, header string, items []string) {
	if len(items) == 0 {
		fmt.Fprintln(w, "(empty)")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{header})
	for _, item := range items {
		t.AppendRow(table.Row{item})
	}

	switch format {
	case "md", "markdown":
		t.RenderMarkdown()
	case "csv":
		t.RenderCSV()
	default:
		t.Render()
	}
}
