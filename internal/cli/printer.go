package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/tidwall/gjson"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var resourceColumns = []string{"id", "name", "category", "status", "description", "created_at"}

// printResourceTable renders resources, a gjson array of resource objects, as
// an aligned table.
func printResourceTable(w io.Writer, resources gjson.Result) error {
	title := cases.Title(language.English)
	headers := make([]string, len(resourceColumns))
	for i, c := range resourceColumns {
		headers[i] = title.String(strings.ReplaceAll(c, "_", " "))
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(headers)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("  ")
	for _, r := range resources.Array() {
		row := make([]string, len(resourceColumns))
		for i, c := range resourceColumns {
			v := r.Get(c)
			if !v.Exists() || v.Type == gjson.Null {
				row[i] = "-"
			} else {
				row[i] = v.String()
			}
		}
		table.Append(row)
	}
	table.Render()
	return nil
}

// printResource renders a single resource as key: value lines.
func printResource(w io.Writer, resource gjson.Result) {
	title := cases.Title(language.English)
	for _, c := range append(resourceColumns, "updated_at") {
		v := resource.Get(c)
		value := "-"
		if v.Exists() && v.Type != gjson.Null {
			value = v.String()
		}
		fmt.Fprintf(w, "%s: %s\n", title.String(strings.ReplaceAll(c, "_", " ")), value)
	}
}
