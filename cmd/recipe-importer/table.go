// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/pdiddy/recipe-importer/internal/pipeline"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

// renderTable draws rows under headers. Missing cells render empty.
func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i, h := range headers {
		header[i] = h
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := range r {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	configs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		configs = append(configs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

// countTable renders a two-column breakdown sorted by count.
func countTable(label string, counts map[string]int) string {
	var rows [][]string
	for _, c := range pipeline.Sorted(counts) {
		key := c.Key
		if key == "" {
			key = "(none)"
		}
		rows = append(rows, []string{key, strconv.Itoa(c.N)})
	}
	return renderTable([]string{label, "Recipes"}, rows, []columnAlignment{alignLeft, alignRight})
}

// maxListed bounds how many titles are shown per warning list.
const maxListed = 5

// printSummary writes the breakdown tables and warning lists for a parse run.
func printSummary(w io.Writer, s pipeline.Summary) {
	if s.Parsed == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, countTable("Category", s.ByCategory))
	fmt.Fprintln(w, countTable("Folder", s.ByFolder))
	if len(s.BySubcategory) > 0 {
		fmt.Fprintln(w, countTable("Subcategory", s.BySubcategory))
	}

	printList(w, "Recipes without ingredients", s.NoIngredients)
	printList(w, "Recipes without instructions", s.NoInstructions)

	if len(s.DuplicateSlugs) > 0 {
		var rows [][]string
		for _, c := range pipeline.Sorted(slugCounts(s.DuplicateSlugs)) {
			for _, p := range s.DuplicateSlugs[c.Key] {
				rows = append(rows, []string{c.Key, p})
			}
		}
		fmt.Fprintln(w, "\nDuplicate slugs (the last document wins downstream):")
		fmt.Fprintln(w, renderTable([]string{"Slug", "Document"}, rows, nil))
	}
}

func printList(w io.Writer, heading string, titles []string) {
	if len(titles) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s: %d\n", heading, len(titles))
	for i, t := range titles {
		if i == maxListed {
			fmt.Fprintf(w, "  ... and %d more\n", len(titles)-maxListed)
			break
		}
		fmt.Fprintf(w, "  - %s\n", t)
	}
}

func slugCounts(dups map[string][]string) map[string]int {
	m := make(map[string]int, len(dups))
	for slug, paths := range dups {
		m[slug] = len(paths)
	}
	return m
}
