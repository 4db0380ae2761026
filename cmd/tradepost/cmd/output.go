package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	domain "github.com/tradepost/tradepost/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printItemsTable(items []domain.Item) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tNAME\tCATEGORY\tCONDITION\tPRICE\tSELLER\tLISTED\n")
	for i := range items {
		tw.writef("%d\t%s\t%s\t%s\t$%.2f\t%s\t%s\n",
			items[i].ID,
			truncate(items[i].Name, 40),
			items[i].Type,
			items[i].Condition,
			items[i].Price,
			items[i].Seller,
			items[i].ListedAt.Format("2006-01-02 15:04:05"),
		)
	}
	return tw.finish()
}

func printItemDetail(it *domain.Item) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%d\n", it.ID)
	tw.writef("Name:\t%s\n", it.Name)
	tw.writef("Category:\t%s\n", it.Type)
	tw.writef("Condition:\t%s\n", it.Condition)
	tw.writef("Price:\t$%.2f\n", it.Price)
	tw.writef("Seller:\t%s\n", it.Seller)
	tw.writef("Image:\t%s\n", it.Image)
	tw.writef("Listed:\t%s\n", it.ListedAt.Format("2006-01-02 15:04:05"))
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
