package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ganilson/synctechSite/domain/website/content"
)

func newPostsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "posts",
		Short: "Inspect blog posts",
	}
	cmd.AddCommand(newPostsListCmd(opts), newPostsCheckCmd())
	return cmd
}

// postRow is the listing shape for json and yaml output
type postRow struct {
	Slug     string   `json:"slug" yaml:"slug"`
	Date     string   `json:"date" yaml:"date"`
	Category string   `json:"category" yaml:"category"`
	Title    string   `json:"title" yaml:"title"`
	Featured bool     `json:"featured" yaml:"featured"`
	Tags     []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

func newPostsListCmd(opts *options) *cobra.Command {
	var dir, category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List posts, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := content.LoadStore(dir)
			if err != nil {
				return err
			}

			posts := store.ByCategory(category)
			rows := make([]postRow, 0, len(posts))
			for _, p := range posts {
				rows = append(rows, postRow{
					Slug:     p.Slug,
					Date:     p.Date,
					Category: p.Category,
					Title:    p.Title,
					Featured: p.Featured,
					Tags:     p.Tags,
				})
			}
			return writeRows(cmd.OutOrStdout(), opts.output(), rows)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "posts directory (default: embedded posts)")
	cmd.Flags().StringVar(&category, "category", "", "only list this category")
	return cmd
}

func newPostsCheckCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate front matter and markdown of every post",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := content.LoadStore(dir)
			if err != nil {
				return err
			}
			all := store.All()

			var warnings []string
			for _, p := range all {
				if p.MetaDescription() == "" {
					warnings = append(warnings, p.Slug+": no excerpt or seo.description")
				}
				if p.Image == "" {
					warnings = append(warnings, p.Slug+": no image, the default share image is used")
				}
			}
			for _, w := range warnings {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning:", w)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d posts OK\n", len(all))
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "posts directory (default: embedded posts)")
	return cmd
}

func writeRows(w io.Writer, format string, rows []postRow) error {
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case "yaml":
		out, err := yaml.Marshal(rows)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	case "table", "":
		table := tablewriter.NewWriter(w)
		table.Header("Slug", "Date", "Category", "Title", "Featured")
		for _, r := range rows {
			if err := table.Append(r.Slug, r.Date, r.Category, r.Title, strconv.FormatBool(r.Featured)); err != nil {
				return err
			}
		}
		return table.Render()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
