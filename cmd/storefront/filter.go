package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/storefront/backend/internal/domain"
	"github.com/storefront/backend/internal/infrastructure/catalog"
	"github.com/storefront/backend/internal/usecase"
)

type filterOptions struct {
	catalogFile string
	search      string
	toggles     []string
}

func newFilterCmd() *cobra.Command {
	opts := &filterOptions{}

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Filter a catalog file by search text and tag clicks",
		Example: `  storefront filter --catalog catalog.yaml --q "electrician"
  storefront filter --catalog catalog.yaml --toggle Plumber --toggle TX`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFilter(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.catalogFile, "catalog", "catalog.yaml", "catalog file (YAML or JSON)")
	cmd.Flags().StringVar(&opts.search, "q", "", "search text")
	cmd.Flags().StringArrayVar(&opts.toggles, "toggle", nil, "tag to toggle, applied in order (repeatable)")

	return cmd
}

func runFilter(cmd *cobra.Command, opts *filterOptions) error {
	products, err := catalog.NewFileSource(opts.catalogFile).ListProducts(cmd.Context())
	if err != nil {
		return err
	}

	search := opts.search
	for _, tag := range opts.toggles {
		search = usecase.ToggleTag(search, tag)
	}
	tokens := usecase.Tokenize(search)

	writeListing(cmd.OutOrStdout(), search, tokens, usecase.FilterProducts(products, tokens))
	return nil
}

func writeListing(out io.Writer, search string, tokens []string, products []domain.Product) {
	fmt.Fprintf(out, "search: %q\n", search)
	fmt.Fprintf(out, "tokens: [%s]\n", strings.Join(tokens, " "))
	fmt.Fprintf(out, "matched: %d\n", len(products))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, p := range products {
		price, ok := usecase.FormatPrice(p)
		if !ok {
			price = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", p.ID, p.Name, price)
	}
	_ = w.Flush()
}
