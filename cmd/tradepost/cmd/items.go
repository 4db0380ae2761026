package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	apiclient "github.com/tradepost/tradepost/internal/api/client"
)

func itemsCmd() *cobra.Command {
	itemsRoot := &cobra.Command{
		Use:   "items",
		Short: "Query and list marketplace items",
	}

	itemsRoot.AddCommand(
		itemsListCmd(),
		itemsGetCmd(),
		itemsSearchCmd(),
		itemsCategoryCmd(),
		itemsSellCmd(),
	)

	return itemsRoot
}

func itemsListCmd() *cobra.Command {
	var (
		category  int
		condition int
		seller    string
		maxPrice  float64
		limit     int
		offset    int
		orderBy   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List items with optional filters",
		Example: `  # List all items
  tradepost items list

  # Filter by category and price
  tradepost items list --category 1 --max-price 500

  # Sort by price with pagination
  tradepost items list --order-by price --limit 20 --offset 40`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			resp, err := c.ListItems(context.Background(), &apiclient.ListItemsParams{
				Category:  category,
				Condition: condition,
				Seller:    seller,
				MaxPrice:  maxPrice,
				Limit:     limit,
				Offset:    offset,
				OrderBy:   orderBy,
			})
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}

			if len(resp.Items) == 0 {
				fmt.Println("No items found.")
				return nil
			}

			fmt.Printf("Showing %d of %d items\n\n", len(resp.Items), resp.Total)
			return printItemsTable(resp.Items)
		},
	}
	cmd.Flags().IntVar(&category, "category", 0, "category code filter")
	cmd.Flags().IntVar(&condition, "condition", 0, "condition grade filter")
	cmd.Flags().StringVar(&seller, "seller", "", "seller username filter")
	cmd.Flags().Float64Var(&maxPrice, "max-price", 0, "maximum price filter")
	cmd.Flags().IntVar(&limit, "limit", 50, "number of results")
	cmd.Flags().IntVar(&offset, "offset", 0, "result offset")
	cmd.Flags().StringVar(&orderBy, "order-by", "", "sort order (price, listed_at)")

	return cmd
}

func itemsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Show item details",
		Example: `  tradepost items get 6437125889390332`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid item id %q", args[0])
			}

			c := newClient()
			it, err := c.GetByID(context.Background(), id)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(it)
			}
			return printItemDetail(it)
		},
	}
}

func itemsSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "search <text>",
		Short:   "Search items by name",
		Example: `  tradepost items search "ddr4 ecc"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			items, err := c.Search(context.Background(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(items)
			}
			return printItemsTable(items)
		},
	}
}

func itemsCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "category <code>",
		Short:   "List items in a category",
		Example: `  tradepost items category 4`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			code, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid category code %q", args[0])
			}

			c := newClient()
			items, err := c.ByCategory(context.Background(), code)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(items)
			}
			return printItemsTable(items)
		},
	}
}

func itemsSellCmd() *cobra.Command {
	var (
		token     string
		category  int
		name      string
		image     string
		condition int
		price     float64
	)

	cmd := &cobra.Command{
		Use:   "sell",
		Short: "List a new item for sale",
		Example: `  tradepost items sell --token tok-abc \
    --name "PowerEdge R740" --category 1 --condition 3 --price 499.99`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			id, err := c.ListNewItem(context.Background(), &apiclient.SellParams{
				Token:     token,
				Type:      category,
				Name:      name,
				Image:     image,
				Condition: condition,
				Price:     price,
			})
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(map[string]int64{"id": id})
			}

			fmt.Printf("Listed item %d\n", id)
			return nil
		},
	}
	cmd.Flags().StringVar(&token, "token", "", "seller auth token")
	cmd.Flags().IntVar(&category, "category", 0, "category code (-2..6, excluding 0)")
	cmd.Flags().StringVar(&name, "name", "", "item name")
	cmd.Flags().StringVar(&image, "image", "", "image URL")
	cmd.Flags().IntVar(&condition, "condition", 0, "condition grade (1..5)")
	cmd.Flags().Float64Var(&price, "price", 0, "asking price")

	cobra.CheckErr(cmd.MarkFlagRequired("token"))
	cobra.CheckErr(cmd.MarkFlagRequired("name"))

	return cmd
}
