package cli

import (
	"context"
	"fmt"

	"phonestock/internal/client/catalog"
)

// Sellouts prints the sold-items history, optionally narrowed by a search
// term over name and description. The current sort key applies; the list
// filters (category, price range) do not — a history entry records what was
// sold, not what is for sale.
func (a *App) Sellouts(ctx context.Context, term string) error {
	if err := a.requireAuth(); err != nil {
		return err
	}

	sold, err := a.inventory.Sellouts(ctx)
	if err != nil {
		fmt.Printf("Error: %s\n", err.Error())
		return err
	}

	p := catalog.DefaultParams()
	p.Term = term
	p.Sort = a.params.Sort
	sold = catalog.Apply(sold, p)

	if len(sold) == 0 {
		fmt.Println("No sold items found.")
		return nil
	}

	units := 0
	for _, item := range sold {
		units += item.Quantity
	}

	fmt.Printf("%d sold item(s), %d unit(s) total, sorted by %s:\n", len(sold), units, p.Sort)
	for _, item := range sold {
		fmt.Printf("  %-10s %-28s %-12s sold %-4d %s\n",
			item.ID, item.Name, formatPrice(item.Price), item.Quantity, item.Description)
	}
	return nil
}
