package cli

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"phonestock/internal/client/catalog"
	"phonestock/internal/client/models"
	"phonestock/internal/common"
)

// requireAuth gates a protected command. While the initial verification is
// still running nothing is rendered; an anonymous user is pointed at the
// login entry instead.
func (a *App) requireAuth() error {
	err := a.session.Guard(true)
	switch {
	case errors.Is(err, common.ErrSessionLoading):
		return err
	case errors.Is(err, common.ErrLoginRequired):
		printlnFn("Please log in first (type 'login').")
		return err
	}
	return nil
}

// fetch loads the catalog, printing a dismissible warning when the view had
// to degrade to sample data.
func (a *App) fetch(ctx context.Context) ([]models.Phone, error) {
	phones, err := a.inventory.List(ctx)
	if err != nil {
		if len(phones) == 0 {
			fmt.Printf("Error: %s\n", err.Error())
			return nil, err
		}
		fmt.Printf("Connection error: %s — showing sample data.\n", err.Error())
	}
	return phones, nil
}

// List fetches the catalog and prints it through the current query params.
func (a *App) List(ctx context.Context) error {
	if err := a.requireAuth(); err != nil {
		return err
	}

	phones, err := a.fetch(ctx)
	if phones == nil {
		return err
	}

	printPhones(catalog.Apply(phones, a.params), a.params)
	return nil
}

// Find runs the inventory search variant, where the term also matches tags.
func (a *App) Find(ctx context.Context, term string) error {
	if err := a.requireAuth(); err != nil {
		return err
	}

	phones, err := a.fetch(ctx)
	if phones == nil {
		return err
	}

	p := a.params
	p.Term = term
	printPhones(catalog.ApplyInventory(phones, p), p)
	return nil
}

// Restock lists the items running low, scarcest first.
func (a *App) Restock(ctx context.Context) error {
	if err := a.requireAuth(); err != nil {
		return err
	}

	phones, err := a.fetch(ctx)
	if phones == nil {
		return err
	}

	low := a.inventory.LowStock(phones, a.config.LowStockThreshold)
	if len(low) == 0 {
		fmt.Printf("All items have at least %d in stock.\n", a.config.LowStockThreshold)
		return nil
	}

	fmt.Printf("Items below %d in stock:\n", a.config.LowStockThreshold)
	for _, p := range low {
		fmt.Printf("  %-28s qty %-4d %s\n", p.Name, p.Quantity, formatPrice(p.Price))
	}
	return nil
}

// Categories prints the distinct use-case tags found in the catalog, the
// valid choices for the category filter.
func (a *App) Categories(ctx context.Context) error {
	if err := a.requireAuth(); err != nil {
		return err
	}

	phones, err := a.fetch(ctx)
	if phones == nil {
		return err
	}

	names := catalog.Categories(phones)
	if len(names) == 0 {
		fmt.Println("No categories found.")
		return nil
	}

	fmt.Printf("Categories: %s (or %q to disable the filter)\n",
		strings.Join(names, ", "), catalog.CategoryAll)
	return nil
}

// SetTerm updates the free-text term. An empty argument clears it.
func (a *App) SetTerm(term string) {
	a.params.Term = term
	if term == "" {
		fmt.Println("Search term cleared.")
		return
	}
	fmt.Printf("Search term set to %q.\n", term)
}

// SetCategory updates the category filter; "all" disables it.
func (a *App) SetCategory(category string) {
	if category == "" {
		category = catalog.CategoryAll
	}
	a.params.Category = category
	fmt.Printf("Category set to %q.\n", category)
}

// SetPrice updates the inclusive price bounds from string args.
func (a *App) SetPrice(minArg, maxArg string) error {
	min, err := strconv.ParseFloat(minArg, 64)
	if err != nil {
		return fmt.Errorf("invalid minimum %q", minArg)
	}
	max := math.Inf(1)
	if maxArg != "" {
		max, err = strconv.ParseFloat(maxArg, 64)
		if err != nil {
			return fmt.Errorf("invalid maximum %q", maxArg)
		}
	}
	if max < min {
		return fmt.Errorf("maximum must not be below minimum")
	}
	a.params.PriceMin = min
	a.params.PriceMax = max
	fmt.Printf("Price range set to %s – %s.\n", formatPrice(min), formatPrice(max))
	return nil
}

// SetSort selects the sort key.
func (a *App) SetSort(key string) error {
	switch catalog.SortKey(key) {
	case catalog.SortByName, catalog.SortByPriceAsc, catalog.SortByPriceDesc, catalog.SortByQuantityDesc:
		a.params.Sort = catalog.SortKey(key)
		fmt.Printf("Sorting by %s.\n", key)
		return nil
	default:
		return fmt.Errorf("unknown sort key %q (name, price-asc, price-desc, quantity-desc)", key)
	}
}

// ClearParams resets the query params to their defaults.
func (a *App) ClearParams() {
	a.params = catalog.DefaultParams()
	fmt.Println("Filters cleared.")
}

func printPhones(phones []models.Phone, p catalog.Params) {
	if len(phones) == 0 {
		fmt.Println("No phones match the current filters.")
		return
	}

	fmt.Printf("%d phone(s), sorted by %s:\n", len(phones), p.Sort)
	for _, phone := range phones {
		tags := ""
		if len(phone.UseIn) > 0 {
			tags = " [" + strings.Join(phone.UseIn, ", ") + "]"
		}
		fmt.Printf("  %-10s %-28s %-12s qty %-4d %s%s\n",
			phone.ID, phone.Name, formatPrice(phone.Price), phone.Quantity, phone.Description, tags)
	}
}

func formatPrice(price float64) string {
	if math.IsInf(price, 1) {
		return "∞"
	}
	return "₹" + strconv.FormatFloat(price, 'f', 0, 64)
}
