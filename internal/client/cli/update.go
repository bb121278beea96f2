package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"phonestock/internal/common"
)

// Update changes the stock level of a listing. The current snapshot is shown
// first so the user edits against fresh data.
func (a *App) Update(ctx context.Context) error {
	if err := a.requireAuth(); err != nil {
		return err
	}

	id, err := getSimpleText(a.reader, "Enter listing id to update", os.Stdout)
	if err != nil {
		return err
	}

	phone, err := a.inventory.Get(ctx, id)
	if err != nil {
		fmt.Printf("Error: %s\n", err.Error())
		return err
	}

	fmt.Printf("%s — %s, %d in stock\n", phone.Name, formatPrice(phone.Price), phone.Quantity)

	quantity, err := GetInt(a.reader, "New quantity", os.Stdout)
	if err != nil {
		return err
	}

	updated, err := a.inventory.AdjustQuantity(ctx, phone.ID, quantity)
	if err != nil {
		var ve *common.ValidationError
		if errors.As(err, &ve) {
			fmt.Println(ve.Message)
		} else {
			fmt.Printf("Error: %s\n", err.Error())
		}
		return err
	}

	fmt.Printf("%q now has %d in stock.\n", updated.Name, updated.Quantity)
	return nil
}
