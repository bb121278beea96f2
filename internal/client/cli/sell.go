package cli

import (
	"context"
	"fmt"
	"os"

	"phonestock/internal/client/api"
)

// Sell marks units of a listing as sold via the delete endpoint. The item
// snapshot is fetched first so the user confirms against current data, and
// any failure surfaces the caught error's message.
func (a *App) Sell(ctx context.Context) error {
	if err := a.requireAuth(); err != nil {
		return err
	}

	id, err := getSimpleText(a.reader, "Enter listing id to sell", os.Stdout)
	if err != nil {
		return err
	}

	phone, err := a.inventory.Get(ctx, id)
	if err != nil {
		fmt.Printf("Error: %s\n", err.Error())
		return err
	}

	fmt.Printf("%s — %s, %d in stock\n", phone.Name, formatPrice(phone.Price), phone.Quantity)

	quantity, err := GetInt(a.reader, "Quantity to sell", os.Stdout)
	if err != nil {
		return err
	}

	ok, err := GetConfirmation(a.reader, fmt.Sprintf("Sell %d × %s?", quantity, phone.Name), os.Stdout)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Cancelled.")
		return nil
	}

	conf, err := a.inventory.Sell(ctx, api.SellRequest{
		ID:          phone.ID,
		Name:        phone.Name,
		Price:       phone.Price,
		Quantity:    quantity,
		Description: phone.Description,
	})
	if err != nil {
		fmt.Printf("Error: %s\n", err.Error())
		return err
	}

	if conf.Message != "" {
		fmt.Println(conf.Message)
	} else {
		fmt.Println("Item sold.")
	}
	return nil
}
