package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"phonestock/internal/client/models"
	"phonestock/internal/common"
)

// Add interactively collects a new listing and creates it on the server.
// Local validation runs before anything is sent; a rejected form costs no
// network call.
func (a *App) Add(ctx context.Context) error {
	if err := a.requireAuth(); err != nil {
		return err
	}

	name, err := getSimpleText(a.reader, "Phone name", os.Stdout)
	if err != nil {
		return err
	}
	price, err := GetFloat(a.reader, "Price", os.Stdout)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Description", os.Stdout)
	if err != nil {
		return err
	}
	quantity, err := GetInt(a.reader, "Quantity", os.Stdout)
	if err != nil {
		return err
	}
	tagsLine, err := getSimpleText(a.reader, "Use cases (comma separated, e.g. Gaming, Photography)", os.Stdout)
	if err != nil {
		return err
	}

	phone := models.Phone{
		Name:        name,
		Price:       price,
		Description: description,
		Quantity:    quantity,
		UseIn:       strings.Split(tagsLine, ","),
	}

	created, err := a.inventory.Add(ctx, phone)
	if err != nil {
		var ve *common.ValidationError
		if errors.As(err, &ve) {
			fmt.Println(ve.Message)
		} else {
			fmt.Printf("Error: %s\n", err.Error())
		}
		return err
	}

	fmt.Printf("Created %q with id %s.\n", created.Name, created.ID)
	return nil
}
