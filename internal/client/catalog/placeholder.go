package catalog

import (
	"github.com/google/uuid"

	"phonestock/internal/client/models"
)

// Placeholder returns a locally generated catalog used when the remote fetch
// fails, so the browse view degrades to sample data instead of an empty
// screen. IDs are random, so placeholder items can never collide with real
// listings.
func Placeholder() []models.Phone {
	return []models.Phone{
		{
			ID:          uuid.NewString(),
			Name:        "iPhone 15 Pro",
			Price:       89999,
			Quantity:    5,
			Description: "Latest flagship with titanium design and A17 Pro chip",
			UseIn:       []string{"Photography", "Gaming", "Business", "Content Creation"},
		},
		{
			ID:          uuid.NewString(),
			Name:        "Samsung Galaxy S24",
			Price:       74999,
			Quantity:    8,
			Description: "AI-powered smartphone with revolutionary camera system",
			UseIn:       []string{"Photography", "Business", "Content Creation"},
		},
		{
			ID:          uuid.NewString(),
			Name:        "Google Pixel 8 Pro",
			Price:       69999,
			Quantity:    3,
			Description: "Pure Android experience with advanced AI features",
			UseIn:       []string{"Photography", "Business"},
		},
		{
			ID:          uuid.NewString(),
			Name:        "OnePlus 12",
			Price:       64999,
			Quantity:    10,
			Description: "Flagship killer with Hasselblad camera system",
			UseIn:       []string{"Gaming", "Photography", "Content Creation"},
		},
		{
			ID:          uuid.NewString(),
			Name:        "Xiaomi 14 Ultra",
			Price:       59999,
			Quantity:    6,
			Description: "Professional photography powerhouse with Leica optics",
			UseIn:       []string{"Photography", "Content Creation"},
		},
	}
}
