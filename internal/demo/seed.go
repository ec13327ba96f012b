package demo

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/mrlokans/bookcafe/internal/entities"
)

type (
	CategoryCreator interface {
		Create(ctx context.Context, category *entities.Category) error
	}
	BookCreator interface {
		Create(ctx context.Context, book *entities.Book, categoryIDs []uint) error
	}
	MenuCreator interface {
		Create(ctx context.Context, menu *entities.Menu) error
	}
	OrderCreator interface {
		Create(ctx context.Context, order *entities.Order, items []entities.OrderItem) error
	}
)

// Stores are the repositories the seeder writes through.
type Stores struct {
	Categories CategoryCreator
	Books      BookCreator
	Menus      MenuCreator
	Orders     OrderCreator
}

// Summary counts the records created by Seed.
type Summary struct {
	Categories int
	Books      int
	Menus      int
	Orders     int
}

type demoBook struct {
	Book       entities.Book
	Categories []string
}

// Seed fills an empty database with public domain books, a small menu and a
// sample order. It stops at the first failed write.
func Seed(ctx context.Context, stores Stores) (Summary, error) {
	var summary Summary

	categoryIDs := make(map[string]uint)
	for _, category := range demoCategories() {
		if err := stores.Categories.Create(ctx, &category); err != nil {
			return summary, fmt.Errorf("create category %s: %w", category.Name, err)
		}
		categoryIDs[category.Name] = category.ID
		summary.Categories++
	}

	for _, cfg := range demoBooks() {
		ids := make([]uint, 0, len(cfg.Categories))
		for _, name := range cfg.Categories {
			ids = append(ids, categoryIDs[name])
		}
		if err := stores.Books.Create(ctx, &cfg.Book, ids); err != nil {
			return summary, fmt.Errorf("create book %s: %w", cfg.Book.Title, err)
		}
		logrus.WithFields(logrus.Fields{
			"title":  cfg.Book.Title,
			"author": cfg.Book.Author,
		}).Debug("Seeded book")
		summary.Books++
	}

	menus := demoMenus()
	for i := range menus {
		if err := stores.Menus.Create(ctx, &menus[i]); err != nil {
			return summary, fmt.Errorf("create menu %s: %w", menus[i].Name, err)
		}
		summary.Menus++
	}

	order := &entities.Order{FirstName: "Jane", LastName: "Austen", Phone: "+44 20 7946 0000"}
	items := []entities.OrderItem{
		{MenuID: menus[1].ID, Amount: 2, Price: menus[1].Price},
		{MenuID: menus[3].ID, Amount: 1, Price: menus[3].Price, AdditionalInfo: ptr("warmed")},
	}
	if err := stores.Orders.Create(ctx, order, items); err != nil {
		return summary, fmt.Errorf("create order: %w", err)
	}
	summary.Orders++

	return summary, nil
}

func demoCategories() []entities.Category {
	return []entities.Category{
		{Name: "philosophy", Detail: ptr("Thinkers from antiquity onwards")},
		{Name: "fiction"},
		{Name: "classic", Detail: ptr("Public domain classics")},
		{Name: "science fiction"},
	}
}

func demoBooks() []demoBook {
	return []demoBook{
		{
			Categories: []string{"philosophy", "classic"},
			Book: entities.Book{
				Title:       "Meditations",
				Author:      "Marcus Aurelius",
				Year:        180,
				IsPublished: true,
				Summary:     ptr("Private notes of a Roman emperor on Stoic philosophy."),
			},
		},
		{
			Categories: []string{"fiction", "classic"},
			Book: entities.Book{
				Title:       "Pride and Prejudice",
				Author:      "Jane Austen",
				Year:        1813,
				IsPublished: true,
				Summary:     ptr("Elizabeth Bennet and Mr Darcy misjudge each other."),
			},
		},
		{
			Categories: []string{"fiction", "classic", "science fiction"},
			Book: entities.Book{
				Title:       "Frankenstein",
				Author:      "Mary Shelley",
				Year:        1818,
				IsPublished: true,
			},
		},
		{
			Categories: []string{"fiction", "classic"},
			Book: entities.Book{
				Title:  "Moby-Dick",
				Author: "Herman Melville",
				Year:   1851,
			},
		},
		{
			Categories: []string{"philosophy"},
			Book: entities.Book{
				Title:   "The Art of War",
				Author:  "Sun Tzu",
				Year:    -500,
				Details: ptr("Thirteen chapters on strategy."),
			},
		},
	}
}

func demoMenus() []entities.Menu {
	return []entities.Menu{
		{Name: "Espresso", Price: 2.2},
		{Name: "Cappuccino", Price: 3.4, Details: ptr("Double shot with steamed milk")},
		{Name: "Earl Grey", Price: 2.8},
		{Name: "Croissant", Price: 2.5},
		{Name: "Cheesecake", Price: 4.9, Details: ptr("Baked daily")},
	}
}

func ptr(s string) *string {
	return &s
}
