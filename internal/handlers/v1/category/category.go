package category

import (
	"time"

	"github.com/carson-networks/expense-tracker/internal/service"
)

// Category is the API response model for a category.
type Category struct {
	ID        int64  `json:"id" doc:"Category id"`
	Name      string `json:"name" doc:"Category name, unique per type"`
	Type      string `json:"type" enum:"EXPENSE,INCOME" doc:"Category type"`
	IsActive  bool   `json:"isActive" doc:"Inactive categories cannot receive transactions"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 creation time"`
}

func fromService(c *service.Category) Category {
	return Category{
		ID:        c.ID,
		Name:      c.Name,
		Type:      string(c.Type),
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}

func fromServiceList(categories []service.Category) []Category {
	resp := make([]Category, len(categories))
	for i := range categories {
		resp[i] = fromService(&categories[i])
	}
	return resp
}

// CategoryIDInput is shared by operations addressing a single category.
type CategoryIDInput struct {
	ID int64 `path:"id" minimum:"1" doc:"Category id"`
}

// CategoryOutput is the Huma output for operations returning one category.
type CategoryOutput struct {
	Body Category
}

// ListCategoriesOutput is the Huma output for category listings.
type ListCategoriesOutput struct {
	Body []Category
}
