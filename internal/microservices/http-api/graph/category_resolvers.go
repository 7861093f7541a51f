package graph

import (
	"context"

	"bloghub/internal/microservices/http-api/middleware"
	"bloghub/internal/microservices/http-api/service"

	"github.com/graph-gophers/graphql-go"
)

func (r *Resolver) Categories(ctx context.Context) ([]*categoryResolver, error) {
	categories, err := r.svc.Categories.List(ctx)
	if err != nil {
		return nil, r.queryFailed("categories", err)
	}
	out := make([]*categoryResolver, len(categories))
	for i := range categories {
		out[i] = r.category(&categories[i])
	}
	return out, nil
}

func (r *Resolver) Category(ctx context.Context, args struct{ ID graphql.ID }) (*categoryResolver, error) {
	category, err := r.svc.Categories.Get(ctx, string(args.ID))
	if err != nil {
		if service.IsNotFound(err) {
			return nil, nil
		}
		return nil, r.queryFailed("category", err)
	}
	return r.category(category), nil
}

func (r *Resolver) CreateCategory(ctx context.Context, args struct{ Name string }) *categoryResponse {
	if _, err := middleware.RequireUser(ctx); err != nil {
		return &categoryResponse{envelope: r.fail(ctx, "createCategory", err)}
	}
	category, err := r.svc.Categories.Create(ctx, args.Name)
	if err != nil {
		return &categoryResponse{envelope: r.fail(ctx, "createCategory", err)}
	}
	return &categoryResponse{envelope: r.succeed("createCategory", ""), category: r.category(category)}
}

func (r *Resolver) UpdateCategory(ctx context.Context, args struct {
	ID   graphql.ID
	Name string
}) *categoryResponse {
	if _, err := middleware.RequireUser(ctx); err != nil {
		return &categoryResponse{envelope: r.fail(ctx, "updateCategory", err)}
	}
	category, err := r.svc.Categories.Update(ctx, string(args.ID), args.Name)
	if err != nil {
		return &categoryResponse{envelope: r.fail(ctx, "updateCategory", err)}
	}
	return &categoryResponse{envelope: r.succeed("updateCategory", ""), category: r.category(category)}
}

// DeleteCategory removes the category; its posts stay, uncategorized.
func (r *Resolver) DeleteCategory(ctx context.Context, args struct{ ID graphql.ID }) *categoryResponse {
	if _, err := middleware.RequireUser(ctx); err != nil {
		return &categoryResponse{envelope: r.fail(ctx, "deleteCategory", err)}
	}
	category, err := r.svc.Categories.Delete(ctx, string(args.ID))
	if err != nil {
		return &categoryResponse{envelope: r.fail(ctx, "deleteCategory", err)}
	}
	return &categoryResponse{
		envelope: r.succeed("deleteCategory", "Category deleted successfully"),
		category: r.category(category),
	}
}
