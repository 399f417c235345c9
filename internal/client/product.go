package client

import (
	"context"

	"github.com/vyrodovalexey/avshopgw/internal/rpc"
)

// Product is the typed adapter for the product catalog service.
type Product struct {
	caller
}

// NewProduct creates a product service adapter over the given invoker.
func NewProduct(invoker Invoker, opts ...Option) *Product {
	return &Product{caller: newCaller("product", invoker, opts...)}
}

// GetAllProducts fetches the full product catalog.
func (p *Product) GetAllProducts(ctx context.Context) (*rpc.GetAllProductsResponse, error) {
	out := new(rpc.GetAllProductsResponse)
	if err := p.call(ctx, rpc.MethodGetAllProducts, &rpc.GetAllProductsRequest{}, out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetAllCategories fetches all product categories.
func (p *Product) GetAllCategories(ctx context.Context) (*rpc.GetAllCategoriesResponse, error) {
	out := new(rpc.GetAllCategoriesResponse)
	if err := p.call(ctx, rpc.MethodGetAllCategories, &rpc.GetAllCategoriesRequest{}, out); err != nil {
		return nil, err
	}
	return out, nil
}

// SaveUserCategoryPreferences stores the category preferences for a user.
func (p *Product) SaveUserCategoryPreferences(ctx context.Context, in *rpc.SaveUserCategoryPreferencesRequest) (*rpc.SaveUserCategoryPreferencesResponse, error) {
	out := new(rpc.SaveUserCategoryPreferencesResponse)
	if err := p.call(ctx, rpc.MethodSaveUserCategoryPreferences, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetProductsForUserPreferences fetches products matching the categories a
// user prefers.
func (p *Product) GetProductsForUserPreferences(ctx context.Context, in *rpc.GetProductsFromPreferencesRequest) (*rpc.GetProductsFromPreferencesResponse, error) {
	out := new(rpc.GetProductsFromPreferencesResponse)
	if err := p.call(ctx, rpc.MethodGetProductsFromPreferences, in, out); err != nil {
		return nil, err
	}
	return out, nil
}
