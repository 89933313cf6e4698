package dummyjson

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/avatarctic/admin-dashboard/internal/core/domain/product"
)

// ProductClient implements ports.ProductCatalog against the upstream
// /products endpoints.
type ProductClient struct {
	c *Client
}

func NewProductClient(c *Client) *ProductClient {
	return &ProductClient{c: c}
}

type productPage struct {
	Products []product.Product `json:"products"`
	Total    int               `json:"total"`
}

func (pc *ProductClient) List(ctx context.Context, limit, skip int) ([]product.Product, int, error) {
	var page productPage
	if err := pc.c.getJSON(ctx, "list_products", "/products", pageQuery(limit, skip), &page); err != nil {
		return nil, 0, err
	}
	return page.Products, page.Total, nil
}

func (pc *ProductClient) Search(ctx context.Context, query string) ([]product.Product, int, error) {
	q := url.Values{}
	q.Set("q", query)
	var page productPage
	if err := pc.c.getJSON(ctx, "search_products", "/products/search", q, &page); err != nil {
		return nil, 0, err
	}
	return page.Products, page.Total, nil
}

func (pc *ProductClient) ByCategory(ctx context.Context, category string, limit, skip int) ([]product.Product, int, error) {
	path := "/products/category/" + url.PathEscape(category)
	var page productPage
	if err := pc.c.getJSON(ctx, "products_by_category", path, pageQuery(limit, skip), &page); err != nil {
		return nil, 0, err
	}
	return page.Products, page.Total, nil
}

func (pc *ProductClient) GetByID(ctx context.Context, id int) (*product.Product, error) {
	var p product.Product
	if err := pc.c.getJSON(ctx, "get_product", fmt.Sprintf("/products/%d", id), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Categories returns the flat list of category identifiers. The upstream has
// returned both bare strings and {slug, name, url} objects over time, so both
// shapes are accepted and normalized to the slug.
func (pc *ProductClient) Categories(ctx context.Context) ([]string, error) {
	var raw []json.RawMessage
	if err := pc.c.getJSON(ctx, "list_categories", "/products/categories", nil, &raw); err != nil {
		return nil, err
	}

	categories := make([]string, 0, len(raw))
	for _, entry := range raw {
		var s string
		if err := json.Unmarshal(entry, &s); err == nil {
			categories = append(categories, s)
			continue
		}
		var obj struct {
			Slug string `json:"slug"`
			Name string `json:"name"`
		}
		if err := json.Unmarshal(entry, &obj); err != nil {
			return nil, &ParseError{URL: pc.c.baseURL + "/products/categories", Err: err}
		}
		if obj.Slug != "" {
			categories = append(categories, obj.Slug)
		} else if obj.Name != "" {
			categories = append(categories, obj.Name)
		}
	}
	return categories, nil
}
