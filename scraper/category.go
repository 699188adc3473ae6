package scraper

import (
	"log"
	"strconv"

	"itboxparser/models"
)

type categoryResponse struct {
	Category struct {
		ExternalId uint   `json:"ExternalId"`
		Name       string `json:"Name"`
	} `json:"Category"`
	Products []struct {
		// Upstream sends ids both quoted and bare.
		Id flexString `json:"Id"`
	} `json:"Products"`
}

// FetchCategory resolves a slug to the category's external id and display
// name.
func (c *Client) FetchCategory(slug string) (*models.Category, error) {
	var res categoryResponse
	if err := c.getJSON("/categories/"+slug+"/", &res); err != nil {
		return nil, err
	}
	return &models.Category{
		ID:           res.Category.ExternalId,
		CategoryName: res.Category.Name,
	}, nil
}

// ProductIDs returns up to count product ids listed under the category
// slug, preserving upstream order. More than count available means the tail
// is truncated, never sampled.
func (c *Client) ProductIDs(slug string, count int) ([]uint, error) {
	var res categoryResponse
	if err := c.getJSON("/categories/"+slug+"/", &res); err != nil {
		return nil, err
	}

	var ids []uint
	for _, product := range res.Products {
		if len(ids) >= count {
			break
		}
		id, err := strconv.ParseUint(string(product.Id), 10, 64)
		if err != nil {
			log.Printf("ERROR: skipping product with malformed id %q: %v", product.Id, err)
			continue
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}
