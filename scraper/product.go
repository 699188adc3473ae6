package scraper

import (
	"encoding/json"
	"fmt"

	"itboxparser/models"
)

// flexString accepts both JSON strings and bare numbers; the upstream is
// not consistent about which it sends for price fields.
type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return err
		}
		*s = flexString(value)
		return nil
	}
	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return err
	}
	*s = flexString(number.String())
	return nil
}

type productResponse struct {
	Status  int `json:"Status"`
	Product *struct {
		NameUa             string     `json:"NameUa"`
		CategoryExternalId uint       `json:"CategoryExternalId"`
		Price              flexString `json:"Price"`
		OldPrice           flexString `json:"OldPrice"`
		DescriptionUa      string     `json:"DescriptionUa"`
		BriefDescriptionUa string     `json:"BriefDescriptionUa"`
		Rating             struct {
			Average int `json:"Average"`
		} `json:"Rating"`
		TodayViews int `json:"TodayViews"`
		Pictures   []struct {
			PictureEnlargedPath string `json:"PictureEnlargedPath"`
		} `json:"Pictures"`
	} `json:"Product"`
}

// FetchProduct resolves one product id to a full record. Fields the
// upstream omits stay at their zero values; Status is true only for the
// numeric status code 1.
func (c *Client) FetchProduct(id uint) (*models.Product, error) {
	var res productResponse
	if err := c.getJSON(fmt.Sprintf("/products/%d", id), &res); err != nil {
		return nil, err
	}

	product := &models.Product{
		ID:     id,
		Status: res.Status == 1,
	}
	if p := res.Product; p != nil {
		product.Title = p.NameUa
		product.CategoryID = p.CategoryExternalId
		product.Price = string(p.Price)
		product.OldPrice = string(p.OldPrice)
		product.Description = p.DescriptionUa
		product.Characteristics = p.BriefDescriptionUa
		product.Rating = p.Rating.Average
		product.Views = p.TodayViews
		for _, picture := range p.Pictures {
			product.Images = append(product.Images, picture.PictureEnlargedPath)
		}
	}
	return product, nil
}
