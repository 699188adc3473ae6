package routes

import (
	"fmt"
	"log"
	"strconv"

	"itboxparser/db"
	"itboxparser/models"
	"itboxparser/scraper"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var validate = validator.New()

func SetupRoutes(app *fiber.App, client *scraper.Client) {
	// Scrape progress over websocket
	go broadcastProgress()
	app.Get("/ws", progressHandler())

	// Category routes
	app.Get("/get_all_categories/", getAllCategories)
	app.Get("/get_category_by/:category_id/", getCategoryByID)
	app.Post("/parse_categories/", parseCategories(client))

	// Product routes
	app.Get("/get_all_products/", getAllProducts)
	app.Get("/get_products_by_category/:category_id/", getProductsByCategory)
	app.Get("/get_product_by/:slug/", getProductBySlug)
	app.Post("/parse_products/:slug/:count_of_data/", parseProducts(client))
}

// GET /get_all_categories/
func getAllCategories(c *fiber.Ctx) error {
	var categories []models.Category

	if err := db.DB.Find(&categories).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get categories",
		})
	}

	return c.JSON(categories)
}

// GET /get_category_by/:category_id/
func getCategoryByID(c *fiber.Ctx) error {
	id := c.Params("category_id")
	var category models.Category

	if err := db.DB.First(&category, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("No data with id - %s.", id),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get category",
		})
	}

	return c.JSON(category)
}

// POST /parse_categories/ - runs the full category pipeline: menu scrape,
// one detail fetch per slug, one commit per row.
func parseCategories(client *scraper.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		slugs, err := client.CategorySlugs()
		if err != nil {
			log.Println("ERROR: parse categories:", err)
		}
		if len(slugs) == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Something went wrong!",
			})
		}

		run := newProgressRun()
		for _, slug := range slugs {
			category, err := client.FetchCategory(slug)
			if err != nil {
				log.Printf("ERROR: fetch category %s: %v", slug, err)
				continue
			}
			if err := db.SaveCategory(category); err != nil {
				log.Printf("ERROR: save category %s: %v", category.CategoryName, err)
				continue
			}
			run.report("category", category.CategoryName)
		}

		return c.JSON(fiber.Map{
			"msg": "All data successfully parsed!",
		})
	}
}

// GET /get_all_products/
func getAllProducts(c *fiber.Ctx) error {
	var products []models.Product

	if err := db.DB.Find(&products).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get products",
		})
	}

	return c.JSON(products)
}

// GET /get_products_by_category/:category_id/
func getProductsByCategory(c *fiber.Ctx) error {
	id := c.Params("category_id")
	var products []models.Product

	if err := db.DB.Where("category_id = ?", id).Find(&products).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get products",
		})
	}
	if len(products) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("No data with category - %s.", id),
		})
	}

	return c.JSON(products)
}

// GET /get_product_by/:slug/ - a numeric slug looks the product up by id,
// anything else by exact title.
func getProductBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	var product models.Product

	if id, err := strconv.Atoi(slug); err == nil {
		if err := db.DB.First(&product, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": fmt.Sprintf("No data with id %d.", id),
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to get product",
			})
		}
		return c.JSON(product)
	}

	if err := db.DB.Where("title = ?", slug).First(&product).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("No data with name - %s.", slug),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get product",
		})
	}

	return c.JSON(product)
}

// POST /parse_products/:slug/:count_of_data/ - scrapes up to count products
// for one category slug. Incomplete records are skipped, not half-written.
func parseProducts(client *scraper.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		slug := c.Params("slug")
		count, err := strconv.Atoi(c.Params("count_of_data"))
		if err != nil || count < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Incorrect count - %s.", c.Params("count_of_data")),
			})
		}

		ids, err := client.ProductIDs(slug, count)
		if err != nil {
			log.Printf("ERROR: parse products for %s: %v", slug, err)
		}
		if len(ids) == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Something went wrong!",
			})
		}

		run := newProgressRun()
		for _, id := range ids {
			product, err := client.FetchProduct(id)
			if err != nil {
				log.Printf("ERROR: fetch product %d: %v", id, err)
				continue
			}
			if err := validate.Struct(product); err != nil {
				log.Printf("ERROR: product %d is incomplete, skipping: %v", id, err)
				continue
			}
			if err := db.SaveProduct(product); err != nil {
				log.Printf("ERROR: save product %s: %v", product.Title, err)
				continue
			}
			run.report("product", product.Title)
		}

		return c.JSON(fiber.Map{
			"msg": "All data successfully parsed!",
		})
	}
}
