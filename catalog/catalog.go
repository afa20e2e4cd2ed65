// Package catalog is the read-only farm/product provider. The records are a
// fixed demo set; the storefront only consumes name, slug, price and unit.
package catalog

import "urbanharvest/models"

var farms = []models.Farm{
	{
		FarmID:                  "1",
		Name:                    "Green Roof Gardens",
		Slug:                    "green-roof-gardens",
		Description:             "Rooftop farm specializing in heirloom tomatoes and leafy greens.",
		Image:                   "/static/farmpic/green-roof-gardens.jpg",
		Location:                "Downtown",
		Address:                 "123 Rooftop Ave, Downtown, City",
		Phone:                   "(555) 123-4567",
		Email:                   "farm@example.com",
		Rating:                  4.8,
		ReviewCount:             42,
		Story:                   "Green Roof Gardens started in 2015 when we transformed an unused rooftop into a thriving urban farm.",
		GrowingMethods:          "Container gardening and raised beds with organic soil mixes formulated for rooftop conditions.",
		SustainabilityPractices: "On-site composting, solar-powered equipment, deliveries within a 3-mile radius by electric cargo bike.",
	},
	{
		FarmID:                  "2",
		Name:                    "Vertical Harvest",
		Slug:                    "vertical-harvest",
		Description:             "Indoor vertical farm growing herbs and microgreens year-round.",
		Image:                   "/static/farmpic/vertical-harvest.jpg",
		Location:                "Westside",
		Address:                 "456 Innovation Blvd, Westside, City",
		Phone:                   "(555) 987-6543",
		Email:                   "info@verticalharvestfarm.com",
		Rating:                  4.7,
		ReviewCount:             38,
		Story:                   "Founded by engineers and plant scientists to grow fresh produce year-round regardless of weather.",
		GrowingMethods:          "Hydroponic systems under LED lighting; 20x the yield per square foot using 95% less water.",
		SustainabilityPractices: "100% renewable energy; pest management through environmental controls and beneficial insects.",
	},
	{
		FarmID:                  "3",
		Name:                    "Community Roots",
		Slug:                    "community-roots",
		Description:             "Community-based farm focusing on culturally diverse vegetables.",
		Image:                   "/static/farmpic/community-roots.jpg",
		Location:                "Eastside",
		Address:                 "789 Neighborhood St, Eastside, City",
		Phone:                   "(555) 456-7890",
		Email:                   "hello@communityroots.org",
		Rating:                  4.9,
		ReviewCount:             56,
		Story:                   "Began as a neighborhood initiative turning vacant lots into productive gardens.",
		GrowingMethods:          "Intensive organic methods: companion planting, crop rotation, season extension.",
		SustainabilityPractices: "Volunteer programs, workshops and a sliding-scale CSA for neighborhood food access.",
	},
}

var products = []models.Product{
	{ProductID: "1", Name: "Heirloom Tomatoes", Description: "Colorful mix of heritage tomato varieties.", Price: 4.99, Unit: "lb", FarmID: "green-roof-gardens", Image: "/static/productpic/heirloom-tomatoes.jpg"},
	{ProductID: "4", Name: "Organic Carrots", Description: "Sweet and crunchy carrots grown without pesticides.", Price: 3.29, Unit: "bunch", FarmID: "green-roof-gardens", Image: "/static/productpic/organic-carrots.jpg"},
	{ProductID: "7", Name: "Bell Peppers", Description: "Colorful sweet peppers perfect for salads or cooking.", Price: 1.99, Unit: "each", FarmID: "green-roof-gardens", Image: "/static/productpic/bell-peppers.jpg"},
	{ProductID: "2", Name: "Fresh Basil", Description: "Aromatic basil grown in vertical systems.", Price: 2.99, Unit: "bunch", FarmID: "vertical-harvest", Image: "/static/productpic/fresh-basil.jpg"},
	{ProductID: "5", Name: "Microgreens Mix", Description: "Nutrient-dense assortment of young seedlings.", Price: 5.99, Unit: "box", FarmID: "vertical-harvest", Image: "/static/productpic/microgreens-mix.jpg"},
	{ProductID: "8", Name: "Fresh Mint", Description: "Aromatic mint for teas, cocktails, and cooking.", Price: 2.49, Unit: "bunch", FarmID: "vertical-harvest", Image: "/static/productpic/fresh-mint.jpg"},
	{ProductID: "3", Name: "Baby Bok Choy", Description: "Tender Asian greens harvested young.", Price: 3.49, Unit: "bundle", FarmID: "community-roots", Image: "/static/productpic/baby-bok-choy.jpg"},
	{ProductID: "6", Name: "Butterhead Lettuce", Description: "Tender lettuce with a buttery texture.", Price: 2.79, Unit: "head", FarmID: "community-roots", Image: "/static/productpic/butterhead-lettuce.jpg"},
	{ProductID: "9", Name: "Japanese Cucumbers", Description: "Crisp, thin-skinned cucumbers with few seeds.", Price: 3.99, Unit: "lb", FarmID: "community-roots", Image: "/static/productpic/japanese-cucumbers.jpg"},
}

func Farms() []models.Farm {
	out := make([]models.Farm, len(farms))
	copy(out, farms)
	return out
}

func FarmBySlug(slug string) (models.Farm, bool) {
	for _, f := range farms {
		if f.Slug == slug {
			return f, true
		}
	}
	return models.Farm{}, false
}

func Products() []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)
	return out
}

// ProductsByFarm filters by the farm's slug.
func ProductsByFarm(slug string) []models.Product {
	out := []models.Product{}
	for _, p := range products {
		if p.FarmID == slug {
			out = append(out, p)
		}
	}
	return out
}

func ProductByID(id string) (models.Product, bool) {
	for _, p := range products {
		if p.ProductID == id {
			return p, true
		}
	}
	return models.Product{}, false
}
