package domain

// Category представляет категорию точки интереса
type Category string

// POI Category constants
const (
	CategoryHistorical    Category = "historical"
	CategoryMuseum        Category = "museum"
	CategoryGallery       Category = "gallery"
	CategoryPark          Category = "park"
	CategoryBeach         Category = "beach"
	CategoryViewpoint     Category = "viewpoint"
	CategoryRestaurant    Category = "restaurant"
	CategoryCafe          Category = "cafe"
	CategoryEntertainment Category = "entertainment"
	CategoryChurch        Category = "church"
	CategoryMarket        Category = "market"
	CategoryShopping      Category = "shopping"
	CategoryAccommodation Category = "accommodation"
	CategoryTransport     Category = "transport"
)

// CategoryAttributes - отображаемые атрибуты и игровые константы категории.
// Единая таблица вместо разрозненных switch по категориям.
type CategoryAttributes struct {
	Label         string
	Icon          string
	Color         string
	Points        int
	BadgeCategory BadgeCategory
}

// categoryAttributes - фиксированная таблица атрибутов по категориям.
// Очки за посещение не настраиваются пользователем.
var categoryAttributes = map[Category]CategoryAttributes{
	CategoryHistorical:    {Label: "Historical", Icon: "building.columns", Color: "#8D6E63", Points: 15, BadgeCategory: BadgeCategoryHistorical},
	CategoryMuseum:        {Label: "Museum", Icon: "building.columns.fill", Color: "#795548", Points: 15, BadgeCategory: BadgeCategoryHistorical},
	CategoryGallery:       {Label: "Gallery", Icon: "paintpalette", Color: "#9C27B0", Points: 15, BadgeCategory: BadgeCategoryCulture},
	CategoryPark:          {Label: "Park", Icon: "leaf", Color: "#4CAF50", Points: 12, BadgeCategory: BadgeCategoryNature},
	CategoryBeach:         {Label: "Beach", Icon: "beach.umbrella", Color: "#03A9F4", Points: 12, BadgeCategory: BadgeCategoryNature},
	CategoryViewpoint:     {Label: "Viewpoint", Icon: "binoculars", Color: "#3F51B5", Points: 12, BadgeCategory: BadgeCategoryNature},
	CategoryRestaurant:    {Label: "Restaurant", Icon: "fork.knife", Color: "#FF5722", Points: 10, BadgeCategory: BadgeCategoryCulinary},
	CategoryCafe:          {Label: "Cafe", Icon: "cup.and.saucer", Color: "#A1887F", Points: 10, BadgeCategory: BadgeCategoryCulinary},
	CategoryEntertainment: {Label: "Entertainment", Icon: "theatermasks", Color: "#E91E63", Points: 10, BadgeCategory: BadgeCategoryCulture},
	CategoryChurch:        {Label: "Church", Icon: "building.2", Color: "#607D8B", Points: 10, BadgeCategory: BadgeCategoryPhotography},
	CategoryMarket:        {Label: "Market", Icon: "basket", Color: "#FF9800", Points: 10, BadgeCategory: BadgeCategoryCulinary},
	CategoryShopping:      {Label: "Shopping", Icon: "bag", Color: "#F44336", Points: 8, BadgeCategory: BadgeCategoryAdventure},
	CategoryAccommodation: {Label: "Accommodation", Icon: "bed.double", Color: "#9E9E9E", Points: 5, BadgeCategory: BadgeCategoryPhotography},
	CategoryTransport:     {Label: "Transport", Icon: "tram", Color: "#2196F3", Points: 5, BadgeCategory: BadgeCategoryPhotography},
}

// Attributes возвращает атрибуты категории
func (c Category) Attributes() CategoryAttributes {
	if attrs, ok := categoryAttributes[c]; ok {
		return attrs
	}
	// Неизвестная категория - минимальные очки, фолбэк на фото-бейдж
	return CategoryAttributes{Label: string(c), Icon: "mappin", Color: "#9E9E9E", Points: 5, BadgeCategory: BadgeCategoryPhotography}
}

// Label возвращает отображаемое название категории
func (c Category) Label() string {
	return c.Attributes().Label
}

// Points возвращает количество очков за посещение POI этой категории
func (c Category) Points() int {
	return c.Attributes().Points
}

// ValidCategories returns list of valid POI categories
func ValidCategories() []Category {
	return []Category{
		CategoryHistorical,
		CategoryMuseum,
		CategoryGallery,
		CategoryPark,
		CategoryBeach,
		CategoryViewpoint,
		CategoryRestaurant,
		CategoryCafe,
		CategoryEntertainment,
		CategoryChurch,
		CategoryMarket,
		CategoryShopping,
		CategoryAccommodation,
		CategoryTransport,
	}
}

// IsValidCategory checks if category is valid
func IsValidCategory(category Category) bool {
	_, ok := categoryAttributes[category]
	return ok
}
