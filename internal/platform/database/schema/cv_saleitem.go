package schema

// CVSaleItemTable represents the 'cv.saleitem' table
type CVSaleItemTable struct {
	Table       string
	ID          string
	Name        string
	Description string
	Price       string
	Condition   string
	Image       string
	PublishedOn string
	Stock       string
	Active      string
	CreatedAt   string
	UpdatedAt   string
}

// CVSaleItem is the schema definition for cv.saleitem
var CVSaleItem = CVSaleItemTable{
	Table:       "cv.saleitem",
	ID:          "id",
	Name:        "name",
	Description: "description",
	Price:       "price",
	Condition:   "condition",
	Image:       "image",
	PublishedOn: "publishedon",
	Stock:       "stock",
	Active:      "active",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

// Columns lists the columns read into the domain entity, in scan order.
func (t CVSaleItemTable) Columns() []string {
	return []string{t.ID, t.Name, t.Description, t.Price, t.Condition, t.Image, t.PublishedOn, t.Stock, t.Active}
}
