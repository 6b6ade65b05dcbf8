package knowledge

// Category is a support topic. The set is closed.
type Category string

const (
	CategoryShipping Category = "shipping"
	CategoryReturns  Category = "returns"
	CategoryPayment  Category = "payment"
	CategoryAccount  Category = "account"
	CategoryContact  Category = "contact"
	CategoryProduct  Category = "product"
	CategoryGeneral  Category = "general"
)

// Categories lists every category in match order. General is last and matches nothing by keyword.
func Categories() []Category {
	return []Category{
		CategoryShipping,
		CategoryReturns,
		CategoryPayment,
		CategoryAccount,
		CategoryContact,
		CategoryProduct,
		CategoryGeneral,
	}
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	for _, k := range Categories() {
		if k == c {
			return true
		}
	}
	return false
}
