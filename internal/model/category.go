package model

// Category is one of the fixed budget buckets every transaction ends up in.
type Category string

const (
	CategoryEntertainment Category = "Entertainment"
	CategoryFood          Category = "Food"
	CategoryTravel        Category = "Travel"
	CategoryTransport     Category = "Transport"
	CategoryPersonalCare  Category = "Personal Care"
	CategoryShopping      Category = "Shopping"
	CategoryOther         Category = "Other"
	CategoryIncome        Category = "Income"
)

// ExpenseCategories returns the non-Income buckets in history-column order.
func ExpenseCategories() []Category {
	return []Category{
		CategoryEntertainment,
		CategoryFood,
		CategoryTravel,
		CategoryTransport,
		CategoryOther,
		CategoryPersonalCare,
		CategoryShopping,
	}
}

// Categories returns all buckets in history-column order (Income last).
func Categories() []Category {
	return append(ExpenseCategories(), CategoryIncome)
}

// IsCanonical reports whether c is a member of the fixed taxonomy.
func (c Category) IsCanonical() bool {
	switch c {
	case CategoryEntertainment, CategoryFood, CategoryTravel, CategoryTransport,
		CategoryPersonalCare, CategoryShopping, CategoryOther, CategoryIncome:
		return true
	}
	return false
}
