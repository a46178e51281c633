package domain

// Brand is a machinery manufacturer (Honda, Stihl, Victa, ...).
type Brand struct {
	ID        int32   `json:"id"`
	Name      string  `json:"name"`
	CreatedOn string  `json:"created_on"`
	DeletedOn *string `json:"deleted_on,omitempty"`
}

// MachineCategory classifies machines for transport pricing. Each category
// carries the size tier used to pick the callout base fee.
type MachineCategory struct {
	ID       int32    `json:"id"`
	Name     string   `json:"name"`
	SizeTier SizeTier `json:"size_tier"`
}

type Model struct {
	ID         int32   `json:"id"`
	BrandID    int32   `json:"brand_id"`
	CategoryID int32   `json:"category_id"`
	Name       string  `json:"name"`
	CreatedOn  string  `json:"created_on"`
	DeletedOn  *string `json:"deleted_on,omitempty"`
}
