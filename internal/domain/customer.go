package domain

type Customer struct {
	ID        int32   `json:"id"`
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	Email     string  `json:"email"`
	Address   string  `json:"address"`
	Notes     string  `json:"notes"`
	CreatedOn string  `json:"created_on"`
	UpdatedOn string  `json:"updated_on"`
	DeletedOn *string `json:"deleted_on,omitempty"`
}
