package dto

type ChargeItem struct {
	ID       string `json:"id"`
	Price    int64  `json:"price"`
	Quantity int32  `json:"quantity"`
	Name     string `json:"name"`
}

type CustomerDetails struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type ChargeRequest struct {
	Customers CustomerDetails `json:"customers"`
	Items     []ChargeItem    `json:"items"`
	OrderID   string          `json:"order_id"`
	URL       string          `json:"url"`
}
