package application

const (
	PaymentMethodTypeCard = "card"
	SendMethodDirectSend  = "direct_send"
)

type PaymentMethodRequest struct {
	InterimCardKey    string         `json:"interim_card_key"`
	CardholderName    string         `json:"cardholder_name"`
	BillingAddress    map[string]any `json:"billing_address"`
	PaymentMethodType string         `json:"payment_method_type"`
	CommerceEndUserID string         `json:"commerce_end_user_id"`
}

type OrderBatchRequest struct {
	FromName          string      `json:"from_name"`
	Message           string      `json:"message"`
	SendMethod        string      `json:"send_method"`
	CommerceEndUserID string      `json:"commerce_end_user_id"`
	PaymentMethodID   string      `json:"payment_method_id"`
	Recipients        []Recipient `json:"recipients"`
	Cart              Cart        `json:"cart"`
}

type Recipient struct {
	FirstName      string         `json:"first_name"`
	LastName       string         `json:"last_name"`
	MailingAddress MailingAddress `json:"mailing_address"`
}

type MailingAddress struct {
	Address1   string `json:"address_1"`
	Address2   string `json:"address_2"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

type Cart struct {
	Items []CartItem `json:"items"`
}

type CartItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// ProviderResource is a resource the provider reported as created.
// ID is empty when the provider omitted it; Body holds the full decoded response.
type ProviderResource struct {
	ID   string
	Body map[string]any
}
