package domain

import "time"

// Product categories carried by the catalog. Category matching is exact and
// case-sensitive everywhere; an unknown category simply selects nothing.
const (
	CategoryPerruque      = "perruque"
	CategoryTissage       = "tissage"
	CategoryPeigne        = "peigne"
	CategoryQueueDeCheval = "queue-de-cheval"
)

// Review is created once and never mutated. UserName is a snapshot taken at
// review time and is not kept in sync with the User record.
type Review struct {
	ID       string `json:"id"`
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
	Date     string `json:"date"`
}

// Product is immutable after boot.
type Product struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Price          float64  `json:"price"`
	Description    string   `json:"description"`
	Category       string   `json:"category"`
	Stock          int64    `json:"stock"`
	Images         []string `json:"images"`
	Specifications []string `json:"specifications"`
	Featured       bool     `json:"featured"`
	Stars          float64  `json:"stars"`
	Reviews        []Review `json:"reviews"`
}

// User is loaded at boot. Email doubles as the login key; no credential is
// stored anywhere. Favorites may reference product ids that no longer exist.
type User struct {
	ID        string   `json:"id"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Email     string   `json:"email"`
	Phone     string   `json:"phone"`
	Address   string   `json:"address"`
	IsAdmin   bool     `json:"isAdmin"`
	Favorites []string `json:"favorites"`
}

// UserProjection is the public shape returned by login.
type UserProjection struct {
	ID        string   `json:"id"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Email     string   `json:"email"`
	IsAdmin   bool     `json:"isAdmin"`
	Favorites []string `json:"favorites"`
}

// Projection strips the fields login must not expose.
func (u User) Projection() UserProjection {
	return UserProjection{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
		Favorites: u.Favorites,
	}
}

// CartItem references a product by id only; the product may be absent from
// the current catalog snapshot, in which case consumers skip the line.
type CartItem struct {
	ProductID string `json:"productId"`
	Quantity  int64  `json:"quantity"`
}

// OrderStatusConfirmed is the only status an order ever has.
const OrderStatusConfirmed = "confirmed"

// OrderDraft is what the checkout submits; the server stores a copy of it
// inside the Order without validating any field.
type OrderDraft struct {
	CustomerName string     `json:"customerName"`
	Email        string     `json:"email"`
	Address      string     `json:"address"`
	Items        []CartItem `json:"items"`
	Total        float64    `json:"total"`
}

// Order lives in memory for the process lifetime and is never read back by
// any endpoint.
type Order struct {
	ID string `json:"id"`
	OrderDraft
	PaymentMethod string    `json:"paymentMethod"`
	TransactionID string    `json:"transactionId"`
	Status        string    `json:"status"`
	Date          time.Time `json:"date"`
}
