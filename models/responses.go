package models

import "math"

// UserResponse is the public shape of a user account. Token is present only
// in register and login responses.
type UserResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Token    string `json:"token,omitempty"`
}

// ContactResponse is the public shape of a contact entry.
type ContactResponse struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
}

// AddressResponse is the public shape of an address entry.
type AddressResponse struct {
	ID         int64   `json:"id"`
	Street     *string `json:"street"`
	City       *string `json:"city"`
	Province   *string `json:"province"`
	Country    string  `json:"country"`
	PostalCode string  `json:"postal_code"`
}

// Paging describes the position of a search result page within the full
// filtered result set.
type Paging struct {
	CurrentPage int `json:"current_page"`
	Size        int `json:"size"`
	TotalPage   int `json:"total_page"`
}

// NewPaging computes the paging block for a result set of total records
// split into pages of the given size.
func NewPaging(page, size int, total int64) Paging {
	return Paging{
		CurrentPage: page,
		Size:        size,
		TotalPage:   int(math.Ceil(float64(total) / float64(size))),
	}
}

// ToContactResponse converts a persisted contact into its public shape.
func ToContactResponse(contact Contact) ContactResponse {
	return ContactResponse{
		ID:        contact.ID,
		FirstName: contact.FirstName,
		LastName:  contact.LastName,
		Email:     contact.Email,
		Phone:     contact.Phone,
	}
}

// ToAddressResponse converts a persisted address into its public shape.
func ToAddressResponse(address Address) AddressResponse {
	return AddressResponse{
		ID:         address.ID,
		Street:     address.Street,
		City:       address.City,
		Province:   address.Province,
		Country:    address.Country,
		PostalCode: address.PostalCode,
	}
}
