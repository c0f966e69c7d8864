package model

import (
	"strings"
	"unicode/utf8"
)

// User is a read-only account record fetched from the remote API.
type User struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Address  Address `json:"address"`
	Phone    string  `json:"phone"`
	Website  string  `json:"website"`
	Company  Company `json:"company"`
}

// Address is a user's postal address.
type Address struct {
	Street  string `json:"street"`
	Suite   string `json:"suite"`
	City    string `json:"city"`
	Zipcode string `json:"zipcode"`
	Geo     Geo    `json:"geo"`
}

// Geo holds coordinates as the API serves them (decimal strings).
type Geo struct {
	Lat string `json:"lat"`
	Lng string `json:"lng"`
}

// Company is the user's employer.
type Company struct {
	Name        string `json:"name"`
	CatchPhrase string `json:"catchPhrase"`
	BS          string `json:"bs"`
}

// Initial returns the first character of the user's name, or "?" when empty.
func (u User) Initial() string {
	r, size := utf8.DecodeRuneInString(u.Name)
	if size == 0 || r == utf8.RuneError {
		return "?"
	}
	return string(r)
}

// FullAddress joins street, suite, city and zipcode.
func (u User) FullAddress() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{u.Address.Street, u.Address.Suite, u.Address.City, u.Address.Zipcode} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// PrimaryPhone drops anything after the first space (e.g. "x5442" extensions).
func (u User) PrimaryPhone() string {
	phone, _, _ := strings.Cut(u.Phone, " ")
	return phone
}
