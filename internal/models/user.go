package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Coord is a latitude or longitude. Clients send it as a JSON number or as a
// numeric string; it is encoded back in the form it arrived in.
type Coord struct {
	Text   string
	Quoted bool
}

// Degrees builds a numeric Coord.
func Degrees(v float64) Coord {
	return Coord{Text: strconv.FormatFloat(v, 'f', -1, 64)}
}

func (c Coord) Float64() (float64, error) {
	return strconv.ParseFloat(c.Text, 64)
}

func (c Coord) MarshalJSON() ([]byte, error) {
	if c.Quoted {
		return json.Marshal(c.Text)
	}
	if c.Text == "" {
		return []byte("0"), nil
	}
	return []byte(c.Text), nil
}

func (c *Coord) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if _, err := strconv.ParseFloat(s, 64); err != nil {
			return fmt.Errorf("coordinate %q is not a number", s)
		}
		*c = Coord{Text: s, Quoted: true}
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*c = Coord{Text: n.String()}
	return nil
}

type Geo struct {
	Lat *Coord `json:"lat,omitempty"`
	Lng *Coord `json:"lng,omitempty"`
}

// Address and Company keep every key the client sent, empty strings
// included; a nil field was not sent and is left out.
type Address struct {
	Street  *string `json:"street,omitempty"`
	Suite   *string `json:"suite,omitempty"`
	City    *string `json:"city,omitempty"`
	Zipcode *string `json:"zipcode,omitempty"`
	Geo     *Geo    `json:"geo,omitempty"`
}

type Company struct {
	Name        *string `json:"name,omitempty"`
	CatchPhrase *string `json:"catchPhrase,omitempty"`
	BS          *string `json:"bs,omitempty"`
}

// Ptr returns a pointer to v, for filling optional fields.
func Ptr[T any](v T) *T { return &v }

// User is the outward representation of a user. It has no password field,
// so it can be encoded straight into a response.
type User struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Address  Address `json:"address"`
	Phone    string  `json:"phone"`
	Website  string  `json:"website"`
	Company  Company `json:"company"`
}

// NewUser is the input for creating a user. PasswordHash must already be hashed.
type NewUser struct {
	Name         string
	Username     string
	Email        string
	PasswordHash string
	Address      Address
	Phone        string
	Website      string
	Company      Company
}

// Credentials pairs a user with the stored hash, for login only.
type Credentials struct {
	User         User
	PasswordHash string
}

// UserPatch holds the fields of a partial update. A nil pointer means the
// field was not supplied.
type UserPatch struct {
	Name     *string  `json:"name"`
	Username *string  `json:"username"`
	Email    *string  `json:"email"`
	Address  *Address `json:"address"`
	Phone    *string  `json:"phone"`
	Website  *string  `json:"website"`
	Company  *Company `json:"company"`
}

func (p UserPatch) Empty() bool {
	return p.Name == nil && p.Username == nil && p.Email == nil && p.Address == nil &&
		p.Phone == nil && p.Website == nil && p.Company == nil
}
