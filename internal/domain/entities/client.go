package entities

import "time"

// Client is a customer of the business.
//
// Domain notes:
//   - The identifier is assigned by the store and never changes.
//   - Deleting a client does not cascade to orders: orders keep the
//     denormalized client-name snapshot taken at composition time.

type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

// ClientPatch is a shallow merge overlay applied by update operations.
// Nil fields are left untouched.
type ClientPatch struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}

// Apply merges the patch into a copy of the client.
func (p ClientPatch) Apply(c Client) Client {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Address != nil {
		c.Address = *p.Address
	}
	return c
}
