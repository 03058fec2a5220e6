package customer

type Customer struct {
	id      int64
	contact Contact
}

func NewCustomer(contact Contact) *Customer {
	return &Customer{contact: contact}
}

func Reconstruct(id int64, name, email, phone string) *Customer {
	return &Customer{
		id: id,
		contact: Contact{
			name:  name,
			email: Email{value: email},
			phone: phone,
		},
	}
}

func (c *Customer) AssignID(id int64) {
	c.id = id
}

// UpdateContact overwrites every contact field. The record is shared by all of
// the customer's reservations, so the change is visible on each of them.
func (c *Customer) UpdateContact(contact Contact) {
	c.contact = contact
}

func (c *Customer) ID() int64        { return c.id }
func (c *Customer) Contact() Contact { return c.contact }
func (c *Customer) Name() string     { return c.contact.name }
func (c *Customer) Email() string    { return c.contact.email.value }
func (c *Customer) Phone() string    { return c.contact.phone }
