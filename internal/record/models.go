package record

import "time"

// Record is one persisted form submission. It carries no identifier: the
// store-assigned _id is excluded on read and never exposed.
type Record struct {
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Age       *int      `json:"age,omitempty" bson:"age,omitempty"`
	City      string    `json:"city,omitempty" bson:"city,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Submission is the raw key-value form input, before validation.
type Submission struct {
	Name  string `form:"name"`
	Email string `form:"email"`
	Age   string `form:"age"`
	City  string `form:"city"`
}

// Document is a stored record as read back from the store. Reads are not
// bound to Record so fields written by other producers, or with other
// types, are returned unchanged.
type Document map[string]interface{}

// Document returns r in the shape it is stored in.
func (r Record) Document() Document {
	d := Document{"name": r.Name, "email": r.Email, "created_at": r.CreatedAt}
	if r.Age != nil {
		d["age"] = *r.Age
	}
	if r.City != "" {
		d["city"] = r.City
	}
	return d
}
