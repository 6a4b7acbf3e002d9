package types

import "github.com/go-playground/validator/v10"

// Booth represents one employer booth at a job fair with its job openings.
type Booth struct {
	ID          string           `json:"id,omitempty"`
	CompanyName string           `json:"company_name" validate:"required"`
	BoothNumber string           `json:"booth_number,omitempty"`
	Openings    []JobRequirement `json:"openings"`
}

// JobFair represents a fair's booths (wrapper for schema).
type JobFair struct {
	Title  string  `json:"title,omitempty"`
	Booths []Booth `json:"booths"`
}

// Validate validates the Booth and all of its openings using the validator.
func (b *Booth) Validate() error {
	validate := validator.New()
	if err := validate.Struct(b); err != nil {
		return err
	}
	for i := range b.Openings {
		if err := b.Openings[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate validates every booth in the fair.
func (f *JobFair) Validate() error {
	for i := range f.Booths {
		if err := f.Booths[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}
