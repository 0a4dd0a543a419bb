package registration

import (
	"strconv"
	"strings"
)

// Age accepts either a JSON number or a numeric string.
// Values that cannot be parsed become -1 so validation reports them.
type Age int

// UnmarshalJSON implements json.Unmarshaler.
func (a *Age) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(strings.Trim(string(b), `"`))
	if raw == "" || raw == "null" {
		*a = 0
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		*a = -1
		return nil
	}
	*a = Age(n)
	return nil
}

// Request is the registration form payload.
type Request struct {
	Name              string `json:"name" validate:"required,min=2"`
	Age               Age    `json:"age" validate:"required,min=18,max=60"`
	Phone             string `json:"phone" validate:"required,min=10"`
	Email             string `json:"email" validate:"omitempty,email"`
	Address           string `json:"address" validate:"required,min=5"`
	District          string `json:"district" validate:"required,min=2"`
	State             string `json:"state" validate:"required,min=2"`
	ConceiveDate      string `json:"conceiveDate" validate:"required,iso8601"`
	AdditionalInfo    string `json:"additionalInfo"`
	PreferredLanguage string `json:"preferredLanguage" validate:"required"`
}

func (r *Request) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Email = strings.TrimSpace(r.Email)
	r.Address = strings.TrimSpace(r.Address)
	r.District = strings.TrimSpace(r.District)
	r.State = strings.TrimSpace(r.State)
	r.ConceiveDate = strings.TrimSpace(r.ConceiveDate)
	r.AdditionalInfo = strings.TrimSpace(r.AdditionalInfo)
	r.PreferredLanguage = strings.TrimSpace(r.PreferredLanguage)
}
