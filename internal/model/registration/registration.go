package registration

import "time"

// Registration is a pregnancy registration submitted through the form.
type Registration struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Age               int       `json:"age"`
	Phone             string    `json:"phone"`
	Email             string    `json:"email,omitempty"`
	Address           string    `json:"address"`
	District          string    `json:"district"`
	State             string    `json:"state"`
	ConceiveDate      time.Time `json:"conceiveDate"`
	AdditionalInfo    string    `json:"additionalInfo,omitempty"`
	PreferredLanguage string    `json:"preferredLanguage"`
	CreatedAt         time.Time `json:"createdAt"`
}

// RecordID implements directory.Record.
func (r Registration) RecordID() string { return r.ID }
