package asha

import "github.com/google/uuid"

// Worker is an ASHA (community health worker) directory entry.
// Text fields come in English/Hindi pairs.
type Worker struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	NameHi           string   `json:"nameHi"`
	Phone            string   `json:"phone"`
	District         string   `json:"district"`
	State            string   `json:"state"`
	Address          string   `json:"address"`
	AddressHi        string   `json:"addressHi"`
	Specialization   string   `json:"specialization"`
	SpecializationHi string   `json:"specializationHi"`
	Experience       int      `json:"experience"`
	Languages        []string `json:"languages"`
}

// RecordID implements directory.Record.
func (w Worker) RecordID() string { return w.ID }

// Seed returns the sample directory.
func Seed() []Worker {
	return []Worker{
		{
			ID:               uuid.NewString(),
			Name:             "Priya Sharma",
			NameHi:           "प्रिया शर्मा",
			Phone:            "9876543210",
			District:         "Pune",
			State:            "Maharashtra",
			Address:          "123 Health Center, Pune",
			AddressHi:        "123 स्वास्थ्य केंद्र, पुणे",
			Specialization:   "Maternal Care",
			SpecializationHi: "मातृ देखभाल",
			Experience:       5,
			Languages:        []string{"English", "Hindi", "Marathi"},
		},
		{
			ID:               uuid.NewString(),
			Name:             "Sunita Devi",
			NameHi:           "सुनीता देवी",
			Phone:            "8765432109",
			District:         "Jaipur",
			State:            "Rajasthan",
			Address:          "456 Community Center, Jaipur",
			AddressHi:        "456 सामुदायिक केंद्र, जयपुर",
			Specialization:   "Child Health",
			SpecializationHi: "बाल स्वास्थ्य",
			Experience:       8,
			Languages:        []string{"Hindi", "English", "Rajasthani"},
		},
		{
			ID:               uuid.NewString(),
			Name:             "Lakshmi Rao",
			NameHi:           "लक्ष्मी राव",
			Phone:            "7654321098",
			District:         "Hyderabad",
			State:            "Telangana",
			Address:          "789 Health Post, Hyderabad",
			AddressHi:        "789 स्वास्थ्य पोस्ट, हैदराबाद",
			Specialization:   "Reproductive Health",
			SpecializationHi: "प्रजनन स्वास्थ्य",
			Experience:       6,
			Languages:        []string{"Telugu", "English", "Hindi"},
		},
		{
			ID:               uuid.NewString(),
			Name:             "Meena Kumari",
			NameHi:           "मीना कुमारी",
			Phone:            "6543210987",
			District:         "Patna",
			State:            "Bihar",
			Address:          "234 Primary Health Center, Patna",
			AddressHi:        "234 प्राथमिक स्वास्थ्य केंद्र, पटना",
			Specialization:   "Newborn Care",
			SpecializationHi: "नवजात शिशु देखभाल",
			Experience:       4,
			Languages:        []string{"Hindi", "Bhojpuri", "English"},
		},
		{
			ID:               uuid.NewString(),
			Name:             "Anita Gupta",
			NameHi:           "अनीता गुप्ता",
			Phone:            "5432109876",
			District:         "Delhi",
			State:            "Delhi",
			Address:          "567 Urban Health Center, Delhi",
			AddressHi:        "567 शहरी स्वास्थ्य केंद्र, दिल्ली",
			Specialization:   "Adolescent Health",
			SpecializationHi: "किशोर स्वास्थ्य",
			Experience:       7,
			Languages:        []string{"Hindi", "English", "Punjabi"},
		},
	}
}
