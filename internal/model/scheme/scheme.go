package scheme

import "github.com/google/uuid"

// Category groups schemes by the life stage they serve.
const (
	CategoryMaternal   = "maternal"
	CategoryChild      = "child"
	CategoryAdolescent = "adolescent"
)

// Scheme is a government health programme listing.
type Scheme struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	NameHi        string `json:"nameHi"`
	Description   string `json:"description"`
	DescriptionHi string `json:"descriptionHi"`
	Eligibility   string `json:"eligibility"`
	EligibilityHi string `json:"eligibilityHi"`
	Benefits      string `json:"benefits"`
	BenefitsHi    string `json:"benefitsHi"`
	Category      string `json:"category"`
	Website       string `json:"website"`
}

// RecordID implements directory.Record.
func (s Scheme) RecordID() string { return s.ID }

// Seed returns the built-in scheme listings.
func Seed() []Scheme {
	return []Scheme{
		{
			ID:            uuid.NewString(),
			Name:          "Janani Suraksha Yojana (JSY)",
			NameHi:        "जननी सुरक्षा योजना (JSY)",
			Description:   "A safe motherhood intervention under the National Health Mission to reduce maternal and neonatal mortality by promoting institutional delivery among poor pregnant women.",
			DescriptionHi: "राष्ट्रीय स्वास्थ्य मिशन के तहत एक सुरक्षित मातृत्व हस्तक्षेप, जो गरीब गर्भवती महिलाओं के बीच संस्थागत प्रसव को बढ़ावा देकर मातृ और नवजात मृत्यु दर को कम करता है।",
			Eligibility:   "All pregnant women in Low Performing States with special focus on women from BPL families, SC, and ST.",
			EligibilityHi: "कम प्रदर्शन करने वाले राज्यों में सभी गर्भवती महिलाएँ, विशेष रूप से BPL परिवारों, SC, और ST की महिलाओं पर ध्यान केंद्रित है।",
			Benefits:      "Cash assistance for institutional delivery and incentives for ASHA workers.",
			BenefitsHi:    "संस्थागत प्रसव के लिए नकद सहायता और आशा कार्यकर्ताओं के लिए प्रोत्साहन।",
			Category:      CategoryMaternal,
			Website:       "https://nhm.gov.in/index1.php?lang=1&level=3&sublinkid=841&lid=309",
		},
		{
			ID:            uuid.NewString(),
			Name:          "Pradhan Mantri Matru Vandana Yojana (PMMVY)",
			NameHi:        "प्रधान मंत्री मातृ वंदना योजना (PMMVY)",
			Description:   "A maternity benefit program that provides partial wage compensation to women to enable them to take rest after delivery.",
			DescriptionHi: "एक मातृत्व लाभ कार्यक्रम जो महिलाओं को प्रसव के बाद आराम करने के लिए आंशिक वेतन मुआवजा प्रदान करता है।",
			Eligibility:   "All pregnant and lactating women, excluding those who are in regular employment with the Central Government or State Government or Public Sector Undertaking.",
			EligibilityHi: "सभी गर्भवती और स्तनपान कराने वाली महिलाएँ, उन्हें छोड़कर जो केंद्र सरकार या राज्य सरकार या सार्वजनिक क्षेत्र के उपक्रम के साथ नियमित रोजगार में हैं।",
			Benefits:      "Cash benefit of Rs. 5,000 in three installments.",
			BenefitsHi:    "तीन किस्तों में 5,000 रुपये का नकद लाभ।",
			Category:      CategoryMaternal,
			Website:       "https://wcd.nic.in/schemes/pradhan-mantri-matru-vandana-yojana",
		},
		{
			ID:            uuid.NewString(),
			Name:          "Mission Indradhanush",
			NameHi:        "मिशन इंद्रधनुष",
			Description:   "A health mission to increase immunization coverage for children and pregnant women who missed routine vaccination.",
			DescriptionHi: "बच्चों और गर्भवती महिलाओं के लिए टीकाकरण कवरेज बढ़ाने के लिए एक स्वास्थ्य मिशन जिन्होंने नियमित टीकाकरण याद किया।",
			Eligibility:   "Children under 2 years of age and pregnant women who have missed regular vaccines.",
			EligibilityHi: "2 वर्ष से कम उम्र के बच्चे और गर्भवती महिलाएँ जिन्होंने नियमित टीके याद किए हैं।",
			Benefits:      "Free vaccination against 12 preventable diseases.",
			BenefitsHi:    "12 रोकथाम योग्य बीमारियों के खिलाफ मुफ्त टीकाकरण।",
			Category:      CategoryChild,
			Website:       "https://www.nhp.gov.in/mission-indradhanush1_pg",
		},
		{
			ID:            uuid.NewString(),
			Name:          "Rashtriya Bal Swasthya Karyakram (RBSK)",
			NameHi:        "राष्ट्रीय बाल स्वास्थ्य कार्यक्रम (RBSK)",
			Description:   "Child Health Screening and Early Intervention Services program to identify defects at birth, diseases, deficiencies, and developmental delays.",
			DescriptionHi: "जन्म के समय दोष, बीमारी, कमियों, और विकासात्मक देरी की पहचान करने के लिए बाल स्वास्थ्य स्क्रीनिंग और प्रारंभिक हस्तक्षेप सेवा कार्यक्रम।",
			Eligibility:   "All children from birth to 18 years.",
			EligibilityHi: "जन्म से 18 वर्ष तक के सभी बच्चे।",
			Benefits:      "Free health screening, early detection, and free management of conditions.",
			BenefitsHi:    "मुफ्त स्वास्थ्य स्क्रीनिंग, प्रारंभिक पहचान, और स्थितियों का मुफ्त प्रबंधन।",
			Category:      CategoryChild,
			Website:       "https://nhm.gov.in/index1.php?lang=1&level=4&sublinkid=1190&lid=583",
		},
		{
			ID:            uuid.NewString(),
			Name:          "Rashtriya Kishor Swasthya Karyakram (RKSK)",
			NameHi:        "राष्ट्रीय किशोर स्वास्थ्य कार्यक्रम (RKSK)",
			Description:   "A health program for adolescents focusing on nutrition, reproductive health, substance abuse, mental health, and non-communicable diseases.",
			DescriptionHi: "किशोरों के लिए एक स्वास्थ्य कार्यक्रम जो पोषण, प्रजनन स्वास्थ्य, पदार्थ दुरुपयोग, मानसिक स्वास्थ्य, और गैर-संचारी रोगों पर केंद्रित है।",
			Eligibility:   "Adolescents aged 10-19 years.",
			EligibilityHi: "10-19 वर्ष की आयु के किशोर।",
			Benefits:      "Counseling, health services, and information on adolescent health issues.",
			BenefitsHi:    "परामर्श, स्वास्थ्य सेवाएँ, और किशोर स्वास्थ्य मुद्दों पर जानकारी।",
			Category:      CategoryAdolescent,
			Website:       "https://nhm.gov.in/index1.php?lang=1&level=3&sublinkid=1023&lid=388",
		},
	}
}
