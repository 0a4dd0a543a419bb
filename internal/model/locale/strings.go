package locale

// Greeting and topic responses for the health assistant.
const (
	GreetingEnglish = "Hello! I'm your RMNCHA health assistant. How can I help you today with maternal, newborn, child, or adolescent health?"
	GreetingHindi   = "नमस्ते! मैं आपका RMNCHA स्वास्थ्य सहायक हूँ। मैं आज आपकी मातृ, नवजात, शिशु, या किशोर स्वास्थ्य के बारे में कैसे मदद कर सकता हूँ?"

	VaccinationHindi = "गंभीर बीमारियों को रोकने के लिए टीकाकरण महत्वपूर्ण है। सार्वभौमिक प्रतिरक्षण कार्यक्रम (UIP) बच्चों के लिए मुफ्त टीके प्रदान करता है। क्या आप टीकाकरण कार्यक्रम या विशिष्ट टीकों के बारे में जानना चाहते हैं?"
)

func defaultEntries() map[Key]map[Language]string {
	return map[Key]map[Language]string{
		Pregnancy.Key(): {
			English: "Regular prenatal care is essential during pregnancy. The Janani Suraksha Yojana (JSY) provides financial assistance for hospital deliveries. Would you like to know more about pregnancy care or government schemes?",
			Hindi:   "गर्भावस्था के दौरान नियमित प्रसव पूर्व देखभाल आवश्यक है। जननी सुरक्षा योजना (JSY) अस्पताल में प्रसव के लिए वित्तीय सहायता प्रदान करती है। क्या आप गर्भावस्था देखभाल या सरकारी योजनाओं के बारे में अधिक जानना चाहेंगे?",
		},
		Newborn.Key(): {
			English: "Newborns should receive their first vaccinations within 24 hours of birth. Breastfeeding is recommended for the first 6 months. The Mission Indradhanush scheme ensures full immunization coverage. Would you like specific advice about newborn care?",
			Hindi:   "नवजात शिशुओं को जन्म के 24 घंटे के भीतर पहला टीकाकरण मिलना चाहिए। पहले 6 महीनों के लिए स्तनपान की सिफारिश की जाती है। मिशन इंद्रधनुष योजना पूर्ण प्रतिरक्षण कवरेज सुनिश्चित करती है। क्या आप नवजात शिशु देखभाल के बारे में विशिष्ट सलाह चाहते हैं?",
		},
		Child.Key(): {
			English: "Children should receive regular health check-ups and complete all recommended vaccinations. The Integrated Child Development Services (ICDS) provides nutritional support and health services. Does your child need specific health guidance?",
			Hindi:   "बच्चों को नियमित स्वास्थ्य जांच और सभी अनुशंसित टीकाकरण प्राप्त करने चाहिए। एकीकृत बाल विकास सेवाएं (ICDS) पोषण सहायता और स्वास्थ्य सेवाएं प्रदान करती हैं। क्या आपके बच्चे को विशिष्ट स्वास्थ्य मार्गदर्शन की आवश्यकता है?",
		},
		Adolescent.Key(): {
			English: "Adolescent health includes physical, mental, and social well-being. The Rashtriya Kishor Swasthya Karyakram (RKSK) focuses on adolescent health. Would you like information about nutrition, mental health, or reproductive health for adolescents?",
			Hindi:   "किशोर स्वास्थ्य में शारीरिक, मानसिक और सामाजिक कल्याण शामिल है। राष्ट्रीय किशोर स्वास्थ्य कार्यक्रम (RKSK) किशोर स्वास्थ्य पर केंद्रित है। क्या आप किशोरों के लिए पोषण, मानसिक स्वास्थ्य या प्रजनन स्वास्थ्य के बारे में जानकारी चाहते हैं?",
		},
		Scheme.Key(): {
			English: "Several government schemes support maternal and child health in India, including Janani Suraksha Yojana (JSY), Pradhan Mantri Matru Vandana Yojana (PMMVY), and Ayushman Bharat. Would you like details about a specific scheme?",
			Hindi:   "भारत में कई सरकारी योजनाएं मातृ और शिशु स्वास्थ्य का समर्थन करती हैं, जिनमें जननी सुरक्षा योजना (JSY), प्रधानमंत्री मातृ वंदना योजना (PMMVY) और आयुष्मान भारत शामिल हैं। क्या आप किसी विशिष्ट योजना के बारे में विवरण जानना चाहते हैं?",
		},
		Hospital.Key(): {
			English: "It's important to find the right healthcare provider. Would you like me to help you locate nearby hospitals or ASHA workers in your area?",
			Hindi:   "सही स्वास्थ्य प्रदाता को खोजना महत्वपूर्ण है। क्या आप चाहते हैं कि मैं आपके क्षेत्र में निकटतम अस्पतालों या आशा कार्यकर्ताओं को ढूंढने में आपकी मदद करूं?",
		},
		Diet.Key(): {
			English: "Proper nutrition is essential for maternal and child health. A balanced diet should include proteins, carbohydrates, healthy fats, vitamins, and minerals. Would you like specific dietary recommendations?",
			Hindi:   "मातृ और शिशु स्वास्थ्य के लिए उचित पोषण आवश्यक है। संतुलित आहार में प्रोटीन, कार्बोहाइड्रेट, स्वस्थ वसा, विटामिन और खनिज शामिल होने चाहिए। क्या आप विशिष्ट आहार संबंधी सिफारिशें चाहते हैं?",
		},
		Vaccination.Key(): {
			English: "Vaccinations are crucial for preventing serious diseases. The Universal Immunization Programme (UIP) provides free vaccines for children. Would you like to know about the vaccination schedule or specific vaccines?",
			Hindi:   VaccinationHindi,
		},
		Default.Key(): {
			English: "I'm here to help with reproductive, maternal, newborn, child, and adolescent health questions. I can also provide information about government health schemes. Could you please be more specific about what you'd like to know?",
			Hindi:   "मैं प्रजनन, मातृ, नवजात, बाल और किशोर स्वास्थ्य प्रश्नों में मदद के लिए यहां हूं। मैं सरकारी स्वास्थ्य योजनाओं के बारे में भी जानकारी प्रदान कर सकता हूं। क्या आप कृपया बता सकते हैं कि आप क्या जानना चाहते हैं?",
		},

		KeyGreeting: {English: GreetingEnglish, Hindi: GreetingHindi},
		KeyApology: {
			English: "I'm sorry, I couldn't process your request. Please try again.",
			Hindi:   "क्षमा करें, मैं आपके अनुरोध को संसाधित नहीं कर सका। कृपया पुनः प्रयास करें।",
		},
		KeySpeakerUser:      {English: "You", Hindi: "आप"},
		KeySpeakerAssistant: {English: "Health Assistant", Hindi: "स्वास्थ्य सहायक"},
		KeyChatFailed: {
			English: "Error generating chat response",
			Hindi:   "चैट प्रतिक्रिया उत्पन्न करने में त्रुटि हुई",
		},
		KeySubmitInFlight: {
			English: "Please wait for the current response before sending another message.",
			Hindi:   "कृपया अगला संदेश भेजने से पहले वर्तमान उत्तर की प्रतीक्षा करें।",
		},
		KeyRegisterSuccess: {
			English: "Registration successfully completed",
			Hindi:   "पंजीकरण सफलतापूर्वक पूरा हुआ",
		},
		KeyRegisterFailed: {
			English: "An error occurred during registration",
			Hindi:   "पंजीकरण के दौरान एक त्रुटि हुई",
		},
		KeyRegisterInvalid: {
			English: "Please correct the highlighted fields",
			Hindi:   "कृपया चिह्नित फ़ील्ड ठीक करें",
		},
		KeyTranscriptFilename: {English: "health-chat", Hindi: "swasthya-chat"},
	}
}
