package faq

func omxEntries() []Entry {
	return []Entry{
		{ID: "business_hours_en", Question: "what are your business hours", Answer: "We're open from 9 AM to 6 PM, Monday to Friday."},
		{ID: "business_hours_hi", Question: "aapke vyapar ke ghante kya hain", Answer: "हम सोमवार से शुक्रवार सुबह 9 बजे से शाम 6 बजे तक खुले रहते हैं।"},
		{ID: "contact_support_en", Question: "how can i contact support", Answer: "You can reach us at support@omxdigital.com."},
		{ID: "contact_support_hi", Question: "main support se kaise sampark kar sakta hoon", Answer: "आप हमें support@omxdigital.com पर ईमेल कर सकते हैं।"},
		{ID: "services_en", Question: "what services do you offer", Answer: "We provide AI-powered digital marketing, business automation, and growth solutions."},
		{ID: "services_hi", Question: "aap kaun si sevayen pradaan karte hain", Answer: "हम एआई-संचालित डिजिटल मार्केटिंग, व्यवसाय स्वचालन और विकास समाधान प्रदान करते हैं।"},
		{ID: "location_en", Question: "where are you located", Answer: "Our headquarters is in New Delhi, with offices in Mumbai and Bangalore."},
		{ID: "location_hi", Question: "aapka office kahan hai", Answer: "हमारा मुख्यालय नई दिल्ली में है, और मुंबई और बैंगलोर में कार्यालय हैं।"},
		{ID: "about_en", Question: "what is omx digital", Answer: "OMX Digital is an AI-powered platform that helps businesses automate and optimize their operations."},
		{ID: "about_hi", Question: "omx digital kya hai", Answer: "OMX Digital एक एआई-संचालित प्लेटफॉर्म है जो व्यवसायों को उनके संचालन को स्वचालित और अनुकूलित करने में मदद करता है।"},
		{ID: "how_it_works_en", Question: "how does it work", Answer: "Our platform uses advanced AI algorithms to analyze your business processes and provide automated solutions."},
		{ID: "how_it_works_hi", Question: "yah kaise kaam karta hai", Answer: "हमारा प्लेटफॉर्म उन्नत एआई एल्गोरिदम का उपयोग करता है जो आपके व्यावसायिक प्रक्रियाओं का विश्लेषण करता है और स्वचालित समाधान प्रदान करता है。"},
		{ID: "pricing_en", Question: "what is your pricing", Answer: "We offer flexible pricing plans based on your business needs. Contact us for details."},
		{ID: "pricing_hi", Question: "aapki keemat kya hai", Answer: "हम आपकी व्यावसायिक आवश्यकताओं के आधार पर लचीले मूल्य निर्धारण योजनाएं प्रदान करते हैं। विवरण के लिए हमसे संपर्क करें。"},
		{ID: "demos_en", Question: "do you offer demos", Answer: "Yes, we offer free demos to show how our platform can help your business."},
		{ID: "demos_hi", Question: "kya aap demo pradaan karte hain", Answer: "हाँ, हम मुफ्त डेमो प्रदान करते हैं जो दिखाते हैं कि हमारा प्लेटफॉर्म आपके व्यवसाय में कैसे मदद कर सकता है。"},
	}
}

func mustMatcher(entries []Entry) *Matcher {
	catalog, err := NewCatalog(entries)
	if err != nil {
		panic(err)
	}
	return NewMatcher(catalog, DefaultMatchThreshold)
}
