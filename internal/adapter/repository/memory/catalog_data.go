package memory

import "github.com/arvrtourism/booking/internal/core/domain"

// Local-currency units per USD. Turkey is EUR based.
var exchangeRates = map[string]float64{
	"UAE":          3.67,
	"Saudi Arabia": 3.75,
	"Qatar":        3.64,
	"Bahrain":      0.377,
	"Oman":         0.385,
	"Kuwait":       0.307,
	"Turkey":       0.92,
	"Israel":       3.75,
}

var attractions = []domain.Attraction{
	{
		ID:            "1",
		Name:          "Museum of the Future",
		City:          "Dubai",
		Country:       "UAE",
		Description:   "A gateway to the future, combining elements of exhibition, immersive theatre and themed attraction.",
		ExpectedPrice: 169, // AED
		AverageRating: 4.8,
		Activity:      "Immersive / MR",
		OpeningHours:  "10:00–21:30",
		Address:       "Sheikh Zayed Road, Dubai",
	},
	{
		ID:            "2",
		Name:          "AYA Universe",
		City:          "Dubai",
		Country:       "UAE",
		Description:   "Immersive entertainment park utilizing high-end lights and sound to tell stories.",
		ExpectedPrice: 135, // AED
		AverageRating: 4.5,
		Activity:      "Immersive / XR",
		OpeningHours:  "10:00–22:00",
		Address:       "WAFI City Mall, Dubai",
	},
	{
		ID:            "3",
		Name:          "Infinity des Lumières",
		City:          "Dubai",
		Country:       "UAE",
		Description:   "Ultimate immersive digital art centre projecting famous masterpieces.",
		ExpectedPrice: 110, // AED
		AverageRating: 4.6,
		Activity:      "Digital Art Projection",
		OpeningHours:  "10:00–22:00",
		Address:       "The Dubai Mall, Dubai",
	},
	{
		ID:            "4",
		Name:          "Play DXB (VR Park)",
		City:          "Dubai",
		Country:       "UAE",
		Description:   "The largest indoor virtual reality park offering various AR and VR rides.",
		ExpectedPrice: 200, // AED, average package
		AverageRating: 4.3,
		Activity:      "VR / AR Park",
		OpeningHours:  "10:00–00:00",
		Address:       "The Dubai Mall, Dubai",
	},
	{
		ID:            "5",
		Name:          "teamLab Borderless Jeddah",
		City:          "Jeddah",
		Country:       "Saudi Arabia",
		Description:   "A world of artworks without boundaries, a museum without a map.",
		ExpectedPrice: 150, // SAR
		AverageRating: 4.9,
		Activity:      "Immersive Digital Art",
		OpeningHours:  "13:00–22:00",
		Address:       "Culture Square, Jeddah",
	},
	{
		ID:            "6",
		Name:          "Ithra Center",
		City:          "Dhahran",
		Country:       "Saudi Arabia",
		Description:   "King Abdulaziz Center for World Culture featuring immersive exhibits.",
		ExpectedPrice: 50, // SAR, specific exhibits
		AverageRating: 4.7,
		Activity:      "XR Events / Exhibits",
		OpeningHours:  "09:00–21:00",
		Address:       "Ring Rd, Dhahran",
	},
	{
		ID:            "7",
		Name:          "National Museum of Qatar",
		City:          "Doha",
		Country:       "Qatar",
		Description:   "Experiential museum with AR app support telling the story of Qatar.",
		ExpectedPrice: 50, // QAR
		AverageRating: 4.6,
		Activity:      "Immersive Media / AR",
		OpeningHours:  "09:00–19:00",
		Address:       "Museum Park St, Doha",
	},
	{
		ID:            "8",
		Name:          "Atlantis – The Immersive Odyssey",
		City:          "Manama",
		Country:       "Bahrain",
		Description:   "Immersive exhibition covering 1000 sqm, recreating the legend of Atlantis.",
		ExpectedPrice: 9.5, // BHD
		AverageRating: 4.6,
		Activity:      "VR / AI / Interactive",
		OpeningHours:  "10:00–22:00",
		Address:       "City Centre Bahrain, Manama",
	},
	{
		ID:            "9",
		Name:          "EVA Virtual Reality",
		City:          "Manama",
		Country:       "Bahrain",
		Description:   "Ultra-immersive free-roam VR esports arena for up to 10 players.",
		ExpectedPrice: 9.5, // BHD
		AverageRating: 4.9,
		Activity:      "Free-Roam VR Arena",
		OpeningHours:  "10:00–22:00",
		Address:       "Marassi Galleria, Diyar Al Muharraq",
	},
	{
		ID:            "10",
		Name:          "Matrix BH",
		City:          "Manama",
		Country:       "Bahrain",
		Description:   "Large indoor entertainment center with VR experiences, escape rooms, and physical challenges.",
		ExpectedPrice: 11.0, // BHD, package
		AverageRating: 4.5,
		Activity:      "VR / Gaming Center",
		OpeningHours:  "12:00–00:00",
		Address:       "Juffair Mall, Manama",
	},
	{
		ID:            "11",
		Name:          "Another World VR",
		City:          "Manama",
		Country:       "Bahrain",
		Description:   "VR gaming arena using advanced tracking technology for sci-fi and shooting experiences.",
		ExpectedPrice: 7.0, // BHD
		AverageRating: 4.8,
		Activity:      "VR Gaming Arena",
		OpeningHours:  "10:00–22:00",
		Address:       "City Centre Bahrain, Manama",
	},
	{
		ID:            "12",
		Name:          "Qal'at Al Bahrain Site Museum",
		City:          "Manama",
		Country:       "Bahrain",
		Description:   "Museum utilizing AR technology to recreate ancient Dilmun civilization at the UNESCO World Heritage site.",
		ExpectedPrice: 2.0, // BHD
		AverageRating: 4.7,
		Activity:      "AR Experience / Heritage",
		OpeningHours:  "08:00–18:00",
		Address:       "Karbabad, Bahrain",
	},
	{
		ID:            "13",
		Name:          "Oman Across Ages Museum",
		City:          "Manah",
		Country:       "Oman",
		Description:   "Newly opened museum using extensive AR/VR to showcase Oman's history.",
		ExpectedPrice: 5.0, // OMR
		AverageRating: 4.8,
		Activity:      "Immersive History Museum",
		OpeningHours:  "09:00–17:00",
		Address:       "Manah, Ad Dakhiliyah",
	},
	{
		ID:            "14",
		Name:          "Sheikh Abdullah Al Salem Cultural Centre",
		City:          "Salmiya",
		Country:       "Kuwait",
		Description:   "Features Space Museum and Science Centre with VR space walks and 4D theaters.",
		ExpectedPrice: 3.0, // KWD
		AverageRating: 4.7,
		Activity:      "Science & Space Museum",
		OpeningHours:  "09:00–20:00",
		Address:       "Salmiya, Kuwait",
	},
	{
		ID:            "15",
		Name:          "WARPOINT",
		City:          "Kuwait City",
		Country:       "Kuwait",
		Description:   "Wireless free-roam VR arena offering team-based tactical shooters.",
		ExpectedPrice: 5.0, // KWD
		AverageRating: 4.9,
		Activity:      "Free-Roam VR Arena",
		OpeningHours:  "16:00–23:00",
		Address:       "Homz Mall, Farwaniya",
	},
	{
		ID:            "16",
		Name:          "Hagia Sophia History & Experience Museum",
		City:          "Istanbul",
		Country:       "Turkey",
		Description:   "Experience museum near Hagia Sophia using immersive projection and AR audio guides.",
		ExpectedPrice: 25.0, // EUR
		AverageRating: 4.0,
		Activity:      "Immersive Digital Museum",
		OpeningHours:  "08:00–19:30",
		Address:       "Fatih, Istanbul",
	},
	{
		ID:            "17",
		Name:          "Tower of David Jerusalem Museum",
		City:          "Jerusalem",
		Country:       "Israel",
		Description:   "Offers 'Step into History' VR tour allowing visitors to see the ancient city as it was.",
		ExpectedPrice: 50.0, // NIS
		AverageRating: 4.6,
		Activity:      "VR / AR Historic Tour",
		OpeningHours:  "09:00–17:00",
		Address:       "Jaffa Gate, Jerusalem",
	},
}

// Static nationality suggestions for the sign-up form.
var allCountries = []string{
	"Afghanistan", "Albania", "Algeria", "Andorra", "Angola", "Antigua and Barbuda", "Argentina", "Armenia", "Australia", "Austria", "Azerbaijan",
	"Bahamas, The", "Bahrain", "Bangladesh", "Barbados", "Belarus", "Belgium", "Belize", "Benin", "Bhutan", "Bolivia", "Bosnia and Herzegovina", "Botswana", "Brazil", "Brunei", "Bulgaria", "Burkina Faso", "Burundi",
	"Cabo Verde", "Cambodia", "Cameroon", "Canada", "Central African Republic", "Chad", "Chile", "China (People's Republic of China)", "Colombia", "Comoros", "Congo (Congo-Brazzaville)", "Congo, Democratic Republic of the (Congo-Kinshasa)", "Costa Rica", "Côte d'Ivoire", "Croatia", "Cuba", "Cyprus", "Czechia (Czech Republic)",
	"Denmark", "Djibouti", "Dominica", "Dominican Republic",
	"Ecuador", "Egypt", "El Salvador", "Equatorial Guinea", "Eritrea", "Estonia", "Eswatini", "Ethiopia",
	"Fiji", "Finland", "France",
	"Gabon", "Gambia, The", "Georgia", "Germany", "Ghana", "Greece", "Grenada", "Guatemala", "Guinea", "Guinea-Bissau", "Guyana",
	"Haiti", "Holy See (Vatican City)", "Honduras", "Hungary",
	"Iceland", "India", "Indonesia", "Iran", "Iraq", "Ireland", "Israel", "Italy",
	"Jamaica", "Japan", "Jordan",
	"Kazakhstan", "Kenya", "Kiribati", "Korea, North (Democratic People's Republic of Korea)", "Korea, South (Republic of Korea)", "Kosovo", "Kuwait", "Kyrgyzstan",
	"Laos", "Latvia", "Lebanon", "Lesotho", "Liberia", "Libya", "Liechtenstein", "Lithuania", "Luxembourg",
	"Madagascar", "Malawi", "Malaysia", "Maldives", "Mali", "Malta", "Marshall Islands", "Mauritania", "Mauritius", "Mexico", "Micronesia, Federated States of", "Moldova", "Monaco", "Mongolia", "Montenegro", "Morocco", "Mozambique", "Myanmar (Burma)",
	"Namibia", "Nauru", "Nepal", "Netherlands", "New Zealand", "Nicaragua", "Niger", "Nigeria", "North Macedonia", "Norway",
	"Oman",
	"Pakistan", "Palau", "Palestine, State of", "Panama", "Papua New Guinea", "Paraguay", "Peru", "Philippines", "Poland", "Portugal",
	"Qatar",
	"Romania", "Russia (Russian Federation)", "Rwanda",
	"Saint Kitts and Nevis", "Saint Lucia", "Saint Vincent and the Grenadines", "Samoa", "San Marino", "São Tomé and Príncipe", "Saudi Arabia", "Senegal", "Serbia", "Seychelles", "Sierra Leone", "Singapore", "Slovakia", "Slovenia", "Solomon Islands", "Somalia", "South Africa", "South Sudan", "Spain", "Sri Lanka", "Sudan", "Suriname", "Sweden", "Switzerland", "Syria",
	"Taiwan", "Tajikistan", "Tanzania", "Thailand", "Timor-Leste", "Togo", "Tonga", "Trinidad and Tobago", "Tunisia", "Turkey", "Turkmenistan", "Tuvalu",
	"Uganda", "Ukraine", "United Arab Emirates", "United Kingdom", "United States of America", "Uruguay", "Uzbekistan",
	"Vanuatu", "Venezuela", "Vietnam",
	"Yemen",
	"Zambia", "Zimbabwe",
}
