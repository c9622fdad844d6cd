package lang

import (
	"strings"

	"github.com/drpriyanshi/companion-tui/internal/domain"
)

// Content is the full string bundle for one language. Every user-visible
// label or message the screens render comes from here.
type Content struct {
	// Onboarding
	WelcomeTitle       string
	LoginTitle         string
	NameLabel          string
	PhoneLabel         string
	AgeLabel           string
	GenderLabel        string
	MaleOption         string
	FemaleOption       string
	OtherOption        string
	LocationPermission string
	AllowLocation      string
	SkipLocation       string
	ContinueButton     string

	// Chat
	DoctorGreeting  string // contains a {name} placeholder
	TypingIndicator string
	ChatPlaceholder string
	SendButton      string
	StartChatButton string

	// Navigation
	ChatTab   string
	HealthTab string

	// Health tracking
	HealthTrackingTitle string
	BloodPressureLabel  string
	SystolicLabel       string
	DiastolicLabel      string
	InsulinLabel        string
	SaveDataButton      string
	TodayReading        string
	PreviousReading     string
	NormalReading       string
	HighReading         string
	LowReading          string

	// Health advisories
	NormalBPMessage      string
	HighBPMessage        string
	LowBPMessage         string
	NormalInsulinMessage string
	HighInsulinMessage   string
	LowInsulinMessage    string

	// Homepage
	WelcomeBack   string
	HomeWelcome   string // contains a {name} placeholder
	DailyCheckIns string
	HealthRecords string
	Consultations string
	HealthJourney string

	// Common
	Loading string
	Error   string
	Success string
}

var english = Content{
	WelcomeTitle:       "Welcome to Dr. Priyanshi",
	LoginTitle:         "Let's Get Started",
	NameLabel:          "Your Name",
	PhoneLabel:         "Phone Number",
	AgeLabel:           "Age",
	GenderLabel:        "Gender",
	MaleOption:         "Male",
	FemaleOption:       "Female",
	OtherOption:        "Other",
	LocationPermission: "Allow location access for better health recommendations?",
	AllowLocation:      "Allow Location",
	SkipLocation:       "Skip for Now",
	ContinueButton:     "Continue to Chat",

	DoctorGreeting:  "Hello {name}! 👋 I'm Dr. Priyanshi, your AI health assistant. How are you feeling today?",
	TypingIndicator: "Dr. Priyanshi is typing...",
	ChatPlaceholder: "Type your health concerns here...",
	SendButton:      "Send",
	StartChatButton: "Start Chat",

	ChatTab:   "Chat",
	HealthTab: "Health Tracker",

	HealthTrackingTitle: "Daily Health Tracking",
	BloodPressureLabel:  "Blood Pressure (mmHg)",
	SystolicLabel:       "Systolic",
	DiastolicLabel:      "Diastolic",
	InsulinLabel:        "Insulin Level (units)",
	SaveDataButton:      "Save Today's Reading",
	TodayReading:        "Today's Reading",
	PreviousReading:     "Previous Reading",
	NormalReading:       "Normal",
	HighReading:         "High",
	LowReading:          "Low",

	NormalBPMessage:      "Your blood pressure is within normal range. Keep up the good work! 🌟",
	HighBPMessage:        "Your blood pressure is slightly elevated. Consider reducing salt intake and try some gentle exercise. 💙",
	LowBPMessage:         "Your blood pressure is on the lower side. Stay hydrated and consider eating smaller, frequent meals. 💧",
	NormalInsulinMessage: "Your insulin level looks good! Continue with your current routine. ✨",
	HighInsulinMessage:   "Your insulin is elevated. Consider reviewing your diet with whole foods and regular meal times. 🥗",
	LowInsulinMessage:    "Your insulin is low. Make sure you're eating regular, balanced meals. 🍎",

	WelcomeBack:   "Welcome Back!",
	HomeWelcome:   "Welcome to Sehat Bot, {name}! 👩‍⚕️ I'm Dr. Priyanshi, here to guide you toward a healthier day.",
	DailyCheckIns: "Daily Check-ins",
	HealthRecords: "Health Records",
	Consultations: "Consultations",
	HealthJourney: "Your Health Journey",

	Loading: "Loading...",
	Error:   "Something went wrong. Please try again.",
	Success: "Success!",
}

var hindi = Content{
	WelcomeTitle:       "डॉ. प्रियांशी में आपका स्वागत है",
	LoginTitle:         "आइए शुरू करते हैं",
	NameLabel:          "आपका नाम",
	PhoneLabel:         "फोन नंबर",
	AgeLabel:           "उम्र",
	GenderLabel:        "लिंग",
	MaleOption:         "पुरुष",
	FemaleOption:       "महिला",
	OtherOption:        "अन्य",
	LocationPermission: "बेहतर स्वास्थ्य सुझाव के लिए लोकेशन की अनुमति दें?",
	AllowLocation:      "लोकेशन की अनुमति दें",
	SkipLocation:       "अभी छोड़ें",
	ContinueButton:     "चैट पर जाएं",

	DoctorGreeting:  "नमस्ते {name}! 👋 मैं डॉ. प्रियांशी हूँ, आपकी AI स्वास्थ्य सहायक। आज आप कैसा महसूस कर रहे हैं?",
	TypingIndicator: "डॉ. प्रियांशी टाइप कर रही है...",
	ChatPlaceholder: "यहाँ अपनी स्वास्थ्य समस्याएं लिखें...",
	SendButton:      "भेजें",
	StartChatButton: "चैट शुरू करें",

	ChatTab:   "चैट",
	HealthTab: "स्वास्थ्य ट्रैकर",

	HealthTrackingTitle: "दैनिक स्वास्थ्य ट्रैकिंग",
	BloodPressureLabel:  "रक्तचाप (mmHg)",
	SystolicLabel:       "सिस्टोलिक",
	DiastolicLabel:      "डायस्टोलिक",
	InsulinLabel:        "इंसुलिन स्तर (यूनिट)",
	SaveDataButton:      "आज की रीडिंग सेव करें",
	TodayReading:        "आज की रीडिंग",
	PreviousReading:     "पिछली रीडिंग",
	NormalReading:       "सामान्य",
	HighReading:         "उच्च",
	LowReading:          "निम्न",

	NormalBPMessage:      "आपका रक्तचाप सामान्य सीमा में है। बेहतरीन काम! 🌟",
	HighBPMessage:        "आपका रक्तचाप थोड़ा बढ़ा हुआ है। नमक कम करें और हल्की एक्सरसाइज करें। 💙",
	LowBPMessage:         "आपका रक्तचाप कम है। पानी पिएं और थोड़ा-थोड़ा खाना खाते रहें। 💧",
	NormalInsulinMessage: "आपका इंसुलिन स्तर अच्छा है! ऐसे ही चलते रहें। ✨",
	HighInsulinMessage:   "आपका इंसुलिन बढ़ा है। संतुलित आहार लें और नियमित खाना खाएं। 🥗",
	LowInsulinMessage:    "आपका इंसुलिन कम है। नियमित और संतुलित भोजन लेना सुनिश्चित करें। 🍎",

	WelcomeBack:   "वापस स्वागत है!",
	HomeWelcome:   "सेहत बॉट में आपका स्वागत है, {name}! 👩‍⚕️ मैं डॉ. प्रियांशी हूं, यहाँ आपके स्वस्थ दिन के लिए मार्गदर्शन करने के लिए।",
	DailyCheckIns: "दैनिक जाँच",
	HealthRecords: "स्वास्थ्य रिकॉर्ड",
	Consultations: "परामर्श",
	HealthJourney: "आपकी स्वास्थ्य यात्रा",

	Loading: "लोड हो रहा है...",
	Error:   "कुछ गलत हुआ। कृपया दोबारा कोशिश करें।",
	Success: "सफल!",
}

// For selects the bundle for a language code. Anything other than hindi
// falls back to english.
func For(language domain.Language) Content {
	if language == domain.LanguageHindi {
		return hindi
	}
	return english
}

// Greeting substitutes the user's name into the chat greeting template.
func Greeting(c Content, name string) string {
	return strings.ReplaceAll(c.DoctorGreeting, "{name}", name)
}

// HomeWelcome substitutes the user's name into the homepage welcome line.
func HomeWelcome(c Content, name string) string {
	return strings.ReplaceAll(c.HomeWelcome, "{name}", name)
}
