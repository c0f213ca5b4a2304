// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package locale

// Text is the localized string table for one locale. Every view reads its
// labels from here; nothing user-visible is hard-coded in the views.
type Text struct {
	// Header and navigation
	HeaderTitle string
	NavAbout    string
	NavContact  string
	NavLegal    string
	NavPrivacy  string
	LangSwitch  string

	// Auth
	Login            string
	Logout           string
	Register         string
	LoginTitle       string
	LoginDescription string
	LoginEmail       string
	LoginPassword    string
	LoginSubmit      string
	LoginNoAccount   string
	LoginGoRegister  string
	RegisterTitle    string
	RegisterDesc     string
	RegisterName     string
	RegisterEmail    string
	RegisterPassword string
	RegisterRole     string
	RegisterSubmit   string
	RoleTeacher      string
	RoleAdmin        string
	RoleOther        string

	// Chat
	AssistantTitle   string
	ModeGuest        string
	ModePersonal     string
	ModeHintGuest    string
	ModeHintPersonal string
	GuestHintSidebar string
	InitialAssistant string
	GuestReply       string
	ChatPlaceholder  string
	SenderYou        string
	SenderAssistant  string
	PersonalizedTag  string
	NewChat          string
	LoadingChat      string
	DeleteConfirm    string

	// Visualization card
	VizEngagement string
	VizDifficulty string
	VizCosts      string
	VizPrepTime   string
	CostLow       string
	CostMedium    string
	CostHigh      string

	// Alerts
	AlertLoginFailed    string
	AlertRegisterFailed string
	AlertSendFailed     string
	AlertLoadFailed     string
	AlertDeleteFailed   string

	// Footer
	Footer string
}

var textDE = Text{
	HeaderTitle: "Willkommen bei MINTelligent!",
	NavAbout:    "Über MINT Zukunft e.V.",
	NavContact:  "Kontakt",
	NavLegal:    "Impressum",
	NavPrivacy:  "Datenschutz",
	LangSwitch:  "DE / EN",

	Login:            "Anmelden",
	Logout:           "Abmelden",
	Register:         "Registrieren",
	LoginTitle:       "Anmelden",
	LoginDescription: "Melde dich an, um personalisierte Empfehlungen und gespeicherte Einstellungen zu erhalten.",
	LoginEmail:       "E-Mail",
	LoginPassword:    "Passwort",
	LoginSubmit:      "Anmelden",
	LoginNoAccount:   "Noch kein Konto?",
	LoginGoRegister:  "Jetzt registrieren",
	RegisterTitle:    "Registrieren",
	RegisterDesc:     "Erstelle ein Konto, um personalisierte Projektvorschläge für deine Schule zu erhalten.",
	RegisterName:     "Name",
	RegisterEmail:    "E-Mail",
	RegisterPassword: "Passwort",
	RegisterRole:     "Rolle",
	RegisterSubmit:   "Konto erstellen",
	RoleTeacher:      "Lehrkraft / MINT-Koordinator:in",
	RoleAdmin:        "Schulleitung / Behörde",
	RoleOther:        "Sonstige Rolle",

	AssistantTitle:   "MINTelligent Assistent",
	ModeGuest:        "Gastmodus",
	ModePersonal:     "Personalisierter Modus",
	ModeHintGuest:    "Du bist im Gastmodus. Du bekommst allgemeine Informationen. Melde dich an, um personalisierte Empfehlungen zu erhalten.",
	ModeHintPersonal: "Deine Antworten können später mit deinem Profil, deiner Schule und deinen Klassen verknüpft werden.",
	GuestHintSidebar: "Du kannst den Chat auch ohne Anmeldung im Gastmodus testen.",
	InitialAssistant: "Hallo, ich bin dein MINTelligent Assistent. Wie kann ich dir heute helfen?",
	GuestReply:       "Allgemeine Beispielantwort: Später bekommst du hier passende MINT-Projektvorschläge – ganz ohne Login.",
	ChatPlaceholder:  "Stell dem Assistenten eine Frage zu MINT-Projekten, Förderprogrammen, etc.",
	SenderYou:        "Du",
	SenderAssistant:  "MINTelligent",
	PersonalizedTag:  "personalisiert",
	NewChat:          "Neuer Chat",
	LoadingChat:      "Chat wird geladen...",
	DeleteConfirm:    "Chat wirklich löschen?",

	VizEngagement: "Engagement",
	VizDifficulty: "Schwierigkeit",
	VizCosts:      "Kosten",
	VizPrepTime:   "Vorbereitung",
	CostLow:       "Niedrig",
	CostMedium:    "Mittel",
	CostHigh:      "Hoch",

	AlertLoginFailed:    "Anmeldung fehlgeschlagen.",
	AlertRegisterFailed: "Registrierung fehlgeschlagen.",
	AlertSendFailed:     "Beim Senden an das Backend ist ein Fehler aufgetreten.",
	AlertLoadFailed:     "Chat konnte nicht geladen werden.",
	AlertDeleteFailed:   "Chat konnte nicht gelöscht werden.",

	Footer: "© 2025 MINTelligent – Prototyp",
}

var textEN = Text{
	HeaderTitle: "Welcome to MINTelligent!",
	NavAbout:    "About MINT Zukunft e.V.",
	NavContact:  "Contact",
	NavLegal:    "Legal notice",
	NavPrivacy:  "Privacy",
	LangSwitch:  "DE / EN",

	Login:            "Login",
	Logout:           "Logout",
	Register:         "Sign up",
	LoginTitle:       "Login",
	LoginDescription: "Sign in to access personalized recommendations and saved settings.",
	LoginEmail:       "Email",
	LoginPassword:    "Password",
	LoginSubmit:      "Login",
	LoginNoAccount:   "No account yet?",
	LoginGoRegister:  "Create one now",
	RegisterTitle:    "Register",
	RegisterDesc:     "Create an account to receive personalized project suggestions for your school.",
	RegisterName:     "Name",
	RegisterEmail:    "Email",
	RegisterPassword: "Password",
	RegisterRole:     "Role",
	RegisterSubmit:   "Create account",
	RoleTeacher:      "Teacher / STEM coordinator",
	RoleAdmin:        "School leadership / authority",
	RoleOther:        "Other role",

	AssistantTitle:   "MINTelligent Assistant",
	ModeGuest:        "Guest mode",
	ModePersonal:     "Personalized mode",
	ModeHintGuest:    "You are in guest mode. You will get general information. Sign in for personalized recommendations.",
	ModeHintPersonal: "Your answers can later be linked with your profile, school and classes.",
	GuestHintSidebar: "You can also try the assistant in guest mode without signing in.",
	InitialAssistant: "Hi, I'm your MINTelligent assistant. How can I help you today?",
	GuestReply:       "General example answer: Later you will get suitable STEM project suggestions here – even without logging in.",
	ChatPlaceholder:  "Ask the assistant about STEM projects, funding programmes, etc.",
	SenderYou:        "You",
	SenderAssistant:  "MINTelligent",
	PersonalizedTag:  "personalized",
	NewChat:          "New chat",
	LoadingChat:      "Loading chat...",
	DeleteConfirm:    "Delete this chat?",

	VizEngagement: "Engagement",
	VizDifficulty: "Difficulty",
	VizCosts:      "Costs",
	VizPrepTime:   "Prep time",
	CostLow:       "Low",
	CostMedium:    "Medium",
	CostHigh:      "High",

	AlertLoginFailed:    "Login failed.",
	AlertRegisterFailed: "Registration failed.",
	AlertSendFailed:     "Error while sending to backend.",
	AlertLoadFailed:     "Could not load chat.",
	AlertDeleteFailed:   "Could not delete chat.",

	Footer: "© 2025 MINTelligent – Prototype",
}

// Strings returns the table for lang. Unknown values get the primary locale.
func Strings(lang Language) *Text {
	if lang == LangEnglish {
		return &textEN
	}
	return &textDE
}
