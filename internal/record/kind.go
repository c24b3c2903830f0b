package record

// Kind describes one record variety: the nouns shown to the user, the
// table column labels, the interactive prompts, and the XML tag names
// used for persistence. Everything that differs between the flights
// and trains binaries lives here.
type Kind struct {
	Noun   string // singular, e.g. "flight"
	Plural string // e.g. "flights"; also the application name

	NameLabel string // table header for the destination column
	NoLabel   string // table header for the number column
	TimeLabel string // table header for the departure time column

	NamePrompt string
	NoPrompt   string
	TimePrompt string

	RootTag  string // XML root element name
	EntryTag string // XML per-record element name
}

// FlightKind and TrainKind are the two shipped record kinds.
var (
	FlightKind = Kind{
		Noun:       "flight",
		Plural:     "flights",
		NameLabel:  "Destination",
		NoLabel:    "Flight no",
		TimeLabel:  "Departure time",
		NamePrompt: "Destination? ",
		NoPrompt:   "Flight number? ",
		TimePrompt: "Departure time (HH:MM)? ",
		RootTag:    "flights",
		EntryTag:   "flight",
	}

	TrainKind = Kind{
		Noun:       "train",
		Plural:     "trains",
		NameLabel:  "Destination",
		NoLabel:    "Train no",
		TimeLabel:  "Departure time",
		NamePrompt: "Destination? ",
		NoPrompt:   "Train number? ",
		TimePrompt: "Departure time (HH:MM)? ",
		RootTag:    "trains",
		EntryTag:   "train",
	}
)
