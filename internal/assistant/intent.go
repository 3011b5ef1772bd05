package assistant

// Intent identifies the handler selected for an event.
type Intent int

const (
	Unrecognized Intent = iota
	Greeting
	JobSearch
	RefineSearch
	ProvideDetails
)

// ErrorIntent is the intent name reported in failed responses.
const ErrorIntent = "ErrorIntent"

const (
	SlotLocation  = "Location"
	SlotJobType   = "JobType"
	SlotJobNumber = "JobNumber"
)

var intentNames = map[Intent]string{
	Greeting:       "GreetingIntent",
	JobSearch:      "JobSearchIntent",
	RefineSearch:   "RefineSearchIntent",
	ProvideDetails: "ProvideDetailsIntent",
}

// ParseIntent matches the Lex intent name exactly.
func ParseIntent(name string) Intent {
	for intent, known := range intentNames {
		if known == name {
			return intent
		}
	}
	return Unrecognized
}

func (i Intent) String() string {
	if name, ok := intentNames[i]; ok {
		return name
	}
	return "Unrecognized"
}
