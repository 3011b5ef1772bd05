package lex

type FulfillmentState string

const (
	Fulfilled FulfillmentState = "Fulfilled"
	Failed    FulfillmentState = "Failed"

	DialogActionClose = "Close"
	ContentPlainText  = "PlainText"
)

// Response is the Lex V2 answer returned from the fulfillment Lambda.
type Response struct {
	SessionState ResponseSessionState `json:"sessionState"`
	Messages     []Message            `json:"messages"`
}

type ResponseSessionState struct {
	DialogAction DialogAction   `json:"dialogAction"`
	Intent       ResponseIntent `json:"intent"`
}

type DialogAction struct {
	Type string `json:"type"`
}

type ResponseIntent struct {
	Name  string           `json:"name"`
	State FulfillmentState `json:"state"`
}

type Message struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

// Close builds a response that closes the dialog with a single plain text message.
func Close(intentName string, state FulfillmentState, message string) *Response {
	return &Response{
		SessionState: ResponseSessionState{
			DialogAction: DialogAction{Type: DialogActionClose},
			Intent: ResponseIntent{
				Name:  intentName,
				State: state,
			},
		},
		Messages: []Message{{
			ContentType: ContentPlainText,
			Content:     message,
		}},
	}
}

func (r *Response) IntentName() string {
	return r.SessionState.Intent.Name
}

func (r *Response) State() FulfillmentState {
	return r.SessionState.Intent.State
}

// Content returns the text of the first message.
func (r *Response) Content() string {
	if len(r.Messages) == 0 {
		return ""
	}
	return r.Messages[0].Content
}
