package assistant

const (
	msgGreeting          = "Hello! How can I assist you today? You can ask me for job recommendations."
	msgSearchPrompt      = "I can help you find job recommendations. What type of jobs are you looking for?"
	msgRecommendations   = "Here are the top job recommendations:"
	msgSeeMore           = "Would you like to see more?"
	msgNoRecommendations = "Sorry, no valid job recommendations are available at the moment."
	msgFetchFailed       = "Failed to fetch job recommendations. API returned status code %d."
	msgRefineLocation    = "Let me find jobs in %s for you. Fetching recommendations..."
	msgRefineJobType     = "Looking for jobs related to %s. Fetching recommendations..."
	msgRefinePrompt      = "Please provide more details to refine the search (e.g., location or job type)."
	msgDetails           = "Here are the details for job %d:\n%s"
	msgDetailsNotFound   = "Sorry, I couldn't find details for the selected job. Please try again."
	msgUnrecognized      = "I'm not sure how to help with that. Could you rephrase?"
	msgFailure           = "An error occurred while processing your request. Please try again later."
)
