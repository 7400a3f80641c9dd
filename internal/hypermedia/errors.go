package hypermedia

type ErrorDocument struct {
	ResourceURL string    `json:"resource_url"`
	Error       ErrorBody `json:"@error"`
}

type ErrorBody struct {
	Message  string   `json:"@message"`
	Messages []string `json:"@messages"`
}

func NewError(resourceURL, title string, details ...string) ErrorDocument {
	if details == nil {
		details = []string{}
	}
	return ErrorDocument{
		ResourceURL: resourceURL,
		Error: ErrorBody{
			Message:  title,
			Messages: details,
		},
	}
}
