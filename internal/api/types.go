package api

// TagName is one entry of the POST /tags request.
type TagName struct {
	Name string `json:"name"`
}

// CreateTagsRequest represents the POST /tags request.
type CreateTagsRequest struct {
	Tag []TagName `json:"tag"`
}

// SubscribeRequest represents the POST /forms/{id}/subscribe request.
type SubscribeRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
	Tags      []int  `json:"tags,omitempty"`
}
