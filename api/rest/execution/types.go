package execution

// Request represents the request body for code execution
type Request struct {
	Code     string `json:"code" binding:"required"`
	SafeMode *bool  `json:"safe_mode"`
	Timeout  int    `json:"timeout" binding:"omitempty,gte=1,lte=300"` // seconds
}
