package responses

// Envelope is the body of every API response: a success flag plus payload keys
// named after the resource they carry.
type Envelope map[string]interface{}

// Success returns a copy of payload with success set.
func Success(payload Envelope) Envelope {
	out := make(Envelope, len(payload)+1)
	for k, v := range payload {
		out[k] = v
	}
	out["success"] = true
	return out
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
