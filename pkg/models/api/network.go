package api

// Network is one configured electricity market exposed by the web API.
type Network struct {
	Name string `json:"name"`
	Code string `json:"code"`
}
