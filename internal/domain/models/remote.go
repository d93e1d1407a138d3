package models

type Remote struct {
	Name string
	URL  string
}

// Account carries the credentials used to talk to a GitHub endpoint.
type Account struct {
	Login    string
	Endpoint string
	Token    string
}
