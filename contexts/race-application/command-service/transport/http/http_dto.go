package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreateRaceRequest struct {
	Name     string `json:"name"`
	Distance string `json:"distance"`
}

type UpdateRaceRequest struct {
	Name     string `json:"name"`
	Distance string `json:"distance"`
}

type RaceResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Distance string `json:"distance"`
}

type CreateApplicationRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Club      string `json:"club"`
	RaceID    string `json:"raceId"`
}

type ApplicationResponse struct {
	ID        string       `json:"id"`
	FirstName string       `json:"firstName"`
	LastName  string       `json:"lastName"`
	Club      string       `json:"club"`
	Race      RaceResponse `json:"race"`
}
