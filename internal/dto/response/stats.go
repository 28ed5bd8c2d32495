package response

type UserStats struct {
	Total   int64 `json:"total"`
	Active  int64 `json:"active"`
	Blocked int64 `json:"blocked"`
}

type ShopStats struct {
	Total    int64 `json:"total"`
	Active   int64 `json:"active"`
	Inactive int64 `json:"inactive"`
	Pending  int64 `json:"pending"`
}

type EventStats struct {
	Total     int64 `json:"total"`
	Upcoming  int64 `json:"upcoming"`
	Ongoing   int64 `json:"ongoing"`
	Completed int64 `json:"completed"`
	Cancelled int64 `json:"cancelled"`
}

type ServiceStats struct {
	Total       int64 `json:"total"`
	Available   int64 `json:"available"`
	Unavailable int64 `json:"unavailable"`
}

// StatsResponse holds current counts only; there is no history behind it.
type StatsResponse struct {
	Users    UserStats    `json:"users"`
	Shops    ShopStats    `json:"shops"`
	Events   EventStats   `json:"events"`
	Services ServiceStats `json:"services"`
}
