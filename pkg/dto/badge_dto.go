package dto

// Badge is an earned badge as published by the upstream profile.
type Badge struct {
	ID           string `json:"id"`
	DisplayName  string `json:"displayName"`
	Icon         string `json:"icon"`
	CreationDate int64  `json:"creationDate"`
}

// UpcomingBadge is a badge the user has not earned yet.
type UpcomingBadge struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}
