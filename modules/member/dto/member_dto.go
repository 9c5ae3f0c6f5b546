package dto

type MemberResponse struct {
	ID           int64    `json:"id"`
	Name         *string  `json:"name"`
	DisplayLabel string   `json:"displayLabel"`
	Email        *string  `json:"email"`
	Departments  []string `json:"departments"`
}
