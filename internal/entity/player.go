package entity

const (
	DefaultPlayerOneName = "Player One"
	DefaultPlayerTwoName = "Player Two"
)

type Player struct {
	Name string `json:"name"`
	Mark Mark   `json:"mark"`
}
