package models

// Session – запись активной сессии, хранится под отдельным ключом.
type Session struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	IsAdmin  bool   `json:"is_admin"`
}
