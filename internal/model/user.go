package model

type ContextKey string

const (
	// UserIDKey は認証済みユーザーID (uuid.UUID) をコンテキストに格納するキー
	UserIDKey ContextKey = "userID"
)
