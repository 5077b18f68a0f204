package entity

type AuthProvider uint8

const (
	AuthProviderPassword AuthProvider = 0
	AuthProviderGoogle   AuthProvider = 1
)

var AuthProviderMap = map[AuthProvider]string{
	AuthProviderPassword: "Password",
	AuthProviderGoogle:   "Google",
}

func (a AuthProvider) String() string {
	return AuthProviderMap[a]
}

func (a AuthProvider) Value() uint8 {
	return uint8(a)
}
