package model

type LoginResponseModel struct {
	AccessToken string
	User        UserModel
}
