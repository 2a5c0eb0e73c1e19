package api

type credentialsInput struct {
	Email           string `json:"email" form:"email"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
	Role            string `json:"role" form:"role"`
}

type profileInput struct {
	Name         string `json:"name" form:"name"`
	Role         string `json:"role" form:"role"`
	Sport        string `json:"sport" form:"sport"`
	Bio          string `json:"bio" form:"bio"`
	Achievements string `json:"achievements" form:"achievements"`
}

type postInput struct {
	Content string `json:"content" form:"content"`
}
