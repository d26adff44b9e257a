package domain

// DefaultProfilePicture is assigned to every new user until they upload one.
const DefaultProfilePicture = "/static/profile_pictures/default_profile_picture.png"

// User is an identity record. The credential tokens are mirrored on the
// document so a presented token can be invalidated by overwrite: the refresh
// token rotates on every login/refresh, the verify and reset tokens are
// cleared once consumed.
type User struct {
	Model              `bson:",inline"`
	Username           string `bson:"username" json:"username"`
	FullName           string `bson:"full_name" json:"full_name"`
	Email              string `bson:"email" json:"email"`
	Password           string `bson:"password" json:"-"`
	ProfilePicture     string `bson:"profile_picture" json:"profile_picture"`
	IsVerified         bool   `bson:"is_verified" json:"is_verified"`
	UserVerifyToken    string `bson:"user_verify_token,omitempty" json:"-"`
	RefreshToken       string `bson:"refresh_token,omitempty" json:"-"`
	PasswordResetToken string `bson:"password_reset_token,omitempty" json:"-"`
}

// Collection returns the users collection name.
func (User) Collection() string { return "users" }

// NewUser builds an unverified user with defaults applied. The password
// must already be hashed and the verify token already generated.
func NewUser(username, fullName, email, hashedPassword, verifyToken string) User {
	return User{
		Model:           NewModel(),
		Username:        username,
		FullName:        fullName,
		Email:           email,
		Password:        hashedPassword,
		ProfilePicture:  DefaultProfilePicture,
		UserVerifyToken: verifyToken,
	}
}
