package message

const (
	InvalidUser    = "Incorrect email or password."
	InvalidInput   = "Invalid input."
	UnknownField   = "Unknown field in payload."
	NotLoggedIn    = "Not logged in."
	Forbidden      = "Forbidden."
	InvalidCode    = "Invalid verification code or code has expired."
	UserExists     = "User with this email already exists."
	UserNotFound   = "User not found."
	EmailInUse     = "Email already in use."
	PostNotFound   = "Post not found."
	NotVerified    = "User is not verified. Please check your inbox or request a new verification code."
	RegisterOK     = "Thank you for registering. A verification link was sent to your email."
	VerifyOK       = "Account verified."
	LoggedIn       = "Logged in."
	LoggedOut      = "Logged out."
	ResetSent      = "Password reset email sent."
	ResetCodeValid = "Verification code valid."
	ResetFailed    = "Error resetting password."
	PasswordSaved  = "Password was changed successfully."
	EnvErrFmt      = "environment variable is not set: %s"
)
