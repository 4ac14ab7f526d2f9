package types

type ActivityType string

const (
	ActivitySignUp         ActivityType = "SIGN_UP"
	ActivitySignIn         ActivityType = "SIGN_IN"
	ActivitySignOut        ActivityType = "SIGN_OUT"
	ActivityUpdatePassword ActivityType = "UPDATE_PASSWORD"
	ActivityDeleteAccount  ActivityType = "DELETE_ACCOUNT"
	ActivityUpdateAccount  ActivityType = "UPDATE_ACCOUNT"
	ActivityAddClient      ActivityType = "ADD_CLIENT"
	ActivityUpdateClient   ActivityType = "UPDATE_CLIENT"
	ActivityDeleteClient   ActivityType = "DELETE_CLIENT"
	ActivityAddSession     ActivityType = "ADD_SESSION"
	ActivityUpdateSession  ActivityType = "UPDATE_SESSION"
	ActivityDeleteSession  ActivityType = "DELETE_SESSION"
	ActivityAddCard        ActivityType = "ADD_CARD"
	ActivityUpdateCard     ActivityType = "UPDATE_CARD"
	ActivityDeleteCard     ActivityType = "DELETE_CARD"
	ActivityAddTemplate    ActivityType = "ADD_TEMPLATE"
	ActivityUpdateTemplate ActivityType = "UPDATE_TEMPLATE"
)
