package usecasecontract

// IConfigProvider exposes the configuration switches the like feature reads.
type IConfigProvider interface {
	GetAppBaseURL() string
	GetUseDropDownButton() bool
	GetDefaultPopupLikePref() bool
	GetDefaultEmailLikePref() bool
}
