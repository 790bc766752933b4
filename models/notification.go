package models

// NotificationKind distinguishes success banners from error banners.
type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
)
