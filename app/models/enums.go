package models

// OutlookStatus defines the possible outcomes of a projection.
type OutlookStatus string

const (
	Achieved   OutlookStatus = "achieved"
	Impossible OutlookStatus = "impossible"
	Needed     OutlookStatus = "needed"
)

// NoticeKind is the coarse category of a Notice, used only for styling.
type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)
