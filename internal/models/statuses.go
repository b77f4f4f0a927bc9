package models

type ProjectStatus string
type RequestStatus string
type SwipeAction string

const (
	ProjectStatusOpen       ProjectStatus = "open"
	ProjectStatusInProgress ProjectStatus = "in-progress"
	ProjectStatusCompleted  ProjectStatus = "completed"

	RequestStatusPending  RequestStatus = "pending"
	RequestStatusAccepted RequestStatus = "accepted"
	RequestStatusRejected RequestStatus = "rejected"

	SwipeActionLike    SwipeAction = "like"
	SwipeActionDislike SwipeAction = "dislike"
)
