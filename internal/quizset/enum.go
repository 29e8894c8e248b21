package quizset

type Sharing string

const (
	SharingPrivate  Sharing = "PRIVATE"
	SharingPublic   Sharing = "PUBLIC"
	SharingUnlisted Sharing = "UNLISTED"
)
