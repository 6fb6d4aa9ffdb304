package notify

import "fmt"

// Plain-text bodies, one helper per event.

func AdoptionRequested(petName, adopterName string) (subject, body string) {
	return "New Adoption Request",
		fmt.Sprintf("A new adoption request has been submitted for your pet %s by %s.", petName, adopterName)
}

func AdoptionApproved(petName string) (subject, body string) {
	return "Adoption Request Approved",
		fmt.Sprintf("Your adoption request for %s has been approved!", petName)
}

func AdoptionRejected(petName string) (subject, body string) {
	return "Adoption Request Rejected",
		fmt.Sprintf("Your adoption request for %s has been rejected.", petName)
}

func MessageReceived(petName, senderName string) (subject, body string) {
	return "New Message Received",
		fmt.Sprintf("You have received a new message regarding %s from %s.", petName, senderName)
}

func PasswordReset(resetLink string) (subject, body string) {
	return "Password Reset Request",
		fmt.Sprintf("Click the link to reset your password: %s", resetLink)
}
