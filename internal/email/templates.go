package email

import "fmt"

// Collaboration notification bodies. Kept as plain builders rather than
// template files; there are only three of them.

func CollaborationRequestReceived(ownerName, candidateName, projectTitle string) (subject, body string) {
	subject = fmt.Sprintf("New collaboration request for %q", projectTitle)
	body = fmt.Sprintf(
		"<p>Hi %s,</p><p><b>%s</b> wants to collaborate on your project <b>%s</b>. "+
			"Open the app to accept or reject the request.</p>",
		ownerName, candidateName, projectTitle,
	)
	return subject, body
}

func CollaborationRequestAccepted(candidateName, projectTitle string) (subject, body string) {
	subject = fmt.Sprintf("You joined %q", projectTitle)
	body = fmt.Sprintf(
		"<p>Hi %s,</p><p>Your collaboration request for <b>%s</b> was accepted. "+
			"You can now chat with the project owner.</p>",
		candidateName, projectTitle,
	)
	return subject, body
}

func CollaborationRequestRejected(candidateName, projectTitle string) (subject, body string) {
	subject = fmt.Sprintf("Update on %q", projectTitle)
	body = fmt.Sprintf(
		"<p>Hi %s,</p><p>Your collaboration request for <b>%s</b> was not accepted this time.</p>",
		candidateName, projectTitle,
	)
	return subject, body
}
