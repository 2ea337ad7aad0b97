package mail

import "fmt"

const resetSubject = "Your password reset token"

// ResetMessage builds the password reset mail body. Template rendering is
// deliberately out of scope; the body is plain inline HTML.
func ResetMessage(frontendURL string, resetToken string) (subject string, htmlBody string) {
	link := fmt.Sprintf("%s/reset?resetToken=%s", frontendURL, resetToken)
	body := fmt.Sprintf(`
		<div style="font-family: sans-serif; line-height: 2; font-size: 16px;">
			<p>Your password reset token is here.</p>
			<p><a href=%q>Click here to reset your password</a></p>
			<p>The link is valid for one hour.</p>
		</div>`, link)
	return resetSubject, body
}
