package notification

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/propsetu/estate-backend/internal/domain"
)

// smsBudget is the single-segment SMS character limit
const smsBudget = 160

// actionContent drives the per-action subject line, banner color and verb
type actionContent struct {
	subjectPrefix string
	color         string
	verb          string
}

var actionContents = map[domain.NotificationAction]actionContent{
	domain.ActionApprove: {
		subjectPrefix: "Property Approved",
		color:         "#4CAF50",
		verb:          "has been approved",
	},
	domain.ActionReject: {
		subjectPrefix: "Property Rejected",
		color:         "#F44336",
		verb:          "has been rejected",
	},
	domain.ActionVerify: {
		subjectPrefix: "Property Verified",
		color:         "#2196F3",
		verb:          "has been verified",
	},
	domain.ActionUnverify: {
		subjectPrefix: "Property Verification Removed",
		color:         "#FF9800",
		verb:          "is no longer verified",
	},
	domain.ActionFlag: {
		subjectPrefix: "Property Flagged",
		color:         "#FF5722",
		verb:          "has been flagged for review",
	},
}

func contentFor(action domain.NotificationAction) actionContent {
	if c, ok := actionContents[action]; ok {
		return c
	}
	return actionContent{
		subjectPrefix: "Property Update",
		color:         "#607D8B",
		verb:          "has been updated",
	}
}

// InboxContent composes the title and body for an in-app notification row.
func InboxContent(action domain.NotificationAction, propertyTitle, message string) (title, body string) {
	c := contentFor(action)

	title = c.subjectPrefix
	body = fmt.Sprintf("Your property %q %s.", propertyTitle, c.verb)
	if message != "" {
		body += " " + message
	}
	return title, body
}

// buildEmail composes the subject, HTML body and plain-text body for a
// status-change email
func buildEmail(d Descriptor) (subject, htmlBody, textBody string) {
	c := contentFor(d.Action)

	subject = fmt.Sprintf("%s: %s", c.subjectPrefix, d.Title)

	location := d.City
	if d.State != "" {
		if location != "" {
			location += ", "
		}
		location += d.State
	}

	var details strings.Builder
	fmt.Fprintf(&details, "<tr><td>Property</td><td>%s</td></tr>", d.Title)
	if d.Address != "" {
		fmt.Fprintf(&details, "<tr><td>Address</td><td>%s</td></tr>", d.Address)
	}
	if location != "" {
		fmt.Fprintf(&details, "<tr><td>Location</td><td>%s</td></tr>", location)
	}
	if d.Price > 0 {
		fmt.Fprintf(&details, "<tr><td>Price</td><td>%d</td></tr>", d.Price)
	}
	if d.Reason != "" {
		fmt.Fprintf(&details, "<tr><td>Reason</td><td>%s</td></tr>", d.Reason)
	}
	if d.AdminName != "" {
		fmt.Fprintf(&details, "<tr><td>Reviewed by</td><td>%s</td></tr>", d.AdminName)
	}
	if d.ReviewDate != nil {
		fmt.Fprintf(&details, "<tr><td>Reviewed on</td><td>%s</td></tr>", d.ReviewDate.Format("02 Jan 2006"))
	}

	messageBlock := ""
	if d.Message != "" {
		messageBlock = fmt.Sprintf(`<p style="margin-top:16px">%s</p>`, d.Message)
	}

	htmlBody = fmt.Sprintf(`<div style="font-family:Arial,sans-serif;max-width:600px">
<div style="background:%s;color:#ffffff;padding:16px 24px">
<h2 style="margin:0">%s</h2>
</div>
<div style="padding:24px">
<p>Dear %s,</p>
<p>Your property "%s" %s.</p>
<table cellpadding="6">%s</table>
%s
<p style="color:#888888;font-size:12px;margin-top:24px">This is an automated message from PropSetu.</p>
</div>
</div>`, c.color, c.subjectPrefix, d.OwnerName, d.Title, c.verb, details.String(), messageBlock)

	var text strings.Builder
	fmt.Fprintf(&text, "Dear %s,\n\nYour property \"%s\" %s.\n", d.OwnerName, d.Title, c.verb)
	if d.Reason != "" {
		fmt.Fprintf(&text, "Reason: %s\n", d.Reason)
	}
	if d.Message != "" {
		fmt.Fprintf(&text, "\n%s\n", d.Message)
	}
	if d.AdminName != "" {
		fmt.Fprintf(&text, "\nReviewed by %s", d.AdminName)
		if d.ReviewDate != nil {
			fmt.Fprintf(&text, " on %s", d.ReviewDate.Format("02 Jan 2006"))
		}
		text.WriteString("\n")
	}
	textBody = text.String()

	return subject, htmlBody, textBody
}

// buildSMS composes the SMS body within the single-segment budget.
// The admin message is dropped first when the combined text is too long;
// as a last resort the base text itself is truncated
func buildSMS(d Descriptor) string {
	c := contentFor(d.Action)

	base := fmt.Sprintf("PropSetu: your property \"%s\" %s.", d.Title, c.verb)

	if d.Message != "" {
		full := base + " " + d.Message
		if len(full) <= smsBudget {
			return full
		}
	}

	if len(base) <= smsBudget {
		return base
	}

	// Never cut inside a multibyte rune in the title
	cut := smsBudget - 3
	for cut > 0 && !utf8.RuneStart(base[cut]) {
		cut--
	}
	return base[:cut] + "..."
}
