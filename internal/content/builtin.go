package content

// Built-in fallback content, used whenever the JSON documents are missing,
// malformed, or exhausted. Small on purpose: the shipped data files carry the
// full sets.

var builtinRegularEmails = []EmailTemplate{
	{
		Sender:    "conference@org.com",
		Subject:   "Conference Planning Update",
		Message:   "Quick status check on the fundraising push. Nothing needed from you right now.",
		Responses: []string{"OK", "Thanks", "Got it"},
	},
	{
		Sender:    "finance@conference.org",
		Subject:   "Budget Review Needed",
		Message:   "The quarterly numbers are in the shared sheet whenever you have a minute.",
		Responses: []string{"Will take a look", "Thanks for the heads up", "On it"},
	},
	{
		Sender:    "venue@conference.org",
		Subject:   "Venue Confirmation",
		Message:   "The hall is confirmed for both days. Parking details to follow.",
		Responses: []string{"Great news!", "Thanks", "Perfect"},
	},
}

var builtinCongratulatoryEmails = []EmailTemplate{
	{
		Sender:    "michael miske <michael.miske@conference.org>",
		Subject:   "Calvelli is doing amazing work!",
		Message:   "Hey Matt, just wanted to say that Calvelli has been absolutely crushing it with the conference planning. You're lucky to have such a dedicated team member!",
		Responses: []string{"Thanks! Yes, Calvelli is great.", "I'll let them know you said that.", "We're making good progress!"},
	},
	{
		Sender:    "sponsors@conference.org",
		Subject:   "Re: Amazing fundraising progress",
		Message:   "Matt, we've been so impressed with how quickly things are moving. Calvelli's work on securing sponsorships has been outstanding.",
		Responses: []string{"Thank you for the kind words!", "Calvelli has been working hard.", "We appreciate your support."},
	},
	{
		Sender:    "calvelli@conference.org",
		Subject:   "Just checking in",
		Message:   "Hey Matt, I've been handling the conference planning and wanted to see if you need anything from me. Let me know!",
		Responses: []string{"Everything looks great, thanks!", "You're doing amazing work.", "Keep it up!"},
	},
}

var placeholderEmail = EmailTemplate{
	Sender:    "no-reply@conference.org",
	Subject:   "(no new mail)",
	Message:   "Email content not available.",
	Responses: []string{"OK"},
}

var builtinPhoneScripts = []PhoneScript{
	{
		Caller: "Michael Miske",
		Number: "(555) 123-4567",
		Turns: []Turn{
			{Speaker: "caller", Text: "Hey, how's the conference planning going?"},
			{Speaker: "player", Text: "Oh, it's going great! I've been working on it all day."},
			{Speaker: "caller", Text: "That's awesome! Need any help with anything?"},
			{Speaker: "player", Text: "Nah, I've got it covered. Thanks though!"},
			{Speaker: "caller", Text: "Alright, well keep up the good work!"},
		},
	},
	{
		Caller: "Halle",
		Number: "(555) 456-7890",
		Turns: []Turn{
			{Speaker: "caller", Text: "Matt! Did you see the schedule Calvelli sent around?"},
			{Speaker: "player", Text: "Yep, looks great. We worked on it together."},
			{Speaker: "caller", Text: "Really? It says 'prepared by Calvelli' on every page."},
			{Speaker: "player", Text: "...formatting thing. Anyway, gotta run!"},
		},
	},
}

var builtinActivities = []string{
	"Calvelli secured a $5,000 sponsorship",
	"Calvelli finalized the venue booking",
	"Calvelli sent out 50 fundraising emails",
	"Calvelli updated the budget spreadsheet",
	"Calvelli confirmed 3 keynote speakers",
	"Calvelli organized the catering menu",
	"Calvelli set up the registration system",
	"Calvelli coordinated with 10 vendors",
	"Calvelli drafted the conference schedule",
	"Calvelli reached out to media partners",
	"Calvelli booked the AV equipment",
	"Calvelli confirmed the event insurance",
	"Calvelli arranged transportation logistics",
	"Calvelli finalized the marketing materials",
	"Calvelli secured 2 more sponsors",
	"Calvelli updated the attendee list",
	"Calvelli scheduled all breakout sessions",
	"Calvelli coordinated volunteer assignments",
	"Calvelli prepared the welcome packets",
	"Calvelli confirmed parking arrangements",
}

var builtinChatLines = []ChatLine{
	{From: "seong-ah", Text: "Hey Matt!"},
	{From: "jar", Text: "How's the conference planning going?"},
	{From: "halle", Text: "Can you check this?"},
	{From: "mama velli", Text: "We need to talk"},
	{From: "fleece", Text: "Hey, are you there?"},
	{From: "seong-ah", Text: "Can you look at the schedule?"},
	{From: "jar", Text: "Hey, did you see my message?"},
	{From: "halle", Text: "Hey Matt, status update?"},
}

var builtinDiscordLines = []ChatLine{
	{From: "calvelli", Text: "Hey, can you check the budget?"},
	{From: "seong-ah", Text: "We need to update the sponsor list"},
	{From: "jar", Text: "When are you going to finish that?"},
	{From: "halle", Text: "Can you look at this?"},
	{From: "mama velli", Text: "We need to discuss the conference"},
	{From: "manon", Text: "Can you check the calendar?"},
	{From: "julian", Text: "We need your input on this"},
}

var builtinInterrupts = []string{
	"Hey Matt, can you check the budget spreadsheet?",
	"Matt, did you send those emails yet?",
	"Hey, we need to update the sponsor list",
	"Matt, when are you going to finish the donation forms?",
	"Can you look at the calendar? We have a meeting soon",
	"Hey, the tasks list needs updating",
	"Matt, are you there? We need to discuss the conference",
	"Can you check the contact info? Something's wrong",
	"Hey Matt, I need your help with something",
	"Matt, we're running out of time on this",
}

var builtinSlackChannels = []string{"# general", "# conference-planning", "# fundraising", "# random"}

var builtinReplyOptions = []string{"Okay", "Got it", "Thanks", "Will do", "Sure thing"}

var builtinMilestoneMessages = map[float64]string{
	25: "25% Complete! Great progress!",
	50: "50% Complete! Halfway there!",
	75: "75% Complete! Almost done!",
	90: "90% Complete! Final stretch!",
}
