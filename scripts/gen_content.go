//go:build ignore

// gen_content.go – run with:
//
//	go run scripts/gen_content.go
//
// Writes starter emails.json and phone_calls.json documents next to the
// binary. Edit the generated files to add your own emails and phone calls;
// the game falls back to its built-in set if the files go missing or break.
package main

import (
	"encoding/json"
	"log"
	"os"
)

type email struct {
	Sender    string   `json:"sender"`
	Subject   string   `json:"subject"`
	Message   string   `json:"message"`
	Responses []string `json:"responses,omitempty"`
}

type turn struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
}

type conversation struct {
	Caller string `json:"caller"`
	Number string `json:"number"`
	Turns  []turn `json:"turns"`
}

func main() {
	emails := map[string]any{
		"format_version": 1,
		"channels": map[string][]email{
			"regular": {
				{
					Sender:    "Dana Whitfield",
					Subject:   "Quick sync?",
					Message:   "Hey, do you have five minutes before standup?",
					Responses: []string{"Sure thing", "Can we do after lunch?"},
				},
				{
					Sender:    "IT Helpdesk",
					Subject:   "Your ticket #48213 has been updated",
					Message:   "Status changed from Open to Open. No further action is required.",
					Responses: []string{"Okay", "Thanks"},
				},
			},
			"congratulatory": {
				{
					Sender:    "Louie Calvelli",
					Subject:   "Great progress today!",
					Message:   "Just pushed the auth refactor. Couldn't do it without you!",
					Responses: []string{"Thanks Louie", "Team effort!"},
				},
			},
		},
	}

	phones := map[string]any{
		"format_version": 1,
		"conversations": []conversation{
			{
				Caller: "Michael Miske",
				Number: "0151 496 0113",
				Turns: []turn{
					{Speaker: "caller", Text: "Hey, it's Michael. You busy?"},
					{Speaker: "player", Text: "Swamped, actually. What's up?"},
					{Speaker: "caller", Text: "The printer on three is making the noise again."},
					{Speaker: "player", Text: "Noted. Thanks, Michael."},
				},
			},
		},
	}

	write("emails.json", emails)
	write("phone_calls.json", phones)
}

func write(path string, doc any) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s", path)
}
