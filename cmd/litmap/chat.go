package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/litmap"
)

// Run executes the chat command.
func (c *ChatCmd) Run(deps *Dependencies) error {
	switch {
	case c.Clear:
		n, err := deps.Chats.ClearMessages(deps.Ctx)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", litmap.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Cleared %d messages\n", n)
		return nil
	case c.History:
		return c.history(deps)
	}

	question := strings.TrimSpace(c.Question)
	if question == "" {
		fmt.Fprintln(deps.Stderr, "error: question required")
		return litmap.Errorf(litmap.EINVALID, "question required")
	}

	var place *litmap.ChatContext
	if c.Landmark != "" {
		l, err := litmap.FindLandmark(deps.Ctx, deps.Landmarks, c.Landmark)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s. Use 'litmap landmarks' to see available landmarks.\n", litmap.ErrorMessage(err))
			return err
		}
		// Archivist details enrich the context but are optional.
		var archivist *litmap.ArchivistRecord
		if deps.Agents != nil {
			archivist, _ = deps.Agents.LookupLandmark(deps.Ctx, l.ID)
		}
		place = litmap.NewChatContext(l, archivist)
	}

	if err := deps.Chats.CreateMessage(deps.Ctx, &litmap.ChatMessage{
		Role:       litmap.RoleUser,
		Text:       question,
		LandmarkID: c.Landmark,
	}); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", litmap.ErrorMessage(err))
		return err
	}

	reply := &litmap.ChatMessage{Role: litmap.RoleAssistant, LandmarkID: c.Landmark}
	answer, err := deps.Chatter.Chat(deps.Ctx, question, place)
	if err != nil {
		deps.logger().Warn("chat failed", "err", err)
		reply.Text = litmap.ChatFallbackAnswer
	} else {
		reply.Text = answer.Answer
		reply.ElapsedMS = answer.ElapsedMS
	}

	if err := deps.Chats.CreateMessage(deps.Ctx, reply); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", litmap.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, reply.Text)
	if reply.ElapsedMS > 0 {
		fmt.Fprintln(deps.Stdout, newPrinter(deps.Stdout).dim(fmt.Sprintf("%dms", reply.ElapsedMS)))
	}
	return nil
}

func (c *ChatCmd) history(deps *Dependencies) error {
	var filter litmap.ChatFilter
	if c.Landmark != "" {
		filter.LandmarkID = &c.Landmark
	}
	messages, err := deps.Chats.FindMessages(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", litmap.ErrorMessage(err))
		return err
	}

	if len(messages) == 0 {
		fmt.Fprintln(deps.Stdout, "No messages yet. Ask with 'litmap chat \"question\"'.")
		return nil
	}

	p := newPrinter(deps.Stdout)
	for _, m := range messages {
		who := "you"
		if m.Role == litmap.RoleAssistant {
			who = "guide"
		}
		fmt.Fprintf(deps.Stdout, "%s %-5s  %s\n", p.dim(m.CreatedAt.Local().Format(time.Kitchen)), who, m.Text)
	}
	return nil
}
